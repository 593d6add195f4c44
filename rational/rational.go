// SPDX-License-Identifier: MIT
// Package rational converts floating values into readable fractions.
package rational

import (
	"errors"
	"math"
	"math/big"
)

// DefaultMaxDenominator bounds the denominator of approximations when the
// caller does not choose one. One million keeps every float64 that came
// from a short decimal (0.8, 1.4, 14.35) on its obvious fraction.
const DefaultMaxDenominator int64 = 1_000_000

var (
	// ErrNonFinite is returned when NaN or ±Inf is offered for conversion.
	ErrNonFinite = errors.New("rational: value is NaN or Inf")

	// ErrMaxDenominator is returned when the denominator bound is < 1.
	ErrMaxDenominator = errors.New("rational: max denominator must be >= 1")
)

// FromFloat returns the exact rational value of x (every finite float64 is a
// dyadic rational). Negative zero maps to 0.
//
// Errors: ErrNonFinite.
func FromFloat(x float64) (*big.Rat, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, ErrNonFinite
	}

	return new(big.Rat).SetFloat64(x), nil
}

// Approximate returns the closest fraction to x whose denominator does not
// exceed maxDen. It is FromFloat followed by LimitDenominator.
//
// Errors: ErrNonFinite, ErrMaxDenominator.
func Approximate(x float64, maxDen int64) (*big.Rat, error) {
	r, err := FromFloat(x)
	if err != nil {
		return nil, err
	}

	return LimitDenominator(r, maxDen)
}

// LimitDenominator finds the closest rational to r with denominator at most maxDen.
//
// Algorithm (continued-fraction convergents):
//  1. If den(r) <= maxDen, r itself is the answer.
//  2. Walk the convergents p/q of r's continued fraction until the next
//     denominator would exceed maxDen.
//  3. The answer is either the last convergent p1/q1 or the semiconvergent
//     (p0+k·p1)/(q0+k·q1) with the largest k that respects the bound;
//     pick the closer one, preferring the convergent on ties.
//
// The input is never modified; the result is a fresh *big.Rat.
//
// Errors: ErrMaxDenominator.
//
// Complexity: O(log den(r)) big-integer steps.
func LimitDenominator(r *big.Rat, maxDen int64) (*big.Rat, error) {
	if maxDen < 1 {
		return nil, ErrMaxDenominator
	}
	bound := big.NewInt(maxDen)
	if r.Denom().Cmp(bound) <= 0 {
		return new(big.Rat).Set(r), nil
	}

	var (
		p0, q0 = big.NewInt(0), big.NewInt(1)
		p1, q1 = big.NewInt(1), big.NewInt(0)
		n      = new(big.Int).Set(r.Num())
		d      = new(big.Int).Set(r.Denom())
		a      = new(big.Int)
		q2     = new(big.Int)
		tmp    = new(big.Int)
	)
	for {
		a.Div(n, d) // Euclidean division; d > 0 so this is floor(n/d)
		q2.Mul(a, q1).Add(q2, q0)
		if q2.Cmp(bound) > 0 {
			break
		}
		tmp.Mul(a, p1).Add(tmp, p0)
		p0.Set(p1)
		q0.Set(q1)
		p1.Set(tmp)
		q1.Set(q2)

		tmp.Mul(a, d)
		tmp.Sub(n, tmp)
		n.Set(d)
		d.Set(tmp)
	}

	k := new(big.Int).Sub(bound, q0)
	k.Div(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	if distance(conv, r).Cmp(distance(semi, r)) <= 0 {
		return conv, nil
	}

	return semi, nil
}

// distance returns |a - b|.
func distance(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)

	return d.Abs(d)
}

// String renders r the way people write fractions: "4/5", "-7/5", and
// plain integers without a denominator ("3", "0").
func String(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}

	return r.RatString()
}
