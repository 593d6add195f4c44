// SPDX-License-Identifier: MIT

package gauss

import (
	"math"
	"math/big"
	"strconv"

	"github.com/katalvlaran/gauss/rational"
)

// field is the arithmetic a single elimination runs on. T is float64 in
// Float mode and *big.Rat in Exact mode; one implementation is picked per
// call so every cell of the augmented matrix shares the same scalar type.
//
// Implementations never mutate their arguments.
type field[T any] interface {
	// fromFloat reports false for NaN/±Inf.
	fromFloat(v float64) (T, bool)
	zero() T
	sub(a, b T) T
	mul(a, b T) T
	quo(a, b T) T
	// cmpAbs returns the sign of |a| - |b|.
	cmpAbs(a, b T) int
	// negligible reports whether v is unusable as a pivot.
	negligible(v T) bool
	finite(v T) bool
	// absFloat and toFloat feed the hooks.
	absFloat(v T) float64
	toFloat(v T) float64
	format(v T) string
	value(v T) (Value, error)
}

// ---------- Float mode ----------

// floatField is float64 arithmetic with an optional pivot tolerance.
type floatField struct {
	tol    float64
	maxDen int64
}

func (floatField) fromFloat(v float64) (float64, bool) {
	return v, !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (floatField) zero() float64 { return 0 }

func (floatField) sub(a, b float64) float64 { return a - b }

// mul rounds the product explicitly so it is never fused into a following
// subtraction; traces are then identical on every architecture.
func (floatField) mul(a, b float64) float64 { return float64(a * b) }

func (floatField) quo(a, b float64) float64 { return a / b }

func (floatField) cmpAbs(a, b float64) int {
	x, y := math.Abs(a), math.Abs(b)
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	default:
		return 0
	}
}

func (f floatField) negligible(v float64) bool {
	if f.tol == 0 {
		return v == 0
	}

	return math.Abs(v) <= f.tol
}

func (floatField) finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (floatField) absFloat(v float64) float64 { return math.Abs(v) }

func (floatField) toFloat(v float64) float64 { return v }

func (floatField) format(v float64) string { return formatFloat(v) }

func (f floatField) value(v float64) (Value, error) {
	r, err := rational.Approximate(v, f.maxDen)
	if err != nil {
		return Value{}, err
	}

	return Value{Decimal: v, Fraction: r}, nil
}

// formatFloat renders the shortest round-trip representation; -0 prints as 0.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ---------- Exact mode ----------

// ratField is exact rational arithmetic. tol is nil for the exact-zero test.
type ratField struct {
	tol *big.Rat
}

func newRatField(tol float64) ratField {
	if tol == 0 {
		return ratField{}
	}

	return ratField{tol: new(big.Rat).SetFloat64(tol)}
}

func (ratField) fromFloat(v float64) (*big.Rat, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}

	return new(big.Rat).SetFloat64(v), true
}

func (ratField) zero() *big.Rat { return new(big.Rat) }

func (ratField) sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (ratField) mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// quo is only called with a non-zero divisor: pivots are checked first.
func (ratField) quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

func (ratField) cmpAbs(a, b *big.Rat) int {
	return new(big.Rat).Abs(a).Cmp(new(big.Rat).Abs(b))
}

func (f ratField) negligible(v *big.Rat) bool {
	if f.tol == nil {
		return v.Sign() == 0
	}

	return new(big.Rat).Abs(v).Cmp(f.tol) <= 0
}

func (ratField) finite(*big.Rat) bool { return true }

func (ratField) absFloat(v *big.Rat) float64 {
	f, _ := new(big.Rat).Abs(v).Float64()

	return f
}

func (ratField) toFloat(v *big.Rat) float64 {
	f, _ := v.Float64()

	return f
}

func (ratField) format(v *big.Rat) string { return rational.String(v) }

func (ratField) value(v *big.Rat) (Value, error) {
	d, _ := v.Float64()

	return Value{Decimal: d, Fraction: new(big.Rat).Set(v)}, nil
}
