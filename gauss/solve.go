// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/rational"
)

// Value is one unknown of the solution in both display forms.
type Value struct {
	// Decimal is the float64 value (nearest float64 in Exact mode).
	Decimal float64
	// Fraction is the reduced fraction: exact in Exact mode, the
	// minimal-denominator approximation of Decimal in Float mode.
	Fraction *big.Rat
}

// Result is the outcome of one solve.
//
// On success Trace holds every elimination step (empty when tracing is off)
// and Solution holds n values. On ErrSingular, Trace holds the steps up to
// the failing column and Solution is nil.
type Result struct {
	Mode     Mode
	Trace    []string
	Solution []Value
}

// Solution section headings.
const (
	HeadingDecimal  = "Decimal Form"
	HeadingFraction = "Fraction Form"
)

// Lines returns the display lines: the trace, then (when solved) a blank line,
// the decimal section, a blank line and the fraction section. Unknowns are
// labelled x_1..x_n. A nil Result yields no lines.
func (r *Result) Lines() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Trace)+2*len(r.Solution)+4)
	out = append(out, r.Trace...)
	if r.Solution == nil {
		return out
	}

	out = append(out, "", HeadingDecimal)
	for i, v := range r.Solution {
		out = append(out, fmt.Sprintf("x_%d: %s", i+1, formatFloat(v.Decimal)))
	}
	out = append(out, "", HeadingFraction)
	for i, v := range r.Solution {
		out = append(out, fmt.Sprintf("x_%d: %s", i+1, rational.String(v.Fraction)))
	}

	return out
}

// Decimals returns the decimal form of the solution, or nil when unsolved.
func (r *Result) Decimals() []float64 {
	if r == nil || r.Solution == nil {
		return nil
	}
	out := make([]float64, len(r.Solution))
	for i, v := range r.Solution {
		out[i] = v.Decimal
	}

	return out
}

// Fractions returns copies of the fraction form, or nil when unsolved.
func (r *Result) Fractions() []*big.Rat {
	if r == nil || r.Solution == nil {
		return nil
	}
	out := make([]*big.Rat, len(r.Solution))
	for i, v := range r.Solution {
		out[i] = new(big.Rat).Set(v.Fraction)
	}

	return out
}

// Solve solves a·x = b by Gaussian elimination with partial pivoting.
//
// a must be square and non-empty; b must have one column and either one row
// (broadcast to every equation) or a.Rows() rows. Neither is modified.
//
// Errors:
//   - ErrOptionViolation: an invalid Option; Result is nil.
//   - ErrShape: a or b has the wrong shape; Result is nil.
//   - ErrSingular: no usable pivot, or a non-finite value; Result carries
//     the partial trace. Non-finite input also matches matrix.ErrNaNInf.
//
// Complexity: O(n³) time, O(n²) space for the augmented copy.
func Solve(a, b matrix.Matrix, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err = validateShape(a, b); err != nil {
		return nil, err
	}

	if o.Mode == Exact {
		return solveMatrix[*big.Rat](newRatField(o.PivotTolerance), a, b, &o)
	}

	return solveMatrix[float64](floatField{tol: o.PivotTolerance, maxDen: o.MaxDenominator}, a, b, &o)
}

// SolveRows is Solve over plain row slices. Ragged or empty input is an
// ErrShape. NaN/±Inf cells are accepted here and classified by Solve as
// ErrSingular (also matching matrix.ErrNaNInf) with an empty trace.
func SolveRows(a, b [][]float64, opts ...Option) (*Result, error) {
	am, err := matrix.NewDenseFromRows(a, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, shapeErrorf(err)
	}
	bm, err := matrix.NewDenseFromRows(b, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, shapeErrorf(err)
	}

	return Solve(am, bm, opts...)
}

// SolveRational solves a system given as exact rationals. Exact mode is
// forced. A nil cell reads as zero. Inputs are not modified.
func SolveRational(a, b [][]*big.Rat, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	o.Mode = Exact
	if err = validateRatShape(a, b); err != nil {
		return nil, err
	}

	n := len(a)
	m := make([][]*big.Rat, n)
	var i, j int
	for i = 0; i < n; i++ {
		m[i] = make([]*big.Rat, n+1)
		for j = 0; j < n; j++ {
			m[i][j] = ratCopy(a[i][j])
		}
		if len(b) == 1 {
			m[i][n] = ratCopy(b[0][0])
		} else {
			m[i][n] = ratCopy(b[i][0])
		}
	}

	return run[*big.Rat](newRatField(o.PivotTolerance), m, &o)
}

func ratCopy(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(r)
}

// solveMatrix builds the augmented matrix in f's scalar type and runs it.
func solveMatrix[T any](f field[T], a, b matrix.Matrix, o *Options) (*Result, error) {
	m, err := augment(f, a, b)
	if err != nil {
		o.Logger.Warn("non-finite input", "error", err)

		return &Result{Mode: o.Mode}, err
	}

	return run(f, m, o)
}

// augment returns M = [a | b] with b broadcast when it has one row.
func augment[T any](f field[T], a, b matrix.Matrix) ([][]T, error) {
	n := a.Rows()
	m := make([][]T, n)

	var i, j, bi int
	var v float64
	var ok bool
	var err error
	for i = 0; i < n; i++ {
		row := make([]T, n+1)
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, gaussErrorf(opAugment, err)
			}
			if row[j], ok = f.fromFloat(v); !ok {
				return nil, fmt.Errorf("%s: %w: %w: a[%d][%d]", opAugment, ErrSingular, matrix.ErrNaNInf, i, j)
			}
		}
		bi = i
		if b.Rows() == 1 {
			bi = 0
		}
		if v, err = b.At(bi, 0); err != nil {
			return nil, gaussErrorf(opAugment, err)
		}
		if row[n], ok = f.fromFloat(v); !ok {
			return nil, fmt.Errorf("%s: %w: %w: b[%d]", opAugment, ErrSingular, matrix.ErrNaNInf, bi)
		}
		m[i] = row
	}

	return m, nil
}

// run is the single elimination path shared by every mode.
func run[T any](f field[T], m [][]T, o *Options) (*Result, error) {
	tr := &tracer{on: o.Trace}
	log := o.Logger.With("mode", o.Mode.String(), "n", len(m))
	log.Debug("solve started")

	res := &Result{Mode: o.Mode}
	if err := forwardEliminate(f, m, o, tr, log); err != nil {
		res.Trace = tr.lines

		return res, err
	}
	x, err := backSubstitute(f, m)
	if err != nil {
		log.Warn("back substitution failed", "error", err)
		res.Trace = tr.lines

		return res, err
	}

	sol := make([]Value, len(x))
	for i := range x {
		if sol[i], err = f.value(x[i]); err != nil {
			res.Trace = tr.lines

			return res, gaussErrorf(opBackward, fmt.Errorf("%w: x_%d: %w", ErrSingular, i+1, err))
		}
	}
	res.Trace = tr.lines
	res.Solution = sol
	log.Debug("solved")

	return res, nil
}
