// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gauss/rational"
)

// Mode selects the scalar type used for one whole solve.
// It is chosen once per call, never per cell, so arithmetic is consistent
// across the entire elimination.
type Mode int

const (
	// Float runs elimination in float64; fractions are recovered afterwards
	// with a bounded-denominator approximation of each decimal result.
	Float Mode = iota

	// Exact runs elimination in exact rationals (*big.Rat); fractions are the
	// exact solution and decimals are their nearest float64.
	Exact
)

// String returns "float" or "exact".
func (m Mode) String() string {
	switch m {
	case Float:
		return "float"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Defaults.
const (
	// DefaultTrace keeps the step-by-step trace on.
	DefaultTrace = true

	// DefaultPivotTolerance of zero means a pivot is unusable only when it is
	// exactly zero.
	DefaultPivotTolerance = 0.0
)

// Option configures a solve via functional arguments.
// If an Option is invalid (e.g. negative tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when a solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a solve.
type Options struct {
	// Mode selects float64 or exact rational arithmetic.
	Mode Mode

	// Trace enables the human-readable elimination trace.
	Trace bool

	// PivotTolerance: a pivot p is unusable when |p| <= PivotTolerance.
	// Zero (default) means exact equality with zero.
	PivotTolerance float64

	// MaxDenominator bounds fractions recovered from float results.
	// Ignored in Exact mode, where fractions are exact.
	MaxDenominator int64

	// Logger receives Debug/Warn records about the solve. Never nil after
	// DefaultOptions; the default discards everything.
	Logger *slog.Logger

	// OnPivot is called at every pivot selection with the absolute values
	// |M[r][col]| for r = col..n-1 (as float64) and the chosen row index.
	// Indices are 0-based.
	OnPivot func(col int, candidates []float64, chosen int)

	// OnRowOp is called after row `target` had factor·row `pivot` subtracted.
	// Indices are 0-based.
	OnRowOp func(target, pivot int, factor float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Float mode, trace on, exact-zero pivot test,
//   - rational.DefaultMaxDenominator,
//   - a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Mode:           Float,
		Trace:          DefaultTrace,
		PivotTolerance: DefaultPivotTolerance,
		MaxDenominator: rational.DefaultMaxDenominator,
		Logger:         slog.New(slog.DiscardHandler),
		OnPivot:        func(int, []float64, int) {},
		OnRowOp:        func(int, int, float64) {},
	}
}

// WithMode selects the arithmetic mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Float && m != Exact {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))

			return
		}
		o.Mode = m
	}
}

// WithExact is shorthand for WithMode(Exact).
func WithExact() Option { return WithMode(Exact) }

// WithTrace turns the elimination trace on or off.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithPivotTolerance treats pivots with |p| <= eps as zero.
// eps must be finite and non-negative.
func WithPivotTolerance(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: pivot tolerance %v", ErrOptionViolation, eps)

			return
		}
		o.PivotTolerance = eps
	}
}

// WithMaxDenominator bounds the denominators of fractions recovered in Float mode.
func WithMaxDenominator(n int64) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max denominator %d", ErrOptionViolation, n)

			return
		}
		o.MaxDenominator = n
	}
}

// WithLogger routes solver logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)

			return
		}
		o.Logger = l
	}
}

// WithOnPivot registers a callback to run at every pivot selection.
func WithOnPivot(fn func(col int, candidates []float64, chosen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// WithOnRowOp registers a callback to run after every row operation.
func WithOnRowOp(fn func(target, pivot int, factor float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRowOp = fn
		}
	}
}

// gatherOptions applies user setters over DefaultOptions.
// The first recorded violation is reported.
func gatherOptions(user ...Option) (Options, error) {
	o := DefaultOptions()
	var first error
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
		if o.err != nil && first == nil {
			first = o.err
		}
	}
	if first != nil {
		return o, gaussErrorf(opOptions, first)
	}

	return o, nil
}
