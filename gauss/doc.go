// Package gauss solves dense square linear systems a·x = b by Gaussian
// elimination with partial pivoting, returning a human-readable elimination
// trace and the solution in decimal and fraction form.
//
// What
//
//   - Validator: IsSquare, IsCompatible; shape problems fail fast with ErrShape.
//   - Forward elimination on the augmented matrix [a | b] with row swaps chosen
//     by the largest |pivot| (first maximum wins), tracing every swap and
//     every row update.
//   - Back substitution on the triangular result.
//   - Two arithmetic modes chosen once per call:
//   - Float: float64 elimination, fractions recovered afterwards with
//     rational.LimitDenominator.
//   - Exact: *big.Rat elimination, exact fractions.
//   - Hooks for instrumentation:
//   - OnPivot (candidate |values| and chosen row per column)
//   - OnRowOp (target row, pivot row, factor)
//
// Trace format
//
//	Each step is a heading line, one line per matrix row (cells separated by
//	tabs) and a blank line. Headings, with 1-based row numbers:
//
//	  Augmented Matrix (Initial):
//	  Swapped rows 1 and 3:
//	  Row 2 updated by subtracting 1/2 * Row 1:
//	  No usable pivot in column 2: the system has no unique solution.
//
// Pivot test
//
//	By default a pivot is unusable only when it is exactly zero, in both
//	modes. In Float mode this can miss nearly singular systems; use
//	WithPivotTolerance to reject pivots with |p| <= eps instead.
//
// Errors
//
//   - ErrShape: non-square a, incompatible b, nil or empty input. No trace.
//   - ErrSingular: no usable pivot, or a non-finite value. The Result still
//     carries the trace up to the failure.
//   - ErrOptionViolation: invalid functional option.
//
// Concurrency
//
//	Stateless and reentrant: every call owns its augmented copy. Calls for
//	interactively sized systems (n up to about 50) finish well under a
//	second; Exact mode is slower as rationals grow.
//
// Usage
//
//	res, err := gauss.SolveRows(
//	    [][]float64{{2, 1}, {1, 3}},
//	    [][]float64{{3}, {5}},
//	)
//	if errors.Is(err, gauss.ErrSingular) {
//	    // res.Lines() still shows the partial trace
//	}
//	for _, line := range res.Lines() {
//	    fmt.Println(line)
//	}
package gauss
