// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"log/slog"
)

// forwardEliminate reduces the augmented matrix m (n×(n+1)) to upper-triangular
// form in place using partial pivoting.
//
// Implementation:
//   - Stage 1: trace the initial matrix.
//   - Stage 2: per column i, pick the first row r ≥ i maximizing |m[r][i]|,
//     swap it into place and reject a negligible pivot with ErrSingular.
//   - Stage 3: for every j > i subtract f·row i from row j, f = m[j][i]/m[i][i],
//     and store an exact zero at m[j][i].
//
// Complexity: O(n³) field operations, O(n) extra space per column for the
// pivot candidates handed to OnPivot.
func forwardEliminate[T any](f field[T], m [][]T, o *Options, tr *tracer, log *slog.Logger) error {
	n := len(m)
	emit(tr, f, traceInitial, m)

	var i, j, k, r int
	for i = 0; i < n; i++ {
		// partial pivoting, first maximum wins
		r = i
		candidates := make([]float64, 0, n-i)
		for k = i; k < n; k++ {
			candidates = append(candidates, f.absFloat(m[k][i]))
			if f.cmpAbs(m[k][i], m[r][i]) > 0 {
				r = k
			}
		}
		o.OnPivot(i, candidates, r)

		if r != i {
			m[i], m[r] = m[r], m[i]
			log.Debug("swapped rows", "column", i+1, "row", i+1, "with", r+1)
			emitf(tr, f, m, traceSwap, i+1, r+1)
		}

		if f.negligible(m[i][i]) {
			emitf(tr, f, m, traceSingular, i+1)
			log.Warn("no usable pivot", "column", i+1)

			return gaussErrorf(opForward, fmt.Errorf("%w: zero pivot in column %d", ErrSingular, i+1))
		}

		for j = i + 1; j < n; j++ {
			factor := f.quo(m[j][i], m[i][i])
			if !f.finite(factor) {
				log.Warn("non-finite factor", "row", j+1, "column", i+1)

				return gaussErrorf(opForward, fmt.Errorf("%w: non-finite factor for row %d", ErrSingular, j+1))
			}
			for k = i + 1; k <= n; k++ {
				m[j][k] = f.sub(m[j][k], f.mul(factor, m[i][k]))
			}
			m[j][i] = f.zero()
			o.OnRowOp(j, i, f.toFloat(factor))
			emitf(tr, f, m, traceRowOp, j+1, f.format(factor), i+1)
		}
	}

	return nil
}
