// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation.
//
// Purpose:
//   - Host the small set of kernels the solver's callers need to check results
//     (residuals A·x - b).
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use the central validators and wrap errors via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and substitution loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const opResidual = "Residual"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Residual returns r_i = Σ_j a[i][j]·x[j] - b_i, the amount by which x misses
// each equation of a·x = b.
//
// b is a column: n×1, or 1×1 broadcast to every row the way the solver
// accepts it.
//
// Implementation:
//   - Stage 1: validate a, b and len(x) == a.Cols().
//   - Stage 2: one pass per row; *Dense rows are read through flat indexing,
//     any other Matrix through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opResidual).
//
// Complexity:
//   - Time O(n*m), Space O(n).
//
// AI-Hints:
//   - A solved system satisfies max|r_i| ≈ 0 up to rounding; compare against a
//     relative tolerance scaled by max|b_i|.
func Residual(a Matrix, x []float64, b Matrix) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if b.Cols() != 1 || (b.Rows() != 1 && b.Rows() != rows) {
		return nil, matrixErrorf(opResidual, ErrDimensionMismatch)
	}

	d, dense := a.(*Dense)
	r := make([]float64, rows)
	var i, j, bi int
	var av, bv, acc float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if dense {
				av = d.data[i*d.c+j]
			} else if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opResidual, err)
			}
			acc += av * x[j]
		}
		bi = i
		if b.Rows() == 1 {
			bi = 0
		}
		if bv, err = b.At(bi, 0); err != nil {
			return nil, matrixErrorf(opResidual, err)
		}
		r[i] = acc - bv
	}

	return r, nil
}
