// SPDX-License-Identifier: MIT

package gauss

import "fmt"

// backSubstitute solves the upper-triangular augmented matrix m from the last
// row upward. Pivots are known to be usable, so no pivoting happens here.
// A non-finite unknown is reported as ErrSingular.
func backSubstitute[T any](f field[T], m [][]T) ([]T, error) {
	n := len(m)
	x := make([]T, n)

	var i, j int
	for i = n - 1; i >= 0; i-- {
		acc := m[i][n]
		for j = i + 1; j < n; j++ {
			acc = f.sub(acc, f.mul(m[i][j], x[j]))
		}
		x[i] = f.quo(acc, m[i][i])
		if !f.finite(x[i]) {
			return nil, gaussErrorf(opBackward, fmt.Errorf("%w: x_%d is not finite", ErrSingular, i+1))
		}
	}

	return x, nil
}
