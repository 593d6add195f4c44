// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gauss/matrix"
)

// IsSquare reports whether a is a non-nil, non-empty n×n matrix.
func IsSquare(a matrix.Matrix) bool {
	return matrix.ValidateSquare(a) == nil
}

// IsCompatible reports whether b can serve as the constant vector of a:
// b has exactly one column and either one row (broadcast) or a.Rows() rows.
func IsCompatible(a, b matrix.Matrix) bool {
	return compatible(a, b) == nil
}

func compatible(a, b matrix.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}
	if b.Cols() != 1 || (b.Rows() != 1 && b.Rows() != a.Rows()) {
		return fmt.Errorf("b is %dx%d, want %dx1 or 1x1: %w",
			b.Rows(), b.Cols(), a.Rows(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// validateShape runs the full pre-numeric check: A square, b compatible.
func validateShape(a, b matrix.Matrix) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return shapeErrorf(err)
	}
	if err := compatible(a, b); err != nil {
		return shapeErrorf(err)
	}

	return nil
}

// validateRatShape is validateShape for raw rational grids.
func validateRatShape(a, b [][]*big.Rat) error {
	n := len(a)
	if n == 0 {
		return shapeErrorf(matrix.ErrInvalidDimensions)
	}
	for i, row := range a {
		if len(row) != n {
			return shapeErrorf(fmt.Errorf("row %d has %d cells, want %d: %w",
				i, len(row), n, matrix.ErrNonSquare))
		}
	}
	if len(b) != 1 && len(b) != n {
		return shapeErrorf(fmt.Errorf("b has %d rows, want %d or 1: %w",
			len(b), n, matrix.ErrDimensionMismatch))
	}
	for i, row := range b {
		if len(row) != 1 {
			return shapeErrorf(fmt.Errorf("b row %d has %d cells, want 1: %w",
				i, len(row), matrix.ErrDimensionMismatch))
		}
	}

	return nil
}
