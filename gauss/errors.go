// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
)

// Sentinel errors for Solve / SolveRows / SolveRational.
//
// Every failure returned by this package matches exactly one of these via
// errors.Is. Shape errors additionally match the underlying matrix sentinel
// (matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrNilMatrix,
// matrix.ErrInvalidDimensions) so callers can tell the causes apart.
var (
	// ErrShape is returned when the coefficient matrix is not square or the
	// constant vector is not compatible with it. No work is done and no
	// Result is returned.
	ErrShape = errors.New("gauss: shape error")

	// ErrSingular is returned when no usable pivot exists for some column
	// after partial pivoting, or when a non-finite value appears. The
	// accompanying Result carries the trace produced up to that point.
	ErrSingular = errors.New("gauss: singular matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gauss: invalid option supplied")
)

// Operation tags used in error wrapping.
const (
	opValidate = "Validate"
	opAugment  = "Augment"
	opForward  = "ForwardEliminate"
	opBackward = "BackSubstitute"
	opOptions  = "Options"
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf tags cause as a shape error while keeping cause matchable.
func shapeErrorf(cause error) error {
	return fmt.Errorf("%s: %w: %w", opValidate, ErrShape, cause)
}
