// Package matrix offers the dense float64 matrix type that feeds the gauss solver.
//
// The matrix package provides:
//
//   - Matrix, a minimal row/column/At/Set/Clone interface the solver reads from.
//   - Dense, a row-major implementation with bounds-checked accessors and an
//     optional finite-only numeric policy (NaN/±Inf rejected by default).
//   - NewDenseFromRows / NewColumnVector for building matrices from plain
//     caller grids without aliasing them.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateVecLen) shared by
//     every consumer so guard logic stays consistent.
//   - Residual for checking a computed solution against A·x = b.
//
// Matrices here are meant for small, interactively-sized systems; all loops
// are O(r*c) with fixed row-major visiting order.
//
// See the examples in this package and in gauss for usage patterns.
package matrix
