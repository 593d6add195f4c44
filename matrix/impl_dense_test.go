// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			rows, cols := m.Shape()
			require.Equal(t, tc.rows, rows)
			require.Equal(t, tc.cols, cols)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j), "element [%d,%d] of a new Dense must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
}

func TestDense_Set_NumericPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, relaxed, 0, 0), 1))

	// last writer wins
	again, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, again.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{2, 1}, {1, 3}}
	m := MustRows(t, src)
	CompareExact(t, src, m)

	// the caller's grid is copied, not aliased
	src[0][0] = 99
	require.Equal(t, 2.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		opts    []matrix.Option
		wantErr error
	}{
		{"nil grid", nil, nil, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, nil, matrix.ErrDimensionMismatch},
		{"nan", [][]float64{{1, math.NaN()}}, nil, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(1)}}, nil, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDenseFromRows(tc.rows, tc.opts...)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	m, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, m, 0, 0)))
}

func TestNewColumnVector(t *testing.T) {
	t.Parallel()

	b, err := matrix.NewColumnVector([]float64{3, 5})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3}, {5}}, b)

	_, err = matrix.NewColumnVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, c, 0, 0))

	rows := m.ToRows()
	rows[1][1] = -1
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{0.5, -2}, {1e-3, 7}})
	require.Equal(t, "[0.5, -2]\n[0.001, 7]\n", m.String())
}
