// SPDX-License-Identifier: MIT

package gauss_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/rational"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so the solver only sees the interface.
type hide struct{ matrix.Matrix }

// scenario is a named system with its exact solution.
type scenario struct {
	name string
	a    [][]float64
	b    [][]float64
	want []string // exact fractions
}

var scenarios = []scenario{
	{
		name: "two by two",
		a:    [][]float64{{2, 1}, {1, 3}},
		b:    [][]float64{{3}, {5}},
		want: []string{"4/5", "7/5"},
	},
	{
		name: "four by four with two swaps",
		a:    [][]float64{{1, 1, 3, 1}, {0, 1, 3, 4}, {-1, 3, 0, 2}, {8, 1, 4, 2}},
		b:    [][]float64{{1}, {3}, {5}, {4}},
		want: []string{"71/185", "234/185", "-89/185", "147/185"},
	},
	{
		name: "zero on the diagonal",
		a:    [][]float64{{0, 5, 10}, {45, 0, 4}, {10, 4, 0}},
		b:    [][]float64{{130}, {106}, {0}},
		want: []string{"27/25", "-27/10", "287/20"},
	},
	{
		name: "three by three",
		a:    [][]float64{{10, 11, 12}, {13, 14, 15}, {16, 17, 45}},
		b:    [][]float64{{1}, {2}, {3}},
		want: []string{"8/3", "-7/3", "0"},
	},
}

// MustRows builds a *Dense from a literal grid or fails the test.
func MustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err, "NewDenseFromRows(%v)", rows)

	return m
}

// fracStrings renders fractions for comparison.
func fracStrings(rs []*big.Rat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = rational.String(r)
	}

	return out
}

// ratGrid converts "p/q" literals into a rational grid; "" becomes nil.
func ratGrid(t *testing.T, rows [][]string) [][]*big.Rat {
	t.Helper()
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			if s == "" {
				continue
			}
			r, ok := new(big.Rat).SetString(s)
			require.True(t, ok, "bad literal %q", s)
			out[i][j] = r
		}
	}

	return out
}
