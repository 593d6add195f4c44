// SPDX-License-Identifier: MIT

package gauss_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gauss/gauss"
)

// ExampleSolveRows prints the solution section of a small system.
func ExampleSolveRows() {
	res, err := gauss.SolveRows(
		[][]float64{{2, 1}, {1, 3}},
		[][]float64{{3}, {5}},
		gauss.WithTrace(false),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, line := range res.Lines()[1:] {
		fmt.Println(line)
	}
	// Output:
	// Decimal Form
	// x_1: 0.8
	// x_2: 1.4
	//
	// Fraction Form
	// x_1: 4/5
	// x_2: 7/5
}

// ExampleSolve_singular shows the partial trace kept for diagnostics.
func ExampleSolve_singular() {
	res, err := gauss.SolveRows(
		[][]float64{{1, 2}, {2, 4}},
		[][]float64{{3}, {6}},
		gauss.WithExact(),
	)
	fmt.Println(errors.Is(err, gauss.ErrSingular))
	fmt.Println(res.Trace[len(res.Trace)-4])
	// Output:
	// true
	// No usable pivot in column 2: the system has no unique solution.
}

// ExampleWithOnPivot observes the row picked for every column.
func ExampleWithOnPivot() {
	_, _ = gauss.SolveRows(
		[][]float64{{0, 5, 10}, {45, 0, 4}, {10, 4, 0}},
		[][]float64{{130}, {106}, {0}},
		gauss.WithTrace(false),
		gauss.WithOnPivot(func(col int, candidates []float64, chosen int) {
			fmt.Printf("column %d: %v -> row %d\n", col+1, candidates, chosen+1)
		}),
	)
	// Output:
	// column 1: [0 45 10] -> row 2
	// column 2: [5 4] -> row 2
	// column 3: [8.88888888888889] -> row 3
}
