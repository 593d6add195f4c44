// SPDX-License-Identifier: MIT

package cell_test

import (
	"fmt"

	"github.com/katalvlaran/gauss/cell"
)

func ExampleParse() {
	for _, s := range []string{"0.1", "-6/8", "", "1/0"} {
		r, err := cell.Parse(s)
		if err != nil {
			fmt.Println(err)

			continue
		}
		fmt.Println(r.RatString())
	}
	// Output:
	// 1/10
	// -3/4
	// 0
	// cell: "1/0": zero denominator
}
