package rational_test

import (
	"fmt"

	"github.com/katalvlaran/gauss/rational"
)

// ExampleApproximate recovers the intended fraction behind a rounded float.
func ExampleApproximate() {
	x := 1.4 // stored as 1.399999999999999911182158029987...

	r, err := rational.Approximate(x, rational.DefaultMaxDenominator)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(rational.String(r))
	// Output:
	// 7/5
}
