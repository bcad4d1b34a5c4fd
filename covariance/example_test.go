package covariance_test

import (
	"fmt"

	"github.com/katalvlaran/eigenref/covariance"
	"github.com/katalvlaran/eigenref/matrix"
)

// ExampleCompute reduces a tiny 3×2 sample matrix to its unnormalized 2×2
// covariance. Note the absence of the conventional n−1 divisor: entry (0,0)
// is the raw sum of squares of column 0.
func ExampleCompute() {
	sample, _ := matrix.Wrap(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	cov, _ := matrix.NewDense[float64](2, 2)

	if err := covariance.Compute(sample, cov); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(cov)

	// Output:
	// [35, 44]
	// [44, 56]
}
