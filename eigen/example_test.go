package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/eigenref/eigen"
	"github.com/katalvlaran/eigenref/matrix"
)

// ExampleDecompose diagonalizes an already-diagonal covariance matrix: the
// cold-start sweep (zero shift, Q = I) converges immediately, the
// eigenvalues are read off the diagonal, and the eigenvector basis is the
// identity.
//
// Complexity: O(p³) for the single sweep.
func ExampleDecompose() {
	cov, _ := matrix.Wrap(2, 2, []float64{
		2, 0,
		0, 3,
	})
	values := make([]float64, 2)
	vectors, _ := matrix.NewDense[float64](2, 2)

	iterations, err := eigen.Decompose(cov, values, vectors, eigen.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("sweeps: %d\n", iterations)
	fmt.Printf("eigenvalues: %.0f\n", values)
	fmt.Print(vectors)

	// Output:
	// sweeps: 1
	// eigenvalues: [2 3]
	// [1, 0]
	// [0, 1]
}
