package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/eigenref/matrix"
)

// ExampleWrapBatch demonstrates viewing one flat buffer as a batch of
// matrices and addressing a single slot without manual offset arithmetic.
//
// Scenario:
//
//	Two 2×2 matrices stored back to back in one []float64, the layout
//	accelerated pipelines exchange with the reference implementation.
//
// Complexity: O(1) per view, no copying.
func ExampleWrapBatch() {
	flat := []float64{
		1, 2, // slot 0, row 0
		3, 4, // slot 0, row 1
		5, 6, // slot 1, row 0
		7, 8, // slot 1, row 1
	}

	batch, err := matrix.WrapBatch(2, 2, 2, flat)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m, err := batch.Matrix(1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, _ := m.At(1, 0)
	fmt.Println("slot 1, entry (1,0):", v)
	fmt.Print(m)

	// Output:
	// slot 1, entry (1,0): 7
	// [5, 6]
	// [7, 8]
}
