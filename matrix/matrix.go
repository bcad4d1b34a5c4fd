// Package matrix provides stride-aware dense views over flat numeric buffers.
//
// What & Why:
//
//	Batch numeric pipelines traditionally address their storage with raw
//	offset arithmetic (offset + row*cols + col) repeated at every call site.
//	This package centralizes that arithmetic behind two small types — Dense
//	(one row-major matrix) and Batch (a sequence of equally sized matrices
//	over one flat buffer) — so indexing invariants are enforced by the type
//	system rather than by convention.
//
//	The element type is generic over Float (~float32 | ~float64): reference
//	kernels store results in the element type under validation while doing
//	their internal arithmetic in float64. Accessors are bounds-checked and
//	return sentinel errors; hot loops that have already validated shapes may
//	use Row/Data to reach the backing storage directly.
//
// Complexity:
//
//	Rows(), Cols(), Count() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

import (
	"fmt"
	"strings"
)

// Float is the set of element types a Dense or Batch may store.
// Internal arithmetic of the kernels operating on these views is always
// performed in float64, regardless of the stored width.
type Float interface {
	~float32 | ~float64
}

// Dense is a row-major rows×cols matrix of Float values backed by a flat
// slice, for performance and cache friendliness. A Dense may own its storage
// (NewDense) or alias a caller-owned buffer (Wrap), e.g. one slot of a Batch.
type Dense[T Float] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T Float](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]T, rows*cols)

	// Return initialized Dense
	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Wrap builds an r×c Dense view over a caller-owned buffer WITHOUT copying.
// Mutations through the view are visible in data and vice versa.
// Returns ErrBadShape for non-positive dimensions and ErrBufferSize when
// len(data) != rows*cols.
// Complexity: O(1).
func Wrap[T Float](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrBufferSize
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the contiguous backing slice of row i (NOT a copy).
// Returns ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// Data exposes the full row-major backing slice (NOT a copy).
// Intended for kernels that have already validated shape.
// Complexity: O(1).
func (m *Dense[T]) Data() []T {
	return m.data
}

// SetIdentity overwrites the matrix with the identity pattern
// (ones on the diagonal, zeros elsewhere). Rectangular matrices get ones on
// the main diagonal only.
// Complexity: O(r*c).
func (m *Dense[T]) SetIdentity() {
	var row, col int
	for row = 0; row < m.r; row++ {
		for col = 0; col < m.c; col++ {
			if row == col {
				m.data[row*m.c+col] = 1
			} else {
				m.data[row*m.c+col] = 0
			}
		}
	}
}

// CopyFrom copies the contents of src into m.
// Returns ErrNilMatrix on a nil source and ErrDimensionMismatch when shapes differ.
// Complexity: O(r*c).
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if src == nil {
		return ErrNilMatrix
	}
	if src.r != m.r || src.c != m.c {
		return fmt.Errorf("Dense.CopyFrom(%dx%d into %dx%d): %w",
			src.r, src.c, m.r, m.c, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// The returned matrix owns its storage and is independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Transpose returns a new matrix holding mᵀ (columns become rows).
// The result owns its storage.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var row, col int
	for row = 0; row < m.r; row++ {
		for col = 0; col < m.c; col++ {
			out.data[col*out.c+row] = m.data[row*m.c+col]
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
