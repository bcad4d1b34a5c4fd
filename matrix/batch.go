// SPDX-License-Identifier: MIT

// Package matrix: Batch — a fixed sequence of equally sized matrices stored
// back to back in one flat buffer. Batch is the typed replacement for the
// `slot*rows*cols + row*cols + col` offset arithmetic that batch pipelines
// otherwise scatter across call sites.
package matrix

import "fmt"

// Batch holds `count` row-major rows×cols matrices in one contiguous buffer.
// Slot m occupies data[m*rows*cols : (m+1)*rows*cols]. All slots are
// allocated once at construction and populated in place; the Batch never
// reallocates or resizes mid-run.
type Batch[T Float] struct {
	count int // number of matrices
	r, c  int // per-matrix dimensions
	data  []T // flat backing storage, length == count*r*c
}

// NewBatch allocates a zeroed Batch of count rows×cols matrices.
// Returns ErrBadShape when count, rows, or cols is non-positive.
// Complexity: O(count*rows*cols) time and memory.
func NewBatch[T Float](count, rows, cols int) (*Batch[T], error) {
	if count <= 0 || rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]T, count*rows*cols)

	return &Batch[T]{count: count, r: rows, c: cols, data: data}, nil
}

// WrapBatch builds a Batch view over a caller-owned buffer WITHOUT copying.
// Returns ErrBadShape for non-positive dimensions and ErrBufferSize when
// len(data) != count*rows*cols.
// Complexity: O(1).
func WrapBatch[T Float](count, rows, cols int, data []T) (*Batch[T], error) {
	if count <= 0 || rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != count*rows*cols {
		return nil, ErrBufferSize
	}

	return &Batch[T]{count: count, r: rows, c: cols, data: data}, nil
}

// Count returns the number of matrices in the batch.
// Complexity: O(1).
func (b *Batch[T]) Count() int {
	return b.count
}

// Rows returns the per-matrix row count.
// Complexity: O(1).
func (b *Batch[T]) Rows() int {
	return b.r
}

// Cols returns the per-matrix column count.
// Complexity: O(1).
func (b *Batch[T]) Cols() int {
	return b.c
}

// Matrix returns a Dense view over slot i, sharing the batch storage.
// Mutations through the view are visible in the batch buffer.
// Returns ErrOutOfRange on an invalid slot index.
// Complexity: O(1).
func (b *Batch[T]) Matrix(i int) (*Dense[T], error) {
	if i < 0 || i >= b.count {
		return nil, fmt.Errorf("Batch.Matrix(%d) of %d: %w", i, b.count, ErrOutOfRange)
	}
	size := b.r * b.c

	return &Dense[T]{r: b.r, c: b.c, data: b.data[i*size : (i+1)*size]}, nil
}

// Data exposes the full flat backing slice (NOT a copy), laid out as
// slot-major row-major: index = slot*rows*cols + row*cols + col.
// Complexity: O(1).
func (b *Batch[T]) Data() []T {
	return b.data
}
