// SPDX-License-Identifier: MIT
// Package covariance: unnormalized AᵀA column dot products.
//
// Determinism & Performance:
//   - Fixed row→col→k traversal for all loops.
//   - Dense fast-path operates on the row-major flat buffers directly,
//     avoiding At/Set in the O(p²·n) kernel.
package covariance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eigenref/matrix"
)

// ErrNilMatrix indicates a nil sample or destination matrix.
var ErrNilMatrix = errors.New("covariance: nil matrix")

// ErrShapeMismatch indicates that the destination is not p×p for a sample
// matrix with p columns, or that batch shapes disagree.
var ErrShapeMismatch = errors.New("covariance: destination shape mismatch")

// Compute fills dst with the unnormalized covariance of sample.
//
// Contract: for an n×p sample, dst must be p×p and receives
// dst(row, col) = Σ_k sample(k, row)·sample(k, col). There is no n−1
// normalization — accelerated comparison targets depend on the raw values.
//
// Stage 1 (Validate): nil checks and dst shape check.
// Stage 2 (Execute): column dot products, T products with float64 accumulation.
// Complexity: O(p²·n) time, O(1) extra memory.
func Compute[T matrix.Float](sample, dst *matrix.Dense[T]) error {
	// Stage 1: Validate
	if sample == nil || dst == nil {
		return ErrNilMatrix
	}
	var (
		n = sample.Rows() // observations
		p = sample.Cols() // features
	)
	if dst.Rows() != p || dst.Cols() != p {
		return fmt.Errorf("Compute: dst %dx%d for %d features: %w",
			dst.Rows(), dst.Cols(), p, ErrShapeMismatch)
	}

	// Stage 2: Execute on flat row-major buffers
	var (
		src = sample.Data()
		out = dst.Data()

		row, col, k int
		dot         float64
	)
	for row = 0; row < p; row++ {
		for col = 0; col < p; col++ {
			dot = 0
			for k = 0; k < n; k++ {
				// product in T, accumulation in float64
				dot += float64(src[k*p+row] * src[k*p+col])
			}
			out[row*p+col] = T(dot)
		}
	}

	return nil
}

// ComputeBatch runs Compute for every slot of samples into the matching slot
// of dst, in increasing slot order. Slots never interact.
//
// Returns ErrShapeMismatch when dst is not a Count×p×p batch for a
// Count×n×p sample batch.
// Complexity: O(count·p²·n).
func ComputeBatch[T matrix.Float](samples, dst *matrix.Batch[T]) error {
	if samples == nil || dst == nil {
		return ErrNilMatrix
	}
	var (
		count = samples.Count()
		p     = samples.Cols()
	)
	if dst.Count() != count || dst.Rows() != p || dst.Cols() != p {
		return fmt.Errorf("ComputeBatch: dst %dx%dx%d for %d matrices of %d features: %w",
			dst.Count(), dst.Rows(), dst.Cols(), count, p, ErrShapeMismatch)
	}

	var i int
	for i = 0; i < count; i++ {
		s, err := samples.Matrix(i)
		if err != nil {
			return fmt.Errorf("ComputeBatch: %w", err)
		}
		d, err := dst.Matrix(i)
		if err != nil {
			return fmt.Errorf("ComputeBatch: %w", err)
		}
		if err = Compute(s, d); err != nil {
			return err
		}
	}

	return nil
}
