// Package covariance reduces raw sample matrices to the unnormalized
// covariance matrices consumed by the eigen-solver.
//
// 🚀 What does it compute?
//
//	For an n×p sample matrix A (n observations of p features), the output is
//	the p×p matrix of column dot products:
//
//	  Cov(row, col) = Σ_k A[k][row] · A[k][col]
//
//	Despite the name, NO division by n−1 is applied. Accelerated
//	implementations validated against this reference exchange raw AᵀA
//	values, so the conventional degrees-of-freedom factor is intentionally
//	absent. Do not "fix" this.
//
// ✨ Numeric profile:
//   - Products are formed in the stored element type T, then accumulated
//     in float64 — the exact promotion order of the reference kernels.
//   - Results are stored back in T.
//   - Deterministic row→col→k traversal; no parallelism inside one matrix.
//
// Performance:
//
//   - Time:   O(p² · n) per matrix
//   - Memory: O(1) beyond the caller-provided destination
//
// See example_test.go for usage and pca for the batch orchestration.
package covariance
