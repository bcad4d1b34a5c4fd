// Package eigenref is a pure-Go "golden" reference for batch PCA kernels:
// covariance-matrix formation and a shifted-QR eigen-solver with fully
// deterministic convergence behavior.
//
// 🚀 What is eigenref?
//
//	A reference implementation that accelerated / hardware-optimized PCA
//	pipelines are validated against. It favors numerical fidelity and
//	reproducibility over raw speed:
//		• Covariance: unnormalized AᵀA column dot products (no n−1 divisor)
//		• Eigen-solver: QR iteration with Wilkinson shift + 0.99 damping
//		• Classical Gram–Schmidt QR (not modified — same numeric profile
//		  as the reference kernels being validated)
//		• Hard per-matrix iteration budget of p²·16 sweeps
//
// ✨ Why choose eigenref?
//
//   - Deterministic – identical results for any worker count or batch order
//   - Inspectable – per-matrix iteration counts expose convergence quality
//   - Pure Go – no cgo, no BLAS/LAPACK binding to mask the reference math
//   - Observable – hook OnCovariance/OnDecomposition callbacks, no inline I/O
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/     — stride-aware dense views over flat buffers (generic float)
//	covariance/ — unnormalized covariance of an n×p sample matrix
//	eigen/      — the shifted-QR eigen-solver state machine
//	pca/        — batch orchestrator: buffers, worker pool, observers
//	config/     — YAML run configuration for the eigenref CLI
//
// Quick sketch of the data flow:
//
//	samples (n×p, ×count) ──covariance──▶ p×p ──eigen──▶ λ[p] + V (p×p)
//
// Dive into README.md and the package example tests for full usage.
//
//	go get github.com/katalvlaran/eigenref
package eigenref
