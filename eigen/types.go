// SPDX-License-Identifier: MIT
// Package eigen: options, sentinel errors, and tuning constants.
// Errors live here (not per-function) so tests match them via errors.Is.
package eigen

import "errors"

// Numeric policy (single source of truth, mirrors the validated reference).
const (
	// zeroThreshold is the magnitude below which an off-diagonal entry is
	// treated as numerically zero for both deflation and convergence.
	// The constant is deliberately stored at single-precision width and
	// compared against float64 magnitudes — that mixed-precision interaction
	// is part of the reference behavior.
	zeroThreshold = float64(float32(1e-8))

	// shiftDamping scales the Wilkinson shift on every sweep after the
	// first, reducing cancellation error inside the QR factorization.
	shiftDamping = 0.99

	// capFactor sets the per-matrix sweep budget to capFactor·p².
	capFactor = 16
)

// IterationCap returns the sweep budget for a p×p matrix: p²·16.
// A solve whose returned sweep count equals this value did not satisfy the
// convergence test; its result is the best available approximation.
// Complexity: O(1).
func IterationCap(p int) int {
	return p * p * capFactor
}

var (
	// ErrNilMatrix indicates a nil covariance or eigenvector matrix.
	ErrNilMatrix = errors.New("eigen: nil matrix")

	// ErrNonSquare signals that the covariance matrix is not square.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrDimensionMismatch indicates that the eigenvalue slice or the
	// eigenvector matrix does not match the covariance dimension p.
	ErrDimensionMismatch = errors.New("eigen: dimension mismatch")
)

// Options configures a single Decompose call.
//
// Fields:
//   - Relaxed      — benchmark mode: the sweep budget still bounds the loop,
//     but saturating it is not surfaced as a warning (OnCapReached is not
//     invoked). Intended for stress-testing worst-case sweep counts.
//   - OnCapReached — invoked at most once, with the saturated sweep count,
//     when the budget is reached outside Relaxed mode. nil means no
//     notification. The callback must not mutate solver state; it exists so
//     the numeric core carries no I/O dependency.
//
// The zero value is ready to use: strict mode, no notification.
type Options struct {
	Relaxed      bool
	OnCapReached func(iterations int)
}
