// SPDX-License-Identifier: MIT
// Package pca: options and sentinel errors.
package pca

import "errors"

var (
	// ErrBadDimensions is returned when samples, features, or matrixCount is
	// non-positive, or when input rows do not form an n×p rectangle.
	ErrBadDimensions = errors.New("pca: invalid batch dimensions")

	// ErrOutOfRange indicates a slot index outside [0, matrixCount).
	ErrOutOfRange = errors.New("pca: matrix index out of range")

	// ErrNilObserver is returned by SetObserver(nil); use Nop to silence.
	ErrNilObserver = errors.New("pca: nil observer")
)

// Options configures a batch run. All flags are constant for the whole run
// and never vary per slot.
//
// Fields:
//   - Debug   — enable verbose observer narration (intermediate covariance
//     matrices, per-slot eigenvalues and sweep counts). Purely
//     observational: never affects numeric results.
//   - Relaxed — benchmark mode: the sweep budget still bounds every solve,
//     but saturating it is not surfaced as a warning. Intended for
//     stress-testing worst-case sweep counts.
//   - Workers — bounded worker pool size for each phase; 0 (or negative)
//     selects runtime.GOMAXPROCS(0). Results are identical for any value.
//
// Example:
//
//	opts := pca.DefaultOptions()
//	opts.Debug = true
//	batch, err := pca.New(n, p, count, rows, opts)
type Options struct {
	Debug   bool
	Relaxed bool
	Workers int
}

// DefaultOptions returns the canonical configuration: strict mode, no
// narration, GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Debug: false, Relaxed: false, Workers: 0}
}
