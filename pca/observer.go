// SPDX-License-Identifier: MIT
// Package pca: observer surface for diagnostic narration.
//
// The reference implementation interleaved console prints with the numeric
// loops. Here that narration is factored into an interface invoked at
// well-defined points, so the core carries no I/O dependency and observers
// can never perturb results.
package pca

import (
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/eigenref/matrix"
)

// Observer receives diagnostic callbacks during a batch run.
//
// Callbacks may fire concurrently from worker goroutines (one slot each);
// implementations must be safe for concurrent use. The matrices passed in
// are live views over the batch buffers — observers must treat them as
// read-only.
type Observer[T matrix.Float] interface {
	// OnCovariance fires after slot matrixIndex's covariance is computed.
	OnCovariance(matrixIndex int, cov *matrix.Dense[T])

	// OnDecomposition fires after slot matrixIndex's eigen-solve finishes,
	// whether it converged or saturated its sweep budget.
	OnDecomposition(matrixIndex int, values []T, vectors *matrix.Dense[T], iterations int)

	// OnIterationCap fires when slot matrixIndex saturates the sweep budget
	// outside relaxed mode. Non-fatal: the run continues with other slots.
	OnIterationCap(matrixIndex int, iterations int)
}

// Nop is an Observer that ignores every callback. Useful for silent runs
// and as an embedding base for partial observers.
type Nop[T matrix.Float] struct{}

// OnCovariance implements Observer. It does nothing.
func (Nop[T]) OnCovariance(int, *matrix.Dense[T]) {}

// OnDecomposition implements Observer. It does nothing.
func (Nop[T]) OnDecomposition(int, []T, *matrix.Dense[T], int) {}

// OnIterationCap implements Observer. It does nothing.
func (Nop[T]) OnIterationCap(int, int) {}

// LogObserver writes human-readable narration to an io.Writer. Verbose
// narration (matrices, eigenvalues, sweep counts) is gated by the verbose
// flag; budget-saturation warnings are always written. A mutex keeps
// interleaved worker output line-atomic.
type LogObserver[T matrix.Float] struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// NewLogObserver builds a LogObserver targeting w. verbose enables the full
// narration; with verbose=false only cap warnings are written.
func NewLogObserver[T matrix.Float](w io.Writer, verbose bool) *LogObserver[T] {
	return &LogObserver[T]{w: w, verbose: verbose}
}

// OnCovariance prints the covariance matrix of one slot when verbose.
func (o *LogObserver[T]) OnCovariance(matrixIndex int, cov *matrix.Dense[T]) {
	if !o.verbose {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "covariance matrix #%d\n%v", matrixIndex, cov)
}

// OnDecomposition prints eigenvalues, eigenvectors, and the sweep count of
// one slot when verbose.
func (o *LogObserver[T]) OnDecomposition(matrixIndex int, values []T, vectors *matrix.Dense[T], iterations int) {
	if !o.verbose {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "matrix #%d: QR iteration stopped after %d sweeps\n", matrixIndex, iterations)
	fmt.Fprintf(o.w, "eigenvalues #%d: %v\n", matrixIndex, values)
	fmt.Fprintf(o.w, "eigenvectors #%d\n%v", matrixIndex, vectors)
}

// OnIterationCap warns that a slot exhausted its sweep budget. Written
// regardless of the verbose flag — suppression belongs to relaxed mode,
// which prevents the callback from firing at all.
func (o *LogObserver[T]) OnIterationCap(matrixIndex int, iterations int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "matrix #%d: number of iterations too high (%d)\n", matrixIndex, iterations)
}
