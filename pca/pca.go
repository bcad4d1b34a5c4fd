// SPDX-License-Identifier: MIT
// Package pca: the batch orchestrator.
//
// Determinism & Performance:
//   - All buffers are sized once at construction; phases populate them in
//     place and never reallocate.
//   - Each slot's work touches only that slot's input and output slices, so
//     the bounded worker pool needs no locking for the numeric core.
//   - Slot indices are distributed over workers via a channel; completion
//     order varies, results never do.
package pca

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/katalvlaran/eigenref/covariance"
	"github.com/katalvlaran/eigenref/eigen"
	"github.com/katalvlaran/eigenref/matrix"
)

// PCA owns the storage and configuration of one batch run over matrixCount
// independent samples×features datasets. Construct with New, load distinct
// per-slot data with SetDataset if needed, then call Run (or drive the
// phases and slots individually).
type PCA[T matrix.Float] struct {
	samples     int // observations per dataset (n)
	features    int // features per observation (p)
	matrixCount int // independent datasets in the batch

	opts Options
	obs  Observer[T]

	a           *matrix.Batch[T] // input samples, read-only to the phases
	cov         *matrix.Batch[T] // covariance matrices
	eigenvalues []T              // slot-major eigenvalue buffer, m·p + k
	vectors     *matrix.Batch[T] // eigenvector matrices, eigenvalue k ↔ column k
	iterations  []int            // sweep count per slot
}

// New builds a PCA batch from one samples×features dataset, replicated into
// every batch slot (the layout accelerated comparison harnesses feed the
// reference with). Use SetDataset to overwrite individual slots afterwards.
//
// Stage 1 (Validate): positive dimensions, rectangular rows.
// Stage 2 (Prepare): allocate all batch buffers.
// Stage 3 (Finalize): replicate the dataset and install the observer
// implied by opts.Debug.
//
// Complexity: O(matrixCount·n·p) time and memory.
func New[T matrix.Float](samples, features, matrixCount int, rows [][]T, opts Options) (*PCA[T], error) {
	// Stage 1: Validate
	if samples <= 0 || features <= 0 || matrixCount <= 0 {
		return nil, fmt.Errorf("New(%d,%d,%d): %w", samples, features, matrixCount, ErrBadDimensions)
	}
	if len(rows) != samples {
		return nil, fmt.Errorf("New: %d rows for n=%d: %w", len(rows), samples, ErrBadDimensions)
	}
	for i, row := range rows {
		if len(row) != features {
			return nil, fmt.Errorf("New: row %d has %d values for p=%d: %w",
				i, len(row), features, ErrBadDimensions)
		}
	}

	// Stage 2: Prepare buffers
	a, err := matrix.NewBatch[T](matrixCount, samples, features)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	cov, err := matrix.NewBatch[T](matrixCount, features, features)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	vectors, err := matrix.NewBatch[T](matrixCount, features, features)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	p := &PCA[T]{
		samples:     samples,
		features:    features,
		matrixCount: matrixCount,
		opts:        opts,
		a:           a,
		cov:         cov,
		eigenvalues: make([]T, features*matrixCount),
		vectors:     vectors,
		iterations:  make([]int, matrixCount),
	}

	// Stage 3: Replicate the dataset into every slot
	var m int
	for m = 0; m < matrixCount; m++ {
		if err = p.SetDataset(m, rows); err != nil {
			return nil, err
		}
	}
	// Cap warnings always reach the default observer; full narration only
	// with Debug. Relaxed mode suppresses the warnings at the solver.
	p.obs = NewLogObserver[T](os.Stdout, opts.Debug)

	return p, nil
}

// SetObserver replaces the run's observer. Pass Nop[T]{} for silence;
// nil is rejected with ErrNilObserver.
func (p *PCA[T]) SetObserver(obs Observer[T]) error {
	if obs == nil {
		return ErrNilObserver
	}
	p.obs = obs

	return nil
}

// SetDataset overwrites slot m's sample matrix with rows (n×p).
// Returns ErrOutOfRange for an invalid slot and ErrBadDimensions for a
// non-rectangular or mis-sized dataset.
// Complexity: O(n·p).
func (p *PCA[T]) SetDataset(m int, rows [][]T) error {
	if m < 0 || m >= p.matrixCount {
		return fmt.Errorf("SetDataset(%d) of %d: %w", m, p.matrixCount, ErrOutOfRange)
	}
	if len(rows) != p.samples {
		return fmt.Errorf("SetDataset: %d rows for n=%d: %w", len(rows), p.samples, ErrBadDimensions)
	}
	dst, err := p.a.Matrix(m)
	if err != nil {
		return fmt.Errorf("SetDataset: %w", err)
	}
	for i, row := range rows {
		if len(row) != p.features {
			return fmt.Errorf("SetDataset: row %d has %d values for p=%d: %w",
				i, len(row), p.features, ErrBadDimensions)
		}
		target, errRow := dst.Row(i)
		if errRow != nil {
			return fmt.Errorf("SetDataset: %w", errRow)
		}
		copy(target, row)
	}

	return nil
}

// ComputeCovariance reduces slot m's sample matrix to its unnormalized
// covariance and notifies the observer. Slots never interact.
// Complexity: O(p²·n).
func (p *PCA[T]) ComputeCovariance(m int) error {
	sample, err := p.a.Matrix(m)
	if err != nil {
		return fmt.Errorf("ComputeCovariance: %w", errSlot(m, p.matrixCount))
	}
	dst, err := p.cov.Matrix(m)
	if err != nil {
		return fmt.Errorf("ComputeCovariance: %w", errSlot(m, p.matrixCount))
	}
	if err = covariance.Compute(sample, dst); err != nil {
		return err
	}
	p.obs.OnCovariance(m, dst)

	return nil
}

// Decompose runs the shifted-QR eigen-solver on slot m's covariance matrix,
// storing eigenvalues, eigenvectors, and the sweep count, and notifies the
// observer. A saturated sweep budget is NOT an error; inspect Iterations(m)
// against IterationCap.
// Complexity: O(p³) per sweep.
func (p *PCA[T]) Decompose(m int) error {
	cov, err := p.cov.Matrix(m)
	if err != nil {
		return fmt.Errorf("Decompose: %w", errSlot(m, p.matrixCount))
	}
	vectors, err := p.vectors.Matrix(m)
	if err != nil {
		return fmt.Errorf("Decompose: %w", errSlot(m, p.matrixCount))
	}
	values := p.eigenvalues[m*p.features : (m+1)*p.features]

	iters, err := eigen.Decompose(cov, values, vectors, eigen.Options{
		Relaxed: p.opts.Relaxed,
		OnCapReached: func(n int) {
			p.obs.OnIterationCap(m, n)
		},
	})
	if err != nil {
		return err
	}
	p.iterations[m] = iters
	p.obs.OnDecomposition(m, values, vectors, iters)

	return nil
}

// ComputeCovarianceMatrix runs the covariance phase over every slot with
// the bounded worker pool.
func (p *PCA[T]) ComputeCovarianceMatrix() error {
	return p.forEachSlot(p.ComputeCovariance)
}

// ComputeEigenValuesAndVectors runs the eigen-decomposition phase over
// every slot with the bounded worker pool. Slots that saturate their sweep
// budget do not abort the rest of the batch.
func (p *PCA[T]) ComputeEigenValuesAndVectors() error {
	return p.forEachSlot(p.Decompose)
}

// Run executes the full reference pipeline: the covariance phase, then the
// eigen-decomposition phase. Within each phase every slot is processed; the
// first error encountered (shape corruption, which construction validation
// rules out under normal use) is returned after the phase drains.
func (p *PCA[T]) Run() error {
	if err := p.ComputeCovarianceMatrix(); err != nil {
		return err
	}

	return p.ComputeEigenValuesAndVectors()
}

// forEachSlot distributes slot indices 0..matrixCount−1 over a bounded
// worker pool and collects the first error. With Workers<=1 (or a single
// slot) the loop degenerates to sequential in-order processing.
func (p *PCA[T]) forEachSlot(fn func(m int) error) error {
	workers := p.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > p.matrixCount {
		workers = p.matrixCount
	}

	// Sequential fast path, also the deterministic-narration path.
	if workers == 1 {
		var m int
		for m = 0; m < p.matrixCount; m++ {
			if err := fn(m); err != nil {
				return err
			}
		}

		return nil
	}

	var (
		wg       sync.WaitGroup
		indices  = make(chan int)
		errOnce  sync.Once
		firstErr error
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for m := range indices {
				if err := fn(m); err != nil {
					errOnce.Do(func() { firstErr = err })
				}
			}
		}()
	}
	for m := 0; m < p.matrixCount; m++ {
		indices <- m
	}
	close(indices)
	wg.Wait()

	return firstErr
}

// errSlot wraps ErrOutOfRange with slot context.
func errSlot(m, count int) error {
	return fmt.Errorf("slot %d of %d: %w", m, count, ErrOutOfRange)
}

// Samples returns n, the observations per dataset.
func (p *PCA[T]) Samples() int { return p.samples }

// Features returns p, the features per observation.
func (p *PCA[T]) Features() int { return p.features }

// MatrixCount returns the number of independent datasets in the batch.
func (p *PCA[T]) MatrixCount() int { return p.matrixCount }

// IterationCap returns the per-slot sweep budget, p²·16.
func (p *PCA[T]) IterationCap() int { return eigen.IterationCap(p.features) }

// Covariance returns a live view of slot m's covariance matrix.
func (p *PCA[T]) Covariance(m int) (*matrix.Dense[T], error) {
	return p.cov.Matrix(m)
}

// Eigenvalues returns a live view of slot m's eigenvalue slice
// (eigenvalue k of slot m sits at flat offset m·p + k).
func (p *PCA[T]) Eigenvalues(m int) ([]T, error) {
	if m < 0 || m >= p.matrixCount {
		return nil, errSlot(m, p.matrixCount)
	}

	return p.eigenvalues[m*p.features : (m+1)*p.features], nil
}

// Eigenvectors returns a live view of slot m's eigenvector matrix;
// eigenvalue k corresponds to column k.
func (p *PCA[T]) Eigenvectors(m int) (*matrix.Dense[T], error) {
	return p.vectors.Matrix(m)
}

// Iterations returns the sweep count slot m's solve consumed.
func (p *PCA[T]) Iterations(m int) (int, error) {
	if m < 0 || m >= p.matrixCount {
		return 0, errSlot(m, p.matrixCount)
	}

	return p.iterations[m], nil
}

// Converged reports whether slot m's solve satisfied the convergence test
// before the sweep budget: the stored count is the only signal, there is no
// separate flag.
func (p *PCA[T]) Converged(m int) (bool, error) {
	iters, err := p.Iterations(m)
	if err != nil {
		return false, err
	}

	return iters < p.IterationCap(), nil
}

// EigenvalueData exposes the full slot-major eigenvalue buffer
// (size p·matrixCount) for accelerated-comparison consumers.
func (p *PCA[T]) EigenvalueData() []T { return p.eigenvalues }

// EigenvectorData exposes the full flat eigenvector buffer
// (size p·p·matrixCount, slot-major row-major).
func (p *PCA[T]) EigenvectorData() []T { return p.vectors.Data() }

// CovarianceData exposes the full flat covariance buffer
// (size p·p·matrixCount, slot-major row-major).
func (p *PCA[T]) CovarianceData() []T { return p.cov.Data() }

// IterationData exposes the per-slot sweep counts (size matrixCount).
func (p *PCA[T]) IterationData() []int { return p.iterations }
