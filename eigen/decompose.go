// SPDX-License-Identifier: MIT
// Package eigen: the shifted-QR iteration state machine.
//
// Determinism & Performance:
//   - One self-contained solve per call; no state escapes or is shared.
//   - Working matrices RQ and Q are kept column-major so the Gram–Schmidt
//     column reductions run on contiguous float64 slices through vek.
//   - Fixed traversal order everywhere; identical results for any caller
//     scheduling.
package eigen

import (
	"fmt"
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/eigenref/matrix"
)

// Decompose diagonalizes the symmetric matrix cov, writing the eigenvalues
// into values (length p) and the eigenvector basis into vectors (p×p,
// eigenvalue k ↔ eigenvector column k). It returns the number of QR sweeps
// performed.
//
// Hitting the sweep budget (IterationCap(p)) is NOT an error: the current
// RQ diagonal and accumulator are stored as the best available approximation
// and the saturated count is returned — callers decide trustworthiness by
// comparing it against the cap. There is no separate converged flag.
//
// Stage 1 (Validate): nil checks, squareness, output sizing.
// Stage 2 (Prepare): copy cov into float64 working state, V ← identity.
// Stage 3 (Iterate): deflation scan → Wilkinson shift → classical
// Gram–Schmidt QR → V·Q and R·Q updates → convergence scan, until the
// strict lower triangle is numerically zero or the budget saturates.
// Stage 4 (Finalize): eigenvalues off the RQ diagonal.
//
// Complexity: O(p³) per sweep; memory O(p²) local to the call.
func Decompose[T matrix.Float](cov *matrix.Dense[T], values []T, vectors *matrix.Dense[T], opts Options) (int, error) {
	// Stage 1: Validate input and output shapes
	if cov == nil || vectors == nil {
		return 0, ErrNilMatrix
	}
	var p = cov.Rows()
	if cov.Cols() != p {
		return 0, fmt.Errorf("Decompose: non-square %dx%d: %w", p, cov.Cols(), ErrNonSquare)
	}
	if len(values) != p {
		return 0, fmt.Errorf("Decompose: %d eigenvalue slots for p=%d: %w", len(values), p, ErrDimensionMismatch)
	}
	if vectors.Rows() != p || vectors.Cols() != p {
		return 0, fmt.Errorf("Decompose: eigenvector matrix %dx%d for p=%d: %w",
			vectors.Rows(), vectors.Cols(), p, ErrDimensionMismatch)
	}

	// Stage 2: Prepare working state
	var (
		covData = cov.Data()     // row-major T source
		vecData = vectors.Data() // row-major T accumulator storage

		rq = newColumns(p) // column-major float64 working iterate
		q  = newColumns(p) // column-major float64 orthonormal factor
		r  = newRows(p)    // row-major float64 upper-triangular factor

		scratch = make([]T, p*p) // V·Q product before the copy-back
	)
	// copy the covariance into RQ, promoting each element to float64
	var row, col int
	for row = 0; row < p; row++ {
		for col = 0; col < p; col++ {
			rq[col][row] = float64(covData[row*p+col])
		}
	}
	// eigenvector accumulator starts at the identity
	vectors.SetIdentity()

	// Stage 3: Iterate until converged or the sweep budget saturates
	var (
		budget     = IterationCap(p)
		iterations int

		shiftRow             int
		rowIsZero, converged bool
		shift, a, b, c, d    float64
		bSquared             float64
		i, j, k              int
		rii, dp, prod        float64
	)
	for {
		// 3.1: Deflation scan — find the lowest still-coupled row, bottom-up.
		// Rows whose sub-diagonal entries all sit below the threshold have
		// decoupled; the boundary row above them targets the shift.
		shiftRow = p - 2
		for row = p - 1; row >= 1; row-- {
			rowIsZero = true
			for col = 0; col < row; col++ {
				rowIsZero = rowIsZero && (math.Abs(rq[col][row]) < zeroThreshold)
			}
			if !rowIsZero {
				break
			}
			shiftRow--
		}

		// 3.2: Wilkinson shift from the trailing 2×2 block
		//   [a b]
		//   [b c]  →  μ = c − sign(d)·b² / (|d| + sqrt(d²+b²)), d = (a−c)/2
		// (d == 0 takes the positive sign). Skipped when no coupled block
		// remains (shiftRow < 0).
		shift = 0
		if shiftRow >= 0 {
			a = rq[shiftRow][shiftRow]
			b = rq[shiftRow][shiftRow+1]
			c = rq[shiftRow+1][shiftRow+1]

			d = (a - c) / 2
			bSquared = b * b
			if d < 0 {
				bSquared = -bSquared
			}
			shift = c - bSquared/(math.Abs(d)+math.Sqrt(d*d+b*b))
		}

		// Cold-start safety: no shift on the very first sweep. Afterwards,
		// use 99% of the shift to avoid massive cancellations in the QRD.
		if iterations == 0 {
			shift = 0
		} else {
			shift *= shiftDamping
		}

		// 3.3: Subtract the shift from the diagonal of RQ
		for j = 0; j < p; j++ {
			rq[j][j] -= shift
		}

		// 3.4: Classical Gram–Schmidt QR factorization, column by column.
		// NOT the modified variant — the reference numeric profile depends
		// on projecting against the original residual columns.
		for i = 0; i < p; i++ {
			rii = vek.Norm(rq[i]) // r_ii = ‖a_i‖
			r[i][i] = rii

			copy(q[i], rq[i]) // q_i = a_i / r_ii
			vek.DivNumber_Inplace(q[i], rii)

			for j = i + 1; j < p; j++ {
				dp = vek.Dot(q[i], rq[j]) // r_ij = ⟨q_i, a_j⟩
				r[i][j] = dp

				for k = 0; k < p; k++ { // a_j -= r_ij·q_i
					rq[j][k] -= dp * q[i][k]
				}
			}
		}

		// 3.5: Accumulate the eigenvectors: V ← V·Q.
		// Products promote the stored T entries to float64 one by one; the
		// result is stored back in T, matching the reference storage width.
		for row = 0; row < p; row++ {
			for col = 0; col < p; col++ {
				prod = 0
				for k = 0; k < p; k++ {
					prod += float64(vecData[row*p+k]) * q[col][k]
				}
				scratch[row*p+col] = T(prod)
			}
		}
		copy(vecData, scratch)

		// 3.6: Form the next iterate: RQ ← R·Q.
		// The residual columns left in RQ by Gram–Schmidt are dead here;
		// each entry is a contiguous R-row · Q-column dot.
		for j = 0; j < p; j++ {
			for i = 0; i < p; i++ {
				rq[j][i] = vek.Dot(r[i], q[j])
			}
		}

		// 3.7: Add the shift back to the diagonal of RQ
		for j = 0; j < p; j++ {
			rq[j][j] += shift
		}

		// 3.8: Global convergence scan over the strict lower triangle.
		// Independent of the deflation scan in 3.1 — the two can disagree,
		// and only this global test gates termination.
		converged = true
		for row = 1; row < p; row++ {
			for col = 0; col < row; col++ {
				converged = converged && (math.Abs(rq[col][row]) < zeroThreshold)
			}
		}

		// 3.9: Account for the sweep and decide whether to continue.
		iterations++
		if converged {
			break
		}
		if iterations >= budget {
			// Budget saturated: keep whatever RQ/V currently hold. The count
			// (== cap) is the only non-convergence signal surfaced.
			if !opts.Relaxed && opts.OnCapReached != nil {
				opts.OnCapReached(iterations)
			}
			break
		}
	}

	// Stage 4: Finalize — eigenvalues are the diagonal of the final RQ
	for k = 0; k < p; k++ {
		values[k] = T(rq[k][k])
	}

	return iterations, nil
}

// newColumns allocates a p×p column-major float64 matrix as p contiguous
// column slices (cols[j][k] addresses row k of column j).
func newColumns(p int) [][]float64 {
	backing := make([]float64, p*p)
	cols := make([][]float64, p)
	for j := 0; j < p; j++ {
		cols[j] = backing[j*p : (j+1)*p]
	}

	return cols
}

// newRows allocates a p×p row-major float64 matrix as p contiguous row
// slices. Entries below the diagonal of R are never written by the sweep
// loop and stay zero from allocation.
func newRows(p int) [][]float64 {
	backing := make([]float64, p*p)
	rows := make([][]float64, p)
	for i := 0; i < p; i++ {
		rows[i] = backing[i*p : (i+1)*p]
	}

	return rows
}
