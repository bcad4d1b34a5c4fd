// Package eigen diagonalizes symmetric covariance matrices with a shifted
// QR iteration, producing eigenvalues, an orthonormal eigenvector basis,
// and the sweep count the solve consumed.
//
// 🚀 How does it work?
//
//	Starting from RQ = Cov and V = I, every sweep:
//	  1. scans rows bottom-up for the first still-coupled sub-diagonal row
//	     (the deflation boundary) and takes the Wilkinson shift from the
//	     trailing 2×2 block at that boundary;
//	  2. forces the shift to 0 on the very first sweep (cold-start safety)
//	     and damps it by 0.99 afterwards to limit cancellation in the QR step;
//	  3. subtracts the shift from the diagonal, factors RQ = Q·R with
//	     CLASSICAL Gram–Schmidt (column by column, not the modified variant —
//	     the reference numeric profile must be reproduced, not improved);
//	  4. accumulates V ← V·Q, reassembles RQ ← R·Q, adds the shift back;
//	  5. declares convergence when every strict-lower-triangle entry of RQ
//	     sits below the zero threshold.
//
//	At convergence the eigenvalues are the diagonal of RQ and the columns of
//	V are the matching eigenvectors: Vᵀ·Cov·V ≈ diag(λ).
//
// ✨ Numeric semantics (preserved exactly, do not "fix"):
//   - All shift and factorization arithmetic runs in float64, even when the
//     stored element type T is float32.
//   - The eigenvector accumulator is stored back in T between sweeps.
//   - The zero threshold is a single-precision-width constant (float32 1e-8)
//     compared against float64 magnitudes.
//   - The deflation scan and the convergence scan are evaluated
//     independently every sweep; only the convergence scan ends the loop.
//
// ⏱ Iteration budget:
//
//	A solve performs at most p²·16 sweeps. Hitting the budget is NOT an
//	error: the best available approximation is returned and the saturated
//	sweep count signals the condition — compare it against IterationCap(p).
//
// Performance:
//
//   - Time:   O(p³) per sweep, worst-case O(p⁵) at the budget
//   - Memory: O(p²) working state per solve, no sharing across solves
//
// Non-convergence aside, malformed numerics (NaN/Inf inputs, zero-norm
// Gram–Schmidt columns on singular inputs) are undefined behavior, exactly
// as in the reference being reproduced.
package eigen
