// Package pca orchestrates the two-phase reference pipeline over a batch of
// independent sample matrices: covariance formation, then shifted-QR
// eigen-decomposition.
//
// 🚀 What does the orchestrator own?
//
//	All storage, allocated once at construction and populated in place:
//	  • sample batch        — matrixCount × (n×p), read-only to the phases
//	  • covariance batch    — matrixCount × (p×p)
//	  • eigenvalue buffer   — matrixCount × p  (slot-major: m·p + k)
//	  • eigenvector batch   — matrixCount × (p×p), eigenvalue k ↔ column k
//	  • iteration counts    — one sweep count per matrix
//
// ✨ Execution model:
//   - Matrices are independent: each phase runs a bounded worker pool over
//     slot indices (Options.Workers, default GOMAXPROCS). A slot reads only
//     its own input slice and writes only its own output slice, so results
//     are identical for any worker count or execution order.
//   - A slot that saturates its sweep budget never aborts the others; its
//     saturated iteration count is the only failure signal (compare against
//     IterationCap).
//   - There is no external cancellation channel: a stuck solve self-
//     terminates at the p²·16 budget.
//
// 🔍 Observability:
//
//	Diagnostic narration is factored into the Observer interface, invoked
//	after each slot's covariance and after each slot's decomposition. The
//	numeric core performs no I/O; observers never feed back into results.
//
// See example_test.go for end-to-end usage and SPEC behavior.
package pca
