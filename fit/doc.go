// Package fit reconstructs density and Choi matrices from aggregated
// tomography counts.
//
// 🚀 The model
//
//	Every empirical outcome frequency is Born-rule linear in the unknown:
//	p_i = Tr(E_i·ρ). In orthonormal Pauli coordinates (operator.PauliCoords)
//	this is a real linear system A·x ≈ b, with one row per (configuration,
//	outcome) pair and one column per Pauli-string coordinate of ρ.
//
// Three solution paths share that design matrix:
//
//   - Linear inversion — unweighted QR solve of A·x ≈ b. Exact when A is
//     square and invertible, and the "auto" default at small dimension.
//   - Least squares — the same solve with rows weighted by the inverse
//     binomial standard deviation of each frequency estimate, downweighting
//     noisy low-count configurations.
//   - MLE — the physically constrained fit: ρ = L·L†/Tr(L·L†) is positive
//     semidefinite by construction, and the weighted residual is minimized
//     over L with gonum's L-BFGS. Channels additionally carry a
//     trace-preservation penalty and report the residual TP violation.
//
// Linear constraints the data cannot move are eliminated, not fitted: the
// trace coordinate is pinned (Tr ρ = 1, Tr J = d) and, for channels on the
// linear path, the partial-trace coordinates are pinned to the
// trace-preservation values, so those invariants hold exactly by
// construction.
//
// The unconstrained paths may produce indefinite estimates; they report the
// PSD violation magnitude and can optionally clip eigenvalues (with a
// warning). The MLE path never clips — if the optimizer fails, the failure
// surfaces as a ConvergenceError carrying the solver status, never a silent
// fallback to the unconstrained answer.
//
// Method "auto": solve linearly first; escalate to MLE only when the linear
// estimate violates positive-semidefiniteness beyond Options.Epsilon.
//
// Fitting is pure computation: fitters hold no mutable state, every call
// allocates its own workspace, and independent fits are safe to run
// concurrently.
package fit
