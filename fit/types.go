// SPDX-License-Identifier: MIT

package fit

import (
	"gonum.org/v1/gonum/mat"
)

// Method selects the reconstruction algorithm.
type Method int

const (
	// Auto solves linearly and escalates to MLE on PSD violation.
	Auto Method = iota

	// LinearInversion is the unweighted QR solve of the design system.
	LinearInversion

	// LeastSquares is the inverse-variance weighted solve.
	LeastSquares

	// MLE is the constrained fit: PSD by construction, optimized iteratively.
	MLE
)

// String names the method for diagnostics.
func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case LinearInversion:
		return "linear-inversion"
	case LeastSquares:
		return "least-squares"
	case MLE:
		return "mle"
	default:
		return "unknown"
	}
}

// Weighting selects residual weights.
type Weighting int

const (
	// WeightNone treats every row equally.
	WeightNone Weighting = iota

	// WeightCounts weights rows by the inverse binomial standard deviation
	// √(N / max(p̂(1−p̂), varFloor)), downweighting noisy low-count rows.
	WeightCounts
)

// Options configures a fit invocation. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Method selects the algorithm; Auto applies the escalation policy.
	Method Method

	// Weights selects residual weighting for the least-squares and MLE paths.
	Weights Weighting

	// Epsilon is the physical-validity tolerance: eigenvalues above −Epsilon
	// count as non-negative, trace deviations below Epsilon as exact.
	Epsilon float64

	// Clip, on the unconstrained paths only, replaces an indefinite estimate
	// with its PSD projection (trace renormalized) and records a warning.
	// The MLE path ignores it — it never clips.
	Clip bool

	// MaxIterations caps the MLE optimizer's major iterations.
	MaxIterations int

	// Tolerance is the MLE gradient-norm convergence threshold.
	Tolerance float64

	// TPPenalty scales the trace-preservation penalty in the channel MLE.
	TPPenalty float64
}

// DefaultOptions returns the documented defaults: auto method, count
// weighting, 1e-6 physical tolerance, bounded optimizer.
func DefaultOptions() Options {
	return Options{
		Method:        Auto,
		Weights:       WeightCounts,
		Epsilon:       1e-6,
		MaxIterations: 500,
		Tolerance:     1e-6,
		TPPenalty:     100,
	}
}

// Result is one immutable reconstruction outcome plus solver diagnostics.
type Result struct {
	// Matrix is the reconstructed density matrix (trace 1) or Choi matrix
	// (trace d), Hermitian by construction.
	Matrix *mat.CDense

	// Method is the algorithm that actually produced Matrix (relevant under
	// Auto escalation).
	Method Method

	// Residual is the weighted design-system residual norm ‖A·x − b‖.
	Residual float64

	// PSDViolation is |min(λ_min, 0)| of the estimate before any clipping;
	// 0 for MLE by construction.
	PSDViolation float64

	// TPViolation is ‖Tr_out(J) − 𝟙‖_F for channel fits; 0 for states.
	TPViolation float64

	// Converged reports optimizer convergence; always true on linear paths.
	Converged bool

	// Iterations is the optimizer's major iteration count; 0 on linear paths.
	Iterations int

	// Warnings collects non-fatal diagnostics (e.g. eigenvalue clipping).
	Warnings []string
}
