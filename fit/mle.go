// SPDX-License-Identifier: MIT
// Package fit: the constrained path. The optimization variable is a complex
// lower-triangular factor L, so the candidate ρ = L·L†/Tr(L·L†) is Hermitian,
// positive semidefinite and correctly normalized for every parameter vector —
// the PSD cone is never left, so nothing is ever clipped. The weighted
// design-system residual (plus a trace-preservation penalty for channels) is
// minimized with L-BFGS over the real parameters of L; gradients come from
// central finite differences.

package fit

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/quanterra/qtomo/operator"
)

// lowerFromParams unpacks θ (length d²) into a complex lower-triangular L:
// d real diagonal entries, then (re, im) pairs row by row below the diagonal.
func lowerFromParams(theta []float64, d int) *mat.CDense {
	low := mat.NewCDense(d, d, nil)
	t := 0
	for i := 0; i < d; i++ {
		low.Set(i, i, complex(theta[t], 0))
		t++
		for j := 0; j < i; j++ {
			low.Set(i, j, complex(theta[t], theta[t+1]))
			t += 2
		}
	}

	return low
}

// paramsFromLower is the inverse of lowerFromParams.
func paramsFromLower(low *mat.CDense, d int) []float64 {
	theta := make([]float64, d*d)
	t := 0
	for i := 0; i < d; i++ {
		theta[t] = real(low.At(i, i))
		t++
		for j := 0; j < i; j++ {
			theta[t] = real(low.At(i, j))
			theta[t+1] = imag(low.At(i, j))
			t += 2
		}
	}

	return theta
}

// candidate maps θ to the normalized PSD candidate matrix, or nil when the
// factor is numerically zero.
func candidate(theta []float64, d int, target float64) *mat.CDense {
	low := lowerFromParams(theta, d)
	raw := operator.Mul(low, operator.Dag(low))
	tr := 0.0
	for i := 0; i < d; i++ {
		tr += real(raw.At(i, i))
	}
	if tr < 1e-300 {
		return nil
	}

	return operator.Scale(complex(target/tr, 0), raw)
}

func solveMLE(p *problem, opts Options) (*Result, error) {
	target := 1.0
	if p.dIn > 0 {
		target = float64(p.dIn)
	}
	weighted := opts.Weights == WeightCounts
	ops := paulis(log4(p.nCoord))
	invSqrtD := 1 / math.Sqrt(float64(p.dim))

	objective := func(theta []float64) float64 {
		rho := candidate(theta, p.dim, target)
		if rho == nil {
			return math.Inf(1)
		}
		x := effectCoords(rho, ops, invSqrtD)
		val := p.residualAt(x, weighted)
		val *= val
		if p.dIn > 0 {
			tp, err := operator.PartialTraceOut(rho, p.dIn, p.dim/p.dIn)
			if err != nil {
				return math.Inf(1)
			}
			dev := operator.FrobeniusDistance(tp, operator.Identity(p.dIn))
			val += opts.TPPenalty * dev * dev
		}

		return val
	}

	theta0, err := warmStart(p, target)
	if err != nil {
		return nil, err
	}

	prob := optimize.Problem{
		Func: objective,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, objective, x, nil)
		},
	}
	settings := &optimize.Settings{
		MajorIterations:   opts.MaxIterations,
		GradientThreshold: opts.Tolerance,
	}

	optRes, optErr := optimize.Minimize(prob, theta0, settings, &optimize.LBFGS{})
	if optRes == nil {
		status := "no result"
		if optErr != nil {
			status = optErr.Error()
		}

		return nil, &ConvergenceError{Status: status}
	}

	rho := candidate(optRes.X, p.dim, target)
	x := effectCoords(rho, ops, invSqrtD)
	res := &Result{
		Matrix:     rho,
		Method:     MLE,
		Residual:   p.residualAt(x, weighted),
		Converged:  accepted(optRes.Status) && optErr == nil,
		Iterations: optRes.Stats.MajorIterations,
	}
	if p.dIn > 0 {
		tp, tpErr := operator.PartialTraceOut(rho, p.dIn, p.dim/p.dIn)
		if tpErr != nil {
			return nil, tpErr
		}
		res.TPViolation = operator.FrobeniusDistance(tp, operator.Identity(p.dIn))
	}
	if !res.Converged {
		return nil, &ConvergenceError{
			Status:     optRes.Status.String(),
			Iterations: optRes.Stats.MajorIterations,
			Residual:   res.Residual,
		}
	}

	return res, nil
}

// accepted lists the optimizer statuses that count as convergence.
func accepted(s optimize.Status) bool {
	switch s {
	case optimize.GradientThreshold, optimize.FunctionThreshold,
		optimize.FunctionConvergence, optimize.StepConvergence,
		optimize.Success:
		return true
	default:
		return false
	}
}

// warmStart seeds the optimizer from the clipped, slightly regularized
// linear-inversion estimate; a maximally mixed factor is the fallback when
// the linear estimate is unusable.
func warmStart(p *problem, target float64) ([]float64, error) {
	mixed := func() []float64 {
		low := operator.Scale(complex(math.Sqrt(target/float64(p.dim)), 0),
			operator.Identity(p.dim))

		return paramsFromLower(low, p.dim)
	}

	lin, err := solveLinear(p, LinearInversion, Options{})
	if err != nil {
		return mixed(), nil
	}
	clipped, _, err := operator.ClipPSD(lin.Matrix, hermTol)
	if err != nil {
		return mixed(), nil
	}
	// regularize so the Cholesky pivot never hits zero
	reg := operator.Add(clipped,
		operator.Scale(complex(1e-6*target/float64(p.dim), 0), operator.Identity(p.dim)))
	tr, err := operator.Trace(reg)
	if err != nil || real(tr) <= 0 {
		return mixed(), nil
	}
	reg = operator.Scale(complex(target/real(tr), 0), reg)
	low, err := operator.Cholesky(reg, hermTol)
	if err != nil {
		return mixed(), nil
	}

	return paramsFromLower(low, p.dim), nil
}

// log4 returns m with 4^m = n; n is a power of four by construction.
func log4(n int) int {
	m := 0
	for v := n; v > 1; v >>= 2 {
		m++
	}

	return m
}
