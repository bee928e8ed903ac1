// SPDX-License-Identifier: MIT
// Package fit: the unconstrained solution paths (§ linear inversion and
// weighted least squares). Both are a single QR solve of the reduced design
// system; the estimate is Hermitian with the exact trace by construction but
// may be indefinite — callers get the PSD violation magnitude and, when
// Options.Clip is set, a clipped (flagged) physical matrix.

package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/operator"
)

// hermTol bounds numerical Hermiticity noise in spectral diagnostics.
const hermTol = 1e-8

func solveLinear(p *problem, method Method, opts Options) (*Result, error) {
	weighted := method == LeastSquares && opts.Weights == WeightCounts

	rows, rhs := p.assemble(weighted)
	var xv mat.VecDense
	if err := xv.SolveVec(rows, rhs); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSingularDesign)
	}
	x := p.coordsOf(&xv)

	mtx, err := operator.FromPauliCoords(x, p.dim)
	if err != nil {
		return nil, err
	}
	minEig, err := operator.MinEigenvalue(mtx, hermTol)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Matrix:    mtx,
		Method:    method,
		Residual:  p.residualAt(x, weighted),
		Converged: true,
	}
	if minEig < 0 {
		res.PSDViolation = -minEig
	}
	if p.dIn > 0 {
		// TP is pinned on this path; report the (≈0) witness for honesty.
		tp, tpErr := operator.PartialTraceOut(mtx, p.dIn, p.dim/p.dIn)
		if tpErr != nil {
			return nil, tpErr
		}
		res.TPViolation = operator.FrobeniusDistance(tp, operator.Identity(p.dIn))
	}

	if opts.Clip && res.PSDViolation > opts.Epsilon {
		if err := clipResult(p, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// clipResult replaces the indefinite estimate with its PSD projection,
// renormalizes the trace and records the mandatory warning.
func clipResult(p *problem, res *Result) error {
	clipped, violation, err := operator.ClipPSD(res.Matrix, hermTol)
	if err != nil {
		return err
	}
	tr, err := operator.Trace(clipped)
	if err != nil {
		return err
	}
	target := 1.0
	if p.dIn > 0 {
		target = float64(p.dIn)
	}
	if real(tr) > 0 {
		clipped = operator.Scale(complex(target/real(tr), 0), clipped)
	}
	res.Matrix = clipped
	res.Warnings = append(res.Warnings,
		fmt.Sprintf("PSD violation %.3g corrected by clipping eigenvalues", violation))

	return nil
}
