// SPDX-License-Identifier: MIT
// Package gateset: gauge fixing.
//
// The raw estimates live in the frame B whose columns are F_j|ρ⟩⟩ — unknown,
// because the fiducials themselves were estimated. A similarity transform T
// maps the frame onto the ideal one: gates transform as T·Ĝ·T⁻¹, the state
// as T·ρ̂, the effect as Ê·T⁻¹. The ideal-fiducial frame is an exact gauge
// in the noiseless limit, so it seeds a bounded Nelder–Mead refinement of
// the anchor-matching objective
//
//	Σ_g ‖T·Ĝ_g·T⁻¹ − S_ideal(g)‖²_F + ‖T·ρ̂ − r_ideal‖² + ‖Êᵀ·T⁻¹ − e_idealᵀ‖².

package gateset

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

type gaugeFix struct {
	transform *mat.Dense
	objective float64
	converged bool
}

// idealFrame returns the seed transform: column j is (ideal fiducial j
// transfer matrix)·r_ideal.
func idealFrame(gs *GateSet) (*mat.Dense, *mat.VecDense, *mat.VecDense, error) {
	n := gs.dim * gs.dim
	rIdeal, err := StateVec(gs.rho0)
	if err != nil {
		return nil, nil, nil, err
	}
	eIdeal, err := EffectVec(gs.effect0)
	if err != nil {
		return nil, nil, nil, err
	}
	frame := mat.NewDense(n, n, nil)
	for j, fid := range gs.fiducials {
		s, sErr := sequencePTM(gs, fid)
		if sErr != nil {
			return nil, nil, nil, sErr
		}
		var col mat.VecDense
		col.MulVec(s, rIdeal)
		for i := 0; i < n; i++ {
			frame.Set(i, j, col.AtVec(i))
		}
	}

	return frame, rIdeal, eIdeal, nil
}

// fixGauge seeds T from the ideal frame and, when opts.Refine is set, runs
// a bounded Nelder–Mead over T's entries. Non-convergence is reported in
// the returned flag; the best transform found is still applied.
func fixGauge(gs *GateSet, raw map[string]*mat.Dense,
	rhoHat, eHat *mat.VecDense, opts Options) (*gaugeFix, error) {
	n := gs.dim * gs.dim
	seed, rIdeal, eIdeal, err := idealFrame(gs)
	if err != nil {
		return nil, err
	}
	ideals := make(map[string]*mat.Dense, len(gs.names))
	for _, name := range gs.names {
		s, pErr := gs.gatePTM(name)
		if pErr != nil {
			return nil, pErr
		}
		ideals[name] = s
	}

	objective := func(params []float64) float64 {
		t := mat.NewDense(n, n, append([]float64(nil), params...))
		var tInv mat.Dense
		if invErr := tInv.Inverse(t); invErr != nil {
			return math.Inf(1)
		}
		val := 0.0
		var work, sandwich mat.Dense
		for _, name := range gs.names {
			work.Mul(t, raw[name])
			sandwich.Mul(&work, &tInv)
			d := frobenius(&sandwich, ideals[name])
			val += d * d
		}
		var r mat.VecDense
		r.MulVec(t, rhoHat)
		d := frobenius(&r, rIdeal)
		val += d * d
		var e mat.VecDense
		e.MulVec(tInv.T(), eHat)
		d = frobenius(&e, eIdeal)
		val += d * d

		return val
	}

	seedParams := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			seedParams = append(seedParams, seed.At(i, j))
		}
	}

	if !opts.Refine {
		return &gaugeFix{transform: seed, objective: objective(seedParams), converged: true}, nil
	}

	prob := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: opts.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   opts.Tolerance,
			Iterations: 30,
		},
	}
	optRes, optErr := optimize.Minimize(prob, seedParams, settings, &optimize.NelderMead{})
	if optRes == nil {
		// keep the seed: it is a valid gauge, just unrefined
		return &gaugeFix{transform: seed, objective: objective(seedParams), converged: false}, nil
	}

	best := mat.NewDense(n, n, append([]float64(nil), optRes.X...))
	converged := optErr == nil && gaugeAccepted(optRes.Status)

	return &gaugeFix{transform: best, objective: optRes.F, converged: converged}, nil
}

func gaugeAccepted(s optimize.Status) bool {
	switch s {
	case optimize.FunctionConvergence, optimize.FunctionThreshold,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.Success:
		return true
	default:
		return false
	}
}
