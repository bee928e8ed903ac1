// SPDX-License-Identifier: MIT
// Package fit: public facade. State and Process assemble the design system
// once and dispatch on Options.Method; Auto escalates from the fast linear
// solve to the constrained path only when the linear estimate is unphysical.

package fit

import (
	"github.com/quanterra/qtomo/basis"
	"github.com/quanterra/qtomo/counts"
	"github.com/quanterra/qtomo/experiment"
)

// State reconstructs a density matrix from state-tomography counts.
// cfgs must be the generator's configuration set for the table; meas supplies
// the per-setting effects. Insufficient data (any configuration with zero
// total counts) aborts with a batch counts.InsufficientDataError.
func State(tbl *counts.Table, cfgs []experiment.Configuration,
	meas *basis.Meas, opts Options) (*Result, error) {
	p, err := buildState(tbl, cfgs, meas, opts)
	if err != nil {
		return nil, err
	}

	return dispatch(p, opts)
}

// Process reconstructs a Choi matrix (input factor first, trace d) from
// process-tomography counts over prepared inputs and measured settings.
func Process(tbl *counts.Table, cfgs []experiment.Configuration,
	prep *basis.Prep, meas *basis.Meas, opts Options) (*Result, error) {
	p, err := buildProcess(tbl, cfgs, prep, meas, opts)
	if err != nil {
		return nil, err
	}

	return dispatch(p, opts)
}

func dispatch(p *problem, opts Options) (*Result, error) {
	linMethod := LinearInversion
	if opts.Weights == WeightCounts {
		linMethod = LeastSquares
	}

	switch opts.Method {
	case LinearInversion:
		return solveLinear(p, LinearInversion, opts)
	case LeastSquares:
		return solveLinear(p, LeastSquares, opts)
	case MLE:
		return solveMLE(p, opts)
	case Auto:
		// Linear first: fast, and exact where the constrained solver is
		// numerically fragile. Escalate only on a physicality violation;
		// an MLE failure then surfaces — never fall back silently.
		noClip := opts
		noClip.Clip = false
		lin, err := solveLinear(p, linMethod, noClip)
		if err != nil {
			return nil, err
		}
		if lin.PSDViolation <= opts.Epsilon {
			return lin, nil
		}

		return solveMLE(p, opts)
	default:
		return solveLinear(p, linMethod, opts)
	}
}
