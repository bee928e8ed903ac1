// SPDX-License-Identifier: MIT

package gateset

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/counts"
	"github.com/quanterra/qtomo/operator"
)

// Run reconstructs every gate of gs from the measured data, in a common
// gauge. The data must cover all bare fiducial pairs (the Gram matrix) and
// one singleton-germ sandwich per gate; sequences with no counts are
// collected into one *counts.InsufficientDataError naming every starved
// key. A Gram condition number above opts.CondMax fails with
// ErrInsufficientFiducials.
func Run(data Data, gs *GateSet, opts Options) (*Result, error) {
	nF := len(gs.fiducials)
	m, err := operator.NumQubits(gs.dim)
	if err != nil {
		return nil, err
	}
	zeros := strings.Repeat("0", m)

	var starved []string
	p0 := func(seq Sequence) float64 {
		key := seq.Key()
		cts, ok := data[key]
		if !ok {
			starved = append(starved, key)

			return 0
		}
		total := 0
		for _, n := range cts {
			total += n
		}
		if total == 0 {
			starved = append(starved, key)

			return 0
		}

		return float64(cts[zeros]) / float64(total)
	}

	gram := mat.NewDense(nF, nF, nil)
	for i := 0; i < nF; i++ {
		for j := 0; j < nF; j++ {
			gram.Set(i, j, p0(Sequence{PrepFid: j, MeasFid: i}))
		}
	}
	measured := make(map[string]*mat.Dense, len(gs.names))
	for _, name := range gs.names {
		mg := mat.NewDense(nF, nF, nil)
		for i := 0; i < nF; i++ {
			for j := 0; j < nF; j++ {
				mg.Set(i, j, p0(Sequence{
					PrepFid: j, MeasFid: i,
					Germ: []string{name}, Power: 1,
				}))
			}
		}
		measured[name] = mg
	}
	if len(starved) > 0 {
		return nil, &counts.InsufficientDataError{Keys: starved}
	}

	cond := gramCondition(gram)
	if math.IsInf(cond, 1) || cond > opts.CondMax {
		return nil, fmt.Errorf("gram condition %.3g exceeds %.3g: %w",
			cond, opts.CondMax, ErrInsufficientFiducials)
	}
	var gramInv mat.Dense
	if invErr := gramInv.Inverse(gram); invErr != nil {
		return nil, fmt.Errorf("gram inversion: %w", ErrInsufficientFiducials)
	}

	// linear inversion in the (unknown) fiducial frame
	raw := make(map[string]*mat.Dense, len(gs.names))
	for _, name := range gs.names {
		g := mat.NewDense(nF, nF, nil)
		g.Mul(&gramInv, measured[name])
		raw[name] = g
	}
	rhoHat := mat.NewVecDense(nF, nil)
	rhoHat.SetVec(0, 1)
	eHat := mat.NewVecDense(nF, nil)
	for j := 0; j < nF; j++ {
		eHat.SetVec(j, gram.At(0, j))
	}

	fix, err := fixGauge(gs, raw, rhoHat, eHat, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Gates:          make(map[string]*mat.CDense, len(gs.names)),
		PTMs:           make(map[string]*mat.Dense, len(gs.names)),
		GramCondition:  cond,
		GaugeObjective: fix.objective,
		GaugeConverged: fix.converged,
	}
	if !fix.converged {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("gauge optimization did not converge (objective %.3g); estimates kept at best transform found", fix.objective))
	}

	var tInv mat.Dense
	if invErr := tInv.Inverse(fix.transform); invErr != nil {
		return nil, fmt.Errorf("gauge transform singular: %w", ErrInsufficientFiducials)
	}
	for _, name := range gs.names {
		var work, fixed mat.Dense
		work.Mul(fix.transform, raw[name])
		fixed.Mul(&work, &tInv)
		res.PTMs[name] = &fixed
		choi, cErr := PTMToChoi(&fixed)
		if cErr != nil {
			return nil, cErr
		}
		res.Gates[name] = choi
	}

	var rVec, eVec mat.VecDense
	rVec.MulVec(fix.transform, rhoHat)
	eVec.MulVec(tInv.T(), eHat)
	res.Rho, err = operator.FromPauliCoords(vecSlice(&rVec), gs.dim)
	if err != nil {
		return nil, err
	}
	res.Effect, err = operator.FromPauliCoords(vecSlice(&eVec), gs.dim)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// gramCondition returns σ_max/σ_min of the Gram matrix, +Inf when singular.
func gramCondition(g *mat.Dense) float64 {
	var svd mat.SVD
	if !svd.Factorize(g, mat.SVDNone) {
		return math.Inf(1)
	}
	vals := svd.Values(nil)
	min := vals[len(vals)-1]
	if min <= 0 {
		return math.Inf(1)
	}

	return vals[0] / min
}

func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}
