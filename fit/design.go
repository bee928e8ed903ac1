// SPDX-License-Identifier: MIT
// Package fit: design-system assembly.
//
// A problem is the real linear model shared by every method: one row per
// (configuration, outcome) pair, one column per orthonormal-Pauli coordinate
// of the unknown. Coordinates that are fixed by exact linear invariants
// (trace; trace-preservation on the linear channel path) are pinned and
// eliminated from the solve instead of being fitted.

package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/basis"
	"github.com/quanterra/qtomo/counts"
	"github.com/quanterra/qtomo/experiment"
	"github.com/quanterra/qtomo/operator"
)

// varFloor keeps inverse-variance weights finite when p̂(1−p̂) ≈ 0.
const varFloor = 1e-2

// problem is one assembled design system.
type problem struct {
	dim    int // matrix dimension: d for states, d² for Choi matrices
	dIn    int // channel input dimension; 0 marks a state problem
	nCoord int // dim²

	fixed map[int]float64 // pinned Pauli coordinates
	free  []int           // free coordinate indices, ascending

	// full-coordinate rows (unweighted) — the MLE objective consumes these
	rawA [][]float64
	rawB []float64
	wts  []float64
}

// bitstring renders outcome index i over k bits, qubit 0 rightmost.
func bitstring(i, k int) string {
	b := make([]byte, k)
	for q := 0; q < k; q++ {
		b[k-1-q] = '0' + byte((i>>q)&1)
	}

	return string(b)
}

// rowWeight returns the residual weight of one row.
func rowWeight(w Weighting, p float64, total int) float64 {
	if w == WeightNone {
		return 1
	}
	v := math.Max(p*(1-p), varFloor)

	return math.Sqrt(float64(total) / v)
}

// paulis builds the Pauli strings of the problem dimension once per problem;
// each fit owns its workspace, nothing is shared across invocations.
func paulis(m int) []*mat.CDense {
	return operator.PauliBasis(m)
}

// effectCoords projects a Hermitian effect onto the orthonormal Pauli basis.
func effectCoords(eff *mat.CDense, ops []*mat.CDense, invSqrtD float64) []float64 {
	x := make([]float64, len(ops))
	for a, p := range ops {
		tr, err := operator.TraceMul(p, eff)
		if err != nil {
			panic(err) // dimensions agree by construction
		}
		x[a] = real(tr) * invSqrtD
	}

	return x
}

func transpose(a *mat.CDense) *mat.CDense { return operator.Transpose(a) }

func kron(a, b *mat.CDense) *mat.CDense { return operator.Kron(a, b) }

// buildState assembles the state-tomography problem: unknown d×d density
// matrix, effects ⊗_q E(setting_q, outcome bit q), trace pinned to 1.
func buildState(tbl *counts.Table, cfgs []experiment.Configuration,
	meas *basis.Meas, opts Options) (*problem, error) {
	if len(cfgs) == 0 {
		return nil, ErrNoConfigurations
	}
	if err := tbl.Validate(); err != nil {
		return nil, err
	}

	k := len(cfgs[0].Meas)
	d := 1 << k
	p := &problem{dim: d, nCoord: d * d, fixed: map[int]float64{
		0: 1 / math.Sqrt(float64(d)), // Tr ρ = 1
	}}
	p.finishFree()

	ops := paulis(k)
	invSqrtD := 1 / math.Sqrt(float64(d))
	for _, cfg := range cfgs {
		freq, err := tbl.Frequencies(cfg)
		if err != nil {
			return nil, err
		}
		total, err := tbl.Total(cfg)
		if err != nil {
			return nil, err
		}
		for o := 0; o < d; o++ {
			out := bitstring(o, k)
			eff, err := meas.ProductEffect(cfg.Meas, out)
			if err != nil {
				return nil, err
			}
			p.appendRow(effectCoords(eff, ops, invSqrtD), freq[out],
				rowWeight(opts.Weights, freq[out], total))
		}
	}

	return p, nil
}

// buildProcess assembles the process-tomography problem: unknown d²×d² Choi
// matrix on H_in ⊗ H_out (input factor first), effects ρ_prepᵀ ⊗ E_meas,
// trace pinned to d and — on the linear path — trace-preservation pinned
// exactly (all coordinates whose output Pauli part is identity vanish).
func buildProcess(tbl *counts.Table, cfgs []experiment.Configuration,
	prep *basis.Prep, meas *basis.Meas, opts Options) (*problem, error) {
	if len(cfgs) == 0 {
		return nil, ErrNoConfigurations
	}
	if err := tbl.Validate(); err != nil {
		return nil, err
	}

	k := len(cfgs[0].Meas) // measured (= prepared) qubit count
	d := 1 << k
	dChoi := d * d
	p := &problem{dim: dChoi, dIn: d, nCoord: dChoi * dChoi, fixed: map[int]float64{}}

	// Pinned by TP: output part identity. Index layout: output qubits are
	// the low 2k bits, input qubits the high 2k bits.
	outBlock := 1 << (2 * k)
	for a := 0; a < outBlock; a++ {
		idx := a * outBlock
		if a == 0 {
			p.fixed[idx] = 1 // Tr J = d in orthonormal coordinates
		} else {
			p.fixed[idx] = 0
		}
	}
	p.finishFree()

	ops := paulis(2 * k)
	invSqrtD := 1 / math.Sqrt(float64(dChoi))
	for _, cfg := range cfgs {
		freq, err := tbl.Frequencies(cfg)
		if err != nil {
			return nil, err
		}
		total, err := tbl.Total(cfg)
		if err != nil {
			return nil, err
		}
		rho, err := prep.ProductState(cfg.Preps)
		if err != nil {
			return nil, err
		}
		rhoT := transpose(rho)
		for o := 0; o < d; o++ {
			out := bitstring(o, k)
			eff, err := meas.ProductEffect(cfg.Meas, out)
			if err != nil {
				return nil, err
			}
			full := kron(rhoT, eff)
			p.appendRow(effectCoords(full, ops, invSqrtD), freq[out],
				rowWeight(opts.Weights, freq[out], total))
		}
	}

	return p, nil
}

func (p *problem) appendRow(coords []float64, b, w float64) {
	p.rawA = append(p.rawA, coords)
	p.rawB = append(p.rawB, b)
	p.wts = append(p.wts, w)
}

func (p *problem) finishFree() {
	p.free = p.free[:0]
	for i := 0; i < p.nCoord; i++ {
		if _, pinned := p.fixed[i]; !pinned {
			p.free = append(p.free, i)
		}
	}
}

// assemble builds the weighted reduced system over the free coordinates:
// rows = diag(w)·A_free, rhs = diag(w)·(b − A_fixed·x_fixed).
func (p *problem) assemble(weighted bool) (*mat.Dense, *mat.VecDense) {
	n := len(p.rawA)
	rows := mat.NewDense(n, len(p.free), nil)
	rhs := mat.NewVecDense(n, nil)
	for r := 0; r < n; r++ {
		w := 1.0
		if weighted {
			w = p.wts[r]
		}
		b := p.rawB[r]
		for idx, val := range p.fixed {
			b -= p.rawA[r][idx] * val
		}
		rhs.SetVec(r, w*b)
		for c, idx := range p.free {
			rows.Set(r, c, w*p.rawA[r][idx])
		}
	}

	return rows, rhs
}

// coordsOf expands a free-coordinate solution back to the full vector.
func (p *problem) coordsOf(freeVals *mat.VecDense) []float64 {
	x := make([]float64, p.nCoord)
	for idx, val := range p.fixed {
		x[idx] = val
	}
	for c, idx := range p.free {
		x[idx] = freeVals.AtVec(c)
	}

	return x
}

// residualAt returns ‖diag(w)·(A·x − b)‖ for the full coordinate vector x.
func (p *problem) residualAt(x []float64, weighted bool) float64 {
	var s float64
	for r := range p.rawA {
		pred := 0.0
		for a, xa := range x {
			if xa != 0 {
				pred += p.rawA[r][a] * xa
			}
		}
		diff := pred - p.rawB[r]
		if weighted {
			diff *= p.wts[r]
		}
		s += diff * diff
	}

	return math.Sqrt(s)
}
