// SPDX-License-Identifier: MIT
// Package gateset: Pauli transfer matrix algebra.
//
// The PTM of a channel Φ over the orthonormal Pauli strings B_a = P_a/√d is
// the real matrix S[a][b] = Tr(B_a·Φ(B_b)); states become real coordinate
// vectors r_a = Tr(B_a·ρ), effects become row vectors, and the Born rule is
// the inner product p = eᵀ·S·r. Composition is matrix product with the later
// gate on the left.

package gateset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/operator"
)

// PTM returns the Pauli transfer matrix of the unitary channel ρ ↦ UρU†.
func PTM(u *mat.CDense) (*mat.Dense, error) {
	d, c := u.Dims()
	if d != c {
		return nil, operator.ErrNonSquare
	}
	m, err := operator.NumQubits(d)
	if err != nil {
		return nil, err
	}
	n := d * d
	ops := operator.PauliBasis(m)
	uDag := operator.Dag(u)
	s := mat.NewDense(n, n, nil)
	for b := 0; b < n; b++ {
		evolved := operator.Mul(operator.Mul(u, ops[b]), uDag)
		for a := 0; a < n; a++ {
			tr, trErr := operator.TraceMul(ops[a], evolved)
			if trErr != nil {
				return nil, trErr
			}
			s.Set(a, b, real(tr)/float64(d))
		}
	}

	return s, nil
}

// StateVec returns the orthonormal-Pauli coordinate vector of a state.
func StateVec(rho *mat.CDense) (*mat.VecDense, error) {
	x, err := operator.PauliCoords(rho)
	if err != nil {
		return nil, err
	}

	return mat.NewVecDense(len(x), x), nil
}

// EffectVec returns the orthonormal-Pauli coordinate vector of an effect.
func EffectVec(e *mat.CDense) (*mat.VecDense, error) {
	return StateVec(e)
}

// PTMToChoi converts a transfer matrix back to the Choi matrix
// J = Σ_ab S[a][b]·B_bᵀ ⊗ B_a (input factor first, trace d for TP input).
func PTMToChoi(s *mat.Dense) (*mat.CDense, error) {
	n, c := s.Dims()
	if n != c {
		return nil, operator.ErrNonSquare
	}
	m := 0
	for v := n; v > 1; v >>= 2 {
		m++
	}
	d := 1 << m
	if d*d != n {
		return nil, operator.ErrNotPowerOfTwo
	}
	ops := operator.PauliBasis(m)
	invD := 1 / float64(d) // both 1/√d normalizations
	j := mat.NewCDense(n, n, nil)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			w := s.At(a, b) * invD
			if w == 0 {
				continue
			}
			term := operator.Kron(operator.Transpose(ops[b]), ops[a])
			for i := 0; i < n; i++ {
				for k := 0; k < n; k++ {
					j.Set(i, k, j.At(i, k)+complex(w, 0)*term.At(i, k))
				}
			}
		}
	}

	return j, nil
}

// sequencePTM composes the transfer matrices of gates applied in order:
// the later gate multiplies from the left.
func sequencePTM(gs *GateSet, names []string) (*mat.Dense, error) {
	n := gs.dim * gs.dim
	out := eye(n)
	for _, name := range names {
		s, err := gs.gatePTM(name)
		if err != nil {
			return nil, err
		}
		next := mat.NewDense(n, n, nil)
		next.Mul(s, out)
		out = next
	}

	return out, nil
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// frobenius returns ‖A − B‖_F for real matrices of equal shape.
func frobenius(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	var s float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := a.At(i, j) - b.At(i, j)
			s += d * d
		}
	}

	return math.Sqrt(s)
}
