// SPDX-License-Identifier: MIT

package operator

import "gonum.org/v1/gonum/mat"

// PureStateFidelity returns F = ⟨ψ|ρ|ψ⟩ for a column vector psi and a
// density matrix rho of matching dimension. Only valid against pure targets;
// mixed-vs-mixed fidelity needs the full Uhlmann formula and is out of scope.
func PureStateFidelity(psi, rho *mat.CDense) (float64, error) {
	n, _ := psi.Dims()
	r, c := rho.Dims()
	if r != c {
		return 0, ErrNonSquare
	}
	if r != n {
		return 0, ErrDimensionMismatch
	}
	tr, err := TraceMul(Ketbra(psi, psi), rho)
	if err != nil {
		return 0, err
	}

	return real(tr), nil
}

// ProcessFidelity returns the entanglement fidelity Tr(J·J_ref)/d² between a
// reconstructed Choi matrix and the Choi matrix of a reference *unitary*
// channel, both normalized to trace d (the TP convention used throughout).
func ProcessFidelity(j, jRef *mat.CDense) (float64, error) {
	r, c := j.Dims()
	if r != c {
		return 0, ErrNonSquare
	}
	m, err := NumQubits(r)
	if err != nil {
		return 0, err
	}
	d := 1 << (m / 2) // J lives on H_in ⊗ H_out with dim d each
	if d*d != r {
		return 0, ErrDimensionMismatch
	}
	tr, err := TraceMul(j, jRef)
	if err != nil {
		return 0, err
	}

	return real(tr) / float64(d*d), nil
}

// ChoiOfUnitary returns the Choi matrix J(U) = (𝟙⊗U)|Ω⟩⟨Ω|(𝟙⊗U)†·d of the
// unitary channel ρ ↦ UρU†, normalized to trace d, input factor first.
func ChoiOfUnitary(u *mat.CDense) (*mat.CDense, error) {
	d, c := u.Dims()
	if d != c {
		return nil, ErrNonSquare
	}
	j := mat.NewCDense(d*d, d*d, nil)
	// J = Σ_ik |i⟩⟨k| ⊗ U|i⟩⟨k|U†, entry ((i,a),(k,b)) = U[a,i]·conj(U[b,k]).
	for i := 0; i < d; i++ {
		for k := 0; k < d; k++ {
			for a := 0; a < d; a++ {
				for b := 0; b < d; b++ {
					v := u.At(a, i) * conj(u.At(b, k))
					j.Set(i*d+a, k*d+b, v)
				}
			}
		}
	}

	return j, nil
}

func conj(z complex128) complex128 { return complex(real(z), -imag(z)) }
