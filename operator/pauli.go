// SPDX-License-Identifier: MIT
// Package operator: Pauli strings and real Pauli coordinates.
//
// Pauli coordinates turn the complex reconstruction problem into a real one:
// a Hermitian d×d matrix A is exactly A = Σ_a x_a B_a with B_a = P_a/√d the
// orthonormal Pauli strings and x_a = Re Tr(B_a·A) ∈ ℝ. Fitters build their
// design matrices in these coordinates.

package operator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// pauliNames indexes the single-qubit Paulis: I=0, X=1, Y=2, Z=3.
var pauliNames = [4]byte{'I', 'X', 'Y', 'Z'}

func pauli1(idx int) *mat.CDense {
	p := mat.NewCDense(2, 2, nil)
	switch idx {
	case 0: // I
		p.Set(0, 0, 1)
		p.Set(1, 1, 1)
	case 1: // X
		p.Set(0, 1, 1)
		p.Set(1, 0, 1)
	case 2: // Y
		p.Set(0, 1, -1i)
		p.Set(1, 0, 1i)
	case 3: // Z
		p.Set(0, 0, 1)
		p.Set(1, 1, -1)
	default:
		panic("operator: pauli index out of range")
	}

	return p
}

// Pauli returns the single-qubit Pauli matrix named by one of "I","X","Y","Z".
func Pauli(name byte) *mat.CDense {
	for i, n := range pauliNames {
		if n == name {
			return pauli1(i)
		}
	}
	panic("operator: unknown Pauli name")
}

// NumQubits returns m with d = 2^m, or ErrNotPowerOfTwo.
func NumQubits(d int) (int, error) {
	if d < 1 {
		return 0, ErrNotPowerOfTwo
	}
	m := 0
	for v := d; v > 1; v >>= 1 {
		if v&1 != 0 {
			return 0, ErrNotPowerOfTwo
		}
		m++
	}

	return m, nil
}

// PauliString returns the m-qubit Pauli string with base-4 index a, digit q
// of a selecting the Pauli acting on qubit q (qubit 0 least significant).
func PauliString(a, m int) *mat.CDense {
	out := Identity(1)
	// qubit m-1 is the leftmost Kronecker factor.
	for q := m - 1; q >= 0; q-- {
		out = Kron(out, pauli1((a>>(2*q))&3))
	}

	return out
}

// PauliLabel returns the label of Pauli-string index a over m qubits,
// most-significant qubit first (e.g. a=0b0111, m=2 → "XZ").
func PauliLabel(a, m int) string {
	lbl := make([]byte, m)
	for q := 0; q < m; q++ {
		lbl[m-1-q] = pauliNames[(a>>(2*q))&3]
	}

	return string(lbl)
}

// PauliBasis returns all 4^m Pauli strings over m qubits in index order.
func PauliBasis(m int) []*mat.CDense {
	n := 1 << (2 * m)
	out := make([]*mat.CDense, n)
	for a := 0; a < n; a++ {
		out[a] = PauliString(a, m)
	}

	return out
}

// PauliCoords projects A onto the orthonormal Pauli basis of its dimension,
// returning x with x_a = Re Tr(B_a·A), B_a = P_a/√d. For Hermitian A the
// imaginary parts vanish and A = Σ_a x_a B_a exactly.
// Returns ErrNonSquare / ErrNotPowerOfTwo on unusable shapes.
func PauliCoords(a *mat.CDense) ([]float64, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	m, err := NumQubits(r)
	if err != nil {
		return nil, err
	}
	invSqrtD := 1 / math.Sqrt(float64(r))
	x := make([]float64, 1<<(2*m))
	for idx := range x {
		tr, trErr := TraceMul(PauliString(idx, m), a)
		if trErr != nil {
			return nil, trErr
		}
		x[idx] = real(tr) * invSqrtD
	}

	return x, nil
}

// FromPauliCoords rebuilds the Hermitian matrix Σ_a x_a P_a/√d of dimension d.
// len(x) must equal d².
func FromPauliCoords(x []float64, d int) (*mat.CDense, error) {
	m, err := NumQubits(d)
	if err != nil {
		return nil, err
	}
	if len(x) != d*d {
		return nil, ErrDimensionMismatch
	}
	invSqrtD := complex(1/math.Sqrt(float64(d)), 0)
	out := mat.NewCDense(d, d, nil)
	for a, xa := range x {
		if xa == 0 {
			continue
		}
		p := PauliString(a, m)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				out.Set(i, j, out.At(i, j)+complex(xa, 0)*invSqrtD*p.At(i, j))
			}
		}
	}

	return out, nil
}
