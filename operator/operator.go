// SPDX-License-Identifier: MIT
// Package operator: dense complex kernels. Every function allocates a fresh
// result; inputs are never mutated.

package operator

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the d×d identity operator.
func Identity(d int) *mat.CDense {
	id := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		id.Set(i, i, 1)
	}

	return id
}

// Ket returns the d×1 column vector with amplitudes amps.
func Ket(amps ...complex128) *mat.CDense {
	v := mat.NewCDense(len(amps), 1, nil)
	for i, a := range amps {
		v.Set(i, 0, a)
	}

	return v
}

// Ketbra returns |ψ⟩⟨φ| for column vectors psi and phi of equal dimension.
func Ketbra(psi, phi *mat.CDense) *mat.CDense {
	n, _ := psi.Dims()
	m, _ := phi.Dims()
	out := mat.NewCDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out.Set(i, j, psi.At(i, 0)*cmplx.Conj(phi.At(j, 0)))
		}
	}

	return out
}

// Projector returns |ψ⟩⟨ψ| for a column vector psi, normalized to unit trace.
func Projector(psi *mat.CDense) *mat.CDense {
	p := Ketbra(psi, psi)
	n, _ := p.Dims()
	var tr float64
	for i := 0; i < n; i++ {
		tr += real(p.At(i, i))
	}
	if tr > 0 {
		return Scale(complex(1/tr, 0), p)
	}

	return p
}

// Dag returns the conjugate transpose A†.
func Dag(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}

	return out
}

// Transpose returns Aᵀ (no conjugation).
func Transpose(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}

	return out
}

// Mul returns the matrix product A·B.
// Panics on inner-dimension mismatch; shape checks belong to the caller.
func Mul(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		panic(ErrDimensionMismatch)
	}
	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var s complex128
			for k := 0; k < ca; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, s)
		}
	}

	return out
}

// Add returns A + B. Panics on shape mismatch.
func Add(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		panic(ErrDimensionMismatch)
	}
	out := mat.NewCDense(ra, ca, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			out.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}

	return out
}

// Sub returns A − B. Panics on shape mismatch.
func Sub(a, b *mat.CDense) *mat.CDense {
	return Add(a, Scale(-1, b))
}

// Scale returns s·A.
func Scale(s complex128, a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, s*a.At(i, j))
		}
	}

	return out
}

// Kron returns the Kronecker product A ⊗ B.
func Kron(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	out := mat.NewCDense(ra*rb, ca*cb, nil)
	for i1 := 0; i1 < ra; i1++ {
		for j1 := 0; j1 < ca; j1++ {
			av := a.At(i1, j1)
			if av == 0 {
				continue
			}
			for i2 := 0; i2 < rb; i2++ {
				for j2 := 0; j2 < cb; j2++ {
					out.Set(i1*rb+i2, j1*cb+j2, av*b.At(i2, j2))
				}
			}
		}
	}

	return out
}

// KronAll folds Kron over ops left to right. With the least-significant-qubit
// convention the last element of ops acts on qubit 0.
func KronAll(ops ...*mat.CDense) *mat.CDense {
	if len(ops) == 0 {
		return Identity(1)
	}
	out := ops[0]
	for _, o := range ops[1:] {
		out = Kron(out, o)
	}

	return out
}

// Trace returns Tr(A). Returns ErrNonSquare on non-square input.
func Trace(a *mat.CDense) (complex128, error) {
	r, c := a.Dims()
	if r != c {
		return 0, ErrNonSquare
	}
	var tr complex128
	for i := 0; i < r; i++ {
		tr += a.At(i, i)
	}

	return tr, nil
}

// TraceMul returns Tr(A·B) without forming the product.
func TraceMul(a, b *mat.CDense) (complex128, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb || ra != cb {
		return 0, ErrDimensionMismatch
	}
	var tr complex128
	for i := 0; i < ra; i++ {
		for k := 0; k < ca; k++ {
			tr += a.At(i, k) * b.At(k, i)
		}
	}

	return tr, nil
}

// PartialTraceOut traces out the output (second) factor of an operator on
// H_in ⊗ H_out, returning a dIn×dIn matrix. For a Choi matrix this is the
// trace-preservation witness: PartialTraceOut(J, dIn, dOut) = 𝟙 iff TP.
func PartialTraceOut(a *mat.CDense, dIn, dOut int) (*mat.CDense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if r != dIn*dOut {
		return nil, ErrDimensionMismatch
	}
	out := mat.NewCDense(dIn, dIn, nil)
	for i := 0; i < dIn; i++ {
		for j := 0; j < dIn; j++ {
			var s complex128
			for o := 0; o < dOut; o++ {
				s += a.At(i*dOut+o, j*dOut+o)
			}
			out.Set(i, j, s)
		}
	}

	return out, nil
}

// IsHermitian reports whether A = A† within eps, entrywise.
func IsHermitian(a *mat.CDense, eps float64) bool {
	r, c := a.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			if cmplx.Abs(a.At(i, j)-cmplx.Conj(a.At(j, i))) > eps {
				return false
			}
		}
	}

	return true
}

// Hermitize returns (A + A†)/2, the Hermitian part of A.
func Hermitize(a *mat.CDense) *mat.CDense {
	return Scale(0.5, Add(a, Dag(a)))
}

// FrobeniusDistance returns ‖A − B‖_F. Panics on shape mismatch.
func FrobeniusDistance(a, b *mat.CDense) float64 {
	d := Sub(a, b)
	r, c := d.Dims()
	var s float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			s += real(v)*real(v) + imag(v)*imag(v)
		}
	}

	return math.Sqrt(s)
}
