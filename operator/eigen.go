// SPDX-License-Identifier: MIT
// Package operator: Hermitian spectral routines.
//
// gonum's EigenSym works on real symmetric matrices, so Hermitian H = X + iY
// is embedded as the real symmetric 2d×2d block matrix
//
//	M = ⎡X −Y⎤
//	    ⎣Y  X⎦
//
// whose spectrum is that of H with every eigenvalue doubled: if H(u+iv)=λ(u+iv)
// then M(u;v)=λ(u;v) and M(−v;u)=λ(−v;u). Summing w·w† over all 2d real
// eigenvectors (mapped back to w = u+iv) therefore yields twice the complex
// spectral projector, which is what the reconstruction helpers exploit.

package operator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// embed returns the real symmetric 2d×2d embedding of Hermitian a.
func embed(a *mat.CDense) *mat.SymDense {
	d, _ := a.Dims()
	n := 2 * d
	data := make([]float64, n*n)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			re, im := real(a.At(i, j)), imag(a.At(i, j))
			data[i*n+j] = re
			data[(d+i)*n+d+j] = re
			data[i*n+d+j] = -im
			data[(d+i)*n+j] = im
		}
	}

	return mat.NewSymDense(n, data)
}

// hermFactorize runs the symmetric eigendecomposition of the embedding.
func hermFactorize(a *mat.CDense, eps float64) (*mat.EigenSym, int, error) {
	d, c := a.Dims()
	if d != c {
		return nil, 0, ErrNonSquare
	}
	if !IsHermitian(a, eps) {
		return nil, 0, ErrNotHermitian
	}
	var es mat.EigenSym
	if ok := es.Factorize(embed(a), true); !ok {
		return nil, 0, ErrEigenFailed
	}

	return &es, d, nil
}

// EigenvaluesH returns the d eigenvalues of Hermitian a in ascending order.
// eps bounds the accepted Hermiticity violation.
func EigenvaluesH(a *mat.CDense, eps float64) ([]float64, error) {
	es, d, err := hermFactorize(a, eps)
	if err != nil {
		return nil, err
	}
	all := es.Values(nil) // ascending, each eigenvalue of a appears twice
	vals := make([]float64, d)
	for i := 0; i < d; i++ {
		vals[i] = (all[2*i] + all[2*i+1]) / 2
	}

	return vals, nil
}

// MinEigenvalue returns the smallest eigenvalue of Hermitian a.
func MinEigenvalue(a *mat.CDense, eps float64) (float64, error) {
	vals, err := EigenvaluesH(a, eps)
	if err != nil {
		return 0, err
	}

	return vals[0], nil
}

// applySpectral rebuilds f(a) = Σ f(λ_i)·w_i w_i† from the real embedding.
// The factor ½ compensates the doubled spectrum of the embedding.
func applySpectral(a *mat.CDense, eps float64, f func(float64) float64) (*mat.CDense, error) {
	es, d, err := hermFactorize(a, eps)
	if err != nil {
		return nil, err
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	out := mat.NewCDense(d, d, nil)
	for k := 0; k < 2*d; k++ {
		fv := f(vals[k])
		if fv == 0 {
			continue
		}
		// w = u + iv from the stacked real eigenvector (u;v).
		w := make([]complex128, d)
		for i := 0; i < d; i++ {
			w[i] = complex(vecs.At(i, k), vecs.At(d+i, k))
		}
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				out.Set(i, j, out.At(i, j)+complex(fv/2, 0)*w[i]*complex(real(w[j]), -imag(w[j])))
			}
		}
	}

	return out, nil
}

// ClipPSD projects Hermitian a onto the PSD cone by zeroing negative
// eigenvalues. It returns the clipped matrix and the violation magnitude
// |min(λ_min, 0)| so callers can report how unphysical the input was.
func ClipPSD(a *mat.CDense, eps float64) (*mat.CDense, float64, error) {
	vals, err := EigenvaluesH(a, eps)
	if err != nil {
		return nil, 0, err
	}
	violation := 0.0
	if vals[0] < 0 {
		violation = -vals[0]
	}
	clipped, err := applySpectral(a, eps, func(l float64) float64 { return math.Max(l, 0) })
	if err != nil {
		return nil, 0, err
	}

	return clipped, violation, nil
}

// Cholesky returns the lower-triangular L with a = L·L† for Hermitian
// positive-definite a. Returns ErrNotPositive on a non-positive pivot.
func Cholesky(a *mat.CDense, eps float64) (*mat.CDense, error) {
	d, c := a.Dims()
	if d != c {
		return nil, ErrNonSquare
	}
	if !IsHermitian(a, eps) {
		return nil, ErrNotHermitian
	}
	low := mat.NewCDense(d, d, nil)
	for j := 0; j < d; j++ {
		sum := real(a.At(j, j))
		for k := 0; k < j; k++ {
			v := low.At(j, k)
			sum -= real(v)*real(v) + imag(v)*imag(v)
		}
		if sum <= 0 {
			return nil, ErrNotPositive
		}
		piv := math.Sqrt(sum)
		low.Set(j, j, complex(piv, 0))
		for i := j + 1; i < d; i++ {
			s := a.At(i, j)
			for k := 0; k < j; k++ {
				s -= low.At(i, k) * complex(real(low.At(j, k)), -imag(low.At(j, k)))
			}
			low.Set(i, j, s/complex(piv, 0))
		}
	}

	return low, nil
}
