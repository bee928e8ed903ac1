// SPDX-License-Identifier: MIT
// Package operator: sentinel error set. All kernels return these sentinels
// (optionally wrapped with fmt.Errorf("...: %w", err) at facade boundaries)
// and tests match them via errors.Is. Panics are reserved for programmer
// errors in private helpers.

package operator

import "errors"

var (
	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("operator: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrNotPowerOfTwo signals a dimension that is not 2^m; Pauli-string
	// machinery is only defined on qubit Hilbert spaces.
	ErrNotPowerOfTwo = errors.New("operator: dimension is not a power of two")

	// ErrNotHermitian signals that a Hermitian matrix was required but the
	// input violated A = A† beyond the configured tolerance.
	ErrNotHermitian = errors.New("operator: matrix is not Hermitian within eps")

	// ErrNotPositive signals that a positive-(semi)definite matrix was
	// required (e.g. by the Cholesky factorization) but the input wasn't.
	ErrNotPositive = errors.New("operator: matrix is not positive definite")

	// ErrEigenFailed indicates that the symmetric eigendecomposition backing
	// a Hermitian spectral routine did not converge.
	ErrEigenFailed = errors.New("operator: eigendecomposition failed")
)
