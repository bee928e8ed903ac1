// SPDX-License-Identifier: MIT

package basis

import "errors"

var (
	// ErrUnknownBasis is returned when a basis name is not in the library.
	ErrUnknownBasis = errors.New("basis: unknown basis name")

	// ErrUnknownLabel is returned when a preparation or measurement label is
	// not part of the requested basis.
	ErrUnknownLabel = errors.New("basis: unknown label")

	// ErrIncomplete signals a measurement setting whose effects do not sum to
	// the identity within tolerance.
	ErrIncomplete = errors.New("basis: measurement effects do not sum to identity")

	// ErrBadOutcome signals an outcome bitstring whose width does not match
	// the number of measured qubits or which contains non-binary characters.
	ErrBadOutcome = errors.New("basis: malformed outcome bitstring")
)
