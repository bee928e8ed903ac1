// SPDX-License-Identifier: MIT
// Package basis: the built-in basis library. Builders construct fresh values
// on every call; there is no process-wide mutable registry.

package basis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/operator"
)

// Built-in basis names.
const (
	Pauli4 = "pauli4" // preparation: Zp, Zm, Xp, Yp
	SIC    = "sic"    // preparation: S0..S3 (tetrahedron)
	Pauli  = "pauli"  // measurement: X, Y, Z settings
)

func ket(a, b complex128) *mat.CDense { return operator.Ket(a, b) }

func proj(a, b complex128) *mat.CDense {
	return operator.Projector(ket(a, b))
}

// NewPrep returns the named preparation basis, or ErrUnknownBasis.
func NewPrep(name string) (*Prep, error) {
	inv2 := complex(1/math.Sqrt2, 0)
	switch name {
	case Pauli4:
		return &Prep{
			name:   Pauli4,
			labels: []string{"Zp", "Zm", "Xp", "Yp"},
			states: map[string]*mat.CDense{
				"Zp": proj(1, 0),
				"Zm": proj(0, 1),
				"Xp": proj(inv2, inv2),
				"Yp": proj(inv2, 1i*inv2),
			},
		}, nil
	case SIC:
		states := map[string]*mat.CDense{"S0": proj(1, 0)}
		a := complex(1/math.Sqrt(3), 0)
		b := complex(math.Sqrt(2.0/3.0), 0)
		for k := 1; k <= 3; k++ {
			phase := cmplx.Exp(complex(0, 2*math.Pi*float64(k-1)/3))
			states[sicLabel(k)] = proj(a, b*phase)
		}

		return &Prep{
			name:   SIC,
			labels: []string{"S0", "S1", "S2", "S3"},
			states: states,
		}, nil
	default:
		return nil, ErrUnknownBasis
	}
}

func sicLabel(k int) string { return string([]byte{'S', byte('0' + k)}) }

// NewMeas returns the named measurement basis, or ErrUnknownBasis.
func NewMeas(name string) (*Meas, error) {
	if name != Pauli {
		return nil, ErrUnknownBasis
	}
	inv2 := complex(1/math.Sqrt2, 0)
	settings := map[string]Setting{
		"X": {label: "X", effects: []*mat.CDense{proj(inv2, inv2), proj(inv2, -inv2)}},
		"Y": {label: "Y", effects: []*mat.CDense{proj(inv2, 1i * inv2), proj(inv2, -1i * inv2)}},
		"Z": {label: "Z", effects: []*mat.CDense{proj(1, 0), proj(0, 1)}},
	}

	return newMeas(Pauli, []string{"X", "Y", "Z"}, settings)
}
