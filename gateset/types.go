// SPDX-License-Identifier: MIT

package gateset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/operator"
)

var (
	// ErrBadGateSet signals a structurally invalid gate set (mismatched
	// dimensions, empty gate list, first fiducial not the empty sequence,
	// or a fiducial count different from d²).
	ErrBadGateSet = errors.New("gateset: invalid gate set")

	// ErrUnknownGate signals a fiducial or germ referencing a gate the set
	// does not contain.
	ErrUnknownGate = errors.New("gateset: unknown gate label")

	// ErrInsufficientFiducials signals a singular or ill-conditioned Gram
	// matrix: the fiducials are not informationally complete.
	ErrInsufficientFiducials = errors.New("gateset: fiducials are not informationally complete")
)

// GateSet is an immutable description of a GST experiment: the ideal target
// unitaries, the fiducial sequences spanning the self-consistent frame, and
// the native preparation/effect. Derive variants with WithGate; the receiver
// is never mutated.
type GateSet struct {
	dim       int
	names     []string
	gates     map[string]*mat.CDense
	fiducials [][]string
	rho0      *mat.CDense
	effect0   *mat.CDense
}

// New validates and builds a gate set. Requirements:
//
//   - every gate is dim×dim with dim a power of two
//   - fiducials[0] is the empty sequence (the identity fiducial)
//   - exactly dim² fiducials (a square, invertible Gram matrix)
//   - fiducials reference only gates in the set
//
// Preparation and effect default to |0…0⟩⟨0…0|.
func New(dim int, gates map[string]*mat.CDense, fiducials [][]string) (*GateSet, error) {
	if _, err := operator.NumQubits(dim); err != nil || len(gates) == 0 {
		return nil, ErrBadGateSet
	}
	if len(fiducials) != dim*dim || len(fiducials[0]) != 0 {
		return nil, ErrBadGateSet
	}

	names := make([]string, 0, len(gates))
	copied := make(map[string]*mat.CDense, len(gates))
	for name, u := range gates {
		r, c := u.Dims()
		if r != dim || c != dim {
			return nil, ErrBadGateSet
		}
		names = append(names, name)
		copied[name] = operator.Scale(1, u)
	}
	sort.Strings(names)

	fids := make([][]string, len(fiducials))
	for i, f := range fiducials {
		for _, g := range f {
			if _, ok := copied[g]; !ok {
				return nil, fmt.Errorf("fiducial %d gate %q: %w", i, g, ErrUnknownGate)
			}
		}
		fids[i] = append([]string(nil), f...)
	}

	zero := operator.Ket(make([]complex128, dim)...)
	zero.Set(0, 0, 1)

	return &GateSet{
		dim:       dim,
		names:     names,
		gates:     copied,
		fiducials: fids,
		rho0:      operator.Projector(zero),
		effect0:   operator.Projector(zero),
	}, nil
}

// Default1Q is the standard single-qubit set: gates X, H, S with fiducials
// {}, {X}, {H}, {H,S} preparing |0⟩, |1⟩, |+⟩, |+i⟩ out of |0⟩.
func Default1Q() *GateSet {
	x := operator.Pauli('X')
	h := mat.NewCDense(2, 2, []complex128{
		complex(1/sqrt2, 0), complex(1/sqrt2, 0),
		complex(1/sqrt2, 0), complex(-1/sqrt2, 0),
	})
	s := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1i})

	gs, err := New(2,
		map[string]*mat.CDense{"X": x, "H": h, "S": s},
		[][]string{{}, {"X"}, {"H"}, {"H", "S"}})
	if err != nil {
		panic(err) // static data; programmer error only
	}

	return gs
}

const sqrt2 = 1.4142135623730951

// Dim returns the Hilbert-space dimension.
func (gs *GateSet) Dim() int { return gs.dim }

// Names returns the gate labels in sorted order.
func (gs *GateSet) Names() []string { return append([]string(nil), gs.names...) }

// Fiducials returns the fiducial sequences.
func (gs *GateSet) Fiducials() [][]string {
	out := make([][]string, len(gs.fiducials))
	for i, f := range gs.fiducials {
		out[i] = append([]string(nil), f...)
	}

	return out
}

// Gate returns a copy of the ideal unitary for name.
func (gs *GateSet) Gate(name string) (*mat.CDense, error) {
	u, ok := gs.gates[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}

	return operator.Scale(1, u), nil
}

// WithGate returns a new gate set extended (or overridden) with name ↦ u.
// The receiver is unchanged.
func (gs *GateSet) WithGate(name string, u *mat.CDense) (*GateSet, error) {
	gates := make(map[string]*mat.CDense, len(gs.gates)+1)
	for n, g := range gs.gates {
		gates[n] = g
	}
	gates[name] = u

	return New(gs.dim, gates, gs.fiducials)
}

// gatePTM returns the transfer matrix of one named ideal gate.
func (gs *GateSet) gatePTM(name string) (*mat.Dense, error) {
	u, ok := gs.gates[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}

	return PTM(u)
}

// Sequence is one GST circuit: preparation fiducial PrepFid, then Power
// repetitions of the Germ, then measurement fiducial MeasFid. Power 0 with
// an empty germ is a bare Gram-matrix circuit.
type Sequence struct {
	PrepFid int
	MeasFid int
	Germ    []string
	Power   int
}

// Key is the canonical data-table key of the sequence.
func (s Sequence) Key() string {
	return fmt.Sprintf("F%d|%s^%d|F%d", s.PrepFid, strings.Join(s.Germ, ","), s.Power, s.MeasFid)
}

// Sequences enumerates the GST circuit set: every fiducial pair bare (for
// the Gram matrix) plus every fiducial pair around each germ at powers
// 1..maxPower. Deterministic order: germ-major, then power, then
// preparation fiducial fastest.
func (gs *GateSet) Sequences(germs [][]string, maxPower int) []Sequence {
	nF := len(gs.fiducials)
	out := make([]Sequence, 0, nF*nF*(1+len(germs)*maxPower))
	for i := 0; i < nF; i++ {
		for j := 0; j < nF; j++ {
			out = append(out, Sequence{PrepFid: j, MeasFid: i})
		}
	}
	for _, germ := range germs {
		for p := 1; p <= maxPower; p++ {
			for i := 0; i < nF; i++ {
				for j := 0; j < nF; j++ {
					out = append(out, Sequence{
						PrepFid: j, MeasFid: i,
						Germ: append([]string(nil), germ...), Power: p,
					})
				}
			}
		}
	}

	return out
}

// GermsFromGates returns one singleton germ per gate, the minimal germ list
// for linear-inversion GST.
func (gs *GateSet) GermsFromGates() [][]string {
	out := make([][]string, len(gs.names))
	for i, n := range gs.names {
		out[i] = []string{n}
	}

	return out
}

// Data maps Sequence.Key() to outcome counts (bitstrings, qubit 0 rightmost).
type Data map[string]map[string]int

// Options bounds the engine's numerics.
type Options struct {
	// CondMax is the Gram condition-number ceiling; beyond it the fiducials
	// count as informationally incomplete.
	CondMax float64

	// Refine enables numerical gauge optimization on top of the ideal-frame
	// seed.
	Refine bool

	// MaxIterations caps the gauge optimizer.
	MaxIterations int

	// Tolerance is the gauge optimizer's function-convergence threshold.
	Tolerance float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		CondMax:       1e6,
		Refine:        true,
		MaxIterations: 400,
		Tolerance:     1e-10,
	}
}

// Result is one GST reconstruction: per-gate Choi estimates in a common
// gauge, the reconstructed fiducial preparation/effect, and diagnostics.
type Result struct {
	// Gates maps gate label to its gauge-fixed Choi matrix.
	Gates map[string]*mat.CDense

	// PTMs maps gate label to its gauge-fixed transfer matrix.
	PTMs map[string]*mat.Dense

	// Rho and Effect are the reconstructed preparation and measurement
	// operators in the fixed gauge.
	Rho    *mat.CDense
	Effect *mat.CDense

	// GramCondition is the Gram matrix condition number.
	GramCondition float64

	// GaugeObjective is the terminal gauge-matching objective value.
	GaugeObjective float64

	// GaugeConverged reports gauge-optimizer convergence; a false value is
	// accompanied by a warning, never silently accepted.
	GaugeConverged bool

	// Warnings collects non-fatal diagnostics.
	Warnings []string
}
