// SPDX-License-Identifier: MIT
// Package basis: core types. Prep and Meas values are immutable once built;
// accessors hand out defensive copies of label slices and fresh operator
// matrices, never internal state.

package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/operator"
)

// completenessEps bounds the accepted deviation of Σ effects from identity.
const completenessEps = 1e-9

// Prep is a named, ordered set of labeled single-qubit preparation states.
type Prep struct {
	name   string
	labels []string
	states map[string]*mat.CDense
}

// Setting is one measurement configuration: a label (e.g. "X") and its
// projective effects ordered by outcome bit (index 0 ↔ outcome '0').
type Setting struct {
	label   string
	effects []*mat.CDense
}

// Label returns the setting's label.
func (s Setting) Label() string { return s.label }

// Effect returns a copy of the effect for the given outcome bit.
func (s Setting) Effect(outcome int) (*mat.CDense, error) {
	if outcome < 0 || outcome >= len(s.effects) {
		return nil, ErrBadOutcome
	}

	return operator.Scale(1, s.effects[outcome]), nil
}

// Outcomes returns the number of outcomes of the setting.
func (s Setting) Outcomes() int { return len(s.effects) }

// Meas is a named, ordered set of labeled single-qubit measurement settings.
type Meas struct {
	name     string
	labels   []string
	settings map[string]Setting
}

// Name returns the basis name.
func (p *Prep) Name() string { return p.name }

// Labels returns the ordered preparation labels.
func (p *Prep) Labels() []string { return append([]string(nil), p.labels...) }

// State returns a copy of the single-qubit state for label.
func (p *Prep) State(label string) (*mat.CDense, error) {
	st, ok := p.states[label]
	if !ok {
		return nil, ErrUnknownLabel
	}

	return operator.Scale(1, st), nil
}

// ProductState returns the k-qubit tensor product of per-qubit states,
// labels[q] addressing qubit q (least significant).
func (p *Prep) ProductState(labels []string) (*mat.CDense, error) {
	out := operator.Identity(1)
	for q := len(labels) - 1; q >= 0; q-- {
		st, err := p.State(labels[q])
		if err != nil {
			return nil, err
		}
		out = operator.Kron(out, st)
	}

	return out, nil
}

// Name returns the basis name.
func (m *Meas) Name() string { return m.name }

// Labels returns the ordered setting labels.
func (m *Meas) Labels() []string { return append([]string(nil), m.labels...) }

// Setting returns the measurement setting for label.
func (m *Meas) Setting(label string) (Setting, error) {
	s, ok := m.settings[label]
	if !ok {
		return Setting{}, ErrUnknownLabel
	}

	return s, nil
}

// ProductEffect returns the k-qubit effect for per-qubit settings labels and
// the outcome bitstring. labels[q] addresses qubit q; outcome is read with
// its rightmost character as qubit 0's bit, so len(outcome) == len(labels).
func (m *Meas) ProductEffect(labels []string, outcome string) (*mat.CDense, error) {
	k := len(labels)
	if len(outcome) != k {
		return nil, ErrBadOutcome
	}
	out := operator.Identity(1)
	for q := k - 1; q >= 0; q-- {
		s, err := m.Setting(labels[q])
		if err != nil {
			return nil, err
		}
		bitChar := outcome[k-1-q]
		if bitChar != '0' && bitChar != '1' {
			return nil, ErrBadOutcome
		}
		eff, err := s.Effect(int(bitChar - '0'))
		if err != nil {
			return nil, err
		}
		out = operator.Kron(out, eff)
	}

	return out, nil
}

// newMeas validates completeness of every setting before accepting it.
func newMeas(name string, labels []string, settings map[string]Setting) (*Meas, error) {
	for _, lbl := range labels {
		s := settings[lbl]
		sum := mat.NewCDense(2, 2, nil)
		for _, e := range s.effects {
			sum = operator.Add(sum, e)
		}
		if operator.FrobeniusDistance(sum, operator.Identity(2)) > completenessEps {
			return nil, ErrIncomplete
		}
	}

	return &Meas{name: name, labels: labels, settings: settings}, nil
}
