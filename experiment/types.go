// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"strings"
)

// Kind selects the tomography flavor a configuration set is generated for.
type Kind int

const (
	// StateTomography reconstructs a density matrix: measurement settings
	// only, no preparation labels.
	StateTomography Kind = iota

	// ProcessTomography reconstructs a Choi matrix: every preparation label
	// combined with every measurement setting.
	ProcessTomography
)

// Configuration is one (preparation, measurement) tuple, one label per
// tomography qubit, index q addressing qubit q. Preps is empty for state
// tomography. Configurations are immutable values.
type Configuration struct {
	Preps []string
	Meas  []string
}

// Key returns the canonical join key "prep0,prep1|meas0,meas1". The counts
// package and backends key their tables by this string.
func (c Configuration) Key() string {
	return strings.Join(c.Preps, ",") + "|" + strings.Join(c.Meas, ",")
}

// Builder is the configuration-to-circuit contract at the backend boundary.
// The circuit type is the backend's own; this library never inspects it.
type Builder interface {
	Build(cfg Configuration) (circuit any, err error)
}

// Options configures configuration generation.
//
//   - Kind:         state or process tomography.
//   - Qubits:       number of tomography qubits k (≥ 1).
//   - PrepLabels:   ordered preparation labels (process tomography only);
//     defaults to the pauli4 quartet.
//   - MeasLabels:   ordered measurement setting labels; defaults to X, Y, Z.
//   - Register:     optional measured-qubit subset of a wider register, one
//     physical index per tomography qubit; defaults to 0..k-1.
//   - PrepRegister: optional preparation-qubit subset, when preparation and
//     measurement act on physically different qubits; defaults to Register.
//   - Width:        total classical register width; defaults to k (or the
//     highest register index + 1).
type Options struct {
	Kind         Kind
	Qubits       int
	PrepLabels   []string
	MeasLabels   []string
	Register     []int
	PrepRegister []int
	Width        int
}

// DefaultOptions returns the canonical options for kind over k qubits:
// pauli4 preparations, Pauli measurements, contiguous register.
func DefaultOptions(kind Kind, qubits int) Options {
	return Options{
		Kind:       kind,
		Qubits:     qubits,
		PrepLabels: []string{"Zp", "Zm", "Xp", "Yp"},
		MeasLabels: []string{"X", "Y", "Z"},
	}
}

var (
	// ErrBadQubits signals a non-positive tomography qubit count.
	ErrBadQubits = errors.New("experiment: qubit count must be ≥ 1")

	// ErrBadRegister signals a register that does not match the qubit count,
	// repeats an index, or exceeds the declared width.
	ErrBadRegister = errors.New("experiment: malformed qubit register")

	// ErrNoLabels signals an empty preparation or measurement label set where
	// one is required.
	ErrNoLabels = errors.New("experiment: no basis labels to enumerate")
)
