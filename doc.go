// Package qtomo is a pure-Go quantum tomography toolkit: generate the
// experiment configurations, aggregate the measured counts, and fit state,
// process, and gate-set estimates out of them.
//
// 🚀 The packages, in pipeline order:
//
//   - operator:   complex matrix primitives — Pauli strings, Choi matrices,
//     Hermitian spectra, fidelities
//   - basis:      preparation and measurement basis libraries (pauli4, sic,
//     pauli) with per-qubit product construction
//   - experiment: deterministic enumeration of tomography configurations and
//     register bookkeeping
//   - counts:     the outcome-count table — merging, validation,
//     postselection, marginalization
//   - fit:        linear inversion, weighted least squares, and constrained
//     maximum-likelihood estimation of states and channels
//   - gateset:    self-consistent gate set tomography with gauge fixing
//
// ✨ Why qtomo?
//
//   - Explicit conventions – qubit order, Pauli indexing and Choi factor
//     order are documented once, in package operator, and honored everywhere
//   - Fail loudly – sentinel errors for every misuse; constraint violations
//     surface as diagnostics, never as silent fallbacks
//   - Each package is usable on its own; none drags in the others' concerns
//
// Quick pipeline sketch:
//
//	experiment.Generate ──▶ backend runs circuits ──▶ counts.Table
//	                                                      │
//	            fit.State / fit.Process / gateset.Run ◀───┘
//
//	go get github.com/quanterra/qtomo
package qtomo
