// Package basis is the tomography basis library: named, immutable sets of
// single-qubit preparation states and measurement settings, with tensor
// products across qubits.
//
// Built-in bases:
//
//   - preparation "pauli4" — the informationally complete quartet
//     Zp=|0⟩⟨0|, Zm=|1⟩⟨1|, Xp=|+⟩⟨+|, Yp=|+i⟩⟨+i|
//   - preparation "sic"    — the symmetric (SIC) tetrahedron S0..S3
//   - measurement "pauli"  — the X, Y, Z settings, two projective effects
//     each, ordered by outcome bit
//
// Multi-qubit operators are Kronecker products of per-qubit elements in the
// least-significant-qubit order documented in package operator: the label
// slice is indexed by qubit, labels[0] addressing qubit 0, and the qubit-0
// factor is the last Kronecker factor. Outcome bitstrings follow the same
// convention with the rightmost character belonging to qubit 0.
//
// Every measurement setting is validated at construction: its effects must
// sum to the identity (completeness). A Basis value is immutable after
// construction and safe to share across concurrent fits.
package basis
