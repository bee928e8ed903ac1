// Package gateset implements self-consistent gate set tomography (GST).
//
// 🚀 The three phases
//
//  1. Data collection: circuits are fiducial-prefix · germ-power · fiducial-
//     suffix sandwiches. Fiducials span the preparation/measurement frame;
//     germs are the gates under estimation, repeated to amplify their errors.
//     Sequences enumerates the set; the backend fills a Data table keyed by
//     Sequence.Key().
//
//  2. Raw estimation: the Gram matrix G[i][j] = p(meas fiducial i, prep
//     fiducial j) encodes every fiducial overlap. With F_0 the empty
//     fiducial, linear inversion gives each gate's transfer matrix as
//     G⁻¹·M_g, the prepared state as e_0 and the effect as G's first row —
//     all expressed in an arbitrary frame (the "gauge") because the
//     fiducials themselves were never independently known. A rank-deficient
//     G means the fiducials are not informationally complete:
//     ErrInsufficientFiducials.
//
//  3. Gauge fixing: a similarity transform T is optimized (Nelder–Mead,
//     bounded iterations, seeded from the ideal-fiducial frame) so the
//     transformed estimates best match the ideal gates used as anchors; T is
//     then applied to every gate, including any without an ideal reference.
//     Non-convergence is reported in the result, never silently accepted.
//
// Everything is computed in the Pauli transfer matrix (PTM) representation
// over the orthonormal Pauli basis of package operator; outputs are
// converted to Choi matrices (input factor first, trace d).
//
// A GateSet is an immutable value: deriving a variant (WithGate) returns a
// new set and leaves the receiver untouched. There is no process-wide
// default gate set.
package gateset
