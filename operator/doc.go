// Package operator is the complex-matrix kernel underneath qtomo.
//
// 🚀 What lives here?
//
//	Dense complex128 operators (states, effects, Choi matrices) built on
//	gonum's mat.CDense, plus the handful of linear-algebra kernels every
//	tomography component needs:
//	  • Kronecker products, adjoint, multiplication, trace, partial trace
//	  • Pauli-string bases and real "Pauli coordinates" of Hermitian matrices
//	  • Hermitian eigendecomposition via the real-symmetric embedding
//	  • PSD clipping, Cholesky factors, pure-state and process fidelity
//
// Conventions (used consistently by every downstream package):
//
//   - Qubit 0 is the least-significant qubit: basis index i addresses qubit q
//     through bit q of i, and tensor products are written
//     A_{k-1} ⊗ … ⊗ A_1 ⊗ A_0 so the last factor acts on qubit 0.
//   - Pauli strings are indexed base-4 (I=0, X=1, Y=2, Z=3), digit q of the
//     index selecting the Pauli on qubit q. Labels read most-significant
//     qubit first, e.g. "ZX" is Z on qubit 1, X on qubit 0.
//   - Pauli coordinates are taken against the orthonormal basis B_a = P_a/√d,
//     so x_a = Re Tr(B_a·A) and A = Σ_a x_a B_a for Hermitian A.
//   - Choi matrices live on H_in ⊗ H_out with the input factor first:
//     J(Φ) = Σ_ij |i⟩⟨j| ⊗ Φ(|i⟩⟨j|), probabilities are Tr[J·(ρᵀ ⊗ E)],
//     and trace-preservation reads PartialTraceOut(J) = 𝟙.
//
// All functions allocate fresh results and never mutate their inputs, so
// operators can be shared read-only across concurrent fits.
package operator
