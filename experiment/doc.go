// Package experiment enumerates tomography configurations: the deterministic,
// duplicate-free, ordered list of (preparation labels, measurement labels)
// tuples a calibration run must execute.
//
// 🚀 Shapes produced
//
//	State tomography over k qubits:    |meas|^k configurations (3^k for Pauli)
//	Process tomography over k qubits:  |prep|^k · |meas|^k    (4^k·3^k)
//
// Enumeration order is fixed: preparation labels advance first with qubit 0
// fastest, then measurement labels, so two runs over the same options always
// agree index-by-index. Configurations are immutable values; their Key()
// strings are the join keys used by the counts package.
//
// Reduced registers: Options.Register selects a strict subset of a wider
// physical register. Configurations still carry one label per *selected*
// qubit; the counts package marginalizes the unselected bits out of raw
// results. Options.PrepRegister lets preparation land on physically different
// qubits than measurement (process tomography through a permutation-like
// channel).
//
// The only coupling to the execution layer is the Builder interface: the
// backend turns each Configuration into a circuit of its own type and must
// return outcome counts keyed by Configuration.Key(). This package never
// inspects circuits.
package experiment
