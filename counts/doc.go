// Package counts aggregates raw per-circuit outcome counts into the
// per-configuration tables consumed by the fitters.
//
// A Table is keyed by experiment.Configuration keys and accumulates integer
// counts per outcome bitstring. Ingestion always merges by summation: the
// same configuration arriving from several distinct circuits (circuit re-use
// across experiments) adds up, never overwrites. Outcome bitstrings follow
// the library-wide convention of rightmost character = qubit 0.
//
// Two pure transformations adapt raw backend results before ingestion:
//
//   - Postselect drops every outcome whose ancilla bit is not the accepted
//     value and re-keys the survivors to the tomography bit width. It is a
//     pure function of (raw, bit, accept, width) — no shared result object
//     is ever mutated, and per-key accumulation is summation.
//   - Marginalize projects a wide classical register onto the measured
//     subset, summing over the ignored bits (reduced-register mode).
//
// Insufficiency is never silent: a configuration with zero total counts has
// no defined frequency. Frequencies returns ErrInsufficientData for it, and
// Validate collects every offending configuration into one batch
// InsufficientDataError so the caller can decide whether to proceed.
package counts
