// SPDX-License-Identifier: MIT
// Package experiment: configuration enumeration.
//
// Generate walks a mixed-radix counter over per-qubit label indices, qubit 0
// fastest, preparations before measurements, which makes the output order
// deterministic and duplicate-free by construction:
//
//	index i ↦ (prep digits of i mod |P|^k, meas digits of i div |P|^k)
//
// State tomography has no preparation digits: |M|^k configurations.
// Process tomography has both: |P|^k · |M|^k configurations.

package experiment

// Generate returns the ordered configuration set for opts.
// Eager validation: any structural problem fails the whole generation
// (no partial sets), per the fail-fatal policy for configuration errors.
func Generate(opts Options) ([]Configuration, error) {
	if opts.Qubits < 1 {
		return nil, ErrBadQubits
	}
	if len(opts.MeasLabels) == 0 {
		return nil, ErrNoLabels
	}
	if opts.Kind == ProcessTomography && len(opts.PrepLabels) == 0 {
		return nil, ErrNoLabels
	}
	if err := validateRegisters(opts); err != nil {
		return nil, err
	}

	k := opts.Qubits
	nPrep := 1
	if opts.Kind == ProcessTomography {
		nPrep = pow(len(opts.PrepLabels), k)
	}
	nMeas := pow(len(opts.MeasLabels), k)

	out := make([]Configuration, 0, nPrep*nMeas)
	for mi := 0; mi < nMeas; mi++ {
		meas := digits(mi, len(opts.MeasLabels), k, opts.MeasLabels)
		for pi := 0; pi < nPrep; pi++ {
			cfg := Configuration{Meas: meas}
			if opts.Kind == ProcessTomography {
				cfg.Preps = digits(pi, len(opts.PrepLabels), k, opts.PrepLabels)
			}
			out = append(out, cfg)
		}
	}

	return out, nil
}

// EffectiveWidth returns the classical bit width results are expected in:
// Options.Width when set, otherwise max(register)+1, otherwise Qubits.
func EffectiveWidth(opts Options) int {
	if opts.Width > 0 {
		return opts.Width
	}
	w := opts.Qubits
	for _, r := range opts.Register {
		if r+1 > w {
			w = r + 1
		}
	}

	return w
}

// MeasuredBits returns the physical bit positions carrying tomography
// outcomes, in qubit order: Options.Register when set, else 0..k-1.
func MeasuredBits(opts Options) []int {
	if len(opts.Register) > 0 {
		return append([]int(nil), opts.Register...)
	}
	bits := make([]int, opts.Qubits)
	for i := range bits {
		bits[i] = i
	}

	return bits
}

func validateRegisters(opts Options) error {
	width := EffectiveWidth(opts)
	for _, reg := range [][]int{opts.Register, opts.PrepRegister} {
		if len(reg) == 0 {
			continue
		}
		if len(reg) != opts.Qubits {
			return ErrBadRegister
		}
		seen := make(map[int]bool, len(reg))
		for _, r := range reg {
			if r < 0 || r >= width || seen[r] {
				return ErrBadRegister
			}
			seen[r] = true
		}
	}

	return nil
}

// digits expands i into k base-|labels| digits, qubit 0 = least significant.
func digits(i, base, k int, labels []string) []string {
	out := make([]string, k)
	for q := 0; q < k; q++ {
		out[q] = labels[i%base]
		i /= base
	}

	return out
}

func pow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}

	return out
}
