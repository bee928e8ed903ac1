package fit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/basis"
	"github.com/quanterra/qtomo/counts"
	"github.com/quanterra/qtomo/experiment"
	"github.com/quanterra/qtomo/operator"
)

// bitstring renders outcome index i over k bits, qubit 0 rightmost.
func bitstring(i, k int) string {
	b := make([]byte, k)
	for q := 0; q < k; q++ {
		b[k-1-q] = '0' + byte((i>>q)&1)
	}

	return string(b)
}

// stateProbs returns the Born probabilities p(o|cfg) = Tr(E·ρ) for every
// outcome of one measurement configuration.
func stateProbs(t *testing.T, rho *mat.CDense, cfg experiment.Configuration,
	meas *basis.Meas) []float64 {
	t.Helper()
	k := len(cfg.Meas)
	probs := make([]float64, 1<<k)
	for o := range probs {
		eff, err := meas.ProductEffect(cfg.Meas, bitstring(o, k))
		require.NoError(t, err)
		tr, err := operator.TraceMul(eff, rho)
		require.NoError(t, err)
		probs[o] = real(tr)
	}

	return probs
}

// tableFromProbs fills a count table from per-configuration probabilities,
// either by deterministic rounding (rng == nil, the "infinite shot" limit)
// or by multinomial sampling with the given source.
func tableFromProbs(t *testing.T, cfgs []experiment.Configuration, width int,
	probs func(cfg experiment.Configuration) []float64, shots int, rng *rand.Rand) *counts.Table {
	t.Helper()
	tbl := counts.NewTable(cfgs, width)
	for _, cfg := range cfgs {
		p := probs(cfg)
		c := make(map[string]int, len(p))
		if rng == nil {
			for o, po := range p {
				c[bitstring(o, width)] = int(math.Round(po * float64(shots)))
			}
		} else {
			for s := 0; s < shots; s++ {
				u := rng.Float64()
				acc := 0.0
				for o, po := range p {
					acc += po
					if u < acc || o == len(p)-1 {
						c[bitstring(o, width)]++

						break
					}
				}
			}
		}
		require.NoError(t, tbl.Add(counts.Record{Config: cfg, Counts: c}))
	}

	return tbl
}

// confuse applies independent symmetric per-qubit readout confusion to exact
// outcome probabilities: correct[q] is qubit q's correct-classification rate.
func confuse(p []float64, correct []float64) []float64 {
	k := len(correct)
	out := make([]float64, len(p))
	for o := range p {
		for oo := range out {
			w := 1.0
			for q := 0; q < k; q++ {
				if (o>>q)&1 == (oo>>q)&1 {
					w *= correct[q]
				} else {
					w *= 1 - correct[q]
				}
			}
			out[oo] += w * p[o]
		}
	}

	return out
}

func bellState() *mat.CDense {
	s := complex(1/math.Sqrt2, 0)

	return operator.Projector(operator.Ket(s, 0, 0, s))
}

func bellKet() *mat.CDense {
	s := complex(1/math.Sqrt2, 0)

	return operator.Ket(s, 0, 0, s)
}

func pauliMeas(t *testing.T) *basis.Meas {
	t.Helper()
	m, err := basis.NewMeas(basis.Pauli)
	require.NoError(t, err)

	return m
}

func pauli4Prep(t *testing.T) *basis.Prep {
	t.Helper()
	p, err := basis.NewPrep(basis.Pauli4)
	require.NoError(t, err)

	return p
}
