package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanterra/qtomo/basis"
	"github.com/quanterra/qtomo/operator"
)

const eps = 1e-9

// TestNewPrep_Unknown rejects unknown basis names with ErrUnknownBasis.
func TestNewPrep_Unknown(t *testing.T) {
	_, err := basis.NewPrep("hexagon")
	assert.ErrorIs(t, err, basis.ErrUnknownBasis)

	_, err = basis.NewMeas("hexagon")
	assert.ErrorIs(t, err, basis.ErrUnknownBasis)
}

// TestPrepPauli4 checks labels, unit traces and the informational-completeness
// workhorse states.
func TestPrepPauli4(t *testing.T) {
	p, err := basis.NewPrep(basis.Pauli4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zp", "Zm", "Xp", "Yp"}, p.Labels())

	for _, lbl := range p.Labels() {
		st, stErr := p.State(lbl)
		require.NoError(t, stErr)
		tr, trErr := operator.Trace(st)
		require.NoError(t, trErr)
		assert.InDelta(t, 1, real(tr), eps, "state %s must have unit trace", lbl)
		assert.True(t, operator.IsHermitian(st, eps), "state %s must be Hermitian", lbl)
	}

	_, err = p.State("Wp")
	assert.ErrorIs(t, err, basis.ErrUnknownLabel)
}

// TestPrepSIC: the four SIC states pairwise overlap with Tr(ρ_i ρ_j) = 1/3.
func TestPrepSIC(t *testing.T) {
	p, err := basis.NewPrep(basis.SIC)
	require.NoError(t, err)
	labels := p.Labels()
	require.Len(t, labels, 4)

	for i, li := range labels {
		for _, lj := range labels[i+1:] {
			si, _ := p.State(li)
			sj, _ := p.State(lj)
			ov, ovErr := operator.TraceMul(si, sj)
			require.NoError(t, ovErr)
			assert.InDelta(t, 1.0/3.0, real(ov), 1e-9, "overlap %s/%s", li, lj)
		}
	}
}

// TestMeasCompleteness: each Pauli setting's effects sum to the identity.
func TestMeasCompleteness(t *testing.T) {
	m, err := basis.NewMeas(basis.Pauli)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, m.Labels())

	for _, lbl := range m.Labels() {
		s, sErr := m.Setting(lbl)
		require.NoError(t, sErr)
		sum := operator.Scale(0, operator.Identity(2))
		for o := 0; o < s.Outcomes(); o++ {
			e, eErr := s.Effect(o)
			require.NoError(t, eErr)
			sum = operator.Add(sum, e)
		}
		assert.InDelta(t, 0, operator.FrobeniusDistance(sum, operator.Identity(2)), eps,
			"setting %s must be complete", lbl)
	}
}

// TestProductEffect_QubitOrder pins the outcome-bit convention: rightmost
// outcome character belongs to qubit 0.
func TestProductEffect_QubitOrder(t *testing.T) {
	m, err := basis.NewMeas(basis.Pauli)
	require.NoError(t, err)

	// Settings: qubit 0 = Z, qubit 1 = Z; outcome "01" = qubit0 → 1, qubit1 → 0.
	eff, err := m.ProductEffect([]string{"Z", "Z"}, "01")
	require.NoError(t, err)

	// Effect must be |01⟩⟨01| = basis index 1 (bit0 set).
	assert.InDelta(t, 1, real(eff.At(1, 1)), eps)
	assert.InDelta(t, 0, real(eff.At(2, 2)), eps)
}

// TestProductState_Born: ⟨+|Xp|+⟩ through a product over one qubit.
func TestProductState_Born(t *testing.T) {
	p, err := basis.NewPrep(basis.Pauli4)
	require.NoError(t, err)

	st, err := p.ProductState([]string{"Xp"})
	require.NoError(t, err)

	inv2 := complex(1/math.Sqrt2, 0)
	f, err := operator.PureStateFidelity(operator.Ket(inv2, inv2), st)
	require.NoError(t, err)
	assert.InDelta(t, 1, f, eps)
}

// TestProductEffect_BadOutcome rejects width mismatches and non-binary chars.
func TestProductEffect_BadOutcome(t *testing.T) {
	m, err := basis.NewMeas(basis.Pauli)
	require.NoError(t, err)

	_, err = m.ProductEffect([]string{"Z", "X"}, "0")
	assert.ErrorIs(t, err, basis.ErrBadOutcome)

	_, err = m.ProductEffect([]string{"Z"}, "2")
	assert.ErrorIs(t, err, basis.ErrBadOutcome)
}
