// SPDX-License-Identifier: MIT

package gateset_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quanterra/qtomo/counts"
	"github.com/quanterra/qtomo/gateset"
	"github.com/quanterra/qtomo/operator"
)

func hadamard() *mat.CDense {
	s := complex(1/math.Sqrt2, 0)

	return mat.NewCDense(2, 2, []complex128{s, s, s, -s})
}

func zeroState() *mat.CDense {
	return operator.Projector(operator.Ket(1, 0))
}

// seqProb returns the ideal all-zeros probability of one GST sequence.
func seqProb(t *testing.T, gs *gateset.GateSet, seq gateset.Sequence) float64 {
	t.Helper()
	fids := gs.Fiducials()

	compose := func(names []string, acc *mat.Dense) *mat.Dense {
		for _, name := range names {
			u, err := gs.Gate(name)
			require.NoError(t, err)
			s, err := gateset.PTM(u)
			require.NoError(t, err)
			next := mat.NewDense(4, 4, nil)
			next.Mul(s, acc)
			acc = next
		}

		return acc
	}

	acc := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		acc.Set(i, i, 1)
	}
	acc = compose(fids[seq.PrepFid], acc)
	for p := 0; p < seq.Power; p++ {
		acc = compose(seq.Germ, acc)
	}
	acc = compose(fids[seq.MeasFid], acc)

	r, err := gateset.StateVec(zeroState())
	require.NoError(t, err)
	var sr mat.VecDense
	sr.MulVec(acc, r)

	return mat.Dot(r, &sr) // effect coords equal the |0⟩ state coords
}

// synthData builds noiseless counts for the full sequence set.
func synthData(t *testing.T, gs *gateset.GateSet, shots int) gateset.Data {
	t.Helper()
	data := make(gateset.Data)
	for _, seq := range gs.Sequences(gs.GermsFromGates(), 1) {
		p := seqProb(t, gs, seq)
		n0 := int(math.Round(p * float64(shots)))
		data[seq.Key()] = map[string]int{"0": n0, "1": shots - n0}
	}

	return data
}

func TestPTM_Hadamard(t *testing.T) {
	s, err := gateset.PTM(hadamard())
	require.NoError(t, err)

	// H swaps the X and Z axes and flips Y
	want := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, -1, 0,
		0, 1, 0, 0,
	})
	assert.InDelta(t, 0, mat.Norm(diff(s, want), 2), 1e-12)
}

func TestPTMToChoi_MatchesUnitaryChoi(t *testing.T) {
	s, err := gateset.PTM(hadamard())
	require.NoError(t, err)
	j, err := gateset.PTMToChoi(s)
	require.NoError(t, err)

	want, err := operator.ChoiOfUnitary(hadamard())
	require.NoError(t, err)
	assert.InDelta(t, 0, operator.FrobeniusDistance(j, want), 1e-12)
}

func TestSequences_CountAndOrder(t *testing.T) {
	gs := gateset.Default1Q()
	germs := gs.GermsFromGates()
	seqs := gs.Sequences(germs, 2)

	// 16 bare pairs + 3 germs × 2 powers × 16 pairs
	require.Len(t, seqs, 16+3*2*16)
	assert.Equal(t, gateset.Sequence{}, seqs[0])
	assert.Empty(t, seqs[0].Germ)
	assert.Equal(t, "F0|^0|F0", seqs[0].Key())
	assert.Equal(t, 1, seqs[16].Power, "germ sequences start after the bare pairs")
}

func TestWithGate_ReceiverUnchanged(t *testing.T) {
	gs := gateset.Default1Q()
	y := operator.Pauli('Y')

	ext, err := gs.WithGate("Y", y)
	require.NoError(t, err)
	assert.Contains(t, ext.Names(), "Y")
	assert.NotContains(t, gs.Names(), "Y")
	assert.Len(t, gs.Names(), 3)
}

func TestNew_Validation(t *testing.T) {
	x := operator.Pauli('X')

	_, err := gateset.New(2, map[string]*mat.CDense{"X": x},
		[][]string{{}, {"X"}, {"X"}}) // only 3 fiducials for d²=4
	assert.ErrorIs(t, err, gateset.ErrBadGateSet)

	_, err = gateset.New(2, map[string]*mat.CDense{"X": x},
		[][]string{{}, {"X"}, {"X"}, {"H"}})
	assert.ErrorIs(t, err, gateset.ErrUnknownGate)

	_, err = gateset.New(3, map[string]*mat.CDense{"X": x}, nil)
	assert.ErrorIs(t, err, gateset.ErrBadGateSet)
}

// TestRun_HadamardReconstruction: noiseless data over the default 1-qubit
// set must reconstruct every gate — the Hadamard in particular — with
// process fidelity ≥ 0.99.
func TestRun_HadamardReconstruction(t *testing.T) {
	gs := gateset.Default1Q()
	data := synthData(t, gs, 200000)

	res, err := gateset.Run(data, gs, gateset.DefaultOptions())
	require.NoError(t, err)
	assert.Less(t, res.GramCondition, 100.0)

	jH, err := operator.ChoiOfUnitary(hadamard())
	require.NoError(t, err)
	f, err := operator.ProcessFidelity(res.Gates["H"], jH)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f, 0.99, "Hadamard process fidelity")

	for _, name := range []string{"X", "S"} {
		u, uErr := gs.Gate(name)
		require.NoError(t, uErr)
		jRef, uErr := operator.ChoiOfUnitary(u)
		require.NoError(t, uErr)
		f, uErr = operator.ProcessFidelity(res.Gates[name], jRef)
		require.NoError(t, uErr)
		assert.GreaterOrEqual(t, f, 0.99, name)
	}

	fRho, err := operator.PureStateFidelity(operator.Ket(1, 0), res.Rho)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fRho, 0.99, "reconstructed preparation")
}

// TestRun_SeedGaugeOnly: with refinement disabled the ideal-frame seed alone
// must already recover noiseless gates.
func TestRun_SeedGaugeOnly(t *testing.T) {
	gs := gateset.Default1Q()
	data := synthData(t, gs, 200000)

	opts := gateset.DefaultOptions()
	opts.Refine = false
	res, err := gateset.Run(data, gs, opts)
	require.NoError(t, err)
	assert.True(t, res.GaugeConverged)

	jH, err := operator.ChoiOfUnitary(hadamard())
	require.NoError(t, err)
	f, err := operator.ProcessFidelity(res.Gates["H"], jH)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f, 0.99)
}

// TestRun_FlatData: a data table where every outcome is a coin flip carries
// no fiducial information; the rank-one Gram matrix must be rejected.
func TestRun_FlatData(t *testing.T) {
	gs := gateset.Default1Q()
	data := make(gateset.Data)
	for _, seq := range gs.Sequences(gs.GermsFromGates(), 1) {
		data[seq.Key()] = map[string]int{"0": 500, "1": 500}
	}

	_, err := gateset.Run(data, gs, gateset.DefaultOptions())
	assert.ErrorIs(t, err, gateset.ErrInsufficientFiducials)
}

// TestRun_StarvedSequences: zero-count and missing sequences are reported in
// one batch error naming every offending key.
func TestRun_StarvedSequences(t *testing.T) {
	gs := gateset.Default1Q()
	data := synthData(t, gs, 1000)

	empty := gateset.Sequence{PrepFid: 1, MeasFid: 2}.Key()
	missing := gateset.Sequence{PrepFid: 0, MeasFid: 0, Germ: []string{"H"}, Power: 1}.Key()
	data[empty] = map[string]int{}
	delete(data, missing)

	_, err := gateset.Run(data, gs, gateset.DefaultOptions())
	var ide *counts.InsufficientDataError
	require.True(t, errors.As(err, &ide))
	assert.ErrorIs(t, err, counts.ErrInsufficientData)
	assert.Contains(t, ide.Keys, empty)
	assert.Contains(t, ide.Keys, missing)
	assert.Len(t, ide.Keys, 2)
}

func diff(a, b mat.Matrix) mat.Matrix {
	var d mat.Dense
	d.Sub(a, b)

	return &d
}
