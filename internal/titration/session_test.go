package titration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/phmeter/internal/chem"
	"github.com/probeworks/phmeter/internal/equilibrium"
)

func weakAcidSpec() chem.SolutionSpec {
	return chem.SolutionSpec{Name: "Acetic Acid", Formula: "HC2H3O2", Category: chem.CategoryWeakAcid, Ka: acetateKa}
}

func bufferSpec() chem.SolutionSpec {
	return chem.SolutionSpec{
		Name: "Acetic Acid / Sodium Acetate", Formula: "HC2H3O2 / NaC2H3O2",
		Category: chem.CategoryBuffer, Ka: acetateKa, Conjugate: "NaC2H3O2",
	}
}

func waterSpec() chem.SolutionSpec {
	return chem.SolutionSpec{Name: "Water", Formula: "H2O", Category: chem.CategoryWater}
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewSession_Defaults(t *testing.T) {
	s, err := NewSession("s1", weakAcidSpec())
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID())
	assert.Equal(t, chem.DefaultInitialVolume, s.Volume())
	assert.Zero(t, s.DropCount())
}

func TestNewSession_RejectsInvalidSpec(t *testing.T) {
	bad := chem.SolutionSpec{Name: "Broken", Formula: "X", Category: chem.CategoryWeakAcid}
	_, err := NewSession("s1", bad)
	require.Error(t, err)
	assert.True(t, chem.IsConfigurationError(err))
}

func TestNewSession_RejectsOutOfRangeConcentration(t *testing.T) {
	_, err := NewSession("s1", weakAcidSpec(), WithConcentration(0.5))
	require.Error(t, err)
	assert.True(t, equilibrium.IsDomainError(err))
}

func TestNewSession_RejectsEmptyBuffer(t *testing.T) {
	_, err := NewSession("s1", bufferSpec(), WithBufferConcentrations(0, 0))
	require.Error(t, err)
	assert.True(t, equilibrium.IsDomainError(err))
}

func TestNewSession_RejectsNonpositiveGeometry(t *testing.T) {
	_, err := NewSession("s1", weakAcidSpec(), WithDropVolume(0))
	require.Error(t, err)

	_, err = NewSession("s1", weakAcidSpec(), WithTitrant(-0.1))
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// Measure and concentration
// ---------------------------------------------------------------------------

func TestSession_Measure_IsIdempotent(t *testing.T) {
	s, err := NewSession("s1", weakAcidSpec(), WithConcentration(0.01))
	require.NoError(t, err)

	first, err := s.Measure()
	require.NoError(t, err)
	second, err := s.Measure()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, 3.381575833825509, first.PH, 1e-12)
}

func TestSession_SetConcentration(t *testing.T) {
	s, err := NewSession("s1", weakAcidSpec(), WithConcentration(0.01))
	require.NoError(t, err)

	res, err := s.SetConcentration(0.1)
	require.NoError(t, err)
	assert.Less(t, res.PH, 3.381575833825509) // more concentrated, more acidic

	_, err = s.SetConcentration(1.0)
	require.Error(t, err)
	assert.True(t, equilibrium.IsDomainError(err))
}

func TestSession_SetConcentration_FixedCategories(t *testing.T) {
	for _, spec := range []chem.SolutionSpec{waterSpec(), bufferSpec()} {
		s, err := NewSession("s1", spec)
		require.NoError(t, err)

		_, err = s.SetConcentration(0.01)
		require.Error(t, err, "category %s", spec.Category)

		var ue *UnsupportedOperationError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, ErrCodeConcentrationFixed, ue.Code)
	}
}

func TestSession_SetBufferConcentrations_RestartsTitration(t *testing.T) {
	s, err := NewSession("s1", bufferSpec())
	require.NoError(t, err)
	_, err = s.InsertProbe()
	require.NoError(t, err)
	_, err = s.AddDrop(ReagentAcid)
	require.NoError(t, err)
	require.Equal(t, 1, s.DropCount())

	res, err := s.SetBufferConcentrations(0.05, 0.1)
	require.NoError(t, err)
	assert.Zero(t, s.DropCount())
	assert.Equal(t, chem.DefaultInitialVolume, s.Volume())
	// nHA/nA = 1/2: pH above pKa.
	assert.Greater(t, res.PH, 4.7447274948966935)
}

func TestSession_SetBufferConcentrations_OnNonBuffer(t *testing.T) {
	s, err := NewSession("s1", weakAcidSpec())
	require.NoError(t, err)

	_, err = s.SetBufferConcentrations(0.1, 0.1)
	require.Error(t, err)
	assert.True(t, IsUnsupportedOperation(err))
}

// ---------------------------------------------------------------------------
// Probe and drops
// ---------------------------------------------------------------------------

func TestSession_InsertProbe_Idempotent(t *testing.T) {
	s, err := NewSession("s1", bufferSpec())
	require.NoError(t, err)

	first, err := s.InsertProbe()
	require.NoError(t, err)
	second, err := s.InsertProbe()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, 4.7447274948966935, first.PH, 1e-12)
}

func TestSession_AddDrop_RequiresProbe(t *testing.T) {
	s, err := NewSession("s1", bufferSpec())
	require.NoError(t, err)

	_, err = s.AddDrop(ReagentAcid)
	require.Error(t, err)

	var ue *UnsupportedOperationError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, ErrCodeProbeNotInserted, ue.Code)
	assert.Zero(t, s.DropCount())
}

func TestSession_AddDrop_NotTitratable(t *testing.T) {
	s, err := NewSession("s1", weakAcidSpec())
	require.NoError(t, err)
	_, err = s.InsertProbe()
	require.NoError(t, err)

	_, err = s.AddDrop(ReagentAcid)
	require.Error(t, err)

	var ue *UnsupportedOperationError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, ErrCodeNotTitratable, ue.Code)
}

func TestSession_AddDrop_InvalidReagent(t *testing.T) {
	s, err := NewSession("s1", bufferSpec())
	require.NoError(t, err)
	_, err = s.InsertProbe()
	require.NoError(t, err)

	_, err = s.AddDrop(Reagent("salt"))
	require.Error(t, err)

	var ue *UnsupportedOperationError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, ErrCodeInvalidReagent, ue.Code)
}

func TestSession_AddDrop_LogsAndUpdatesVolume(t *testing.T) {
	s, err := NewSession("s1", bufferSpec(), WithTitrant(0.5))
	require.NoError(t, err)
	_, err = s.InsertProbe()
	require.NoError(t, err)

	res, err := s.AddDrop(ReagentAcid)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Drops)
	assert.InDelta(t, chem.DefaultInitialVolume+chem.DefaultDropVolume, res.Volume, 1e-15)

	entries := s.Log()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, 1, e.Seq)
	assert.Equal(t, ReagentAcid, e.Reagent)
	assert.InDelta(t, strongDelta, e.DeltaMoles, 1e-18)
	assert.Equal(t, res.PH, e.PH)
	assert.False(t, e.CapacityExceeded)
}

func TestSession_WithdrawProbe_PreservesState(t *testing.T) {
	s, err := NewSession("s1", bufferSpec())
	require.NoError(t, err)
	_, err = s.InsertProbe()
	require.NoError(t, err)
	_, err = s.AddDrop(ReagentAcid)
	require.NoError(t, err)

	s.WithdrawProbe()
	assert.Equal(t, 1, s.DropCount()) // withdrawing is not a reset

	// Drops are rejected again until reinserted.
	_, err = s.AddDrop(ReagentAcid)
	require.Error(t, err)

	_, err = s.InsertProbe()
	require.NoError(t, err)
	_, err = s.AddDrop(ReagentAcid)
	require.NoError(t, err)
	assert.Equal(t, 2, s.DropCount())
}

func TestSession_Reset(t *testing.T) {
	s, err := NewSession("s1", bufferSpec(), WithTitrant(0.5))
	require.NoError(t, err)
	_, err = s.InsertProbe()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		_, err = s.AddDrop(ReagentAcid)
		require.NoError(t, err)
	}
	require.Equal(t, 10, s.DropCount())

	s.Reset()
	assert.Zero(t, s.DropCount())
	assert.Equal(t, chem.DefaultInitialVolume, s.Volume())

	res, err := s.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 4.7447274948966935, res.PH, 1e-12)
	assert.False(t, res.CapacityExceeded)
}

func TestSession_Water_DropSequence(t *testing.T) {
	s, err := NewSession("s1", waterSpec())
	require.NoError(t, err)

	res, err := s.InsertProbe()
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.PH)
	assert.False(t, res.CapacityExceeded)

	res, err = s.AddDrop(ReagentAcid)
	require.NoError(t, err)
	assert.True(t, res.CapacityExceeded)
	assert.InDelta(t, 4.996108403772597, res.PH, 1e-12)

	res, err = s.AddDrop(ReagentBase)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.PH) // exact neutralization
	assert.True(t, res.CapacityExceeded)
}
