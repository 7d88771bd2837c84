package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BufferScenarioPasses(t *testing.T) {
	sc := &Scenario{
		Name:     "inline-acetate",
		Solution: "Acetic Acid / Sodium Acetate",
		Buffer:   &BufferConfig{Acid: 0.1, Base: 0.1},
		Titrant:  0.5,
		Drops:    []DropStep{{Reagent: "acid", Count: 50}},
		Assertions: []Assertion{
			{Type: "final_ph", Value: 4.5229, Tolerance: 0.001},
			{Type: "capacity_exceeded", Exceeded: false},
			{Type: "monotonic", Direction: "nonincreasing"},
		},
	}
	r, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, r.Pass, "failures: %v", r.Failures)
	assert.InDelta(t, 4.7447274948966935, r.Initial.PH, 1e-12)
	assert.InDelta(t, 4.522878745280338, r.Final.PH, 1e-12)
	require.Len(t, r.Curve, 50)
	assert.Equal(t, 1, r.Curve[0].Seq)
	assert.Equal(t, 50, r.Curve[49].Seq)
}

func TestRun_MixedReagentSchedule(t *testing.T) {
	sc := &Scenario{
		Name:     "inline-water-mixed",
		Solution: "Water",
		Drops: []DropStep{
			{Reagent: "acid", Count: 2},
			{Reagent: "base", Count: 1},
		},
	}
	r, err := Run(sc)
	require.NoError(t, err)
	assert.Equal(t, []string{"acid", "acid", "base"}, curveReagents(r.Curve))
	assert.True(t, r.Final.CapacityExceeded)
}

func TestRun_AssertionFailureIsNotAnError(t *testing.T) {
	sc := &Scenario{
		Name:     "inline-failing",
		Solution: "Water",
		Drops:    []DropStep{{Reagent: "acid", Count: 1}},
		Assertions: []Assertion{
			{Type: "final_ph", Value: 7.0}, // wrong on purpose
		},
	}
	r, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, r.Pass)
	require.Len(t, r.Failures, 1)
	assert.Contains(t, r.Failures[0], "final_ph")
}

func TestRun_UnknownSolution(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", Solution: "Unobtainium"})
	require.Error(t, err)
}

func TestRun_NonTitratableSolutionRejectsDrops(t *testing.T) {
	sc := &Scenario{
		Name:     "inline-hcl-drops",
		Solution: "Hydrochloric Acid",
		Drops:    []DropStep{{Reagent: "base", Count: 1}},
	}
	_, err := Run(sc)
	require.Error(t, err)
}

func TestRun_DropFreeScenario(t *testing.T) {
	sc := &Scenario{
		Name:          "inline-hcl-static",
		Solution:      "Hydrochloric Acid",
		Concentration: 0.01,
		Assertions: []Assertion{
			{Type: "final_ph", Value: 2.0, Tolerance: 1e-9},
		},
	}
	r, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, r.Pass, "failures: %v", r.Failures)
	assert.Equal(t, r.Initial, r.Final)
	assert.Empty(t, r.Curve)
}
