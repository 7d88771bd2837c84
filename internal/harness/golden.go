package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/probeworks/phmeter/internal/titration"
)

// CurveSnapshot is the canonical serialized form of a scenario run, used
// for golden comparison. pH and volume are formatted to fixed precision so
// the snapshot is stable against last-ulp libm differences.
type CurveSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Solution     string       `json:"solution"`
	InitialPH    string       `json:"initial_ph"`
	Points       []CurvePoint `json:"points"`
}

// CurvePoint is one drop event in a snapshot.
type CurvePoint struct {
	Drop             int    `json:"drop"`
	Reagent          string `json:"reagent"`
	PH               string `json:"ph"`
	Volume           string `json:"volume"`
	CapacityExceeded bool   `json:"capacity_exceeded"`
}

// Snapshot builds the serializable curve for a finished run.
func Snapshot(scenario *Scenario, result *Result) *CurveSnapshot {
	snap := &CurveSnapshot{
		ScenarioName: scenario.Name,
		Solution:     scenario.Solution,
		InitialPH:    formatPH(result.Initial.PH),
		Points:       make([]CurvePoint, 0, len(result.Curve)),
	}
	for _, e := range result.Curve {
		snap.Points = append(snap.Points, CurvePoint{
			Drop:             e.Seq,
			Reagent:          string(e.Reagent),
			PH:               formatPH(e.PH),
			Volume:           fmt.Sprintf("%.4f", e.Volume),
			CapacityExceeded: e.CapacityExceeded,
		})
	}
	return snap
}

func formatPH(ph float64) string {
	return fmt.Sprintf("%.4f", ph)
}

// RunWithGolden executes a scenario, requires its assertions to pass, and
// compares the curve snapshot against testdata/{scenario.Name}.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("scenario %s: %v", scenario.Name, err)
	}
	for _, f := range result.Failures {
		t.Errorf("scenario %s: %s", scenario.Name, f)
	}

	data, err := json.MarshalIndent(Snapshot(scenario, result), "", "  ")
	if err != nil {
		t.Fatalf("marshaling snapshot: %v", err)
	}
	g := goldie.New(t)
	g.Assert(t, scenario.Name, append(data, '\n'))
}

// curveReagents is a helper for tests that need the reagent sequence.
func curveReagents(curve []titration.Entry) []string {
	out := make([]string, len(curve))
	for i, e := range curve {
		out[i] = string(e.Reagent)
	}
	return out
}
