package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns combined stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRoot_RejectsInvalidFormat(t *testing.T) {
	_, err := execute(t, "solutions", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSolutions_Text(t *testing.T) {
	out, err := execute(t, "solutions")
	require.NoError(t, err)
	assert.Contains(t, out, "strong_acid:")
	assert.Contains(t, out, "HCl")
	assert.Contains(t, out, "household:")
	assert.Contains(t, out, "Vinegar (5% Acetic Acid)")
}

func TestSolutions_JSON(t *testing.T) {
	out, err := execute(t, "solutions", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Data, 33)
}

func TestMeasure_StrongAcid(t *testing.T) {
	out, err := execute(t, "measure", "--solution", "HCl", "--conc", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "pH 2.00")
}

func TestMeasure_RequiresSolution(t *testing.T) {
	_, err := execute(t, "measure")
	require.Error(t, err)
}

func TestMeasure_UnknownSolution(t *testing.T) {
	_, err := execute(t, "measure", "--solution", "Unobtainium")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMeasure_BufferComponents(t *testing.T) {
	out, err := execute(t, "measure",
		"--solution", "Acetic Acid / Sodium Acetate",
		"--acid", "0.1", "--base", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "pH 4.74")
}

func TestTitrate_WaterCurve(t *testing.T) {
	out, err := execute(t, "titrate", "--solution", "Water", "--reagent", "acid", "--drops", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "drop   0  pH 7.0000")
	assert.Contains(t, out, "drop   1  pH 4.9961  <- capacity exceeded")
	assert.Contains(t, out, "drop   2")
}

func TestTitrate_RequiresSolutionOrScenario(t *testing.T) {
	_, err := execute(t, "titrate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTitrate_RecordsToDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	_, err := execute(t, "titrate", "--solution", "Water", "--reagent", "base", "--drops", "3", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "trace", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Water (3 drops)")
}

func TestTrace_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	out, err := execute(t, "trace", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "no recorded sessions")
}

func TestTrace_RequiresDatabase(t *testing.T) {
	_, err := execute(t, "trace")
	require.Error(t, err)
}

func TestTitrate_ScenarioMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := `name: water-one-drop
solution: Water
drops:
  - reagent: acid
    count: 1
assertions:
  - type: final_ph
    value: 4.9961
    tolerance: 0.001
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	out, err := execute(t, "titrate", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS water-one-drop")
}

func TestTitrate_ScenarioMode_FailureExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := `name: water-wrong-ph
solution: Water
drops:
  - reagent: acid
    count: 1
assertions:
  - type: final_ph
    value: 7.0
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	out, err := execute(t, "titrate", "--scenario", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL water-wrong-ph")
}

func writeCatalogFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.cue"), []byte(content), 0o644))
}

func TestValidate_GoodAndBadCatalogs(t *testing.T) {
	good := t.TempDir()
	writeCatalogFile(t, good, `solutions: [
	{name: "Hydrofluoric Acid", formula: "HF", category: "weak_acid", ka: 6.6e-4},
]
`)
	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog valid: 1 solutions")

	bad := t.TempDir()
	writeCatalogFile(t, bad, `solutions: [
	{name: "Broken", formula: "X", category: "weak_acid"},
]
`)
	out, err = execute(t, "validate", bad)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "CATALOG_INVALID")
}
