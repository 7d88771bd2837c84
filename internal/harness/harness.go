package harness

import (
	"fmt"

	"github.com/probeworks/phmeter/internal/chem"
	"github.com/probeworks/phmeter/internal/equilibrium"
	"github.com/probeworks/phmeter/internal/store"
	"github.com/probeworks/phmeter/internal/testutil"
	"github.com/probeworks/phmeter/internal/titration"
)

// Result is the outcome of one scenario run.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool

	// Failures lists assertion failures, one message each.
	Failures []string

	// Initial is the measurement right after selection/configuration,
	// before any drop.
	Initial equilibrium.MeasurementResult

	// Final is the measurement after the last drop (equal to Initial for
	// drop-free scenarios).
	Final equilibrium.MeasurementResult

	// Curve is the per-drop trace, read back from the store.
	Curve []titration.Entry
}

// Run executes a scenario against a fresh catalog, bench, and in-memory
// trace store.
//
// Execution flow:
//  1. Build the default catalog and a bench with a fixed session ID and
//     an in-memory store recorder.
//  2. Select and configure the solution, insert the probe.
//  3. Apply the drop schedule one drop at a time.
//  4. Read the curve back from the store and evaluate assertions.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	catalog, err := chem.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening trace store: %w", err)
	}
	defer st.Close()

	var opts []titration.SessionOption
	if scenario.Titrant > 0 {
		opts = append(opts, titration.WithTitrant(scenario.Titrant))
	}
	if scenario.DropVolume > 0 {
		opts = append(opts, titration.WithDropVolume(scenario.DropVolume))
	}
	if scenario.InitialVolume > 0 {
		opts = append(opts, titration.WithInitialVolume(scenario.InitialVolume))
	}
	if scenario.Concentration > 0 {
		opts = append(opts, titration.WithConcentration(scenario.Concentration))
	}
	if scenario.Buffer != nil {
		opts = append(opts, titration.WithBufferConcentrations(scenario.Buffer.Acid, scenario.Buffer.Base))
	}

	bench := titration.NewBench(catalog,
		titration.WithIDGenerator(testutil.NewFixedIDGenerator(scenario.SessionID)),
		titration.WithRecorder(st),
		titration.WithSessionDefaults(opts...),
	)

	if _, err := bench.Apply(titration.SelectSolution{Name: scenario.Solution}); err != nil {
		return nil, fmt.Errorf("selecting %q: %w", scenario.Solution, err)
	}

	result := &Result{}
	initial, err := bench.Apply(titration.InsertProbe{})
	if err != nil {
		return nil, fmt.Errorf("inserting probe: %w", err)
	}
	result.Initial = initial
	result.Final = initial

	for _, step := range scenario.Drops {
		for i := 0; i < step.Count; i++ {
			res, err := bench.Apply(titration.AddDrop{Reagent: titration.Reagent(step.Reagent)})
			if err != nil {
				return nil, fmt.Errorf("drop %d (%s): %w", result.Final.Drops+1, step.Reagent, err)
			}
			result.Final = res
		}
	}

	curve, err := st.Curve(bench.Session().ID())
	if err != nil {
		return nil, fmt.Errorf("reading curve: %w", err)
	}
	result.Curve = curve

	result.Pass = true
	for _, a := range scenario.Assertions {
		if msg := evaluate(a, result); msg != "" {
			result.Pass = false
			result.Failures = append(result.Failures, msg)
		}
	}
	return result, nil
}
