package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one titration test: session configuration, a drop
// schedule, and assertions over the resulting curve.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden file
	// name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Solution is the catalog name or formula to select.
	Solution string `yaml:"solution"`

	// Concentration sets the analyte concentration for adjustable
	// categories. Zero leaves the session default.
	Concentration float64 `yaml:"concentration,omitempty"`

	// Buffer sets the component concentrations for buffer solutions.
	Buffer *BufferConfig `yaml:"buffer,omitempty"`

	// Titrant is the titrant molarity; zero leaves the default (0.01 M).
	Titrant float64 `yaml:"titrant,omitempty"`

	// DropVolume overrides the drop volume in L; zero leaves the default.
	DropVolume float64 `yaml:"drop_volume,omitempty"`

	// InitialVolume overrides the starting volume in L.
	InitialVolume float64 `yaml:"initial_volume,omitempty"`

	// SessionID is an optional fixed session ID for deterministic trace
	// stores. Defaults to "test-session-default".
	SessionID string `yaml:"session_id,omitempty"`

	// Drops is the schedule of drop batches, applied in order.
	Drops []DropStep `yaml:"drops,omitempty"`

	// Assertions validate the final state and the curve.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// BufferConfig carries the two component concentrations (mol/L).
type BufferConfig struct {
	Acid float64 `yaml:"acid"`
	Base float64 `yaml:"base"`
}

// DropStep adds Count drops of one reagent. The pH is still recomputed
// after every single drop - Count only compresses the YAML.
type DropStep struct {
	Reagent string `yaml:"reagent"`
	Count   int    `yaml:"count"`
}

// Assertion validates one property of the finished run.
// Supported types: final_ph, capacity_exceeded, flag_first_true_at,
// monotonic.
type Assertion struct {
	Type string `yaml:"type"`

	// final_ph
	Value     float64 `yaml:"value,omitempty"`
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// capacity_exceeded
	Exceeded bool `yaml:"exceeded,omitempty"`

	// flag_first_true_at: 1-based drop index where the flag first turns on
	Drop int `yaml:"drop,omitempty"`

	// monotonic: "nonincreasing" or "nondecreasing", checked until the
	// capacity flag turns on
	Direction string `yaml:"direction,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks scenario structure before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario needs a name")
	}
	if s.Solution == "" {
		return fmt.Errorf("scenario needs a solution")
	}
	for i, step := range s.Drops {
		if step.Reagent != "acid" && step.Reagent != "base" {
			return fmt.Errorf("drops[%d]: reagent must be acid or base, got %q", i, step.Reagent)
		}
		if step.Count < 1 {
			return fmt.Errorf("drops[%d]: count must be >= 1", i)
		}
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case "final_ph", "capacity_exceeded", "flag_first_true_at":
		case "monotonic":
			if a.Direction != "nonincreasing" && a.Direction != "nondecreasing" {
				return fmt.Errorf("assertions[%d]: direction must be nonincreasing or nondecreasing", i)
			}
		default:
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}
	return nil
}
