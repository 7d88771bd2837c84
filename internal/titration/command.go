package titration

import "github.com/probeworks/phmeter/internal/equilibrium"

// Command is an explicit message from the presentation shell to the
// engine. UI event wiring builds commands; the bench consumes them. This
// keeps the engine testable without any UI harness and makes every
// mutation an inspectable value.
type Command interface {
	Apply(b *Bench) (equilibrium.MeasurementResult, error)
}

// SelectSolution replaces the live session with one for the named
// solution and returns its initial measurement.
type SelectSolution struct {
	Name string
}

func (c SelectSolution) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	s, err := b.SelectSolution(c.Name)
	if err != nil {
		return equilibrium.MeasurementResult{}, err
	}
	return s.Measure()
}

// SetConcentration adjusts the analyte concentration.
type SetConcentration struct {
	Value float64
}

func (c SetConcentration) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	if b.session == nil {
		return equilibrium.MeasurementResult{}, errNoSolution("SetConcentration")
	}
	return b.session.SetConcentration(c.Value)
}

// SetBufferConcentrations adjusts both buffer component concentrations.
type SetBufferConcentrations struct {
	Acid float64
	Base float64
}

func (c SetBufferConcentrations) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	if b.session == nil {
		return equilibrium.MeasurementResult{}, errNoSolution("SetBufferConcentrations")
	}
	return b.session.SetBufferConcentrations(c.Acid, c.Base)
}

// InsertProbe computes the current measurement without touching titration
// state.
type InsertProbe struct{}

func (InsertProbe) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	if b.session == nil {
		return equilibrium.MeasurementResult{}, errNoSolution("InsertProbe")
	}
	return b.session.InsertProbe()
}

// AddDrop adds one drop of titrant.
type AddDrop struct {
	Reagent Reagent
}

func (c AddDrop) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	return b.AddDrop(c.Reagent)
}

// WithdrawProbe signals end of measurement. A no-op for the engine beyond
// probe bookkeeping; it never errors, even with no session.
type WithdrawProbe struct{}

func (WithdrawProbe) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	if b.session != nil {
		b.session.WithdrawProbe()
	}
	return equilibrium.MeasurementResult{}, nil
}

// Reset restores the session's initial state and clears its log.
type Reset struct{}

func (Reset) Apply(b *Bench) (equilibrium.MeasurementResult, error) {
	if b.session == nil {
		return equilibrium.MeasurementResult{}, errNoSolution("Reset")
	}
	b.session.Reset()
	return b.session.Measure()
}
