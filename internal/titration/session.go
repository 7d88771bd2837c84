package titration

import (
	"fmt"

	"github.com/probeworks/phmeter/internal/chem"
	"github.com/probeworks/phmeter/internal/equilibrium"
)

// Session is the mutable state of one measurement: a selected solution,
// its current concentration and volume, the probe, and - for buffers and
// water - the mole-level tracker. A session is created when a solution is
// selected and discarded when another one is, never reused across
// solutions.
type Session struct {
	id   string
	spec chem.SolutionSpec

	dropVolume      float64
	titrantMolarity float64
	initialVolume   float64

	concentration float64 // analyte concentration, adjustable categories
	acidConc      float64 // buffer acid component, mol/L at initial volume
	baseConc      float64 // buffer base component

	volume float64
	probe  bool
	trk    *tracker
	log    TitrationLog
}

// SessionOption configures a session at selection time.
type SessionOption func(*Session)

// WithDropVolume overrides the titrant drop volume (L).
func WithDropVolume(v float64) SessionOption {
	return func(s *Session) { s.dropVolume = v }
}

// WithTitrant sets the titrant molarity (mol/L). The shell offers
// chem.DefaultTitrantMolarity and chem.StrongTitrantMolarity.
func WithTitrant(molarity float64) SessionOption {
	return func(s *Session) { s.titrantMolarity = molarity }
}

// WithInitialVolume overrides the starting solution volume (L).
func WithInitialVolume(v float64) SessionOption {
	return func(s *Session) { s.initialVolume = v }
}

// WithConcentration sets the starting analyte concentration for
// adjustable categories.
func WithConcentration(c float64) SessionOption {
	return func(s *Session) { s.concentration = c }
}

// WithBufferConcentrations sets the starting concentrations of the buffer's
// acid and base components.
func WithBufferConcentrations(acid, base float64) SessionOption {
	return func(s *Session) {
		s.acidConc = acid
		s.baseConc = base
	}
}

// NewSession creates the state for a freshly selected solution.
func NewSession(id string, spec chem.SolutionSpec, opts ...SessionOption) (*Session, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		id:              id,
		spec:            spec,
		dropVolume:      chem.DefaultDropVolume,
		titrantMolarity: chem.DefaultTitrantMolarity,
		initialVolume:   chem.DefaultInitialVolume,
		concentration:   chem.DefaultConcentration,
		acidConc:        chem.DefaultBufferConcentration,
		baseConc:        chem.DefaultBufferConcentration,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dropVolume <= 0 || s.titrantMolarity <= 0 || s.initialVolume <= 0 {
		return nil, chem.NewInvalidSpecError(spec.Name, "drop volume, titrant molarity and initial volume must be positive")
	}
	if s.spec.Category.AdjustableConcentration() {
		if err := equilibrium.CheckConcentration(s.concentration); err != nil {
			return nil, err
		}
	}
	if s.spec.Category == chem.CategoryBuffer {
		if err := checkBufferComponents(s.acidConc, s.baseConc); err != nil {
			return nil, err
		}
	}
	s.rebuild()
	return s, nil
}

// checkBufferComponents allows a component to be absent (zero) but bounds
// present ones to the concentration domain. A buffer with neither
// component is not a buffer.
func checkBufferComponents(acid, base float64) error {
	if acid == 0 && base == 0 {
		return &equilibrium.DomainError{
			Code:    equilibrium.ErrCodeNonpositiveConcentration,
			Message: "at least one buffer component must be present",
		}
	}
	for _, c := range []float64{acid, base} {
		if c == 0 {
			continue
		}
		if err := equilibrium.CheckConcentration(c); err != nil {
			return err
		}
	}
	return nil
}

// rebuild restores the initial mole/volume state for the current
// configuration and discards the titration log.
func (s *Session) rebuild() {
	s.volume = s.initialVolume
	s.log.Reset()
	switch s.spec.Category {
	case chem.CategoryBuffer:
		s.trk = newBufferTracker(
			s.spec.Ka,
			s.acidConc*s.initialVolume,
			s.baseConc*s.initialVolume,
			s.initialVolume,
		)
	case chem.CategoryWater:
		s.trk = newWaterTracker(s.initialVolume)
	default:
		s.trk = nil
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Spec returns the selected solution's spec.
func (s *Session) Spec() chem.SolutionSpec { return s.spec }

// Volume returns the current total volume in L.
func (s *Session) Volume() float64 { return s.volume }

// DropCount returns the number of drops added since the last reset.
func (s *Session) DropCount() int { return s.log.Len() }

// Log returns a copy of the titration log entries.
func (s *Session) Log() []Entry { return s.log.Entries() }

// Measure recomputes the MeasurementResult for the current state without
// mutating anything.
func (s *Session) Measure() (equilibrium.MeasurementResult, error) {
	var res equilibrium.MeasurementResult
	switch s.spec.Category {
	case chem.CategoryBuffer, chem.CategoryWater:
		res = equilibrium.FromHydrogen(s.trk.hydrogen())
		res.CapacityExceeded = s.trk.exceeded
	default:
		var err error
		res, err = equilibrium.Measure(s.spec, s.concentration)
		if err != nil {
			return equilibrium.MeasurementResult{}, err
		}
	}
	res.Drops = s.log.Len()
	res.Volume = s.volume
	return res, nil
}

// SetConcentration changes the analyte concentration (slider-driven).
// Categories without an adjustable concentration reject the call; buffers
// use SetBufferConcentrations.
func (s *Session) SetConcentration(c float64) (equilibrium.MeasurementResult, error) {
	if !s.spec.Category.AdjustableConcentration() {
		return equilibrium.MeasurementResult{}, &UnsupportedOperationError{
			Code:      ErrCodeConcentrationFixed,
			Message:   "category has no adjustable concentration",
			Operation: "SetConcentration",
			Category:  s.spec.Category,
		}
	}
	if err := equilibrium.CheckConcentration(c); err != nil {
		return equilibrium.MeasurementResult{}, err
	}
	s.concentration = c
	return s.Measure()
}

// SetBufferConcentrations changes the buffer component concentrations and
// restarts the titration from the new initial state.
func (s *Session) SetBufferConcentrations(acid, base float64) (equilibrium.MeasurementResult, error) {
	if s.spec.Category != chem.CategoryBuffer {
		return equilibrium.MeasurementResult{}, &UnsupportedOperationError{
			Code:      ErrCodeConcentrationFixed,
			Message:   "only buffers have component concentrations",
			Operation: "SetBufferConcentrations",
			Category:  s.spec.Category,
		}
	}
	if err := checkBufferComponents(acid, base); err != nil {
		return equilibrium.MeasurementResult{}, err
	}
	s.acidConc = acid
	s.baseConc = base
	s.rebuild()
	return s.Measure()
}

// InsertProbe marks the probe as inserted and returns the current
// measurement. Calling it repeatedly without intervening mutations returns
// identical results.
func (s *Session) InsertProbe() (equilibrium.MeasurementResult, error) {
	s.probe = true
	return s.Measure()
}

// WithdrawProbe marks the probe as withdrawn. No computation; never errors.
func (s *Session) WithdrawProbe() {
	s.probe = false
}

// AddDrop applies one drop of titrant and returns the recomputed
// measurement. The drop's moles are dropVolume * titrantMolarity.
func (s *Session) AddDrop(reagent Reagent) (equilibrium.MeasurementResult, error) {
	if !reagent.Valid() {
		return equilibrium.MeasurementResult{}, &UnsupportedOperationError{
			Code:      ErrCodeInvalidReagent,
			Message:   fmt.Sprintf("unknown reagent %q", reagent),
			Operation: "AddDrop",
			Category:  s.spec.Category,
		}
	}
	if !s.spec.Category.Titratable() {
		return equilibrium.MeasurementResult{}, &UnsupportedOperationError{
			Code:      ErrCodeNotTitratable,
			Message:   "category does not accept titrant",
			Operation: "AddDrop",
			Category:  s.spec.Category,
		}
	}
	if !s.probe {
		return equilibrium.MeasurementResult{}, &UnsupportedOperationError{
			Code:      ErrCodeProbeNotInserted,
			Message:   "insert the probe before adding drops",
			Operation: "AddDrop",
			Category:  s.spec.Category,
		}
	}

	delta := s.dropVolume * s.titrantMolarity
	s.trk.add(reagent, delta, s.dropVolume)
	s.volume = s.trk.volume

	res, err := s.Measure()
	if err != nil {
		return equilibrium.MeasurementResult{}, err
	}
	s.log.Append(Entry{
		Reagent:          reagent,
		DeltaMoles:       delta,
		Volume:           s.volume,
		PH:               res.PH,
		CapacityExceeded: res.CapacityExceeded,
	})
	res.Drops = s.log.Len()
	return res, nil
}

// Reset restores the initial moles and volume for the selected solution
// and clears the titration log. Invoked when the probe is withdrawn for
// good or before a rerun.
func (s *Session) Reset() {
	s.rebuild()
}
