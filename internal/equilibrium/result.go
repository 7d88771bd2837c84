package equilibrium

import (
	"math"

	"github.com/probeworks/phmeter/internal/chem"
)

// MeasurementResult is the derived state of one measurement, recomputed on
// demand after every mutation. pH is reported unrounded; display rounding
// belongs to the presentation shell. Values outside the nominal 0-14 range
// are physically valid and reported as-is, never clipped.
type MeasurementResult struct {
	// PH is -log10([H+]).
	PH float64 `json:"ph"`

	// POH is 14 - pH at 25 C.
	POH float64 `json:"poh"`

	// Hydrogen is the hydrogen-ion concentration [H+] in mol/L.
	Hydrogen float64 `json:"hydrogen"`

	// Hydroxide is the hydroxide-ion concentration Kw/[H+] in mol/L.
	Hydroxide float64 `json:"hydroxide"`

	// CapacityExceeded reports buffer-capacity exhaustion. Only buffers
	// and titrated water ever set it.
	CapacityExceeded bool `json:"capacity_exceeded"`

	// Drops is the cumulative titrant drop count for the session.
	Drops int `json:"drops"`

	// Volume is the current total solution volume in L.
	Volume float64 `json:"volume"`
}

// Neutral returns the measurement for pure water at baseline. pH is exactly
// 7 by construction rather than round-tripped through log10.
func Neutral() MeasurementResult {
	return MeasurementResult{
		PH:        7,
		POH:       7,
		Hydrogen:  chem.NeutralHydrogen,
		Hydroxide: chem.NeutralHydrogen,
	}
}

// FromHydrogen derives a measurement from a hydrogen-ion concentration.
// An exactly neutral input short-circuits to Neutral so that untouched
// water reports pH 7.0 exactly.
func FromHydrogen(h float64) MeasurementResult {
	if h == chem.NeutralHydrogen {
		return Neutral()
	}
	ph := -math.Log10(h)
	return MeasurementResult{
		PH:        ph,
		POH:       14 - ph,
		Hydrogen:  h,
		Hydroxide: chem.Kw / h,
	}
}

// FromPH derives a measurement from a known pH (household items).
func FromPH(ph float64) MeasurementResult {
	if ph == 7 {
		return Neutral()
	}
	h := math.Pow(10, -ph)
	return MeasurementResult{
		PH:        ph,
		POH:       14 - ph,
		Hydrogen:  h,
		Hydroxide: chem.Kw / h,
	}
}
