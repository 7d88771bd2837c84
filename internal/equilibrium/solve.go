package equilibrium

import (
	"fmt"
	"math"

	"github.com/probeworks/phmeter/internal/chem"
)

// CheckConcentration validates an analyte concentration against the
// engine's domain. Returns a *DomainError when the value is unusable.
func CheckConcentration(c float64) error {
	if c <= 0 {
		return &DomainError{
			Code:    ErrCodeNonpositiveConcentration,
			Message: "concentration must be strictly positive",
			Value:   c,
		}
	}
	if c < chem.MinConcentration || c > chem.MaxConcentration {
		return &DomainError{
			Code: ErrCodeConcentrationRange,
			Message: fmt.Sprintf("concentration outside [%g, %g] mol/L",
				chem.MinConcentration, chem.MaxConcentration),
			Value: c,
		}
	}
	return nil
}

// WeakAcidHydrogen solves Ka*(C-x) = x^2 for x = [H+]: the positive root
// of x^2 + Ka*x - Ka*C = 0. The negative root is physically invalid and
// never considered. Below about 1e-7 mol/L water's self-ionization becomes
// comparable and the quadratic overstates acidity slightly; the
// approximation is kept deliberately.
func WeakAcidHydrogen(ka, c float64) float64 {
	return (-ka + math.Sqrt(ka*ka+4*ka*c)) / 2
}

// WeakBaseHydroxide is the symmetric quadratic for [OH-] with Kb.
func WeakBaseHydroxide(kb, c float64) float64 {
	return (-kb + math.Sqrt(kb*kb+4*kb*c)) / 2
}

// Solve computes the equilibrium hydrogen-ion concentration for a single
// dissolved species at the given analyte concentration.
//
// Water ignores the concentration argument (pure water has none) and
// household items return their tabulated value; every other category
// validates the concentration first. Buffers have no single-species closed
// form here - their state lives in the titration tracker - and return a
// DomainError with code NO_CLOSED_FORM.
func Solve(spec chem.SolutionSpec, concentration float64) (float64, error) {
	switch spec.Category {
	case chem.CategoryWater:
		return chem.NeutralHydrogen, nil
	case chem.CategoryHousehold:
		return math.Pow(10, -spec.PH), nil
	case chem.CategoryBuffer:
		return 0, &DomainError{
			Code:    ErrCodeNoClosedForm,
			Message: "buffers are tracked in moles, not solved as a single species",
			Value:   concentration,
		}
	}

	if err := CheckConcentration(concentration); err != nil {
		return 0, err
	}

	switch spec.Category {
	case chem.CategoryStrongAcid:
		return concentration, nil

	case chem.CategoryStrongBase:
		oh := float64(spec.Hydroxide) * concentration
		return chem.Kw / oh, nil

	case chem.CategoryWeakAcid:
		return WeakAcidHydrogen(spec.Ka, concentration), nil

	case chem.CategoryWeakBase:
		oh := WeakBaseHydroxide(spec.Kb, concentration)
		return chem.Kw / oh, nil

	case chem.CategorySalt:
		switch {
		case spec.ParentKa > 0:
			// Basic salt: the conjugate base hydrolyzes with Kb = Kw/Ka.
			oh := WeakBaseHydroxide(chem.Kw/spec.ParentKa, concentration)
			return chem.Kw / oh, nil
		case spec.ParentKb > 0:
			// Acidic salt: the conjugate acid hydrolyzes with Ka = Kw/Kb.
			return WeakAcidHydrogen(chem.Kw/spec.ParentKb, concentration), nil
		default:
			return chem.NeutralHydrogen, nil
		}

	default:
		return 0, chem.NewInvalidSpecError(spec.Name, fmt.Sprintf("unknown category %q", spec.Category))
	}
}

// Measure is Solve followed by MeasurementResult derivation.
func Measure(spec chem.SolutionSpec, concentration float64) (MeasurementResult, error) {
	if spec.Category == chem.CategoryHousehold {
		return FromPH(spec.PH), nil
	}
	h, err := Solve(spec, concentration)
	if err != nil {
		return MeasurementResult{}, err
	}
	return FromHydrogen(h), nil
}
