package chem

import "fmt"

// SolutionSpec is the immutable description of one selectable solution.
//
// Exactly one constant set is meaningful per category:
//   - weak acids carry Ka, weak bases carry Kb
//   - strong bases carry Hydroxide (OH- per formula unit)
//   - salts carry ParentKa (basic salt) or ParentKb (acidic salt), or
//     neither for a neutral salt
//   - buffers carry Ka of the weak-acid component
//   - household items carry a fixed, tabulated PH
//
// Validate enforces these rules; a Catalog never holds an invalid spec.
type SolutionSpec struct {
	// Name is the display name ("Acetic Acid").
	Name string `json:"name"`

	// Formula is the chemical formula in plain ASCII ("HC2H3O2").
	// Lookups normalize Unicode subscripts, so shells may pass either
	// "NH4Cl" or the typeset form. Household items have no formula.
	Formula string `json:"formula,omitempty"`

	// Category selects the equilibrium branch.
	Category Category `json:"category"`

	// Ka is the acid dissociation constant (weak acids, buffers).
	Ka float64 `json:"ka,omitempty"`

	// Kb is the base dissociation constant (weak bases).
	Kb float64 `json:"kb,omitempty"`

	// Hydroxide is the OH- count per formula unit (strong bases only).
	Hydroxide int `json:"hydroxide,omitempty"`

	// ParentKa is the Ka of the weak parent acid (basic salts).
	ParentKa float64 `json:"parent_ka,omitempty"`

	// ParentKb is the Kb of the weak parent base (acidic salts).
	ParentKb float64 `json:"parent_kb,omitempty"`

	// Conjugate names the paired conjugate species (buffers only,
	// e.g. "NaC2H3O2" for the acetate buffer).
	Conjugate string `json:"conjugate,omitempty"`

	// PH is the fixed tabulated pH (household items only).
	PH float64 `json:"ph,omitempty"`
}

// Key returns the canonical lookup key for this spec.
func (s SolutionSpec) Key() string {
	return NormalizeName(s.Name)
}

// Validate checks the per-category field rules. It returns a
// *ConfigurationError describing the first violation found.
func (s SolutionSpec) Validate() error {
	if s.Name == "" {
		return NewInvalidSpecError(s.Formula, "name must not be empty")
	}
	if s.Formula == "" && s.Category != CategoryHousehold {
		return NewInvalidSpecError(s.Name, "formula must not be empty")
	}
	if !s.Category.Valid() {
		return NewInvalidSpecError(s.Name, fmt.Sprintf("unknown category %q", s.Category))
	}

	switch s.Category {
	case CategoryStrongAcid:
		if s.Ka != 0 || s.Kb != 0 {
			return NewInvalidSpecError(s.Name, "strong acids dissociate fully and carry no Ka/Kb")
		}
	case CategoryStrongBase:
		if s.Hydroxide < 1 {
			return NewInvalidSpecError(s.Name, "strong bases need hydroxide >= 1")
		}
		if s.Ka != 0 || s.Kb != 0 {
			return NewInvalidSpecError(s.Name, "strong bases dissociate fully and carry no Ka/Kb")
		}
	case CategoryWeakAcid:
		if s.Ka <= 0 {
			return NewInvalidSpecError(s.Name, "weak acids need Ka > 0")
		}
		if s.Kb != 0 {
			return NewInvalidSpecError(s.Name, "weak acids carry Ka, not Kb")
		}
	case CategoryWeakBase:
		if s.Kb <= 0 {
			return NewInvalidSpecError(s.Name, "weak bases need Kb > 0")
		}
		if s.Ka != 0 {
			return NewInvalidSpecError(s.Name, "weak bases carry Kb, not Ka")
		}
	case CategorySalt:
		if s.ParentKa > 0 && s.ParentKb > 0 {
			return NewInvalidSpecError(s.Name, "salts hydrolyze through at most one parent constant")
		}
		if s.ParentKa < 0 || s.ParentKb < 0 {
			return NewInvalidSpecError(s.Name, "parent constants must be positive")
		}
	case CategoryBuffer:
		if s.Ka <= 0 {
			return NewInvalidSpecError(s.Name, "buffers need the weak-acid component's Ka > 0")
		}
		if s.Conjugate == "" {
			return NewInvalidSpecError(s.Name, "buffers need a conjugate species")
		}
	case CategoryWater:
		if s.Ka != 0 || s.Kb != 0 || s.PH != 0 {
			return NewInvalidSpecError(s.Name, "water carries no constants beyond Kw")
		}
	case CategoryHousehold:
		if s.PH < 0 || s.PH > 14 {
			return NewInvalidSpecError(s.Name, fmt.Sprintf("household pH %.2f outside tabulated range", s.PH))
		}
	}
	return nil
}
