package chem

// Category classifies a solution by how its equilibrium is computed.
//
// The set is closed: every consumer switches exhaustively over these values
// and treats anything else as a configuration error.
type Category string

const (
	// CategoryStrongAcid dissociates completely: [H+] = C.
	CategoryStrongAcid Category = "strong_acid"

	// CategoryStrongBase dissociates completely: [OH-] = n*C, where n is
	// the hydroxide count per formula unit (2 for Ba(OH)2, Ca(OH)2).
	CategoryStrongBase Category = "strong_base"

	// CategoryWeakAcid has a finite Ka; [H+] is the positive root of the
	// dissociation quadratic.
	CategoryWeakAcid Category = "weak_acid"

	// CategoryWeakBase has a finite Kb; symmetric to CategoryWeakAcid
	// via [OH-].
	CategoryWeakBase Category = "weak_base"

	// CategorySalt hydrolyzes through the conjugate of a weak parent acid
	// or base, with effective constant Kw/Ka or Kw/Kb. A salt with neither
	// parent constant is neutral (NaCl).
	CategorySalt Category = "salt"

	// CategoryBuffer is a conjugate acid/base pair tracked in moles and
	// computed with Henderson-Hasselbalch until capacity is exhausted.
	CategoryBuffer Category = "buffer"

	// CategoryWater is pure water: pH 7 at baseline, zero buffer capacity
	// once titrated.
	CategoryWater Category = "water"

	// CategoryHousehold is a household item with a fixed, tabulated pH.
	CategoryHousehold Category = "household"
)

// ValidCategories defines the allowed category values.
var ValidCategories = map[Category]bool{
	CategoryStrongAcid: true,
	CategoryStrongBase: true,
	CategoryWeakAcid:   true,
	CategoryWeakBase:   true,
	CategorySalt:       true,
	CategoryBuffer:     true,
	CategoryWater:      true,
	CategoryHousehold:  true,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	return ValidCategories[c]
}

// Titratable reports whether drop events apply to this category.
// Only buffers and water accept titrant; everything else rejects
// AddDrop with an UnsupportedOperationError.
func (c Category) Titratable() bool {
	return c == CategoryBuffer || c == CategoryWater
}

// AdjustableConcentration reports whether the analyte concentration can be
// changed after selection. Buffers adjust their two component
// concentrations separately, water and household items have none.
func (c Category) AdjustableConcentration() bool {
	switch c {
	case CategoryStrongAcid, CategoryStrongBase, CategoryWeakAcid, CategoryWeakBase, CategorySalt:
		return true
	default:
		return false
	}
}
