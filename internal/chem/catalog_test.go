package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpecs() []SolutionSpec {
	return []SolutionSpec{
		{Name: "Hydrochloric Acid", Formula: "HCl", Category: CategoryStrongAcid},
		{Name: "Acetic Acid", Formula: "HC2H3O2", Category: CategoryWeakAcid, Ka: 1.8e-5},
		{Name: "Ammonium Chloride", Formula: "NH4Cl", Category: CategorySalt, ParentKb: 1.8e-5},
		{Name: "Water", Formula: "H2O", Category: CategoryWater},
		{Name: "Milk", Category: CategoryHousehold, PH: 6.8},
	}
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HCl", "hcl"},
		{"  Acetic Acid  ", "acetic acid"},
		{"NH₄Cl", "nh4cl"},       // subscript four folds to ASCII
		{"H₂O", "h2o"},           // subscript two
		{"Ba(OH)₂", "ba(oh)2"},   // subscript inside parens
		{"NaC₂H₃O₂", "nac2h3o2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "NormalizeName(%q)", tt.in)
	}
}

// ---------------------------------------------------------------------------
// Construction and lookup
// ---------------------------------------------------------------------------

func TestNewCatalog_LookupByNameAndFormula(t *testing.T) {
	c, err := NewCatalog(testSpecs())
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	byName, err := c.Lookup("Acetic Acid")
	require.NoError(t, err)
	assert.Equal(t, "HC2H3O2", byName.Formula)

	byFormula, err := c.Lookup("hc2h3o2")
	require.NoError(t, err)
	assert.Equal(t, byName, byFormula)

	// Typeset Unicode subscripts resolve to the same entry.
	typeset, err := c.Lookup("NH₄Cl")
	require.NoError(t, err)
	assert.Equal(t, "Ammonium Chloride", typeset.Name)
}

func TestCatalog_Lookup_Unknown(t *testing.T) {
	c, err := NewCatalog(testSpecs())
	require.NoError(t, err)

	_, err = c.Lookup("Sulfuric Acid")
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeUnknownSolution, cfgErr.Code)
	assert.Equal(t, "Sulfuric Acid", cfgErr.Name)
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	specs := append(testSpecs(), SolutionSpec{
		Name: "acetic acid", Formula: "CH3COOH", Category: CategoryWeakAcid, Ka: 1.8e-5,
	})
	_, err := NewCatalog(specs)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeDuplicateSolution, cfgErr.Code)
}

func TestNewCatalog_RejectsFormulaCollision(t *testing.T) {
	specs := append(testSpecs(), SolutionSpec{
		Name: "Muriatic Acid", Formula: "HCl", Category: CategoryStrongAcid,
	})
	_, err := NewCatalog(specs)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestNewCatalog_RejectsInvalidSpec(t *testing.T) {
	specs := append(testSpecs(), SolutionSpec{
		Name: "Broken", Formula: "X", Category: CategoryWeakAcid, // no Ka
	})
	_, err := NewCatalog(specs)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeInvalidSpec, cfgErr.Code)
}

// ---------------------------------------------------------------------------
// Enumeration
// ---------------------------------------------------------------------------

func TestCatalog_SpecsPreserveOrder(t *testing.T) {
	c, err := NewCatalog(testSpecs())
	require.NoError(t, err)

	var names []string
	for _, s := range c.Specs() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Hydrochloric Acid", "Acetic Acid", "Ammonium Chloride", "Water", "Milk",
	}, names)
}

func TestCatalog_ByCategory(t *testing.T) {
	c, err := NewCatalog(testSpecs())
	require.NoError(t, err)

	acids := c.ByCategory(CategoryWeakAcid)
	require.Len(t, acids, 1)
	assert.Equal(t, "Acetic Acid", acids[0].Name)

	assert.Empty(t, c.ByCategory(CategoryBuffer))
}
