package chem

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Catalog is the immutable species table: lookup by name or formula, no
// other operations. Construct one with NewCatalog (or DefaultCatalog) at
// process start and pass it by reference into the engine.
type Catalog struct {
	byKey map[string]SolutionSpec
	order []string // insertion order of canonical name keys
}

// NormalizeName canonicalizes a lookup key. NFKC folds Unicode subscript
// digits to ASCII, so the shell's typeset formulas ("NH₄Cl") resolve
// to the catalog's plain keys ("NH4Cl"). Case and surrounding space are
// ignored.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
}

// NewCatalog validates every spec and builds the lookup table. Both the
// display name and the formula are registered as keys. Returns a
// *ConfigurationError on the first invalid or duplicate entry.
func NewCatalog(specs []SolutionSpec) (*Catalog, error) {
	c := &Catalog{byKey: make(map[string]SolutionSpec, 2*len(specs))}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		nameKey := NormalizeName(s.Name)
		if _, dup := c.byKey[nameKey]; dup {
			return nil, &ConfigurationError{
				Code:    ErrCodeDuplicateSolution,
				Message: "duplicate catalog entry",
				Name:    s.Name,
			}
		}
		c.byKey[nameKey] = s
		c.order = append(c.order, nameKey)
		if formulaKey := NormalizeName(s.Formula); s.Formula != "" && formulaKey != nameKey {
			if _, dup := c.byKey[formulaKey]; dup {
				return nil, &ConfigurationError{
					Code:    ErrCodeDuplicateSolution,
					Message: fmt.Sprintf("formula %q collides with an existing entry", s.Formula),
					Name:    s.Name,
				}
			}
			c.byKey[formulaKey] = s
		}
	}
	return c, nil
}

// Lookup resolves a solution by display name or formula. Unknown names are
// a ConfigurationError: the shell must never let an unregistered name
// reach the engine.
func (c *Catalog) Lookup(name string) (SolutionSpec, error) {
	s, ok := c.byKey[NormalizeName(name)]
	if !ok {
		return SolutionSpec{}, NewUnknownSolutionError(name)
	}
	return s, nil
}

// Len returns the number of registered solutions.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Specs returns all solutions in catalog declaration order.
func (c *Catalog) Specs() []SolutionSpec {
	out := make([]SolutionSpec, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k])
	}
	return out
}

// ByCategory returns the solutions of one category in declaration order.
func (c *Catalog) ByCategory(cat Category) []SolutionSpec {
	var out []SolutionSpec
	for _, k := range c.order {
		if s := c.byKey[k]; s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}
