// Package testutil provides deterministic helpers for engine tests: fixed
// session identifiers so recorded traces and golden curves are
// byte-identical across runs.
package testutil

// FixedIDGenerator returns the same session ID every time.
//
// The same scenario with the same FixedIDGenerator produces identical
// trace-store contents, which is what golden comparison needs.
//
// Thread-safety: stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a fixed session ID generator.
// If id is empty, Generate returns "test-session-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-session-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed session ID.
// Implements titration.SessionIDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
