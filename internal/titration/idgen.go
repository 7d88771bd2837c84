package titration

import "github.com/google/uuid"

// SessionIDGenerator generates unique session identifiers.
// Implemented by UUIDv7Generator (production) and the fixed generator in
// internal/testutil (deterministic tests and golden traces).
type SessionIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 session IDs, so recorded
// sessions in the trace store sort by creation time.
//
// Thread-safety: stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
