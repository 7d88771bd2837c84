package store

import (
	"fmt"

	"github.com/probeworks/phmeter/internal/chem"
	"github.com/probeworks/phmeter/internal/titration"
)

// Store implements titration.Recorder, so a bench can be wired with
// WithRecorder(store) directly.
var _ titration.Recorder = (*Store)(nil)

// StartSession inserts a session row. Idempotent: re-selecting with the
// same ID (fixed test generators) replaces nothing and errors nothing.
func (s *Store) StartSession(id, solution string, category chem.Category) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, solution, category)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, solution, string(category))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// RecordDrop appends one drop event. The (session, seq) pair is the
// primary key; duplicate seqs are silently ignored for idempotency.
func (s *Store) RecordDrop(id string, e titration.Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO drops (session_id, seq, reagent, delta_moles, volume, ph, capacity_exceeded)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, seq) DO NOTHING
	`, id, e.Seq, string(e.Reagent), e.DeltaMoles, e.Volume, e.PH, boolToInt(e.CapacityExceeded))
	if err != nil {
		return fmt.Errorf("record drop: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
