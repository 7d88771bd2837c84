package store

import (
	"fmt"

	"github.com/probeworks/phmeter/internal/titration"
)

// SessionInfo describes one recorded session.
type SessionInfo struct {
	ID       string
	Solution string
	Category string
	Drops    int
}

// Sessions lists recorded sessions ordered by ID. UUIDv7 session IDs sort
// by creation time, so this is chronological in production.
func (s *Store) Sessions() ([]SessionInfo, error) {
	rows, err := s.db.Query(`
		SELECT sessions.id, sessions.solution, sessions.category, COUNT(drops.seq)
		FROM sessions
		LEFT JOIN drops ON drops.session_id = sessions.id
		GROUP BY sessions.id
		ORDER BY sessions.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.Solution, &info.Category, &info.Drops); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	if infos == nil {
		infos = []SessionInfo{}
	}
	return infos, nil
}

// Curve returns a session's drop events in seq order: the drop-by-drop pH
// curve exactly as the engine produced it. Empty slice (not nil) when the
// session has no drops.
func (s *Store) Curve(sessionID string) ([]titration.Entry, error) {
	rows, err := s.db.Query(`
		SELECT seq, reagent, delta_moles, volume, ph, capacity_exceeded
		FROM drops
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query drops: %w", err)
	}
	defer rows.Close()

	var entries []titration.Entry
	for rows.Next() {
		var (
			e        titration.Entry
			reagent  string
			exceeded int
		)
		if err := rows.Scan(&e.Seq, &reagent, &e.DeltaMoles, &e.Volume, &e.PH, &exceeded); err != nil {
			return nil, fmt.Errorf("scan drop: %w", err)
		}
		e.Reagent = titration.Reagent(reagent)
		e.CapacityExceeded = exceeded != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drops: %w", err)
	}
	if entries == nil {
		entries = []titration.Entry{}
	}
	return entries, nil
}
