package titration

// Reagent identifies what a titrant drop contains. The titrant is always a
// standard strong acid or strong base at the session's molarity.
type Reagent string

const (
	ReagentAcid Reagent = "acid"
	ReagentBase Reagent = "base"
)

// Valid reports whether r is a known reagent.
func (r Reagent) Valid() bool {
	return r == ReagentAcid || r == ReagentBase
}

// Entry records one drop event and the measurement it produced.
type Entry struct {
	// Seq is the 1-based drop index within the session.
	Seq int `json:"seq"`

	// Reagent is what the drop contained.
	Reagent Reagent `json:"reagent"`

	// DeltaMoles is dropVolume * titrantMolarity for this drop.
	DeltaMoles float64 `json:"delta_moles"`

	// Volume is the total solution volume (L) after the drop.
	Volume float64 `json:"volume"`

	// PH is the recomputed pH after the drop.
	PH float64 `json:"ph"`

	// CapacityExceeded reports the capacity flag after the drop.
	CapacityExceeded bool `json:"capacity_exceeded"`
}

// TitrationLog is the append-only sequence of drop events for one session.
// It is reset only when the session itself is reset or replaced.
type TitrationLog struct {
	entries []Entry
}

// Append records a drop event. Seq is assigned here.
func (l *TitrationLog) Append(e Entry) Entry {
	e.Seq = len(l.entries) + 1
	l.entries = append(l.entries, e)
	return e
}

// Len returns the number of recorded drops.
func (l *TitrationLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the recorded events in order.
func (l *TitrationLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset discards all recorded events.
func (l *TitrationLog) Reset() {
	l.entries = nil
}
