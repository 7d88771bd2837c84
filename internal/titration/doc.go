// Package titration holds the stateful half of the engine: the buffer
// tracker, the measurement session, and the bench that applies command
// objects from the presentation shell.
//
// ARCHITECTURE:
//
// Single session, synchronous commands:
// A Bench owns at most one Session at a time. Every operation (select
// solution, adjust concentration, insert probe, add drop, withdraw probe)
// is a synchronous call that completes before returning its
// MeasurementResult. Selecting a new solution replaces the session and its
// titration log wholesale; nothing is merged across sessions.
//
// Drop processing:
// Each drop converts the fixed drop volume and titrant molarity into moles,
// delegates to the tracker, appends to the append-only TitrationLog, and
// recomputes pH. There is no batching - the drop-by-drop curve is the
// product.
//
// The bench is designed for a single UI-event goroutine. It performs no
// locking and starts no goroutines.
package titration
