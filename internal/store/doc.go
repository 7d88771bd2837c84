// Package store provides SQLite-backed storage for titration session
// traces.
//
// The store is an append-only log: one row per session, one row per drop
// event. It exists for the shell's benefit - inspecting a drop-by-drop
// curve after the fact - not for the engine's. The engine itself keeps no
// persistent state; a bench without a recorder never touches this package.
// Tests and the default CLI configuration use an in-memory database.
//
// Ordering is by the drop's seq within its session, never by wall-clock
// time, so a read-back curve is identical to the one the engine produced.
package store
