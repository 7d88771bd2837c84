// Package harness runs declarative titration scenarios against the real
// engine and checks the resulting drop-by-drop curve.
//
// A scenario is a YAML file: which solution to select, how to configure
// the session, how many drops of which reagent to add, and what to assert
// about the curve (final pH, capacity flag, monotonic direction). The
// harness drives the bench through the same command objects a presentation
// shell would use, records every drop into an in-memory trace store, and
// builds the curve from the store read-back - so a passing scenario also
// validates the recording path.
//
// Golden comparison (RunWithGolden) snapshots the whole curve so a
// numerical regression anywhere along a titration shows up as a diff, not
// just at the endpoints.
package harness
