// Package chem defines the species table for the equilibrium engine.
//
// The species table is an immutable Catalog of SolutionSpec entries. Each
// entry classifies a selectable solution into one of a closed set of
// categories (strong acid, strong base, weak acid, weak base, salt, buffer,
// water, household) and carries the equilibrium constants that category
// needs, and nothing else. Category-dependent behavior elsewhere in the
// engine is an exhaustive switch over Category, so adding a category is a
// compile-visible change.
//
// Catalog data is declared in CUE and validated against an embedded schema
// before any spec reaches the engine. The built-in catalog (go:embed) covers
// the representative species of the simulation; LoadDir accepts an override
// directory of .cue files for custom catalogs.
//
// The catalog is constructed once at process start and passed by reference
// into the engine. There is no mutable global state in this package.
package chem
