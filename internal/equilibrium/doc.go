// Package equilibrium is the pure calculation layer of the engine: given a
// species spec and a concentration, it computes the equilibrium hydrogen-ion
// concentration and derives the full measurement (pH, pOH, [H+], [OH-]).
//
// All computation is closed-form, single-pass, at 25 C. There are no
// iterative convergence loops. The weak-acid/weak-base quadratic
// deliberately ignores water's self-ionization at very low concentrations;
// that is the textbook simplification this simulation teaches with, not a
// defect to fix.
package equilibrium
