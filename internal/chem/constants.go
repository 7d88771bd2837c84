package chem

// Equilibrium constants are tabulated at 25 degrees C throughout; there is
// no temperature dependence anywhere in the engine.

// Kw is water's self-ionization constant at 25 C.
const Kw = 1.0e-14

// NeutralHydrogen is [H+] in pure water at 25 C, sqrt(Kw).
const NeutralHydrogen = 1.0e-7

const (
	// MinConcentration and MaxConcentration bound the analyte
	// concentration domain (mol/L). The shell's slider is contracted to
	// stay inside this range; the engine defends against it anyway.
	MinConcentration = 1.0e-4
	MaxConcentration = 1.0e-1
)

const (
	// DefaultDropVolume is the volume of a single titrant drop (L).
	DefaultDropVolume = 1.0e-4

	// DefaultInitialVolume is the solution volume at session start (L).
	DefaultInitialVolume = 0.100

	// DefaultTitrantMolarity is the titrant concentration (mol/L) unless
	// the session selects the stronger reagent.
	DefaultTitrantMolarity = 0.01

	// StrongTitrantMolarity is the alternative titrant strength offered
	// by the shell.
	StrongTitrantMolarity = 0.1

	// DefaultConcentration is the analyte concentration a fresh session
	// starts with, for categories that have one.
	DefaultConcentration = 0.01

	// DefaultBufferConcentration is the starting concentration of each
	// buffer component.
	DefaultBufferConcentration = 0.1
)

// ConcentrationSteps is the slider ladder exposed to presentation shells,
// low to high. Every value is inside [MinConcentration, MaxConcentration].
var ConcentrationSteps = []float64{
	0.0001, 0.0002, 0.0003, 0.0004, 0.0005, 0.0006, 0.0007, 0.0008, 0.0009,
	0.001, 0.002, 0.003, 0.004, 0.005, 0.006, 0.007, 0.008, 0.009,
	0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08, 0.09, 0.1,
}
