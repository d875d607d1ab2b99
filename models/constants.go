package models

// Physical constants used to derive the model remappings. Values are the SI
// defining constants (2019 redefinition) and CODATA 2018 for µ0.
const (
	// SpeedOfLight is c in m/s (exact by definition of the meter).
	SpeedOfLight = 299792458

	// ReducedPlanck is ħ in J·s, h/2π with h exact.
	ReducedPlanck = 1.054571817e-34

	// Boltzmann is k_B in J/K (exact).
	Boltzmann = 1.380649e-23

	// MagneticConstant is µ0 in N/A² (CODATA 2018; no longer exact since the
	// 2019 redefinition).
	MagneticConstant = 1.25663706212e-6

	// ElementaryCharge is e in C (exact); the anchor used when expressing
	// natural-unit energies in electron volts.
	ElementaryCharge = 1.602176634e-19
)
