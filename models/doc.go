// Package models provides alternate physical models that remap what the SI
// base units mean dimensionally, plus the physical constants the remappings
// are derived from.
//
// What:
//
//   - Relativistic — length and time share a dimension: the meter resolves to
//     the Time dimension through an exact 1/c scale, so under this model a
//     meter and a second are commensurable and a velocity is a dimensionless
//     fraction of c.
//   - Natural — the quantum/natural-units model with c = ħ = k_B = µ0 = 1:
//     the second and the meter resolve to inverse mass, the kelvin and the
//     ampere to mass, leaving mass as the single mechanical dimension.
//   - CODATA/SI constants: SpeedOfLight, ReducedPlanck, Boltzmann,
//     MagneticConstant, ElementaryCharge.
//
// Why:
//
//	The engine resolves dimensions against whichever model is active for the
//	process (unit.SelectModel). Swapping models changes the answer to "are
//	these two units commensurable" and "what is the conversion factor"
//	without rebuilding any unit: resolution always consults the current
//	model at base-unit leaves.
//
// Usage:
//
//	prev := models.Relativistic.Select()
//	defer unit.SelectModel(prev)
//
//	si.Meter.Unit.IsCompatible(si.Second.Unit) // now true
//
// Both models answer Dimension and Transform from a single remapping table
// per base unit, so the two can never disagree (the model-contract violation
// the resolution layer panics on). Every unit outside the table delegates to
// unit.Standard.
package models
