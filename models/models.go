// SPDX-License-Identifier: MIT
//
// File: models.go
// Role: The Relativistic and Natural alternate models.
// Policy:
//   - Each model keeps one remapping table answering BOTH Dimension and
//     Transform, so the two can never disagree for a base unit.
//   - Every base unit outside the table delegates to unit.Standard.
//   - Transforms target the registered canonical units (kilogram, second, …),
//     never ad-hoc anchors.

package models

import (
	"math"

	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/dimension"
	"github.com/physkit/physkit/si"
	"github.com/physkit/physkit/unit"
)

// remapping is one table entry: the dimension a base unit represents under a
// model and the converter from that base unit to the canonical system unit of
// the remapped dimension.
type remapping struct {
	dim dimension.Dimension
	to  convert.Converter
}

// Remapped is a model defined entirely by a remapping table: it answers
// Dimension and Transform from the same entry, delegating to unit.Standard
// for every base unit outside the table.
type Remapped struct {
	table map[*unit.Unit]remapping
}

// Dimension implements unit.Model.
func (m Remapped) Dimension(base *unit.Unit) dimension.Dimension {
	if r, ok := m.table[base]; ok {
		return r.dim
	}

	return unit.Standard.Dimension(base)
}

// Transform implements unit.Model.
func (m Remapped) Transform(base *unit.Unit) convert.Converter {
	if r, ok := m.table[base]; ok {
		return r.to
	}

	return unit.Standard.Transform(base)
}

// Select installs the model process-wide and returns the previously active
// model, so callers can restore it.
func (m Remapped) Select() unit.Model { return unit.SelectModel(m) }

// Relativistic treats length as time: one meter is the time light takes to
// travel it, an exact 1/299792458 of a second. Under this model the meter and
// the second are commensurable, and m/s reduces to a dimensionless fraction
// of c.
var Relativistic = Remapped{table: map[*unit.Unit]remapping{
	si.Meter.Unit: {dim: dimension.Time, to: convert.NewRational(1, SpeedOfLight)},
}}

// Natural is the quantum model with c = ħ = k_B = µ0 = 1: every mechanical
// and thermal base unit collapses onto the mass dimension (or its inverse),
// anchored on the kilogram.
//
// Derivation of the transforms, from E = m·c², E = ħ/t, E = ħ·c/L, E = k_B·T
// and I² = E²/(µ0·ħ·c²·ν) with each value expressed in the kilogram-based
// canonical unit:
//
//	second → M⁻¹: 1/m = t·c²/ħ        ⇒ ×(c²/ħ)
//	meter  → M⁻¹: 1/m = L·c/ħ         ⇒ ×(c/ħ)
//	kelvin → M:   m = k_B·T/c²        ⇒ ×(k_B/c²)
//	ampere → M:   m = I·√(µ0·ħ·c)/c²  ⇒ ×(√(µ0·ħ·c)/c²)
//
// Kilogram, mole and candela keep their standard resolution.
var Natural = Remapped{table: map[*unit.Unit]remapping{
	si.Second.Unit: {
		dim: dimension.Mass.Pow(-1),
		to:  convert.NewMultiply(SpeedOfLight * SpeedOfLight / ReducedPlanck),
	},
	si.Meter.Unit: {
		dim: dimension.Mass.Pow(-1),
		to:  convert.NewMultiply(SpeedOfLight / ReducedPlanck),
	},
	si.Kelvin.Unit: {
		dim: dimension.Mass,
		to:  convert.NewMultiply(Boltzmann / (SpeedOfLight * SpeedOfLight)),
	},
	si.Ampere.Unit: {
		dim: dimension.Mass,
		to: convert.NewMultiply(
			math.Sqrt(MagneticConstant*ReducedPlanck*SpeedOfLight) /
				(SpeedOfLight * SpeedOfLight)),
	},
}}
