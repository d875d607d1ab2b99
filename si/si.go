// SPDX-License-Identifier: MIT
//
// File: si.go
// Role: The SI base units, derived alternate units, and product units.
// Policy:
//   - Pure declaration: everything here instantiates the unit algebra; no
//     logic beyond construction order (derived units build on earlier ones).

package si

import (
	"github.com/physkit/physkit/dimension"
	"github.com/physkit/physkit/quantity"
	"github.com/physkit/physkit/unit"
)

// One is the dimensionless unit.
var One = unit.As[quantity.Dimensionless](unit.One)

// Base units, one per fundamental dimension.
var (
	// Meter is the base unit of length (m).
	Meter = unit.As[quantity.Length](unit.NewBase("m", dimension.Length))

	// Kilogram is the base unit of mass (kg), the only base unit carrying a
	// prefix as part of its name and symbol. See Gram.
	Kilogram = unit.As[quantity.Mass](unit.NewBase("kg", dimension.Mass))

	// Second is the base unit of duration (s).
	Second = unit.As[quantity.Duration](unit.NewBase("s", dimension.Time))

	// Ampere is the base unit of electric current (A).
	Ampere = unit.As[quantity.ElectricCurrent](unit.NewBase("A", dimension.ElectricCurrent))

	// Kelvin is the base unit of thermodynamic temperature (K).
	Kelvin = unit.As[quantity.Temperature](unit.NewBase("K", dimension.Temperature))

	// Mole is the base unit of amount of substance (mol).
	Mole = unit.As[quantity.AmountOfSubstance](unit.NewBase("mol", dimension.AmountOfSubstance))

	// Candela is the base unit of luminous intensity (cd).
	Candela = unit.As[quantity.LuminousIntensity](unit.NewBase("cd", dimension.LuminousIntensity))
)

// Gram is the derived unit of mass (g); the base unit of mass is Kilogram.
var Gram = Kilogram.Scale(1e-3)

// Dimensionless alternate units.
var (
	// Radian is the unit of plane angle (rad).
	Radian = unit.As[quantity.Angle](unit.NewAlternate("rad", unit.One))

	// Steradian is the unit of solid angle (sr).
	Steradian = unit.As[quantity.SolidAngle](unit.NewAlternate("sr", unit.One))

	// Bit is the unit of binary information (bit).
	Bit = unit.As[quantity.DataAmount](unit.NewAlternate("bit", unit.One))
)

// Derived alternate units.
var (
	// Hertz is the unit of frequency (Hz): one cycle per second.
	Hertz = unit.As[quantity.Frequency](unit.NewAlternate("Hz", unit.One.Divide(Second.Unit)))

	// Newton is the unit of force (N): m·kg/s².
	Newton = unit.As[quantity.Force](unit.NewAlternate("N",
		Meter.Unit.Times(Kilogram.Unit).Divide(Second.Unit.Pow(2))))

	// Pascal is the unit of pressure and stress (Pa): N/m².
	Pascal = unit.As[quantity.Pressure](unit.NewAlternate("Pa",
		Newton.Unit.Divide(Meter.Unit.Pow(2))))

	// Joule is the unit of energy, work and heat (J): N·m.
	Joule = unit.As[quantity.Energy](unit.NewAlternate("J", Newton.Unit.Times(Meter.Unit)))

	// Watt is the unit of power and radiant flux (W): J/s.
	Watt = unit.As[quantity.Power](unit.NewAlternate("W", Joule.Unit.Divide(Second.Unit)))

	// Coulomb is the unit of electric charge (C): s·A.
	Coulomb = unit.As[quantity.ElectricCharge](unit.NewAlternate("C",
		Second.Unit.Times(Ampere.Unit)))

	// Volt is the unit of electric potential difference (V): W/A.
	Volt = unit.As[quantity.ElectricPotential](unit.NewAlternate("V",
		Watt.Unit.Divide(Ampere.Unit)))

	// Farad is the unit of capacitance (F): C/V.
	Farad = unit.As[quantity.ElectricCapacitance](unit.NewAlternate("F",
		Coulomb.Unit.Divide(Volt.Unit)))

	// Ohm is the unit of electric resistance (Ω): V/A.
	Ohm = unit.As[quantity.ElectricResistance](unit.NewAlternate("Ω",
		Volt.Unit.Divide(Ampere.Unit)))

	// Siemens is the unit of electric conductance (S): A/V.
	Siemens = unit.As[quantity.ElectricConductance](unit.NewAlternate("S",
		Ampere.Unit.Divide(Volt.Unit)))

	// Weber is the unit of magnetic flux (Wb): V·s.
	Weber = unit.As[quantity.MagneticFlux](unit.NewAlternate("Wb",
		Volt.Unit.Times(Second.Unit)))

	// Tesla is the unit of magnetic flux density (T): Wb/m².
	Tesla = unit.As[quantity.MagneticFluxDensity](unit.NewAlternate("T",
		Weber.Unit.Divide(Meter.Unit.Pow(2))))

	// Henry is the unit of inductance (H): Wb/A.
	Henry = unit.As[quantity.ElectricInductance](unit.NewAlternate("H",
		Weber.Unit.Divide(Ampere.Unit)))

	// Lumen is the unit of luminous flux (lm): cd·sr.
	Lumen = unit.As[quantity.LuminousFlux](unit.NewAlternate("lm",
		Candela.Unit.Times(Steradian.Unit)))

	// Lux is the unit of illuminance (lx): lm/m².
	Lux = unit.As[quantity.Illuminance](unit.NewAlternate("lx",
		Lumen.Unit.Divide(Meter.Unit.Pow(2))))

	// Becquerel is the unit of activity of a radionuclide (Bq): 1/s.
	Becquerel = unit.As[quantity.RadioactiveActivity](unit.NewAlternate("Bq",
		unit.One.Divide(Second.Unit)))

	// Gray is the unit of absorbed dose (Gy): J/kg.
	Gray = unit.As[quantity.RadiationDoseAbsorbed](unit.NewAlternate("Gy",
		Joule.Unit.Divide(Kilogram.Unit)))

	// Sievert is the unit of dose equivalent (Sv): J/kg.
	Sievert = unit.As[quantity.RadiationDoseEffective](unit.NewAlternate("Sv",
		Joule.Unit.Divide(Kilogram.Unit)))

	// Katal is the unit of catalytic activity (kat): mol/s.
	Katal = unit.As[quantity.CatalyticActivity](unit.NewAlternate("kat",
		Mole.Unit.Divide(Second.Unit)))
)

// Celsius is the affine unit of temperature (°C): Kelvin shifted by 273.15,
// so 0 °C is the freezing point of water at one atmosphere.
var Celsius = Kelvin.Plus(273.15)

// Product units without symbols of their own.
var (
	// MeterPerSecond is the unit of velocity (m/s).
	MeterPerSecond = unit.As[quantity.Velocity](Meter.Unit.Divide(Second.Unit))

	// MeterPerSquareSecond is the unit of acceleration (m/s²).
	MeterPerSquareSecond = unit.As[quantity.Acceleration](Meter.Unit.Divide(Second.Unit.Pow(2)))

	// SquareMeter is the unit of area (m²).
	SquareMeter = unit.As[quantity.Area](Meter.Unit.Pow(2))

	// CubicMeter is the unit of volume (m³).
	CubicMeter = unit.As[quantity.Volume](Meter.Unit.Pow(3))
)
