package quantity

// Quantity is the constraint satisfied by every quantity tag in this package.
// The marker method keeps the set closed: tags are a fixed roster, not an
// extension point.
type Quantity interface{ isQuantity() }

// Dimensionless tags pure numbers, angles excluded.
type Dimensionless struct{}

// Base quantities, one per fundamental dimension.
type (
	// Length tags distance-like quantities (dimension L).
	Length struct{}
	// Mass tags mass quantities (dimension M).
	Mass struct{}
	// Duration tags time quantities (dimension T).
	Duration struct{}
	// ElectricCurrent tags current quantities (dimension I).
	ElectricCurrent struct{}
	// Temperature tags thermodynamic temperature quantities (dimension Θ).
	Temperature struct{}
	// AmountOfSubstance tags mole-counted quantities (dimension N).
	AmountOfSubstance struct{}
	// LuminousIntensity tags luminous intensity quantities (dimension J).
	LuminousIntensity struct{}
)

// Derived quantities with named SI units.
type (
	// Angle tags plane angles (rad); dimensionless.
	Angle struct{}
	// SolidAngle tags solid angles (sr); dimensionless.
	SolidAngle struct{}
	// DataAmount tags binary information amounts (bit); dimensionless.
	DataAmount struct{}
	// Frequency tags cycle rates (Hz, T⁻¹).
	Frequency struct{}
	// Force tags forces (N, L·M·T⁻²).
	Force struct{}
	// Pressure tags pressures and stresses (Pa).
	Pressure struct{}
	// Energy tags energy, work and heat (J).
	Energy struct{}
	// Power tags power and radiant flux (W).
	Power struct{}
	// ElectricCharge tags electric charge (C).
	ElectricCharge struct{}
	// ElectricPotential tags potential difference (V).
	ElectricPotential struct{}
	// ElectricCapacitance tags capacitance (F).
	ElectricCapacitance struct{}
	// ElectricResistance tags resistance (Ω).
	ElectricResistance struct{}
	// ElectricConductance tags conductance (S).
	ElectricConductance struct{}
	// ElectricInductance tags inductance (H).
	ElectricInductance struct{}
	// MagneticFlux tags magnetic flux (Wb).
	MagneticFlux struct{}
	// MagneticFluxDensity tags flux density (T).
	MagneticFluxDensity struct{}
	// LuminousFlux tags luminous flux (lm).
	LuminousFlux struct{}
	// Illuminance tags illuminance (lx).
	Illuminance struct{}
	// RadioactiveActivity tags radionuclide activity (Bq).
	RadioactiveActivity struct{}
	// RadiationDoseAbsorbed tags absorbed dose (Gy).
	RadiationDoseAbsorbed struct{}
	// RadiationDoseEffective tags dose equivalent (Sv).
	RadiationDoseEffective struct{}
	// CatalyticActivity tags catalytic activity (kat).
	CatalyticActivity struct{}
)

// Derived quantities without named SI units.
type (
	// Velocity tags speeds (m/s).
	Velocity struct{}
	// Acceleration tags accelerations (m/s²).
	Acceleration struct{}
	// Area tags areas (m²).
	Area struct{}
	// Volume tags volumes (m³).
	Volume struct{}
)

func (Dimensionless) isQuantity()          {}
func (Length) isQuantity()                 {}
func (Mass) isQuantity()                   {}
func (Duration) isQuantity()               {}
func (ElectricCurrent) isQuantity()        {}
func (Temperature) isQuantity()            {}
func (AmountOfSubstance) isQuantity()      {}
func (LuminousIntensity) isQuantity()      {}
func (Angle) isQuantity()                  {}
func (SolidAngle) isQuantity()             {}
func (DataAmount) isQuantity()             {}
func (Frequency) isQuantity()              {}
func (Force) isQuantity()                  {}
func (Pressure) isQuantity()               {}
func (Energy) isQuantity()                 {}
func (Power) isQuantity()                  {}
func (ElectricCharge) isQuantity()         {}
func (ElectricPotential) isQuantity()      {}
func (ElectricCapacitance) isQuantity()    {}
func (ElectricResistance) isQuantity()     {}
func (ElectricConductance) isQuantity()    {}
func (ElectricInductance) isQuantity()     {}
func (MagneticFlux) isQuantity()           {}
func (MagneticFluxDensity) isQuantity()    {}
func (LuminousFlux) isQuantity()           {}
func (Illuminance) isQuantity()            {}
func (RadioactiveActivity) isQuantity()    {}
func (RadiationDoseAbsorbed) isQuantity()  {}
func (RadiationDoseEffective) isQuantity() {}
func (CatalyticActivity) isQuantity()      {}
func (Velocity) isQuantity()               {}
func (Acceleration) isQuantity()           {}
func (Area) isQuantity()                   {}
func (Volume) isQuantity()                 {}
