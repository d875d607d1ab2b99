package si_test

import (
	"testing"

	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/dimension"
	"github.com/physkit/physkit/si"
	"github.com/physkit/physkit/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrefix_Kilometer pins the canonical prefix scenario in both directions.
func TestPrefix_Kilometer(t *testing.T) {
	toMeter, err := si.Kilo(si.Meter).ConverterTo(si.Meter)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, toMeter.Convert(1), "KILO(m)→m of 1 must be 1000")

	toKilometer, err := si.Meter.ConverterTo(si.Kilo(si.Meter))
	require.NoError(t, err)
	assert.Equal(t, 1.0, toKilometer.Convert(1000), "m→KILO(m) of 1000 must be 1")
}

// TestPrefix_Stacking verifies repeated prefixes merge into one scale step
// instead of nesting converters.
func TestPrefix_Stacking(t *testing.T) {
	megameter := si.Kilo(si.Kilo(si.Meter))

	conv, err := megameter.ConverterTo(si.Meter)
	require.NoError(t, err)
	assert.True(t, convert.Equal(conv, convert.NewMultiply(1e6)),
		"KILO(KILO(m)) must resolve to a single ×1e6 scale")

	milli := si.Milli(si.Kilo(si.Meter))
	conv, err = milli.ConverterTo(si.Meter)
	require.NoError(t, err)
	assert.True(t, conv.IsIdentity(), "MILLI(KILO(m)) must cancel back to m")
}

// TestGram verifies the kilogram/gram relationship.
func TestGram(t *testing.T) {
	toKilogram, err := si.Gram.ConverterTo(si.Kilogram)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, toKilogram.Convert(1), 1e-15, "1 g is 0.001 kg")

	toGram, err := si.Kilogram.ConverterTo(si.Gram)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, toGram.Convert(1), 1e-9, "1 kg is 1000 g")
}

// TestCelsius pins the affine scenario from the Kelvin definition.
func TestCelsius(t *testing.T) {
	toKelvin, err := si.Celsius.ConverterTo(si.Kelvin)
	require.NoError(t, err)
	assert.Equal(t, 273.15, toKelvin.Convert(0), "0 °C is 273.15 K")

	toCelsius, err := si.Kelvin.ConverterTo(si.Celsius)
	require.NoError(t, err)
	assert.Equal(t, 0.0, toCelsius.Convert(273.15), "273.15 K is 0 °C")
	assert.InDelta(t, 100.0, toCelsius.Convert(373.15), 1e-9, "373.15 K is 100 °C")
}

// TestNewton verifies the named unit is identical to its defining product.
func TestNewton(t *testing.T) {
	product := si.Kilogram.Unit.Times(si.Meter.Unit).Divide(si.Second.Unit.Pow(2))

	conv, err := si.Newton.Unit.ConverterTo(product)
	require.NoError(t, err)
	assert.True(t, conv.IsIdentity(), "N ≡ kg·m/s²")
}

// TestDerivedDimensions spot-checks the derived roster against the expected
// fundamental signatures.
func TestDerivedDimensions(t *testing.T) {
	cases := []struct {
		name string
		u    *unit.Unit
		dim  dimension.Dimension
	}{
		{"Hertz", si.Hertz.Unit, dimension.Time.Pow(-1)},
		{"Pascal", si.Pascal.Unit,
			dimension.Mass.Divide(dimension.Length).Divide(dimension.Time.Pow(2))},
		{"Joule", si.Joule.Unit,
			dimension.Mass.Times(dimension.Length.Pow(2)).Divide(dimension.Time.Pow(2))},
		{"Volt", si.Volt.Unit,
			dimension.Mass.Times(dimension.Length.Pow(2)).
				Divide(dimension.Time.Pow(3)).Divide(dimension.ElectricCurrent)},
		{"Radian", si.Radian.Unit, dimension.None},
		{"Katal", si.Katal.Unit, dimension.AmountOfSubstance.Divide(dimension.Time)},
		{"MeterPerSquareSecond", si.MeterPerSquareSecond.Unit,
			dimension.Length.Divide(dimension.Time.Pow(2))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.u.Dimension().Equal(tc.dim),
				"%s must reduce to %s, got %s", tc.name, tc.dim, tc.u.Dimension())
		})
	}
}

// TestAlternateEquivalents verifies dimensionally identical named units
// (Hertz vs Becquerel, Gray vs Sievert) interconvert with the identity.
func TestAlternateEquivalents(t *testing.T) {
	conv, err := si.Hertz.Unit.ConverterTo(si.Becquerel.Unit)
	require.NoError(t, err)
	assert.True(t, conv.IsIdentity(), "Hz and Bq share 1/s")

	conv, err = si.Gray.Unit.ConverterTo(si.Sievert.Unit)
	require.NoError(t, err)
	assert.True(t, conv.IsIdentity(), "Gy and Sv share J/kg")
}

// TestTypedFacade verifies the tag survives prefixing and transforming, and
// that conversion stays typed end to end.
func TestTypedFacade(t *testing.T) {
	centimeter := si.Centi(si.Meter)
	conv, err := centimeter.ConverterTo(si.Kilo(si.Meter))
	require.NoError(t, err)
	assert.InDelta(t, 0.00001, conv.Convert(1), 1e-18, "1 cm is 1e-5 km")
}

// TestHectoPascal mirrors the catalog's own doc example: HECTO(Pa).
func TestHectoPascal(t *testing.T) {
	conv, err := si.Hecto(si.Pascal).ConverterTo(si.Pascal)
	require.NoError(t, err)
	assert.Equal(t, 100.0, conv.Convert(1), "1 hPa is 100 Pa")
}
