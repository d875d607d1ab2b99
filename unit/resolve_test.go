package unit_test

import (
	"testing"

	"github.com/physkit/physkit/dimension"
	"github.com/physkit/physkit/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIncompatibility verifies incompatible units are detected and that the
// conversion error names both dimensions.
func TestIncompatibility(t *testing.T) {
	assert.False(t, meter.IsCompatible(second), "meter and second are incommensurable")

	_, err := meter.ConverterTo(second)
	require.ErrorIs(t, err, unit.ErrIncompatible)
	assert.ErrorContains(t, err, "m is L", "the error must name the source dimension")
	assert.ErrorContains(t, err, "s is T", "the error must name the target dimension")
}

// TestConverterTo_Prefix pins the kilometer scenario: ×1000 one way, ÷1000
// back.
func TestConverterTo_Prefix(t *testing.T) {
	toMeter, err := kilometer.ConverterTo(meter)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, toMeter.Convert(1), "1 km is 1000 m")

	toKilometer, err := meter.ConverterTo(kilometer)
	require.NoError(t, err)
	assert.Equal(t, 1.0, toKilometer.Convert(1000), "1000 m is 1 km")
}

// TestConverterTo_Affine pins the Celsius scenario against Kelvin.
func TestConverterTo_Affine(t *testing.T) {
	toKelvin, err := celsius.ConverterTo(kelvin)
	require.NoError(t, err)
	assert.Equal(t, 273.15, toKelvin.Convert(0), "0 °C is 273.15 K")

	toCelsius, err := kelvin.ConverterTo(celsius)
	require.NoError(t, err)
	assert.Equal(t, 0.0, toCelsius.Convert(273.15), "273.15 K is 0 °C")
}

// TestConverterTo_DerivedIdentity verifies a named alternate unit converts to
// its defining product with the identity converter.
func TestConverterTo_DerivedIdentity(t *testing.T) {
	product := kilogram.Times(meter).Divide(second.Pow(2))

	conv, err := newton.ConverterTo(product)
	require.NoError(t, err)
	assert.True(t, conv.IsIdentity(), "N ≡ kg·m/s² must resolve to the identity")
}

// TestConverterTo_Self verifies every unit converts to itself identically.
func TestConverterTo_Self(t *testing.T) {
	for _, u := range []*unit.Unit{meter, newton, kilometer, celsius, unit.One} {
		conv, err := u.ConverterTo(u)
		require.NoError(t, err)
		assert.True(t, conv.IsIdentity(), "self-conversion of %s must be identity", u)
	}
}

// TestConverterTo_RoundTrip verifies B→A undoes A→B within floating
// tolerance for compatible pairs.
func TestConverterTo_RoundTrip(t *testing.T) {
	pairs := []struct {
		name string
		a, b *unit.Unit
	}{
		{"km/m", kilometer, meter},
		{"celsius/kelvin", celsius, kelvin},
		{"newton/product", newton, kilogram.Times(meter).Divide(second.Pow(2))},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			forth, err := tc.a.ConverterTo(tc.b)
			require.NoError(t, err)
			back, err := tc.b.ConverterTo(tc.a)
			require.NoError(t, err)
			for _, x := range []float64{-40, 0, 0.125, 37, 1e6} {
				assert.InDelta(t, x, back.Convert(forth.Convert(x)), 1e-9,
					"round-trip must restore x=%v", x)
			}
		})
	}
}

// TestConverterTo_NonLinearProduct pins the rejection of offset units used
// as product factors.
func TestConverterTo_NonLinearProduct(t *testing.T) {
	lhs := celsius.Times(meter)
	rhs := kelvin.Times(meter)
	require.True(t, lhs.IsCompatible(rhs), "dimensions still match: Θ·L")

	_, err := lhs.ConverterTo(rhs)
	assert.ErrorIs(t, err, unit.ErrNonLinearProduct,
		"an affine factor inside a product cannot be resolved")
}

// TestSystemUnit_MissingCanonical pins the configuration panic when a
// dimension's fundamental has no registered base unit (amount of substance
// never appears in this test catalog).
func TestSystemUnit_MissingCanonical(t *testing.T) {
	odd := unit.NewBase("q", dimension.AmountOfSubstance.Pow(2))

	assert.Panics(t, func() { _, _ = odd.ConverterTo(odd.Scale(2)) },
		"resolving a dimension without a canonical base unit is a configuration defect")
}
