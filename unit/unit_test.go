package unit_test

import (
	"testing"

	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/dimension"
	"github.com/physkit/physkit/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test catalog: a miniature SI. Package-level so every test file shares the
// same base-unit identities (and the same canonical registrations).
var (
	meter    = unit.NewBase("m", dimension.Length)
	kilogram = unit.NewBase("kg", dimension.Mass)
	second   = unit.NewBase("s", dimension.Time)
	kelvin   = unit.NewBase("K", dimension.Temperature)

	newton    = unit.NewAlternate("N", meter.Times(kilogram).Divide(second.Pow(2)))
	kilometer = meter.Scale(1000)
	celsius   = kelvin.Plus(273.15)
)

// TestNewBase_Validation pins constructor panics for meaningless inputs.
func TestNewBase_Validation(t *testing.T) {
	assert.Panics(t, func() { unit.NewBase("", dimension.Length) },
		"empty symbol must panic")
}

// TestNewAlternate_Validation pins the unscaled-parent contract.
func TestNewAlternate_Validation(t *testing.T) {
	assert.Panics(t, func() { unit.NewAlternate("", meter) }, "empty symbol must panic")
	assert.Panics(t, func() { unit.NewAlternate("x", nil) }, "nil parent must panic")
	assert.Panics(t, func() { unit.NewAlternate("km", kilometer) },
		"a scaled parent must panic: symbols belong to unscaled units")
	assert.NotPanics(t, func() { unit.NewAlternate("Nn", newton.Times(meter)) },
		"a product of unscaled units is a valid parent")
}

// TestCanonicalCombination verifies m·m and m² are the same structural unit,
// and more generally that operation order does not matter.
func TestCanonicalCombination(t *testing.T) {
	assert.True(t, meter.Times(meter).Equal(meter.Pow(2)),
		"m·m and m² must be structurally equal")
	assert.True(t,
		meter.Times(kilogram).Divide(second.Pow(2)).
			Equal(kilogram.Divide(second.Pow(2)).Times(meter)),
		"different operation sequences must converge to one canonical product")
}

// TestProduct_Collapse verifies zero exponents drop and singletons collapse.
func TestProduct_Collapse(t *testing.T) {
	assert.True(t, meter.Divide(meter).Equal(unit.One), "m/m must collapse to One")
	assert.True(t, meter.Pow(2).Divide(meter).Equal(meter),
		"m²/m must collapse to the bare unit")
	assert.True(t, meter.Pow(0).Equal(unit.One), "m⁰ must be One")
	assert.True(t, unit.One.Times(meter).Equal(meter), "One is neutral for Times")
}

// TestPow_Root round-trips powers through roots and pins the inexact-root
// error.
func TestPow_Root(t *testing.T) {
	area := meter.Pow(2)

	side, err := area.Root(2)
	require.NoError(t, err)
	assert.True(t, side.Equal(meter), "√(m²) must be m")

	_, err = meter.Root(2)
	assert.ErrorIs(t, err, unit.ErrInexactRoot, "√m has no integer exponents")

	assert.Panics(t, func() { _, _ = meter.Root(0) }, "Root(0) is a programming error")
}

// TestTransform_Merging verifies stacked transforms merge and exact inverses
// restore the parent unit.
func TestTransform_Merging(t *testing.T) {
	assert.True(t, kilometer.Scale(0.001).Equal(meter),
		"scaling a kilometer back down must return the bare meter")
	assert.True(t, meter.Transform(convert.Identity).Equal(meter),
		"an identity transform must be a no-op")
	assert.True(t, celsius.Plus(-273.15).Equal(kelvin),
		"removing the Celsius offset must return Kelvin")
}

// TestSymbol_String covers symbol access and diagnostic rendering.
func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "N", newton.Symbol())
	assert.Equal(t, "", kilometer.Symbol(), "derived units carry no symbol")
	assert.Equal(t, "kg·m·s⁻²", meter.Times(kilogram).Divide(second.Pow(2)).String(),
		"products render canonically ordered factors")
	assert.Equal(t, "1", unit.One.String())
}

// TestDimension_Homomorphism verifies unit algebra and dimension algebra
// commute: dim(a·b) == dim(a)·dim(b), and likewise for Divide and Pow.
func TestDimension_Homomorphism(t *testing.T) {
	a, b := newton, kilometer

	assert.True(t, a.Times(b).Dimension().Equal(a.Dimension().Times(b.Dimension())),
		"Times must commute with dimension reduction")
	assert.True(t, a.Divide(b).Dimension().Equal(a.Dimension().Divide(b.Dimension())),
		"Divide must commute with dimension reduction")
	assert.True(t, a.Pow(3).Dimension().Equal(a.Dimension().Pow(3)),
		"Pow must commute with dimension reduction")
}
