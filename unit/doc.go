// Package unit implements symbolic units of measurement as algebraic
// expressions over base units, together with the machinery that turns any two
// commensurable units into an exact numeric conversion.
//
// What:
//
//   - Unit — an immutable expression tree with four forms:
//     base units (NewBase: "m", "kg", "s", …), alternate units (NewAlternate:
//     a named alias such as "N" for m·kg/s²), product units (built by
//     Times/Divide/Pow/Root), and transformed units (built by Transform/Plus:
//     prefixes like kilo, affine units like Celsius).
//   - Resolution — every Unit reduces, under the active physical Model, to a
//     canonical system unit, a converter to it, and a dimension.Dimension.
//   - Model — the pluggable strategy deciding which Dimension and which
//     transform a base unit resolves to; Standard is the SI default.
//     SelectModel swaps the process-wide active model atomically.
//   - Of[Q] — a zero-cost typed facade tagging a Unit with the quantity kind
//     it measures; the tag exists only at compile time.
//
// Why:
//
//   - Quantities of incompatible physical nature must never be silently
//     mixed: ConverterTo fails fast with both dimensions named, instead of
//     producing a garbage number.
//   - Units built through different operation sequences but algebraically
//     identical compare structurally equal: products keep their elements
//     combined, canonically ordered, with zero exponents dropped, so
//     m.Times(m) and m.Pow(2) are the same unit.
//
// Concurrency:
//
//   - Units, converters and dimensions are immutable and freely shareable.
//     The one piece of shared mutable state is the active Model, an atomic
//     reference intended to be set near process start (or per test), not
//     toggled under load. A model swap takes effect for resolutions that
//     start after the call completes.
//
// Errors:
//
//   - ErrIncompatible — conversion between units of different dimensions.
//   - ErrInexactRoot — Root(n) with an exponent not divisible by n.
//   - ErrNonLinearProduct — an offset-bearing unit used as a product factor.
//
// Construction-time and configuration-time defects (empty symbol, scaled
// alternate parent, inconsistent Model tables) panic: they are programming
// errors, not user errors.
//
// AI-Hints:
//   - Units are cheap to share, not cheap to rebuild: retain catalog units
//     (see package si) instead of reconstructing expressions per call.
//   - prev := SelectModel(m); defer SelectModel(prev) is the test idiom for
//     model swaps.
package unit
