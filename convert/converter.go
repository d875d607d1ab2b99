// SPDX-License-Identifier: MIT
//
// File: converter.go
// Role: The Converter interface and the closed set of elementary converters.
// Policy:
//   - Constructors validate and panic on meaningless inputs (99-rules);
//     conversion itself never fails.
//   - Inverse is structural (reciprocal scale, negated offset), never numeric.
//   - The variant set is closed by the unexported steps() method.

package convert

import (
	"fmt"
	"math"
	"strconv"
)

// Converter transforms a numeric value from one unit scale to another.
//
// Every Converter is immutable, safe for concurrent use, and has a
// well-defined structural inverse: Inverse().Convert(Convert(x)) == x for all
// finite x, up to floating-point rounding (exactly, for Rational converters).
type Converter interface {
	// Convert applies the transform to x. Total over finite inputs;
	// degenerate inputs may yield ±Inf or NaN, which is not an error.
	Convert(x float64) float64

	// Inverse returns the converter undoing this one.
	// Complexity: O(steps).
	Inverse() Converter

	// Compose returns a converter equivalent to applying other first,
	// then this one. Adjacent same-kind steps merge; scale and offset
	// steps are never reordered.
	// Complexity: O(steps of both operands).
	Compose(other Converter) Converter

	// IsIdentity reports whether this converter is the identity transform.
	IsIdentity() bool

	// String renders the transform for diagnostics, e.g. "×1000" or "+273.15".
	String() string

	// steps returns the elementary steps in application order.
	// Unexported: the variant set is closed within this package.
	steps() []Converter
}

// Identity is the converter f(x) = x, the neutral element of Compose.
var Identity Converter = identity{}

type identity struct{}

func (identity) Convert(x float64) float64 { return x }
func (identity) Inverse() Converter        { return Identity }
func (identity) IsIdentity() bool          { return true }
func (identity) String() string            { return "identity" }
func (identity) steps() []Converter        { return nil }

func (identity) Compose(other Converter) Converter { return other }

// multiply scales by an arbitrary floating factor.
type multiply struct{ factor float64 }

// NewMultiply returns the converter f(x) = x * factor.
// A factor of exactly 1 returns Identity.
// Panics if factor is zero, NaN or infinite (a scale must be invertible).
func NewMultiply(factor float64) Converter {
	if factor == 0 || isNonFinite(factor) {
		panic(fmt.Sprintf("convert: NewMultiply(%v): factor must be finite and non-zero", factor))
	}
	if factor == 1 {
		return Identity
	}

	return multiply{factor: factor}
}

func (m multiply) Convert(x float64) float64 { return x * m.factor }
func (m multiply) Inverse() Converter        { return multiply{factor: 1 / m.factor} }
func (m multiply) IsIdentity() bool          { return false }
func (m multiply) String() string            { return "×" + strconv.FormatFloat(m.factor, 'g', -1, 64) }
func (m multiply) steps() []Converter        { return []Converter{m} }

func (m multiply) Compose(other Converter) Converter { return compose(other, m) }

// rational scales by the exact ratio num/den.
type rational struct{ num, den int64 }

// NewRational returns the converter f(x) = x * (num/den), gcd-reduced with a
// positive denominator. num == den returns Identity.
// Panics if num is zero or den is zero (the ratio must be invertible).
func NewRational(num, den int64) Converter {
	if num == 0 || den == 0 {
		panic(fmt.Sprintf("convert: NewRational(%d, %d): numerator and denominator must be non-zero", num, den))
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num, den = num/g, den/g
	}
	if num == den { // only possible as 1/1 after reduction
		return Identity
	}

	return rational{num: num, den: den}
}

func (r rational) Convert(x float64) float64 { return x * float64(r.num) / float64(r.den) }
func (r rational) Inverse() Converter        { return NewRational(r.den, r.num) }
func (r rational) IsIdentity() bool          { return false }
func (r rational) String() string {
	if r.den == 1 {
		return fmt.Sprintf("×%d", r.num)
	}

	return fmt.Sprintf("×%d/%d", r.num, r.den)
}
func (r rational) steps() []Converter { return []Converter{r} }

func (r rational) Compose(other Converter) Converter { return compose(other, r) }

// offset shifts by a constant (affine units such as Celsius).
type offset struct{ off float64 }

// NewOffset returns the converter f(x) = x + off.
// An offset of exactly 0 returns Identity. Panics on NaN.
func NewOffset(off float64) Converter {
	if math.IsNaN(off) {
		panic("convert: NewOffset(NaN)")
	}
	if off == 0 {
		return Identity
	}

	return offset{off: off}
}

func (o offset) Convert(x float64) float64 { return x + o.off }
func (o offset) Inverse() Converter        { return offset{off: -o.off} }
func (o offset) IsIdentity() bool          { return false }
func (o offset) String() string {
	if o.off < 0 {
		return strconv.FormatFloat(o.off, 'g', -1, 64)
	}

	return "+" + strconv.FormatFloat(o.off, 'g', -1, 64)
}
func (o offset) steps() []Converter { return []Converter{o} }

func (o offset) Compose(other Converter) Converter { return compose(other, o) }

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// gcd computes the greatest common divisor of two non-negative values.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
