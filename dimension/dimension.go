// SPDX-License-Identifier: MIT
//
// File: dimension.go
// Role: The Dimension value type and its exponent-vector algebra.
// Policy:
//   - Dimension is a comparable value; == is the sole commensurability test.
//   - All operations are pure; Root is the only fallible one.

package dimension

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for dimension algebra.
var (
	// ErrFractionalExponent indicates Root(n) would produce a non-integer
	// exponent for some fundamental dimension.
	ErrFractionalExponent = errors.New("dimension: exponent not evenly divisible by root")

	// ErrZeroRoot indicates Root(0), which is undefined.
	ErrZeroRoot = errors.New("dimension: zeroth root is undefined")
)

// count is the number of fundamental dimensions.
const count = 7

// Indices of the fundamental dimensions in the exponent vector.
const (
	idxLength = iota
	idxMass
	idxTime
	idxCurrent
	idxTemperature
	idxAmount
	idxLuminous
)

// symbols holds the conventional dimension symbols, by index.
var symbols = [count]string{"L", "M", "T", "I", "Θ", "N", "J"}

// Dimension is the algebraic signature of a physical quantity: an integer
// exponent for each fundamental dimension. The zero value is None
// (dimensionless). Dimensions are immutable and comparable with ==.
type Dimension struct {
	exp [count]int
}

// None is the dimensionless signature (all exponents zero).
var None = Dimension{}

// The seven fundamental Dimensions.
var (
	Length            = fundamental(idxLength)
	Mass              = fundamental(idxMass)
	Time              = fundamental(idxTime)
	ElectricCurrent   = fundamental(idxCurrent)
	Temperature       = fundamental(idxTemperature)
	AmountOfSubstance = fundamental(idxAmount)
	LuminousIntensity = fundamental(idxLuminous)
)

// fundamentals lists the seven fundamental Dimensions in canonical order.
var fundamentals = [count]Dimension{
	Length, Mass, Time, ElectricCurrent, Temperature, AmountOfSubstance, LuminousIntensity,
}

// Fundamentals returns the seven fundamental Dimensions in canonical order
// (L, M, T, I, Θ, N, J). The returned slice is a fresh copy.
func Fundamentals() []Dimension {
	out := make([]Dimension, count)
	copy(out, fundamentals[:])

	return out
}

func fundamental(idx int) Dimension {
	var d Dimension
	d.exp[idx] = 1

	return d
}

// Times returns the product of d and o: exponents add.
// Complexity: O(1).
func (d Dimension) Times(o Dimension) Dimension {
	var out Dimension
	for i := range d.exp {
		out.exp[i] = d.exp[i] + o.exp[i]
	}

	return out
}

// Divide returns the quotient of d by o: exponents subtract.
// Complexity: O(1).
func (d Dimension) Divide(o Dimension) Dimension {
	var out Dimension
	for i := range d.exp {
		out.exp[i] = d.exp[i] - o.exp[i]
	}

	return out
}

// Pow returns d raised to the integer power n: exponents scale by n.
// Pow(0) is None for every Dimension.
// Complexity: O(1).
func (d Dimension) Pow(n int) Dimension {
	var out Dimension
	for i := range d.exp {
		out.exp[i] = d.exp[i] * n
	}

	return out
}

// Root returns the n-th root of d: exponents divide by n.
// Returns ErrZeroRoot for n == 0, and ErrFractionalExponent when any exponent
// is not evenly divisible by n (fractional dimensions are not supported).
// Complexity: O(1).
func (d Dimension) Root(n int) (Dimension, error) {
	if n == 0 {
		return None, ErrZeroRoot
	}
	var out Dimension
	for i := range d.exp {
		if d.exp[i]%n != 0 {
			return None, ErrFractionalExponent
		}
		out.exp[i] = d.exp[i] / n
	}

	return out, nil
}

// Equal reports whether d and o have identical exponents for every
// fundamental dimension. This is the sole criterion for commensurability.
func (d Dimension) Equal(o Dimension) bool { return d == o }

// IsNone reports whether d is the dimensionless signature.
func (d Dimension) IsNone() bool { return d == None }

// Exponent returns the exponent of the given fundamental Dimension within d.
// Panics if f is not one of the seven fundamentals.
func (d Dimension) Exponent(f Dimension) int {
	for i := range fundamentals {
		if f == fundamentals[i] {
			return d.exp[i]
		}
	}
	panic("dimension: Exponent of a non-fundamental dimension")
}

// String renders the signature with conventional symbols and superscript
// exponents, e.g. "L·T⁻²". None renders as "1".
func (d Dimension) String() string {
	if d == None {
		return "1"
	}
	var b strings.Builder
	for i, e := range d.exp {
		if e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("·")
		}
		b.WriteString(symbols[i])
		if e != 1 {
			b.WriteString(superscript(e))
		}
	}

	return b.String()
}

// superscript renders an integer using Unicode superscript digits.
var superDigits = map[rune]rune{
	'-': '⁻', '0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superDigits[r])
	}

	return b.String()
}
