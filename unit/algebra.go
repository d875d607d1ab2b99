// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: The unit algebra: products, powers, roots, transforms, offsets, and
//       structural equality.
// Policy:
//   - Products stay canonical at all times: equal factors combined, zero
//     exponents dropped, factors sorted by a stable key, singletons collapsed.
//   - Dimension and converter reduction therefore stay linear in the number
//     of distinct factors, not in the number of operations performed.

package unit

import (
	"sort"
	"strconv"
	"strings"

	"github.com/physkit/physkit/convert"
)

// Times returns the product unit u·o with factors combined and canonically
// ordered: m.Times(m) is m², not a two-term product.
// Complexity: O(k log k) over the k distinct factors.
func (u *Unit) Times(o *Unit) *Unit {
	if o == nil {
		panic("unit: Times(nil)")
	}

	return normalize(append(u.factors(1), o.factors(1)...))
}

// Divide returns the quotient unit u/o.
// Complexity: O(k log k) over the k distinct factors.
func (u *Unit) Divide(o *Unit) *Unit {
	if o == nil {
		panic("unit: Divide(nil)")
	}

	return normalize(append(u.factors(1), o.factors(-1)...))
}

// Pow returns u raised to the integer power n. Pow(0) is One; Pow(1) is u.
// Complexity: O(k) over the k factors.
func (u *Unit) Pow(n int) *Unit {
	switch n {
	case 0:
		return One
	case 1:
		return u
	}
	els := u.factors(1)
	for i := range els {
		els[i].exp *= n
	}

	return normalize(els)
}

// Root returns the n-th root of u. Every factor's exponent must be evenly
// divisible by n; otherwise ErrInexactRoot is returned (fractional dimensions
// are not supported). Panics on n == 0.
// Complexity: O(k) over the k factors.
func (u *Unit) Root(n int) (*Unit, error) {
	if n == 0 {
		panic("unit: Root(0)")
	}
	if n == 1 {
		return u, nil
	}
	els := u.factors(1)
	for i := range els {
		if els[i].exp%n != 0 {
			return nil, ErrInexactRoot
		}
		els[i].exp /= n
	}

	return normalize(els), nil
}

// Transform returns the unit whose values, passed through c, yield values of
// u: the converter runs from the new unit toward u. Layering onto an already
// transformed unit merges the converters; an identity converter returns u
// unchanged. Panics on a nil converter.
// Complexity: O(converter steps).
func (u *Unit) Transform(c convert.Converter) *Unit {
	if c == nil {
		panic("unit: Transform(nil)")
	}
	if c.IsIdentity() {
		return u
	}
	if u.kind == kindTransformed {
		merged := u.extra.Compose(c)
		if merged.IsIdentity() {
			return u.parent
		}

		return &Unit{kind: kindTransformed, parent: u.parent, extra: merged}
	}

	return &Unit{kind: kindTransformed, parent: u, extra: c}
}

// Plus returns the unit shifted by the given offset relative to u:
// Celsius is Kelvin.Plus(273.15). Plus(0) returns u unchanged.
func (u *Unit) Plus(offset float64) *Unit {
	return u.Transform(convert.NewOffset(offset))
}

// Scale returns the unit scaled by the given factor relative to u:
// a gram is Kilogram.Scale(1e-3). Scale(1) returns u unchanged.
// Panics on a zero or non-finite factor.
func (u *Unit) Scale(factor float64) *Unit {
	return u.Transform(convert.NewMultiply(factor))
}

// factors returns the product factors of u as a fresh slice with exponents
// multiplied by sign (+1 for multiplication, -1 for division); a non-product
// unit is its own single factor.
func (u *Unit) factors(sign int) []element {
	if u.kind == kindProduct {
		out := make([]element, len(u.elems))
		for i, el := range u.elems {
			out[i] = element{unit: el.unit, exp: el.exp * sign}
		}

		return out
	}

	return []element{{unit: u, exp: sign}}
}

// normalize brings a factor list to canonical form: equal units combined,
// zero exponents dropped, factors sorted by key, empty product collapsed to
// One and a single first-power factor collapsed to the unit itself.
func normalize(els []element) *Unit {
	var combined []element
	for _, el := range els {
		merged := false
		for i := range combined {
			if combined[i].unit.Equal(el.unit) {
				combined[i].exp += el.exp
				merged = true

				break
			}
		}
		if !merged {
			combined = append(combined, el)
		}
	}

	out := combined[:0]
	for _, el := range combined {
		if el.exp != 0 {
			out = append(out, el)
		}
	}

	switch len(out) {
	case 0:
		return One
	case 1:
		if out[0].exp == 1 {
			return out[0].unit
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].unit.key() < out[j].unit.key() })

	return &Unit{kind: kindProduct, elems: out}
}

// key is the stable total order used to canonicalize product factors.
func (u *Unit) key() string {
	switch u.kind {
	case kindBase, kindAlternate:
		return u.symbol
	case kindTransformed:
		return u.parent.key() + "[" + u.extra.String() + "]"
	default: // product factors are never products themselves
		return u.String()
	}
}

// Equal reports structural equality: same form, same symbols, same factors
// with the same exponents, same transforms. Because products are canonical,
// algebraically identical units built through different operation sequences
// compare equal.
func (u *Unit) Equal(o *Unit) bool {
	if u == o {
		return true
	}
	if o == nil || u.kind != o.kind {
		return false
	}
	switch u.kind {
	case kindBase:
		return u.symbol == o.symbol && u.dim == o.dim
	case kindAlternate:
		return u.symbol == o.symbol && u.parent.Equal(o.parent)
	case kindTransformed:
		return convert.Equal(u.extra, o.extra) && u.parent.Equal(o.parent)
	default: // product
		if len(u.elems) != len(o.elems) {
			return false
		}
		for i := range u.elems {
			if u.elems[i].exp != o.elems[i].exp || !u.elems[i].unit.Equal(o.elems[i].unit) {
				return false
			}
		}

		return true
	}
}

// String renders the unit expression for diagnostics: symbols for base and
// alternate units, "·"-joined factors with superscript exponents for
// products ("m·kg·s⁻²"), and "[parent converter]" for transformed units
// ("[m ×1000]"). One renders as "1".
func (u *Unit) String() string {
	switch u.kind {
	case kindBase, kindAlternate:
		return u.symbol
	case kindTransformed:
		return "[" + u.parent.String() + " " + u.extra.String() + "]"
	default: // product
		if len(u.elems) == 0 {
			return "1"
		}
		var b strings.Builder
		for i, el := range u.elems {
			if i > 0 {
				b.WriteString("·")
			}
			b.WriteString(el.unit.String())
			if el.exp != 1 {
				b.WriteString(superscript(el.exp))
			}
		}

		return b.String()
	}
}

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
