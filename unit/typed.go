// SPDX-License-Identifier: MIT
//
// File: typed.go
// Role: The compile-time quantity-tagged facade over Unit.
// Policy:
//   - The tag Q is phantom: it exists only in the type, never at runtime.
//   - Tag-preserving operations (Transform, Plus, Scale) stay typed;
//     cross-quantity algebra (Times, Divide, …) goes through the embedded
//     *Unit and is deliberately untyped.

package unit

import (
	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/quantity"
)

// Of is a Unit tagged with the kind of physical quantity Q it measures.
// The tag is purely a call-site type check: Of[quantity.Length] and
// Of[quantity.Duration] wrap the same runtime representation, but a typed
// ConverterTo between them does not compile.
//
// Of embeds *Unit, so the full untyped algebra remains reachable through the
// Unit field when quantities must be mixed (velocity = length / duration).
type Of[Q quantity.Quantity] struct {
	*Unit
}

// As tags a unit with the quantity kind Q. The caller asserts the unit
// actually measures Q; the assertion is not (and cannot be) checked at
// runtime, since tags carry no dimensional data of their own.
func As[Q quantity.Quantity](u *Unit) Of[Q] {
	if u == nil {
		panic("unit: As(nil)")
	}

	return Of[Q]{Unit: u}
}

// Transform layers an extra converter on the unit, preserving the tag.
func (o Of[Q]) Transform(c convert.Converter) Of[Q] {
	return Of[Q]{Unit: o.Unit.Transform(c)}
}

// Plus shifts the unit by an offset, preserving the tag.
func (o Of[Q]) Plus(offset float64) Of[Q] {
	return Of[Q]{Unit: o.Unit.Plus(offset)}
}

// Scale scales the unit by a factor, preserving the tag.
func (o Of[Q]) Scale(factor float64) Of[Q] {
	return Of[Q]{Unit: o.Unit.Scale(factor)}
}

// ConverterTo returns the converter from o to other. Both units carry the
// same quantity tag, so a mismatched call is rejected at compile time; the
// dimensional check still runs, since tags are caller assertions.
func (o Of[Q]) ConverterTo(other Of[Q]) (convert.Converter, error) {
	return o.Unit.ConverterTo(other.Unit)
}
