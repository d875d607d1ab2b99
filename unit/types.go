// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: The Unit expression tree, its constructors, and the canonical-unit
//       registry consulted by resolution.
// Policy:
//   - Units are immutable once constructed; every operation returns a new one.
//   - Constructors validate and panic on meaningless inputs; algebra and
//     resolution return errors.
//   - The four forms (base, alternate, product, transformed) are a closed set.

package unit

import (
	"fmt"
	"sync"

	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/dimension"
)

// kind discriminates the closed set of unit expression forms.
type kind uint8

const (
	kindBase kind = iota
	kindAlternate
	kindProduct
	kindTransformed
)

// element is one factor of a product unit: a non-product unit raised to a
// non-zero integer exponent.
type element struct {
	unit *Unit
	exp  int
}

// Unit is a symbolic unit of measurement. The zero value is not a valid Unit;
// use NewBase, NewAlternate, the algebra methods, or the package si catalog.
//
// A Unit is one of:
//   - base: a leaf with a unique symbol and an intrinsic Dimension ("m", "s").
//   - alternate: a named alias for an unscaled unit expression ("N", "Hz").
//   - product: a canonicalized list of (unit, exponent) factors.
//   - transformed: another unit with an extra Converter layered on top
//     (prefixes, affine offsets).
//
// Units are immutable and safe for concurrent use.
type Unit struct {
	kind   kind
	symbol string               // base, alternate
	dim    dimension.Dimension  // base: intrinsic dimension under Standard
	parent *Unit                // alternate, transformed
	extra  convert.Converter    // transformed: converter from this to parent
	elems  []element            // product: canonical factors
}

// One is the dimensionless system unit, the empty product.
var One = &Unit{kind: kindProduct}

// registry maps each fundamental dimension to the first base unit registered
// for it; that unit is the canonical system unit of the dimension, the target
// every model transform is expressed against.
var registry = struct {
	mu        sync.RWMutex
	canonical map[dimension.Dimension]*Unit
}{canonical: make(map[dimension.Dimension]*Unit)}

// NewBase creates a base unit with the given symbol and intrinsic Dimension.
//
// The first base unit registered for a fundamental dimension becomes that
// dimension's canonical system unit. Panics on an empty symbol.
// Complexity: O(1).
func NewBase(symbol string, dim dimension.Dimension) *Unit {
	if symbol == "" {
		panic("unit: NewBase with empty symbol")
	}
	u := &Unit{kind: kindBase, symbol: symbol, dim: dim}

	registry.mu.Lock()
	if _, taken := registry.canonical[dim]; !taken && isFundamental(dim) {
		registry.canonical[dim] = u
	}
	registry.mu.Unlock()

	return u
}

// NewAlternate creates a named unit dimensionally and numerically identical
// to parent but carrying its own display symbol (Newton for m·kg/s²).
//
// The parent must be unscaled: a base unit, another alternate, or a product
// of unscaled units. Panics on an empty symbol, a nil parent, or a scaled
// parent — attaching a symbol to a scaled expression is a programming error.
// Complexity: O(size of parent expression).
func NewAlternate(symbol string, parent *Unit) *Unit {
	if symbol == "" {
		panic("unit: NewAlternate with empty symbol")
	}
	if parent == nil {
		panic("unit: NewAlternate with nil parent")
	}
	if !parent.isUnscaled() {
		panic(fmt.Sprintf("unit: NewAlternate(%q): parent %s is not an unscaled unit", symbol, parent))
	}

	return &Unit{kind: kindAlternate, symbol: symbol, parent: parent}
}

// isUnscaled reports whether u carries no transform anywhere in its tree.
func (u *Unit) isUnscaled() bool {
	switch u.kind {
	case kindBase, kindAlternate:
		return true
	case kindTransformed:
		return false
	default: // product
		for _, el := range u.elems {
			if !el.unit.isUnscaled() {
				return false
			}
		}

		return true
	}
}

// Symbol returns the declared symbol of a base or alternate unit, and the
// empty string for product and transformed units (which have no symbol of
// their own; use String for a rendering of the full expression).
func (u *Unit) Symbol() string { return u.symbol }

// systemUnitFor builds the canonical system unit of a Dimension: the product
// of registered canonical base units raised to d's exponents. Panics when a
// fundamental dimension carried by d has no registered base unit — a
// configuration defect, not a user error.
func systemUnitFor(d dimension.Dimension) *Unit {
	if d.IsNone() {
		return One
	}
	acc := One
	for _, f := range dimension.Fundamentals() {
		e := d.Exponent(f)
		if e == 0 {
			continue
		}
		registry.mu.RLock()
		base, ok := registry.canonical[f]
		registry.mu.RUnlock()
		if !ok {
			panic(fmt.Sprintf("unit: no canonical base unit registered for dimension %s", f))
		}
		acc = acc.Times(base.Pow(e))
	}

	return acc
}

// isFundamental reports whether d is one of the seven fundamental dimensions.
func isFundamental(d dimension.Dimension) bool {
	for _, f := range dimension.Fundamentals() {
		if d == f {
			return true
		}
	}

	return false
}
