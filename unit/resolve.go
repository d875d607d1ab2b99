// SPDX-License-Identifier: MIT
//
// File: resolve.go
// Role: Reduction of unit expressions to (system unit, converter, dimension)
//       under the active model, and the public compatibility/conversion API.
// Policy:
//   - Resolution consults the model only at base-unit leaves.
//   - Incompatible conversions fail fast, naming both dimensions.

package unit

import (
	"fmt"

	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/dimension"
)

// Dimension reduces u's expression tree to its Dimension under the active
// model. Two units are commensurable iff their Dimensions are equal,
// regardless of scale factors.
// Complexity: O(size of the expression tree).
func (u *Unit) Dimension() dimension.Dimension {
	switch u.kind {
	case kindBase:
		d, _ := resolveBase(u)

		return d
	case kindAlternate, kindTransformed:
		return u.parent.Dimension()
	default: // product
		out := dimension.None
		for _, el := range u.elems {
			out = out.Times(el.unit.Dimension().Pow(el.exp))
		}

		return out
	}
}

// IsCompatible reports whether u and o reduce to the same Dimension under the
// active model, i.e. whether a conversion between them exists.
func (u *Unit) IsCompatible(o *Unit) bool {
	if o == nil {
		panic("unit: IsCompatible(nil)")
	}

	return u.Dimension() == o.Dimension()
}

// ConverterTo returns the converter taking numeric values expressed in u to
// values expressed in o, computed as
// o.toSystem().Inverse().Compose(u.toSystem()).
//
// Returns an error wrapping ErrIncompatible (naming both dimensions) when
// the units are not commensurable, and ErrNonLinearProduct when an
// offset-bearing unit appears inside a product on either side.
// Complexity: O(size of both expression trees).
func (u *Unit) ConverterTo(o *Unit) (convert.Converter, error) {
	if o == nil {
		panic("unit: ConverterTo(nil)")
	}
	if u.Equal(o) {
		return convert.Identity, nil
	}
	du, do := u.Dimension(), o.Dimension()
	if du != do {
		return nil, fmt.Errorf("%w: %s is %s, %s is %s", ErrIncompatible, u, du, o, do)
	}
	_, cu, err := u.systemUnit()
	if err != nil {
		return nil, err
	}
	_, co, err := o.systemUnit()
	if err != nil {
		return nil, err
	}

	return co.Inverse().Compose(cu), nil
}

// systemUnit reduces u to its canonical system representative under the
// active model, together with the converter from u to it.
//
//   - base: (system unit of the model's dimension, the model's transform)
//   - alternate: the parent's resolution
//   - transformed: the parent's resolution with the extra converter composed
//   - product: per-factor resolution; the units multiply, the converters
//     (raised to the factor exponents) compose. Every factor converter must
//     be linear: ErrNonLinearProduct otherwise.
func (u *Unit) systemUnit() (*Unit, convert.Converter, error) {
	switch u.kind {
	case kindBase:
		d, tr := resolveBase(u)

		return systemUnitFor(d), tr, nil
	case kindAlternate:
		return u.parent.systemUnit()
	case kindTransformed:
		sys, c, err := u.parent.systemUnit()
		if err != nil {
			return nil, nil, err
		}

		return sys, c.Compose(u.extra), nil
	default: // product
		accUnit, accConv := One, convert.Identity
		for _, el := range u.elems {
			sys, c, err := el.unit.systemUnit()
			if err != nil {
				return nil, nil, err
			}
			if !convert.IsLinear(c) {
				return nil, nil, fmt.Errorf("%w: %s within %s", ErrNonLinearProduct, el.unit, u)
			}
			accUnit = accUnit.Times(sys.Pow(el.exp))
			accConv = accConv.Compose(powConverter(c, el.exp))
		}

		return accUnit, accConv, nil
	}
}

// powConverter raises a linear converter to an integer power by repeated
// composition; scale steps merge, so the result stays a single step.
func powConverter(c convert.Converter, n int) convert.Converter {
	if n < 0 {
		c = c.Inverse()
		n = -n
	}
	out := convert.Identity
	for i := 0; i < n; i++ {
		out = out.Compose(c)
	}

	return out
}
