// SPDX-License-Identifier: MIT
//
// File: compound.go
// Role: Ordered converter chains and the shared simplification rules.
// Policy:
//   - Only adjacent same-kind steps merge; scale never crosses an offset.
//   - A chain reducing to one step IS that step; to zero steps, Identity.

package convert

import "strings"

// compound is an ordered sequence of elementary converters applied
// left-to-right. Produced only by Compose; always holds at least two
// elementary steps after simplification.
type compound struct{ seq []Converter }

func (c compound) Convert(x float64) float64 {
	for _, step := range c.seq {
		x = step.Convert(x)
	}

	return x
}

// Inverse reverses the chain and inverts each step.
func (c compound) Inverse() Converter {
	inv := make([]Converter, len(c.seq))
	for i, step := range c.seq {
		inv[len(c.seq)-1-i] = step.Inverse()
	}

	return compound{seq: inv}
}

func (c compound) IsIdentity() bool   { return false }
func (c compound) steps() []Converter { return c.seq }

func (c compound) Compose(other Converter) Converter { return compose(other, c) }

func (c compound) String() string {
	parts := make([]string, len(c.seq))
	for i, step := range c.seq {
		parts[i] = step.String()
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// compose builds the converter applying first, then second, merging adjacent
// same-kind steps. The relative order of scale and offset steps is preserved
// exactly as applied.
// Complexity: O(len(first)+len(second)) time and space.
func compose(first, second Converter) Converter {
	raw := append(append([]Converter{}, first.steps()...), second.steps()...)

	var out []Converter
	for _, step := range raw {
		if step.IsIdentity() {
			continue
		}
		if n := len(out); n > 0 {
			if merged, ok := merge(out[n-1], step); ok {
				if merged.IsIdentity() {
					out = out[:n-1]
				} else {
					out[n-1] = merged
				}

				continue
			}
		}
		out = append(out, step)
	}

	switch len(out) {
	case 0:
		return Identity
	case 1:
		return out[0]
	default:
		return compound{seq: out}
	}
}

// merge combines two adjacent elementary steps of the same kind.
// Scale-with-scale multiplies factors; offset-with-offset adds shifts.
// Returns ok=false for a scale/offset boundary, which must stay ordered.
func merge(a, b Converter) (Converter, bool) {
	switch x := a.(type) {
	case rational:
		switch y := b.(type) {
		case rational:
			return mulRational(x, y), true
		case multiply:
			return NewMultiply(x.Convert(y.factor)), true
		}
	case multiply:
		switch y := b.(type) {
		case rational:
			return NewMultiply(y.Convert(x.factor)), true
		case multiply:
			return NewMultiply(x.factor * y.factor), true
		}
	case offset:
		if y, ok := b.(offset); ok {
			return NewOffset(x.off + y.off), true
		}
	}

	return nil, false
}

// mulRational multiplies two exact ratios, staying exact when the products
// fit in int64 and degrading to a floating Multiply on overflow.
func mulRational(a, b rational) Converter {
	num, okN := mulInt64(a.num, b.num)
	den, okD := mulInt64(a.den, b.den)
	if okN && okD {
		return NewRational(num, den)
	}

	return NewMultiply(a.Convert(b.Convert(1)))
}

// mulInt64 reports a*b and whether it fits in int64.
func mulInt64(a, b int64) (int64, bool) {
	p := a * b
	if a != 0 && p/a != b {
		return 0, false
	}

	return p, true
}

// Equal reports structural equality of two converters: same elementary steps,
// same order, same exact parameters. Numerically equivalent converters of
// different kinds (Multiply(2) vs Rational(2, 1)) are NOT equal.
func Equal(a, b Converter) bool {
	as, bs := a.steps(), b.steps()
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] { // elementary steps are comparable values
			return false
		}
	}

	return true
}

// IsLinear reports whether c is a pure scaling (no offset step anywhere in
// its chain). Only linear converters may participate in product-unit
// resolution: (x+c)·y has no meaning as a unit factor.
func IsLinear(c Converter) bool {
	for _, step := range c.steps() {
		if _, ok := step.(offset); ok {
			return false
		}
	}

	return true
}
