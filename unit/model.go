// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: The pluggable physical Model strategy and the process-wide selector.
// Policy:
//   - One model is active for the whole process; Standard at start.
//   - The selector is a lock-free atomic reference: configuration-time state,
//     not a hot path. A swap takes effect for resolutions that start after
//     the call completes.

package unit

import (
	"fmt"
	"sync/atomic"

	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/dimension"
)

// Model decides, for every base unit, which Dimension it represents and the
// Converter from that base unit to the model's canonical representation of
// the returned Dimension.
//
// Standard maps each base unit to its intrinsic Dimension with an identity
// transform. Alternate models (relativistic, natural units) may remap
// specific base units — length as time through the speed of light — and must
// delegate to Standard for every other unit.
//
// A Model whose Dimension and Transform answers disagree for the same base
// unit (a remapped dimension with an identity transform, or a rescaled
// canonical unit at an unchanged dimension) is a defective model: resolution
// panics rather than silently falling back.
type Model interface {
	// Dimension returns the Dimension of the given base unit under this model.
	Dimension(base *Unit) dimension.Dimension

	// Transform returns the Converter from the given base unit to the
	// canonical system unit of the Dimension this model assigns it.
	Transform(base *Unit) convert.Converter
}

// Standard is the default SI model: every base unit keeps its intrinsic
// Dimension and an identity transform.
var Standard Model = standardModel{}

type standardModel struct{}

func (standardModel) Dimension(base *Unit) dimension.Dimension {
	mustBeBase(base)

	return base.dim
}

func (standardModel) Transform(base *Unit) convert.Converter {
	mustBeBase(base)

	return convert.Identity
}

func mustBeBase(u *Unit) {
	if u == nil || u.kind != kindBase {
		panic("unit: model consulted with a non-base unit")
	}
}

// active holds the process-wide model; nil means Standard.
var active atomic.Pointer[modelBox]

type modelBox struct{ m Model }

// SelectModel installs m as the process-wide active model and returns the
// previously active one, so callers (tests in particular) can restore it:
//
//	prev := unit.SelectModel(m)
//	defer unit.SelectModel(prev)
//
// Subsequent Dimension and Converter resolutions for every Unit in the
// process use m; no previously constructed Unit is invalidated. Panics on a
// nil model.
func SelectModel(m Model) Model {
	if m == nil {
		panic("unit: SelectModel(nil)")
	}
	prev := ActiveModel()
	active.Store(&modelBox{m: m})

	return prev
}

// ActiveModel returns the currently selected model; Standard at process
// start.
func ActiveModel() Model {
	if b := active.Load(); b != nil {
		return b.m
	}

	return Standard
}

// resolveBase consults the active model for a base unit and enforces the
// model contract: a remapped dimension requires a non-identity transform, and
// the canonical unit of an unchanged dimension must keep an identity
// transform.
func resolveBase(u *Unit) (dimension.Dimension, convert.Converter) {
	m := ActiveModel()
	d := m.Dimension(u)
	tr := m.Transform(u)
	if d != u.dim && tr.IsIdentity() {
		panic(fmt.Sprintf(
			"unit: model %T violates its contract for base unit %q: dimension remapped %s → %s with an identity transform",
			m, u.symbol, u.dim, d))
	}
	if d == u.dim && !tr.IsIdentity() && isCanonical(u) {
		panic(fmt.Sprintf(
			"unit: model %T violates its contract for base unit %q: canonical unit of %s rescaled by %s",
			m, u.symbol, d, tr))
	}

	return d, tr
}

// isCanonical reports whether u is the registered canonical unit of its
// intrinsic dimension.
func isCanonical(u *Unit) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	return registry.canonical[u.dim] == u
}
