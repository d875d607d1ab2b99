// SPDX-License-Identifier: MIT
//
// File: prefix.go
// Role: The 20 SI decimal prefixes as tag-preserving generic functions.
// Policy:
//   - Prefix converters are cached package-wide, so Kilo(Kilo(u)) merges into
//     a single ×1e6 scale step instead of nesting.

package si

import (
	"github.com/physkit/physkit/convert"
	"github.com/physkit/physkit/quantity"
	"github.com/physkit/physkit/unit"
)

// Yotta returns u multiplied by 10²⁴.
func Yotta[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e24) }

// Zetta returns u multiplied by 10²¹.
func Zetta[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e21) }

// Exa returns u multiplied by 10¹⁸.
func Exa[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e18) }

// Peta returns u multiplied by 10¹⁵.
func Peta[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e15) }

// Tera returns u multiplied by 10¹².
func Tera[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e12) }

// Giga returns u multiplied by 10⁹.
func Giga[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e9) }

// Mega returns u multiplied by 10⁶.
func Mega[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e6) }

// Kilo returns u multiplied by 10³.
func Kilo[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e3) }

// Hecto returns u multiplied by 10².
func Hecto[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e2) }

// Deka returns u multiplied by 10.
func Deka[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(e1) }

// Deci returns u multiplied by 10⁻¹.
func Deci[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em1) }

// Centi returns u multiplied by 10⁻².
func Centi[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em2) }

// Milli returns u multiplied by 10⁻³.
func Milli[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em3) }

// Micro returns u multiplied by 10⁻⁶.
func Micro[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em6) }

// Nano returns u multiplied by 10⁻⁹.
func Nano[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em9) }

// Pico returns u multiplied by 10⁻¹².
func Pico[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em12) }

// Femto returns u multiplied by 10⁻¹⁵.
func Femto[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em15) }

// Atto returns u multiplied by 10⁻¹⁸.
func Atto[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em18) }

// Zepto returns u multiplied by 10⁻²¹.
func Zepto[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em21) }

// Yocto returns u multiplied by 10⁻²⁴.
func Yocto[Q quantity.Quantity](u unit.Of[Q]) unit.Of[Q] { return u.Transform(em24) }

// Cached prefix converters.
var (
	e24  = convert.NewMultiply(1e24)
	e21  = convert.NewMultiply(1e21)
	e18  = convert.NewMultiply(1e18)
	e15  = convert.NewMultiply(1e15)
	e12  = convert.NewMultiply(1e12)
	e9   = convert.NewMultiply(1e9)
	e6   = convert.NewMultiply(1e6)
	e3   = convert.NewMultiply(1e3)
	e2   = convert.NewMultiply(1e2)
	e1   = convert.NewMultiply(1e1)
	em1  = convert.NewMultiply(1e-1)
	em2  = convert.NewMultiply(1e-2)
	em3  = convert.NewMultiply(1e-3)
	em6  = convert.NewMultiply(1e-6)
	em9  = convert.NewMultiply(1e-9)
	em12 = convert.NewMultiply(1e-12)
	em15 = convert.NewMultiply(1e-15)
	em18 = convert.NewMultiply(1e-18)
	em21 = convert.NewMultiply(1e-21)
	em24 = convert.NewMultiply(1e-24)
)
