// Package physkit is your in-memory toolkit for physical quantities and the
// units they are measured in — from elementary converters to pluggable
// physical models.
//
// 🚀 What is physkit?
//
//	A small, thread-safe library guaranteeing that quantities of incompatible
//	physical nature can never be silently mixed, and that any two
//	commensurable units convert into one another exactly:
//		• Converters: identity, exact rational and floating scales, affine
//		  offsets, and ordered compound chains with testable merge rules
//		• Dimensions: integer-exponent signatures over the seven SI
//		  fundamentals, with Times/Divide/Pow/Root algebra
//		• Units: base, alternate (named), product and transformed units as
//		  immutable, canonically ordered expression trees
//		• Models: the STANDARD SI model plus relativistic and natural-units
//		  remappings, swappable process-wide at any time
//
// ✨ Why choose physkit?
//
//   - Fail-fast correctness – incompatible conversions error with both
//     dimensions named, never a garbage number
//   - Exact where it matters – structural inverses and rational scales, no
//     numerically inverted closures
//   - Pure Go – no cgo, no hidden deps
//   - Compile-time tagging – unit.Of[quantity.Length] rejects mismatched
//     conversions before the program runs
//
// Under the hood, everything is organized under six subpackages:
//
//	convert/   — composable numeric transforms and their simplification rules
//	dimension/ — the exponent-vector algebra of fundamental dimensions
//	unit/      — the unit expression tree, resolution, and the model selector
//	quantity/  — compile-time quantity tags (Length, Force, …)
//	si/        — the SI catalog: base units, derived units, the 20 prefixes
//	models/    — relativistic and natural-units models + physical constants
//
// Quick example:
//
//	conv, err := si.Kilo(si.Meter).ConverterTo(si.Meter)
//	// conv.Convert(1) == 1000
//
// Dive into each package's doc.go for contracts, error taxonomies and worked
// examples.
//
//	go get github.com/physkit/physkit
package physkit
