// Package convert provides composable numeric transforms between unit scales.
//
// What:
//
//   - Converter — a pure function float64 → float64 with a structural inverse.
//   - Elementary variants: Identity, Multiply (floating scale),
//     Rational (exact integer scale n/d), Offset (affine shift).
//   - Compound chains — ordered sequences produced only by Compose; never
//     constructed directly.
//
// Why:
//
//   - Unit conversion is converter algebra: converting a value from unit A to
//     unit B composes A's converter to the system unit with the inverse of
//     B's. Keeping converters structural (not opaque closures) makes the
//     inverse exact and the simplification rules independently testable.
//
// Composition rules:
//
//   - c.Compose(other) applies other first, then c.
//   - Adjacent scale steps merge into a single scale (factors multiply);
//     adjacent offsets merge (offsets add). Rational×Rational stays Rational
//     (gcd-reduced) unless the products overflow int64, in which case the
//     merge falls back to a floating Multiply.
//   - Scale and offset steps are NEVER reordered relative to each other:
//     x*k+c and (x+c)*k are different functions.
//   - Multiply(1), Rational(n, n) and Offset(0) all construct Identity, so
//     chains stay minimal (KILO(KILO(x)) is one Multiply, not two).
//
// Errors:
//
//	Constructors validate and panic on meaningless inputs (zero or non-finite
//	scale factor, zero denominator, NaN offset). Conversion itself is total
//	over finite inputs and never fails.
package convert
