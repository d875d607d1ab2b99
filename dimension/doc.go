// Package dimension models the algebraic signature of a physical quantity:
// a vector of integer exponents over the seven fundamental dimensions of the
// SI system (length, mass, time, electric current, thermodynamic temperature,
// amount of substance, luminous intensity).
//
// What:
//
//   - Dimension — an immutable, comparable value; the zero value None is the
//     dimensionless signature.
//   - The seven fundamentals exported as Length, Mass, Time, ElectricCurrent,
//     Temperature, AmountOfSubstance and LuminousIntensity.
//   - Times / Divide / Pow / Root — exponent-vector algebra.
//
// Why:
//
//   - Two units are commensurable (convertible) exactly when their reduced
//     Dimensions are equal, regardless of any scale factors. Keeping the
//     signature a plain comparable value makes that test a single ==.
//
// Errors:
//
//   - ErrFractionalExponent — Root(n) when an exponent is not evenly
//     divisible by n; fractional physical dimensions are not supported.
//   - ErrZeroRoot — Root(0) is undefined.
//
// The fundamental Dimensions are fixed, process-wide immutable data and are
// available without any active physical model.
package dimension
