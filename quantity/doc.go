// Package quantity declares the compile-time tags naming the kinds of
// physical quantity a unit can measure (Length, Force, Acceleration, …).
//
// The tags carry no runtime behavior and are never instantiated: they exist
// only as type parameters for unit.Of[Q], so that the compiler rejects a
// conversion from a Length-tagged unit to a Duration-tagged one at the call
// site. They do not appear anywhere in the runtime unit representation.
package quantity
