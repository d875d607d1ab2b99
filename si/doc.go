// Package si is the catalog of SI (Système International d'Unités) units:
// the seven base units, the named derived units (Newton, Pascal, Joule, …),
// the common product units, and the twenty decimal prefixes.
//
// What:
//
//   - Base units: Meter, Kilogram, Second, Ampere, Kelvin, Mole, Candela —
//     each tagged with its quantity kind (unit.Of[quantity.Length], …).
//   - Derived alternate units: Radian, Steradian, Bit, Hertz, Newton, Pascal,
//     Joule, Watt, Coulomb, Volt, Farad, Ohm, Siemens, Weber, Tesla, Henry,
//     Lumen, Lux, Becquerel, Gray, Sievert, Katal.
//   - Gram (a scaled Kilogram) and Celsius (an affine Kelvin).
//   - Product units: MeterPerSecond, MeterPerSquareSecond, SquareMeter,
//     CubicMeter.
//   - Prefixes: Yotta … Yocto as generic functions preserving the quantity
//     tag, e.g. Kilo(Meter), Hecto(Pascal). Prefix converters are cached, so
//     repeated prefixing composes a single scale step.
//
// Why:
//
//	The catalog is a static declaration layer: it only instantiates the
//	algebra from package unit. All of it is built once at package
//	initialization and shared; callers should reuse these values rather than
//	rebuilding equivalent expressions per call.
//
// Example:
//
//	conv, err := si.Kilo(si.Meter).ConverterTo(si.Meter)
//	if err != nil { ... }
//	conv.Convert(1) // 1000
package si
