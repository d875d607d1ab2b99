package unit

import "errors"

var (
	// ErrIncompatible indicates a conversion was requested between units
	// whose reduced Dimensions differ under the active model.
	ErrIncompatible = errors.New("unit: incompatible dimensions")

	// ErrInexactRoot indicates Root(n) would produce a fractional exponent
	// for some element of the unit expression.
	ErrInexactRoot = errors.New("unit: root would produce a fractional exponent")

	// ErrNonLinearProduct indicates an offset-bearing unit (such as Celsius)
	// was used as a factor of a product unit; only purely scaled units can
	// participate in products.
	ErrNonLinearProduct = errors.New("unit: offset-bearing unit cannot participate in a product")
)
