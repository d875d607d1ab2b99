package unit_test

import (
	"fmt"
)

// ExampleUnit_ConverterTo demonstrates an exact prefix conversion built from
// the algebra alone.
func ExampleUnit_ConverterTo() {
	toMeter, err := kilometer.ConverterTo(meter)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("1 km = %.0f m\n", toMeter.Convert(1))
	// Output:
	// 1 km = 1000 m
}

// ExampleUnit_IsCompatible demonstrates fail-fast incompatibility: the error
// names both dimensions instead of producing a garbage number.
func ExampleUnit_IsCompatible() {
	fmt.Println(meter.IsCompatible(second))

	_, err := meter.ConverterTo(second)
	fmt.Println(err)
	// Output:
	// false
	// unit: incompatible dimensions: m is L, s is T
}
