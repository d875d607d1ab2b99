package unit_test

import (
	"testing"
)

// BenchmarkTimes measures canonical product construction from leaf units.
func BenchmarkTimes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = meter.Times(kilogram).Divide(second.Pow(2))
	}
}

// BenchmarkConverterTo measures full resolution of a derived unit against
// its defining product (the common hot path for retained catalog units).
func BenchmarkConverterTo(b *testing.B) {
	product := kilogram.Times(meter).Divide(second.Pow(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := newton.ConverterTo(product); err != nil {
			b.Fatalf("ConverterTo failed: %v", err)
		}
	}
}

// BenchmarkDimension measures dimension reduction of a product tree.
func BenchmarkDimension(b *testing.B) {
	u := newton.Times(meter).Divide(second)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Dimension()
	}
}
