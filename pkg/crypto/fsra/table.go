package fsra

import "github.com/hassy0430/K2/pkg/crypto/gf256"

// Table is a 256-entry substitution table of 32-bit words. Entry i
// carries, in byte lane j (lane 0 least significant), the field product
// coefficient[j] * i. Built once and read-only afterwards.
type Table [TableSize]uint32

// BuildTable constructs the table for the given coefficient vector and
// reduction polynomial. Entry 0 is always zero since every lane
// multiplies by zero.
func BuildTable(coef Coefficients, poly uint16) *Table {
	var t Table
	for i := 0; i < TableSize; i++ {
		for j := 0; j < Lanes; j++ {
			t[i] |= uint32(gf256.Mul(coef[j], uint8(i), poly)) << (8 * j)
		}
	}
	return &t
}

// BuildAlphaTable derives the coefficients for the parameter set and
// builds its table in one step.
func BuildAlphaTable(p TableParams) *Table {
	return BuildTable(DeriveCoefficients(p.Exponents, p.Poly), p.Poly)
}
