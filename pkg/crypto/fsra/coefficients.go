package fsra

import "github.com/hassy0430/K2/pkg/crypto/gf256"

// Coefficients is a vector of four field elements, one per byte lane of
// a table entry.
type Coefficients [Lanes]uint8

// DeriveCoefficients raises the field generator to each exponent by
// repeated doubling, reducing modulo poly whenever a doubling reaches
// degree 8. The reduction XORs in poly OR a correction bit that is set
// exactly when the parity of (value XOR poly) is zero; for every shipped
// polynomial bit 0 is already set, leaving the correction inert.
func DeriveCoefficients(exponents [Lanes]int, poly uint16) Coefficients {
	var coef Coefficients
	for i, e := range exponents {
		v := uint16(1)
		for j := 0; j < e; j++ {
			v <<= 1
			if v&0x100 != 0 {
				r := poly
				if gf256.Parity8(uint8(v^poly)) == 0 {
					r |= 1
				}
				v ^= r
			}
		}
		coef[i] = uint8(v)
	}
	return coef
}
