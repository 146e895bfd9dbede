// Package gf256 provides GF(2^8) field arithmetic using polynomial
// representation with operations modulo a caller-supplied reduction
// polynomial, as used by the KCipher-2 alpha tables (e.g. the beta
// polynomial x^8 + x^7 + x^6 + x + 1, 0x1C3).
package gf256

import "math/bits"

// Parity8 returns 1 if an odd number of bits are set in x, else 0.
func Parity8(x uint8) uint8 {
	p := x
	p ^= p >> 4
	p ^= p >> 2
	p ^= p >> 1
	return p & 1
}

// Parity32 is Parity8 over a full 32-bit word.
func Parity32(x uint32) uint32 {
	p := x
	p ^= p >> 16
	p ^= p >> 8
	p ^= p >> 4
	p ^= p >> 2
	p ^= p >> 1
	return p & 1
}

// Mul multiplies a and b in GF(2^8) modulo the reduction polynomial poly.
//
// It uses shift-and-add (carry-less) multiplication: scanning b from its
// highest set bit down, the accumulator is doubled each round, a is XORed
// in when the current bit of b is set, and whenever the accumulator
// reaches degree 8 it is folded back with poly. Multiplication by zero is
// handled up front; the bit scan has no defined start position for b == 0.
func Mul(a, b uint8, poly uint16) uint8 {
	if b == 0 {
		return 0
	}

	var t uint16
	for i := bits.Len8(b) - 1; i >= 0; i-- {
		t <<= 1
		if b&(1<<uint(i)) != 0 {
			t ^= uint16(a)
		}
		if t&0x100 != 0 {
			t ^= poly
		}
	}
	return uint8(t)
}
