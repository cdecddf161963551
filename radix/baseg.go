package radix

import "github.com/hselasky/mbin/oddring"

// FromBinaryG converts a plain binary value b2 to base-G using factor
// f: base-G positions bias b2*f by the running sum of f's bits below
// the current digit.
func FromBinaryG(f, b2 uint32) uint32 {
	bias := b2 * f
	var t uint32
	for m := uint32(1); m != 0; m <<= 1 {
		bias -= f & (m - 1)
		t |= bias & m
	}
	return t
}

// ToBinaryG converts a base-G packed value bg back to plain binary
// using factor f, which must be odd.
func ToBinaryG(f, bg uint32) uint32 {
	var bias, b2 uint32
	for m := uint32(1); m != 0; m <<= 1 {
		bias -= f & (m - 1)
		b2 |= ((b2 + bias) ^ bg) & m
	}
	return oddring.DivOdd32(b2, f)
}
