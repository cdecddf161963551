package radix

import "github.com/hselasky/mbin/oddring"

// FromBinaryU converts a plain binary value b2 to base-U, the
// "3**(-n)" exponent base: digit n of the result is bit n of
// 3**(-b2) expanded as a power series in 3.
func FromBinaryU(b2 uint32) uint32 {
	g := oddring.Power32(3, -b2)

	var f uint32
	for n := uint8(0); n != 32; n++ {
		f |= g & (1 << n)
		g *= 3
	}
	return f
}

// ToBinaryU converts a base-U packed value bu back to plain binary.
func ToBinaryU(bu uint32) uint32 {
	var b2 uint32
	if bu&2 == 0 {
		b2 ^= 1
	}
	for m := uint32(8); m != 0; m <<= 1 {
		if (FromBinaryU(b2)^bu)&m != 0 {
			b2 ^= m / 4
		}
	}
	return b2
}
