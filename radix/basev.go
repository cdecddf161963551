package radix

import "github.com/hselasky/mbin/oddring"

// FromBinaryV converts a plain binary value b2 to base-V, the
// "(-3)**(-n)" exponent base.
func FromBinaryV(b2 uint32) uint32 {
	g := oddring.Power32(^uint32(2), -b2)

	var f uint32
	for n := uint8(0); n != 32; n++ {
		f |= g & (1 << n)
		g *= ^uint32(2)
	}
	return f
}

// ToBinaryV converts a base-V packed value bv back to plain binary.
func ToBinaryV(bv uint32) uint32 {
	var b2 uint32
	if bv&4 != 0 {
		b2 ^= 1
	}
	for m := uint32(8); m != 0; m <<= 1 {
		if (FromBinaryV(b2)^bv)&m != 0 {
			b2 ^= m / 4
		}
	}
	return b2
}
