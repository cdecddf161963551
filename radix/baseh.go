package radix

import "github.com/hselasky/mbin/oddring"

// baseHDivisorTable reproduces the hard-coded constants mbin_baseH_gen_div
// ships (a commented-out runtime loop computes the same values, but the
// shipped contract is this table, not the loop). Index is the shift
// parameter; only shifts 2..31 are populated, giving exactly 30
// non-zero entries.
var baseHDivisorTable = [32]uint32{
	2:  0x3ef7226d,
	3:  0xd1d69179,
	4:  0x14640cf1,
	5:  0x1d32efe1,
	6:  0xbe5fafc1,
	7:  0x58de7f81,
	8:  0xb2f8ff01,
	9:  0xdfdffe01,
	10: 0x7f6ffc01,
	11: 0xfd7ff801,
	12: 0xf4fff001,
	13: 0xcfffe001,
	14: 0x2fffc001,
	15: 0x7fff8001,
	16: 0xffff0001,
	17: 0xfffe0001,
	18: 0xfffc0001,
	19: 0xfff80001,
	20: 0xfff00001,
	21: 0xffe00001,
	22: 0xffc00001,
	23: 0xff800001,
	24: 0xff000001,
	25: 0xfe000001,
	26: 0xfc000001,
	27: 0xf8000001,
	28: 0xf0000001,
	29: 0xe0000001,
	30: 0xc0000001,
	31: 0x80000001,
}

// BaseHDivisor returns the shipped divisor constant for shift, or 0
// if shift is outside the populated [2, 31] range.
func BaseHDivisor(shift uint8) uint32 {
	if shift >= 32 {
		return 0
	}
	return baseHDivisorTable[shift]
}

// FromBinaryH converts index into base-H: the exponent f**(-index),
// where f is the shift's divisor constant, recoded digit by digit.
func FromBinaryH(index uint32, shift uint8) uint32 {
	f := BaseHDivisor(shift)
	g := oddring.Power32(f, -index)

	t := uint32(1)
	for n := uint8(2); n != 32; n++ {
		t |= g & (1 << n)
		g = g * f
	}
	return t
}

// ToBinaryH converts a base-H packed value bh back to the plain index
// that FromBinaryH would produce it from.
func ToBinaryH(bh uint32, shift uint8) uint32 {
	var b2 uint32
	for m := uint32(1) << shift; m != 0; m <<= 1 {
		if (FromBinaryH(b2, shift)^bh)&m != 0 {
			b2 ^= m >> shift
		}
	}
	return b2
}
