package radix

import "github.com/hselasky/mbin/bitops"

// AddBaseP adds two balanced-ternary P-base packed values (two bits
// per digit, alphabet {-1, 0, +1}) via the GF(3)-style half-adder
// xor3_32, propagating carry until it settles.
func AddBaseP(a, b uint32) uint32 {
	for b != 0 {
		an := xor3_32(a, b)
		cn := 4 * (a & b)
		a, b = an, cn
	}
	return a
}

// NegateBaseP negates a P-base value by swapping its "+1" and "-1"
// bit-planes.
func NegateBaseP(a uint32) uint32 {
	return ((a & 0xAAAAAAAA) / 2) | ((a & 0x55555555) * 2)
}

// SubBaseP subtracts b from a in P-base.
func SubBaseP(a, b uint32) uint32 {
	return AddBaseP(a, NegateBaseP(b))
}

// ExpBaseP computes a*b via repeated P-base addition (the "exp"
// operator named in the catalogue is repeated addition, not
// exponentiation, matching the upstream naming).
func ExpBaseP(a, b uint32) uint32 {
	var r uint32
	for b != 0 {
		if b&1 != 0 {
			r = AddBaseP(r, a)
		}
		a = AddBaseP(a, a)
		b /= 2
	}
	return r
}

// IsNegativeBaseP reports whether the P-base value a represents a
// negative integer: its most significant set digit lies in the "-1"
// bit-plane.
func IsNegativeBaseP(a uint32) bool {
	return bitops.MSB32(a)&0xAAAAAAAA != 0
}

// MultiplyBaseP multiplies two P-base values digit by digit.
func MultiplyBaseP(a, b uint32) uint32 {
	var r uint32
	for a != 0 {
		if a&2 != 0 {
			r = AddBaseP(r, NegateBaseP(b))
		} else if a&1 != 0 {
			r = AddBaseP(r, b)
		}
		a /= 4
		b *= 4
	}
	return r
}

// FromBinaryP converts a plain binary value r to P-base via repeated
// P-base addition (ExpBaseP(1, r)).
func FromBinaryP(r uint32) uint32 {
	return ExpBaseP(1, r)
}

// ToBinaryP converts a P-base value back to plain binary, Horner-style
// over powers of 3.
func ToBinaryP(a uint32) uint32 {
	k := uint32(1)
	var r uint32
	for a != 0 {
		if a&1 != 0 {
			r += k
		} else if a&2 != 0 {
			r -= k
		}
		k *= 3
		a /= 4
	}
	return r
}

// CmpBaseP returns -1, 0, or 1 comparing P-base values a and b.
func CmpBaseP(a, b uint32) int {
	if a == b {
		return 0
	}
	if IsNegativeBaseP(SubBaseP(a, b)) {
		return -1
	}
	return 1
}

// xor3_32 is the GF(3)-style digit-wise half-adder that P-base's
// carry-settling loop uses.
func xor3_32(a, b uint32) uint32 {
	const k = 0x55555555

	b1 := b & k
	b2 := (b &^ k) / 2

	r := a

	r = (r ^ b1) ^ (2 * (r & b1 & k))
	t := r & (r / 2) & k
	r = r &^ (t | (2 * t))

	r = (r ^ b2) ^ (2 * (r & b2 & k))
	t = r & (r / 2) & k
	r = r &^ (t | (2 * t))

	r = (r ^ b2) ^ (2 * (r & b2 & k))
	t = r & (r / 2) & k
	r = r &^ (t | (2 * t))

	return r
}
