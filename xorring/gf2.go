package xorring

import "github.com/hselasky/mbin/bitops"

// RolMod64 rotates val left by shift within a p-bit field.
func RolMod64(val uint64, shift, p uint8) uint64 {
	val = (val << shift) | (val >> (p - shift))
	val &= (uint64(1) << p) - 1
	return val
}

// RorMod64 rotates val right by shift within a p-bit field.
func RorMod64(val uint64, shift, p uint8) uint64 {
	val = (val >> shift) | (val << (p - shift))
	val &= (uint64(1) << p) - 1
	return val
}

// Mul64 multiplies two GF(2)[x] polynomials, carry-less.
func Mul64(x, y uint64) uint64 {
	temp := [4]uint64{0, x, 2 * x, x ^ (2 * x)}
	var r uint64
	for n := uint8(0); n != 64; n += 2 {
		r ^= temp[y&3] << n
		y /= 4
	}
	return r
}

// Mod64 reduces x modulo the polynomial div (div's leading bit marks
// its degree).
func Mod64(x, div uint64) uint64 {
	msb := bitops.MSB64(div)
	if x < msb {
		return x
	}

	shift := 62 - uint8(bitops.PopCount64(msb-1))

	var temp [4]uint64
	temp[1] = div << shift
	temp[2] = 2 * temp[1]
	temp[3] = 2 * temp[1]

	if temp[2]&(uint64(1)<<62) != 0 {
		temp[2] ^= temp[1]
	} else {
		temp[3] ^= temp[1]
	}

	var n uint8
	for n = 0; n <= shift; n += 2 {
		x ^= temp[(x>>62)&3]
		x *= 4
	}

	if shift&1 != 0 && x&(uint64(1)<<63) != 0 {
		x ^= 2 * temp[1]
	}

	x >>= n
	return x
}

// Mod32 is Mod64's 32-bit counterpart.
func Mod32(x, div uint32) uint32 {
	msb := bitops.MSB32(div)
	if x < msb {
		return x
	}

	shift := 30 - uint8(bitops.PopCount32(msb-1))

	var temp [4]uint32
	temp[1] = div << shift
	temp[2] = 2 * temp[1]
	temp[3] = 2 * temp[1]

	if temp[2]&(uint32(1)<<30) != 0 {
		temp[2] ^= temp[1]
	} else {
		temp[3] ^= temp[1]
	}

	var n uint8
	for n = 0; n <= shift; n += 2 {
		x ^= temp[(x>>30)&3]
		x *= 4
	}

	if shift&1 != 0 && x&(uint32(1)<<31) != 0 {
		x ^= 2 * temp[1]
	}

	x >>= n
	return x
}

// MulMod64 multiplies x and y in GF(2)[x]/(mod), where mod is an
// irreducible polynomial of degree p (field width p bits).
func MulMod64(x, y uint64, p uint8) uint64 {
	temp := [4]uint64{0, x, 2 * x, x ^ (2 * x)}

	rl := temp[y&3]
	y /= 4

	var rh uint64
	for n := uint8(2); n < p; n += 2 {
		z := temp[y&3]
		rl ^= z << n
		rh ^= z >> (64 - n)
		y /= 4
	}

	n := 64 % p
	if n != 0 {
		rh = (rh >> n) | (rh << (64 - n))
	}

	rl ^= rh

	mask := (uint64(1) << p) - 1
	for {
		z := rl >> p
		rl = (rl & mask) ^ z
		if z == 0 {
			break
		}
	}
	return rl
}

// MulModAny64 multiplies x and y in GF(2)[x], then reduces the
// product modulo the arbitrary polynomial mod via Mod64.
func MulModAny64(x, y, mod uint64) uint64 {
	return Mod64(Mul64(x, y), mod)
}

// MulModAny32 is MulModAny64's 32-bit counterpart.
func MulModAny32(x, y, mod uint32) uint32 {
	temp := [4]uint32{0, x, 2 * x, x ^ (2 * x)}
	var r uint32
	for n := uint8(0); n != 32; n += 2 {
		r ^= temp[y&3] << n
		y /= 4
	}
	return Mod32(r, mod)
}

// Div64 divides x by div in GF(2)[x], returning the quotient.
func Div64(x, div uint64) uint64 {
	if x == 0 || div == 0 {
		return 0
	}
	msb := bitops.MSB64(div)
	xsb := bitops.MSB64(x)
	if xsb < msb {
		return 0
	}

	var n uint8
	for n = 0; n != 64; n++ {
		if xsb&(msb<<n) != 0 {
			break
		}
	}

	var r uint64
	for {
		if x&(msb<<n) != 0 {
			x ^= div << n
			r |= uint64(1) << n
		}
		if n == 0 {
			break
		}
		n--
	}
	return r
}

// DivOdd64 computes the exact quotient x/div in GF(2)[x] when div has
// a non-zero constant term (every polynomial over GF(2) with a
// non-zero constant term is invertible modulo x^64).
func DivOdd64(x, div uint64) uint64 {
	div |= 1
	var r uint64
	for n := uint8(0); n != 64; n++ {
		if x&(uint64(1)<<n) != 0 {
			r |= uint64(1) << n
			x ^= div << n
		}
	}
	return r
}

// ExpMod64 raises x to the y'th power in GF(2)[x]/(mod) of field
// width p, folding repeated "rotate-square" steps the way
// mbin_xor2_exp_mod_64 does.
func ExpMod64(x, y uint64, p uint8) uint64 {
	r := uint64(1)
	n := uint8(1)
	for {
		if y&1 != 0 {
			z := MultiSquareMod64(x, n, p)
			if r == 1 {
				r = z
			} else {
				r = MulMod64(r, z, p)
			}
		}
		n *= 2
		if n >= p {
			n -= p
		}
		y /= 2
		if y == 0 {
			break
		}
	}
	return r
}

// Exp64 raises x to the y'th power in GF(2)[x], unreduced.
func Exp64(x, y uint64) uint64 {
	r := uint64(1)
	for y != 0 {
		if y&1 != 0 {
			r = Mul64(r, x)
		}
		x = Mul64(x, x)
		y /= 2
	}
	return r
}

// ExpModAny64 raises x to the y'th power modulo the arbitrary
// polynomial mod.
func ExpModAny64(x, y, mod uint64) uint64 {
	r := uint64(1)
	for y != 0 {
		if y&1 != 0 {
			r = MulModAny64(r, x, mod)
		}
		x = MulModAny64(x, x, mod)
		y /= 2
	}
	return r
}

// ExpModAny32 is ExpModAny64's 32-bit counterpart.
func ExpModAny32(x, y, mod uint32) uint32 {
	r := uint32(1)
	for y != 0 {
		if y&1 != 0 {
			r = MulModAny32(r, x, mod)
		}
		x = MulModAny32(x, x, mod)
		y /= 2
	}
	return r
}

// NegMod64 computes x^(2^(p-1) - 2) in GF(2)[x]/(x^p+1) by p-2
// square-and-multiply steps. When p is prime and 2 is a primitive root
// mod p, this is the multiplicative inverse of every x with an odd
// number of set bits other than the all-ones value.
func NegMod64(x uint64, p uint8) uint64 {
	n := p - 2
	r := uint64(1)
	for n != 0 {
		n--
		x = MulMod64(x, x, p)
		r = MulMod64(r, x, p)
	}
	return r
}

// SquareMod64 squares x in GF(2)[x]/(x^p+1): squaring is a bit
// permutation in characteristic 2, doubling each coefficient's
// exponent modulo p.
func SquareMod64(x uint64, p uint8) uint64 {
	var r uint64
	q := uint8(0)
	for n := uint8(0); n != p; n++ {
		if x&(uint64(1)<<n) != 0 {
			r ^= uint64(1) << q
		}
		q += 2
		if q >= p {
			q -= p
		}
	}
	return r
}

// MultiSquareMod64 repeats SquareMod64's bit permutation y times in
// one pass, stepping the exponent map by y instead of by 2 each time.
func MultiSquareMod64(x uint64, y, p uint8) uint64 {
	var r uint64
	q := uint8(0)
	for {
		if x&1 != 0 {
			r ^= uint64(1) << q
		}
		q += y
		if q >= p {
			q -= p
		}
		x /= 2
		if x == 0 {
			break
		}
	}
	return r
}

// RootMod64 inverts SquareMod64: it is the unique square root of x in
// GF(2)[x]/(x^p+1).
func RootMod64(x uint64, p uint8) uint64 {
	var r uint64
	q := uint8(0)
	for n := uint8(0); n != p; n++ {
		if x&(uint64(1)<<q) != 0 {
			r ^= uint64(1) << n
		}
		q += 2
		if q >= p {
			q -= p
		}
	}
	return r
}

// Reduce64 folds the top bit of a p-bit field back into the all-ones
// mask, the reduction mbin_xor2_reduce_64 uses for fields of the form
// x^p - 1 over GF(2).
func Reduce64(x uint64, p uint8) uint64 {
	if x&(uint64(1)<<(p-1)) != 0 {
		x ^= (uint64(1) << p) - 1
	}
	return x
}

// IsMirror64 reports whether x's bit pattern, up to its highest set
// bit, reads the same forwards and backwards.
func IsMirror64(x uint64) bool {
	end := uint8(bitops.PopCount64(bitops.MSB64(x) - 1))
	for a := uint8(0); a != (end+1)/2; a++ {
		b := (x >> a) & 1
		c := (x >> (end - a)) & 1
		if b != c {
			return false
		}
	}
	return true
}

// IsDivBy3_64 reports whether the bit population of x is odd, the
// divisibility test mbin_xor2_is_div_by_3_64 uses for the polynomial
// "3" = x+1.
func IsDivBy3_64(x uint64) bool {
	return bitops.PopCount64(x)&1 != 0
}

// Crc2Bin64 unscrambles a p-bit CRC polynomial representation (whose
// bit positions are powers of 2 modulo p) into plain positional form.
func Crc2Bin64(z uint64, p uint8) uint64 {
	r := z & 1
	y := uint8(1)
	for x := uint8(1); x != p; x++ {
		if z&(uint64(1)<<y) != 0 {
			r |= uint64(1) << x
		}
		y *= 2
		if y >= p {
			y -= p
		}
	}
	return r
}

// Bin2Crc64 is Crc2Bin64's inverse.
func Bin2Crc64(z uint64, p uint8) uint64 {
	r := z & 1
	y := uint8(1)
	for x := uint8(1); x != p; x++ {
		if z&(uint64(1)<<x) != 0 {
			r |= uint64(1) << y
		}
		y *= 2
		if y >= p {
			y -= p
		}
	}
	return r
}

// Gcd64 computes the greatest common divisor of two GF(2)[x]
// polynomials via the Euclidean algorithm.
func Gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, Mod64(a, b)
	}
	return a
}

// GcdExtended64 runs the extended Euclidean algorithm in GF(2)[x],
// returning the Bezout coefficients pa, pb such that
// Mul64(a, pa) ^ Mul64(b, pb) == Gcd64(a, b).
func GcdExtended64(a, b uint64) (pa, pb uint64) {
	x, y := uint64(0), uint64(1)
	lastx, lasty := uint64(1), uint64(0)

	for b != 0 {
		q := Div64(a, b)
		a, b = b, Mod64(a, b)

		an := lastx ^ Mul64(q, x)
		lastx, x = x, an

		bn := lasty ^ Mul64(q, y)
		lasty, y = y, bn
	}
	return lastx, lasty
}

// Faculty64 computes the GF(2)[x] "factorial" 1*2*...*n, carry-less
// product of the first n positional values.
func Faculty64(n uint64) uint64 {
	r := uint64(1)
	for n != 0 {
		r = Mul64(r, n)
		n--
	}
	return r
}

// Coeff64 computes the GF(2)[x] binomial coefficient C(n, x) via the
// same lowest-set-bit factoring trick numerics.Coeff32 uses over the
// integers, adapted to carry-less multiplication and division.
func Coeff64(n, x int64) uint64 {
	if n < 0 || x < 0 || x > n {
		return 0
	}
	if x == n || x == 0 {
		return 1
	}

	shift := uint64(1) << 32
	fa := uint64(1)
	fb := uint64(1)

	un, ux := uint64(n), uint64(x)
	for y := uint64(0); y != ux; y++ {
		lsb := (y - un) & (un - y)
		shift *= lsb
		fa = Mul64(fa, (un-y)/lsb)

		lsb = ^y & (y + 1)
		shift /= lsb
		fb = Mul64(fb, (y+1)/lsb)
	}
	return Mul64(DivOdd64(fa, fb), shift>>32)
}
