package numerics

import (
	"github.com/hselasky/mbin/bitops"
	"github.com/hselasky/mbin/oddring"
)

// Sos32 computes the sum of sums S(x, y), the two-dimensional Pascal-
// like table where each entry is the running sum of the entry above
// it, grounded on mbin_sos_32. For y == 0 the value is always 1; the
// table is symmetric under swapping the roles of x and y up to a
// shift, which the function exploits to keep the loop bound by the
// smaller of the two.
func Sos32(x, y int32) uint32 {
	if x < 0 || y < 0 {
		return 0
	}
	if y == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}

	if x < y+1 {
		x, y = y+1, x-1
	}

	rem := uint32(1)
	div := uint32(1)

	for n := uint32(0); n != uint32(y); n++ {
		temp := (^n) & (n + 1)
		div *= (n + 1) / temp
		fact := uint32(x) + n

		for (^fact)&(^temp)&1 != 0 {
			fact /= 2
			temp /= 2
		}

		rem *= fact
		rem /= temp
	}

	return oddring.DivOdd32(rem, div)
}

// SosBlock2nd64 returns the sum of squares over a 2^log2Level block of
// consecutive integers starting at start, grounded on
// mbin_sos_block_2nd_64's closed-form block formula.
func SosBlock2nd64(start uint64, log2Level uint8) uint64 {
	if log2Level == 0 {
		return start * start
	}

	k0 := uint64(1) << (log2Level - 1)
	k1 := k0 * (k0 + k0 - 1 + start + start)

	result := k1 * k1
	for x := uint8(0); x != log2Level; x++ {
		result += uint64(1) << (2 * (log2Level - 1 + x))
	}

	return result >> log2Level
}

// Sos2nd64 returns the sum of squares 0^2+1^2+...+x^2, grounded on
// mbin_sos_2nd_64's binary decomposition into SosBlock2nd64 calls over
// the set bits of x+1.
func Sos2nd64(x uint64) uint64 {
	var result uint64
	m0 := uint64(1)
	start := uint64(0)
	var log2M0 uint8

	x++

	for m0 <= x {
		m0 *= 2
		log2M0++
	}
	m0 /= 2
	log2M0--

	for m0 != 0 {
		if x&m0 != 0 {
			result += SosBlock2nd64(start, log2M0)
			start = x &^ (m0 - 1)
		}
		m0 /= 2
		log2M0--
	}
	return result
}

// Sos2ndSearch64 returns the largest x such that Sos2nd64(x) <= value,
// via the binary-search doubling-then-halving pattern
// mbin_sos_2nd_search_64 uses.
func Sos2ndSearch64(value uint64) uint64 {
	m := uint64(1)

	for Sos2nd64(m) <= value {
		m *= 2
	}
	m /= 2
	x := m

	for m != 0 {
		if Sos2nd64(m+x) <= value {
			x += m
		}
		m /= 2
	}
	return x
}

// sosBlockBlock2ndMod32 accumulates the geometric correction term
// SosBlock2ndMod32 needs at each level of its binary decomposition,
// grounded on mbin_sos_block_block_2nd_mod_32.
func sosBlockBlock2ndMod32(log2Log2Level uint32, mod uint32) uint32 {
	value := uint64(1)

	for log2Log2Level != 0 {
		log2Log2Level--
		value += value * uint64(oddring.PowerMod32(2, 2<<log2Log2Level, mod))
		value %= uint64(mod)
	}
	return uint32(value)
}

// SosBlock2ndMod32 is Sos2nd64's modular form: the sum of squares over
// a 2^log2Level block, reduced modulo mod, grounded on
// mbin_sos_block_2nd_mod_32. It reuses oddring.PowerMod32 for the
// modular-exponentiation steps and bitops.PopCount64 in place of the
// original's bit-counting helper.
func SosBlock2ndMod32(log2Level uint32, mod uint32) uint32 {
	if log2Level == 0 {
		return 0
	}

	k0 := uint64(oddring.PowerMod32(2, log2Level-1, mod))
	k1 := (k0 * (k0 + k0 - 1)) % uint64(mod)

	result := (k1 * k1) % uint64(mod)

	mask := uint32(1)
	for mask <= log2Level {
		mask *= 2
	}

	start := uint32(0)
	for mask /= 2; mask != 0; mask /= 2 {
		if log2Level&mask != 0 {
			chunk := uint64(oddring.PowerMod32(2, 2*start+2*log2Level-2, mod)) *
				uint64(sosBlockBlock2ndMod32(uint32(bitops.PopCount64(uint64(mask-1))), mod))

			result += chunk % uint64(mod)
			result %= uint64(mod)
			start = log2Level &^ (mask - 1)
		}
	}

	result *= uint64(oddring.PowerMod32((1+mod)/2, log2Level, mod))
	result %= uint64(mod)
	return uint32(result)
}
