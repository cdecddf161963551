package oddring

// Power32 computes x**y over uint32, via square-and-multiply. Wraps
// silently on overflow, matching the ring's modulo-2^32 semantics.
func Power32(x, y uint32) uint32 {
	var r uint32 = 1
	for y != 0 {
		if y&1 != 0 {
			r *= x
		}
		x *= x
		y /= 2
	}
	return r
}

// Power64 is the 64-bit form of Power32.
func Power64(x, y uint64) uint64 {
	var r uint64 = 1
	for y != 0 {
		if y&1 != 0 {
			r *= x
		}
		x *= x
		y /= 2
	}
	return r
}

// PowerMod32 computes x**y mod m, accumulating in a 64-bit register to
// avoid overflow during the intermediate squaring and multiplication.
func PowerMod32(x, y, mod uint32) uint32 {
	var r uint64 = 1
	t := uint64(x) % uint64(mod)

	for y != 0 {
		if y&1 != 0 {
			r *= t
			r %= uint64(mod)
		}
		t *= t
		t %= uint64(mod)
		y /= 2
	}
	return uint32(r)
}

// logTable32 is the fixed base-2 discrete-log table used by Log32 and
// Exp32 below, one entry per bit position, reproduced exactly from the
// reference table.
var logTable32 = [32]uint32{
	0x00000000,
	0x00000000,
	0xd3cfd984,
	0x9ee62e18,
	0xe83d9070,
	0xb59e81e0,
	0xa17407c0,
	0xce601f80,
	0xf4807f00,
	0xe701fe00,
	0xbe07fc00,
	0xfc1ff800,
	0xf87ff000,
	0xf1ffe000,
	0xe7ffc000,
	0xdfff8000,
	0xffff0000,
	0xfffe0000,
	0xfffc0000,
	0xfff80000,
	0xfff00000,
	0xffe00000,
	0xffc00000,
	0xff800000,
	0xff000000,
	0xfe000000,
	0xfc000000,
	0xf8000000,
	0xf0000000,
	0xe0000000,
	0xc0000000,
	0x80000000,
}

// LogTableGen32 fills pt with a discrete-log table of the same shape
// as logTable32, parameterised by the low 29 bits of factor: bit 0
// chooses the top bit of entry 30, bit 28 that of entry 2. Entries 0
// and 31 are fixed and entry 1 is not written. It reproduces the
// construction used to derive logTable32 itself.
func LogTableGen32(pt *[32]uint32, factor uint32) {
	const d = 32

	pt[d-1] = 1 << (d - 1)
	pt[0] = 0

	for k := uint32(d - 2); k != 1; k-- {
		x := uint32(1 + (1 << k))
		x += x << k

		var s uint32
		j := k + 1
		for x != 1 {
			if x&(1<<j) != 0 {
				x += x << j
				s += pt[j]
			}
			j++
		}

		pt[k] = -(s >> 1)
		if factor&1 != 0 {
			pt[k] ^= 1 << 31
		}
		factor >>= 1
	}
}

// Log32 computes r - log2(x) over the table-driven discrete logarithm
// used to linearise odd-ring multiplication into addition. x must be
// congruent to 1 mod 4; for x congruent to 3 mod 4 the result is not a
// logarithm of x (Log32(0, 3) equals Log32(0, 1)), which is why
// PowerOdd negates such a base first.
func Log32(r, x uint32) uint32 {
	for n := uint8(2); n != 16; n++ {
		if x&(1<<n) != 0 {
			x = x + (x << n)
			r -= logTable32[n]
		}
	}
	r -= x & 0xFFFF0000
	return r
}

// Exp32 is the inverse of Log32: it reconstructs r*2**x from a value
// in log space.
func Exp32(r, x uint32) uint32 {
	for n := uint8(2); n != 16; n++ {
		if x&(1<<n) != 0 {
			r = r + (r << n)
			x -= logTable32[n]
		}
	}
	r *= 1 - (x & 0xFFFF0000)
	return r
}

// PowerOdd computes rem*base**exp over the odd ring, tracking the sign
// of base explicitly: bit 1 of an odd base (value mod 4) determines
// whether base is treated as positive or negative, and an odd exponent
// propagates that sign into rem before exponentiating in log space.
func PowerOdd(rem, base, exp uint32) uint32 {
	if base&2 != 0 {
		base = -base
		if exp&1 != 0 {
			rem = -rem
		}
	}
	return Exp32(rem, Log32(0, base)*exp)
}

// LogTable32 is the table-parameterised form of Log32, usable with any
// table produced by LogTableGen32 instead of the fixed logTable32.
func LogTable32(r uint32, table *[32]uint32, x uint32) uint32 {
	for n := uint8(2); n != 32; n++ {
		if x&(1<<n) != 0 {
			x = x + (x << n)
			r -= table[n]
		}
	}
	return r
}

// ExpTable32 is the table-parameterised form of Exp32.
func ExpTable32(r uint32, table *[32]uint32, x uint32) uint32 {
	for n := uint8(2); n != 32; n++ {
		if x&(1<<n) != 0 {
			r = r + (r << n)
			x -= table[n]
		}
	}
	return r
}

// PowerOddTable32 is the table-parameterised form of PowerOdd.
func PowerOddTable32(rem uint32, table *[32]uint32, base, exp uint32) uint32 {
	if base&2 != 0 {
		base = -base
		if exp&1 != 0 {
			rem = -rem
		}
	}
	return ExpTable32(rem, table, LogTable32(0, table, base)*exp)
}
