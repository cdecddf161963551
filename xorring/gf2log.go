package xorring

import "github.com/hselasky/mbin/bitops"

// LogMod64 computes the discrete logarithm of x to the base "2" (the
// polynomial x itself) in GF(2)[x]/(x^p+1), by repeated
// multiplication by p until x is reached again.
func LogMod64(x uint64, p uint8) uint64 {
	mask := (uint64(1) << p) - 1
	r := mask ^ 1
	var y uint64

	if x == 0 {
		return 0
	}

	if x&1 != 0 {
		x = ^x & mask
	} else {
		x = x & mask
	}

	for x != r {
		r = MulMod64(r, uint64(p), p)
		if r&1 != 0 {
			r = ^r & mask
		}
		if y > mask {
			return 0
		}
		y++
	}
	return y
}

// Log3ModIterative computes the discrete logarithm of x to the base
// "3" (the polynomial x+1) in GF(2)[x]/(x^p+1), steering the rotation
// distance by comparing bit populations round by round. This is the
// primary form; Log3ModSearch is an alternative, exhaustive-search
// form kept for cross-checking.
func Log3ModIterative(x uint64, p uint8) uint64 {
	if x <= 1 {
		return 0
	}

	pm := (p - 1) / 2
	mask := uint64(p) * ((uint64(1) << pm) - 1)
	d2 := (uint64(1) << pm) - 1

	ntable := make([]uint8, p)
	r := uint8(1)
	for n := uint8(0); n != p; n++ {
		if r >= p {
			r -= p
		}
		ntable[r] = n
		r *= 2
	}

	var z uint64
	sbx := uint8(bitops.PopCount64(x))

	for r := uint8(1); ; {
		if sbx >= p-2 || sbx <= 2 {
			break
		}
		y := x ^ RolMod64(x, r, p)
		sby := uint8(bitops.PopCount64(y))
		if (sby < p/2 && sby < sbx) || (sby >= p/2 && sby >= sbx) {
			z += uint64(1) << ntable[r]
			x = y
			sbx = sby
		} else {
			r *= 2
			if r >= p {
				r -= p
			}
		}
	}

	if sbx >= p-2 {
		x ^= (uint64(1) << p) - 1
	}

	sbx = uint8(bitops.PopCount64(x))
	if sbx == 0 {
		return 0
	}

	for x&1 == 0 {
		z += d2
		x /= 2
	}

	if sbx == 1 {
		return (mask - (z % mask)) % mask
	}
	if sbx != 2 {
		return 0
	}

	r = uint8(bitops.PopCount64(x - 2))
	z = (mask + (uint64(1) << ntable[r]) - (z % mask)) % mask
	return z
}

// Log3ModSearch computes the same discrete logarithm as
// Log3ModIterative via exhaustive search over all rotation distances
// each round, accepting the first move that doesn't increase the bit
// population, and inverting the whole field when none does. Kept
// alongside the iterative form since the catalogue leaves the primary
// implementation an open question; tests cross-check both.
func Log3ModSearch(x uint64, p uint8) uint64 {
	if x <= 1 {
		return 0
	}

	pm := (p - 1) / 2
	mask := uint64(p) * ((uint64(1) << pm) - 1)
	d2 := (uint64(1) << pm) - 1

	ntable := make([]uint8, p)
	rr := uint8(1)
	for n := uint8(0); n != p; n++ {
		if rr >= p {
			rr -= p
		}
		ntable[rr] = n
		rr *= 2
	}

	var z uint64
	sbx := uint8(bitops.PopCount64(x))
	var r uint8
	converged := false

	for to := p; to != 0; to-- {
		if sbx == 2 {
			converged = true
			break
		}
		found := false
		for r = 0; r != p; r++ {
			if ntable[r] == 0 {
				continue
			}
			y := x ^ RolMod64(x, r, p)
			sby := uint8(bitops.PopCount64(y))
			if sby <= sbx {
				z += uint64(1) << ntable[r]
				x = y
				sbx = sby
				found = true
				break
			}
		}
		if !found {
			y := x ^ ((uint64(1) << p) - 1)
			sbx = uint8(bitops.PopCount64(y))
			x = y
		}
	}
	if !converged {
		return 0
	}

	for x&1 == 0 {
		z += d2
		x /= 2
	}

	for r = 1; r != p; r++ {
		if x&(uint64(1)<<r) != 0 {
			break
		}
	}

	if ntable[r] != 0 {
		z = (mask + (uint64(1) << ntable[r]) - (z % mask)) % mask
	} else {
		z = (mask - (z % mask)) % mask
	}
	return z
}
