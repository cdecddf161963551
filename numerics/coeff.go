package numerics

import "github.com/hselasky/mbin/oddring"

// Coeff32 computes the binomial coefficient C(n, x) for 0 <= x <= n,
// via the lowest-set-bit factoring trick mbin_coeff_32 uses instead of
// a factorial lookup table: at each step it peels off the largest
// power of two dividing the running numerator/denominator term,
// accumulates the rest into two odd products, and folds the leftover
// powers of two back in at the end via a single odd-ring division.
func Coeff32(n, x int32) uint32 {
	if n < 0 || x < 0 || x > n {
		return 0
	}
	if x == n || x == 0 {
		return 1
	}

	shift := uint32(1) << 16
	fa := uint32(1)
	fb := uint32(1)

	un, ux := uint32(n), uint32(x)
	for y := uint32(0); y != ux; y++ {
		lsb := (y - un) & (un - y)
		shift *= lsb
		fa *= (un - y) / lsb

		lsb = ^y & (y + 1)
		shift /= lsb
		fb *= (y + 1) / lsb
	}
	return oddring.DivOdd32(fa, fb) * (shift >> 16)
}
