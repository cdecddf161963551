package transform

import "github.com/hselasky/mbin/bitops"

// addBitreversed adds one to x as if x were bit-reversed within the
// range given by the leading bit of mask, carrying through the
// reversed bit pattern instead of the natural one. Every butterfly
// transform in this package steps its twiddle index this way; the
// original C defines the identical helper once per file (under the
// names mbin_*_add_bitreversed), so it is unified here instead of
// being copied per transform family.
func addBitreversed(x, mask uint32) uint32 {
	for {
		x ^= mask
		if (x&mask) != 0 || mask == 0 {
			return x
		}
		mask /= 2
	}
}

// bitreverseIndices swaps element i with its bit-reversed position
// bitrev(i) for every i, restoring natural order after a forward
// transform (or scrambling it before an inverse one). Reuses
// bitops.BitRev64 instead of re-deriving a reversal routine per
// transform family the way the original repeats mbin_bitrev32/64
// inline in each of mbin_fpx.c, mbin_ftt.c, mbin_fst.c.
func bitreverseIndices(n uint32, swap func(i, j uint32)) {
	logSize := uint(0)
	for uint32(1)<<logSize != n {
		logSize++
	}
	for x := uint32(0); x != n; x++ {
		y := uint32(bitops.BitRev64(uint64(x)<<(64-logSize)) >> (64 - logSize))
		if y < x {
			swap(x, y)
		}
	}
}
