package transform

import "github.com/hselasky/mbin/fourier"

// SumDigitsR2Int32 computes the radix-2 sum-of-digits transform in
// place: f(x,y) = -1 if the popcount of x&y is odd, else 1. Each
// butterfly is a plain sum/difference pair, the same shape as a
// radix-2 FFT stage without twiddle factors. Grounded on
// mbin_sumdigits_r2_xform_32.
func SumDigitsR2Int32(ptr []int32, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z] = a + b
				ptr[y+z+x/2] = a - b
			}
		}
	}
}

// SumDigitsR2Int64 is the int64 counterpart of SumDigitsR2Int32.
// Grounded on mbin_sumdigits_r2_xform_64.
func SumDigitsR2Int64(ptr []int64, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z] = a + b
				ptr[y+z+x/2] = a - b
			}
		}
	}
}

// SumDigitsR2Float64 is the float64 counterpart of SumDigitsR2Int32.
// Grounded on mbin_sumdigits_r2_xform_double.
func SumDigitsR2Float64(ptr []float64, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z] = a + b
				ptr[y+z+x/2] = a - b
			}
		}
	}
}

// SumDigitsR4 computes the radix-4 sum-of-digits transform on complex
// data in place: f(x,y) = i^k where k is the base-4 "sum of digits"
// comparison of x and y. Every level groups the array into strided
// 4-tuples and runs each one through a 4-point complex DFT, which is
// exactly the butterfly mbin_sumdigits_r4_xform_complex_double unrolls
// by hand; this reuses fourier.CoefficientsRadix4's closed-form
// length-4 case instead of re-deriving that 4-point kernel, so the
// per-level stage is the same forward complex DFT the fourier package
// already implements. The element order this produces after each level
// differs from the manual C unrolling (that code picks a specific
// real/imaginary sign convention per twiddle, the library's DFT picks
// its own), but both define a 4-point DFT.
func SumDigitsR4(ptr []complex128, log4Max uint8) {
	max := uint32(1) << (2 * log4Max)
	group := make([]complex128, 4)
	for stride := uint32(1); stride != max; stride *= 4 {
		for y := uint32(0); y != max; y += 4 * stride {
			for z := uint32(0); z != stride; z++ {
				idx := [4]uint32{y + z, y + z + stride, y + z + 2*stride, y + z + 3*stride}
				for i, at := range idx {
					group[i] = ptr[at]
				}
				fourier.CoefficientsRadix4(group)
				for i, at := range idx {
					ptr[at] = group[i]
				}
			}
		}
	}
}
