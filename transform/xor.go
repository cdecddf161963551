package transform

// XorXform32 computes the XOR (Walsh-Hadamard) transform in place with
// the sum/difference butterfly (a+b, a-b) in wrapping uint32
// arithmetic: f(x,y) = -1 if popcount(x&y) is odd, else 1. It turns
// convolution under XOR of indices into pointwise multiplication.
// Applying it twice scales every entry by the array length. Grounded
// on mbin_xor_xform_32.
func XorXform32(ptr []uint32, log2Max uint8) {
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

// XorXform64 is the uint64 counterpart of XorXform32. Grounded on
// mbin_xor_xform_64.
func XorXform64(ptr []uint64, log2Max uint8) {
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
