package transform

// ForwardGte32 computes the forward "greater or equal" transform in
// place: f(x,y) = 1 if x>=y, else 0. Implemented as a running prefix
// sum, since the GTE kernel's triangular coefficient matrix collapses
// to that. Grounded on mbin_forward_gte_xform_32.
func ForwardGte32(ptr []int32, lmax uint8) {
	max := uint32(1) << lmax
	y := ptr[0]
	for x := uint32(1); x != max; x++ {
		y += ptr[x]
		ptr[x] = y
	}
}

// InverseGte32 undoes ForwardGte32 via a running first difference.
// Grounded on mbin_inverse_gte_xform_32.
func InverseGte32(ptr []int32, lmax uint8) {
	max := uint32(1) << lmax
	y := ptr[0]
	for x := uint32(1); x != max; x++ {
		z := ptr[x]
		ptr[x] = ptr[x] - y
		y = z
	}
}

// ForwardGteMask32 recursively applies ForwardGte32 to each
// power-of-two half, then folds the lower half's prefix sum into the
// upper half, producing the GTE transform over ranges that are
// themselves powers of two rather than over [0, 2^k) as a whole.
// Grounded on mbin_forward_gte_mask_xform_32.
func ForwardGteMask32(ptr []int32, log2Max uint8) {
	for y := uint8(0); y != log2Max; y++ {
		max := uint32(1) << y
		ForwardGte32(ptr[max:], y)
		for x := uint32(0); x != max; x++ {
			ptr[x+max] += ptr[x]
		}
	}
}

// InverseGteMask32 undoes ForwardGteMask32. Grounded on
// mbin_inverse_gte_mask_xform_32.
func InverseGteMask32(ptr []int32, log2Max uint8) {
	for log2Max != 0 {
		log2Max--
		max := uint32(1) << log2Max
		for x := uint32(0); x != max; x++ {
			ptr[x+max] -= ptr[x]
		}
		InverseGte32(ptr[max:], log2Max)
	}
}
