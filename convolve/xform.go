package convolve

import "github.com/hselasky/mbin/transform"

// pointwiseMultiplyUint32 is the "multiply in the transformed domain"
// step shared by every convolution recipe below: once both operands
// are transformed, convolution under the kernel's algebraic operation
// reduces to ordinary elementwise multiplication. Grounded on
// mbin_multiply_xform_32.
func pointwiseMultiplyUint32(a, b []uint32) []uint32 {
	c := make([]uint32, len(a))
	for x := range a {
		c[x] = a[x] * b[x]
	}
	return c
}

func pointwiseMultiplyInt32(a, b []int32) []int32 {
	c := make([]int32, len(a))
	for x := range a {
		c[x] = a[x] * b[x]
	}
	return c
}

// XorConvolve32 computes the convolution of a and b under XOR, i.e.
// c[k] = XOR over all i^j==k of a[i]*b[j] folded by parity, by
// forward-transforming both operands, multiplying pointwise, and
// inverse-transforming (which here is the same XorXform32 call,
// since the XOR transform is an involution up to a scale of
// len(a)). The result is scaled down by len(a) to undo that. Grounded
// on the mbin_multiply_xform recipe in §4.6 applied to
// mbin_xor_xform_32.
func XorConvolve32(a, b []uint32, log2Max uint8) []uint32 {
	fa := append([]uint32(nil), a...)
	fb := append([]uint32(nil), b...)
	transform.XorXform32(fa, log2Max)
	transform.XorXform32(fb, log2Max)
	c := pointwiseMultiplyUint32(fa, fb)
	transform.XorXform32(c, log2Max)
	scale := uint32(1) << log2Max
	for i := range c {
		c[i] /= scale
	}
	return c
}

// AddConvolve32 computes the convolution of a and b under carry-add,
// by forward-transforming both operands with ForwardAdd32, multiplying
// pointwise, and undoing the transform with InverseAdd32. Grounded on
// the mbin_multiply_xform recipe applied to
// mbin_forward_add_xform_32/mbin_inverse_add_xform_32.
func AddConvolve32(a, b []int32, log2Max uint8) []int32 {
	fa := append([]int32(nil), a...)
	fb := append([]int32(nil), b...)
	transform.ForwardAdd32(fa, log2Max)
	transform.ForwardAdd32(fb, log2Max)
	c := pointwiseMultiplyInt32(fa, fb)
	transform.InverseAdd32(c, log2Max)
	return c
}

// HPTConvolve computes the convolution of a and b in the higher power
// ring, by forward-transforming both operands with FwdHPT, multiplying
// pointwise with the ring's forward product, and undoing the
// transform with InvHPT. Grounded on the mbin_multiply_xform recipe
// applied to mbin_hpt_xform_fwd_double/mbin_hpt_xform_inv_double.
func HPTConvolve(a, b []transform.HPTPair, power uint8) []transform.HPTPair {
	fa := append([]transform.HPTPair(nil), a...)
	fb := append([]transform.HPTPair(nil), b...)
	transform.FwdHPT(fa, power)
	transform.FwdHPT(fb, power)
	c := make([]transform.HPTPair, len(a))
	for x := range fa {
		c[x] = transform.MulHPTFwd(fa[x], fb[x])
	}
	transform.InvHPT(c, power)
	return c
}
