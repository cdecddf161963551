package transform

// HPTPair is the two-coordinate ring element the higher power
// transform works over. Its multiplication rules come from two
// different embeddings of the same abstract ring: mulFwd treats R1 as
// a square root of 3 (forward direction), mulInv treats R0 as a third
// root of unity's reciprocal (inverse direction). Grounded on
// hpt_double_t and mbin_hpt_mul_fwd_double/mul_inv_double.
type HPTPair struct {
	R0, R1 float64
}

// MulHPTFwd multiplies two ring elements using the forward embedding
// (R1 as a square root of 3). Exported so callers building a
// convolution recipe on top of FwdHPT/InvHPT can perform the
// pointwise multiply step without re-deriving this formula. Grounded
// on mbin_hpt_mul_fwd_double.
func MulHPTFwd(a, b HPTPair) HPTPair {
	top := 3 * a.R1 * b.R1
	return HPTPair{a.R0*b.R0 - top, a.R0*b.R1 + a.R1*b.R0}
}

func hptMulFwd(a, b HPTPair) HPTPair { return MulHPTFwd(a, b) }

func hptMulInv(a, b HPTPair) HPTPair {
	top := a.R0 * b.R0 / 3
	return HPTPair{a.R0*b.R1 + a.R1*b.R0, a.R1*b.R1 - top}
}

func hptExpFwd(base HPTPair, exp uint64) HPTPair {
	r := HPTPair{1, 0}
	for exp != 0 {
		if exp&1 != 0 {
			r = hptMulFwd(r, base)
		}
		base = hptMulFwd(base, base)
		exp /= 2
	}
	return r
}

func hptExpInv(base HPTPair, exp uint64) HPTPair {
	r := HPTPair{0, 1}
	for exp != 0 {
		if exp&1 != 0 {
			r = hptMulInv(r, base)
		}
		base = hptMulInv(base, base)
		exp /= 2
	}
	return r
}

func hptAdd(a, b HPTPair) HPTPair { return HPTPair{a.R0 + b.R0, a.R1 + b.R1} }
func hptSub(a, b HPTPair) HPTPair { return HPTPair{a.R0 - b.R0, a.R1 - b.R1} }

// FwdHPT computes the forward higher power transform in place.
// Grounded on mbin_hpt_xform_fwd_double.
func FwdHPT(data []HPTPair, power uint8) {
	max := uint32(1) << power
	base := HPTPair{0, 1}
	for step := max; step/2 != 0; {
		step /= 2
		var z, u uint32
		for y := uint32(0); y != max; y += 2 * step {
			u = addBitreversed(z, step)
			k0 := hptExpFwd(base, uint64(z))
			k1 := hptExpFwd(base, uint64(u))
			for x := uint32(0); x != step; x++ {
				t0 := data[y+x]
				t1 := hptMulFwd(data[y+x+step], k0)
				t2 := hptMulFwd(data[y+x+step], k1)
				data[y+x] = hptAdd(t0, t1)
				data[y+x+step] = hptAdd(t0, t2)
			}
			z = addBitreversed(z, max/4)
		}
	}
}

// InvHPT undoes FwdHPT. Grounded on mbin_hpt_xform_inv_double.
func InvHPT(data []HPTPair, power uint8) {
	max := uint32(1) << power
	base := HPTPair{1, 0}
	for step := uint32(1); step != max; step *= 2 {
		var z uint32
		for y := uint32(0); y != max; y += 2 * step {
			k := hptExpInv(base, uint64(z))
			for x := uint32(0); x != step; x++ {
				t0 := hptAdd(data[y+x], data[y+x+step])
				t1 := hptSub(data[y+x], data[y+x+step])
				data[y+x] = t0
				data[y+x+step] = hptMulInv(t1, k)
			}
			z = addBitreversed(z, max/4)
		}
	}
}
