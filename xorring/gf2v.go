package xorring

// V64 is an element of GF(2)[x]/(x^2+x+1), the degree-2 extension of
// a GF(2)[x]/(mod) field this package's Mod64/MulMod64 operate on,
// represented as a coefficient pair (a0 + a1*t) over the extension
// basis {1, t}.
type V64 struct {
	A0, A1 uint64
}

// Zero64, Unit64 and Nega64 mirror mbin_xor2v_zero_64/unit_64/nega_64.
// Zero64 is the identity of MulMod64 (ExpMod64 starts from it and
// LogMod64 counts steps until it is reached); Unit64 is the constant
// NegMod64 multiplies by and is not an identity; Nega64 is the element
// LogMod64 steps by, one unit of discrete logarithm at a time.
var (
	Zero64 = V64{0, 1}
	Unit64 = V64{1, 3}
	Nega64 = V64{1, 0}
)

// MulMod64 multiplies two extension-field elements modulo the degree-p
// base polynomial.
func (x V64) MulMod64(y V64, p uint8) V64 {
	val := y.A1 ^ y.A0 ^ RolMod64(y.A0, 1, p)
	return V64{
		A0: MulMod64(x.A0, val, p) ^ MulMod64(x.A1, y.A0, p),
		A1: MulMod64(x.A0, y.A0, p) ^ MulMod64(x.A1, y.A1, p),
	}
}

// MulModAny64 multiplies two extension-field elements modulo an
// arbitrary base polynomial p (not necessarily of the x^p+1 form
// MulMod64 assumes).
func (x V64) MulModAny64(y V64, p uint64) V64 {
	val := y.A1 ^ MulModAny64(y.A0, 3, p)
	return V64{
		A0: MulModAny64(x.A0, val, p) ^ MulModAny64(x.A1, y.A0, p),
		A1: MulModAny64(x.A0, y.A0, p) ^ MulModAny64(x.A1, y.A1, p),
	}
}

// SquareMod64 squares an extension-field element.
func (x V64) SquareMod64(p uint8) V64 {
	val := SquareMod64(x.A0, p)
	return V64{
		A0: val ^ RolMod64(val, 1, p),
		A1: val ^ SquareMod64(x.A1, p),
	}
}

// ungreyMod64 undoes a Gray-code-style recoding on a p-bit field
// assumed to have even parity, the precondition RootMod64 needs of its
// argument's A0 component.
func ungreyMod64(x uint64, p uint8) uint64 {
	for q := uint8(0); q != p-1; q++ {
		if x&(uint64(1)<<q) != 0 {
			x ^= uint64(2) << q
		}
	}
	return x
}

// RootMod64 computes a square root of an extension-field element,
// assuming x.A0 has even parity.
func (x V64) RootMod64(p uint8) V64 {
	a0 := ungreyMod64(x.A0, p)
	a0 = RootMod64(a0, p)
	return V64{A0: a0, A1: a0 ^ RootMod64(x.A1, p)}
}

// LogMod64 computes the discrete logarithm of x to the base Nega64 by
// repeated multiplication, counting steps until x reaches Zero64.
func (x V64) LogMod64(p uint8) uint64 {
	var r uint64
	for x != Zero64 {
		x = x.MulMod64(Nega64, p)
		r++
	}
	return r
}

// NegMod64 swaps x's components and multiplies by Unit64, mirroring
// mbin_xor2v_neg_mod_64. The product of x and the result always has
// A0 == 0; where that product is Zero64, the result is x's inverse, and
// for other x it is not.
func (x V64) NegMod64(p uint8) V64 {
	t := V64{A0: x.A1, A1: x.A0}
	return t.MulMod64(Unit64, p)
}

// ExpMod64 raises x to the y'th power in the extension field.
func (x V64) ExpMod64(y uint64, p uint8) V64 {
	r := Zero64
	for y != 0 {
		if y&1 != 0 {
			r = r.MulMod64(x, p)
		}
		x = x.MulMod64(x, p)
		y /= 2
	}
	return r
}

// Xor adds two extension-field elements (componentwise XOR).
func (x V64) Xor(y V64) V64 {
	return V64{A0: x.A0 ^ y.A0, A1: x.A1 ^ y.A1}
}
