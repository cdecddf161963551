package radix

// TBase names a generalised binary-digit base parameterised by a pair
// of bitmasks: Tm marks bit positions treated as "negative doubling"
// positions, Tp marks positions treated as "positive doubling"
// positions. The degenerate case Tm=0, Tp=0xFFFFFFFF is the "1.999"
// base, the limit of 2*((2**n - 1)/(2**n + 1)) as n approaches
// infinity.
type TBase struct {
	Tm, Tp uint32
}

// Base1999 is the 1.999-base instance of TBase (Tm=0, Tp=all ones).
var Base1999 = TBase{Tm: 0, Tp: 0xFFFFFFFF}

// ToBinary converts a T-base packed value r into plain binary.
func (b TBase) ToBinary(r uint32) uint32 {
	tm, tp := b.Tm, b.Tp
	for x := uint8(32); x != 0; x-- {
		r = r - (2 * (r & tm)) + (2 * (r & tp))
		tm *= 2
		tp *= 2
	}
	return r
}

// FromBinary converts a plain binary value r into T-base.
func (b TBase) FromBinary(r uint32) uint32 {
	for x := uint8(32); x != 0; x-- {
		xi := x - 1
		um := b.Tm << xi
		up := b.Tp << xi
		for y := xi; y != 32; y++ {
			if r&um&(1<<y) != 0 {
				r += 2 << y
			}
			if r&up&(1<<y) != 0 {
				r -= 2 << y
			}
		}
	}
	return r
}

// Add adds two T-base packed values by converting to binary, adding,
// and converting back.
func (b TBase) Add(a, x uint32) uint32 {
	return b.FromBinary(b.ToBinary(a) + b.ToBinary(x))
}

// Sub subtracts x from a in T-base.
func (b TBase) Sub(a, x uint32) uint32 {
	return b.FromBinary(b.ToBinary(a) - b.ToBinary(x))
}

// DivOdd divides rem by div in T-base via the same bit-at-a-time
// subtract-and-double loop oddring.DivOdd32 uses, expressed through
// T-base Add/Sub instead of plain integer arithmetic.
func (b TBase) DivOdd(rem, div uint32) uint32 {
	var s uint32
	for m := uint32(1); m != 0; m *= 2 {
		if rem&m != 0 {
			rem = b.Sub(rem, div)
			s |= m
		}
		div = b.Add(div, div)
	}
	return s
}

// ConvertBinaryTo1999 converts a plain binary value to the 1.999-base
// packed representation; signedness of the input is the caller's
// responsibility, matching the upstream convention of leaving sign
// interpretation to the call site.
func ConvertBinaryTo1999(r uint32) uint32 {
	m := ^uint32(0)
	for m != 0 {
		r = r + 2*(r&m)
		m *= 2
	}
	return r
}

// Convert1999ToBinary is the inverse of ConvertBinaryTo1999.
func Convert1999ToBinary(r uint32) uint32 {
	for x := uint8(32); x != 0; x-- {
		xi := x - 1
		for y := xi; y != 32; y++ {
			if r&(1<<y) != 0 {
				r -= 2 * (r & (1 << y))
			}
		}
	}
	return r
}
