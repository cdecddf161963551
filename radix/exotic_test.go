package radix

import "testing"

func TestBaseGRoundTrip(t *testing.T) {
	f := uint32(3)
	for _, v := range []uint32{0, 1, 5, 100} {
		packed := FromBinaryG(f, v)
		if got := ToBinaryG(f, packed); got != v {
			t.Errorf("base-G round trip f=%d v=%d: got %d via %#x", f, v, got, packed)
		}
	}
}

func TestBaseHDivisorTableShape(t *testing.T) {
	count := 0
	for shift := 0; shift < 32; shift++ {
		if BaseHDivisor(uint8(shift)) != 0 {
			count++
		}
	}
	if count != 30 {
		t.Errorf("baseHDivisorTable has %d non-zero entries, want 30", count)
	}
	if BaseHDivisor(2) != 0x3ef7226d {
		t.Errorf("BaseHDivisor(2) = %#x, want 0x3ef7226d", BaseHDivisor(2))
	}
	if BaseHDivisor(31) != 0x80000001 {
		t.Errorf("BaseHDivisor(31) = %#x, want 0x80000001", BaseHDivisor(31))
	}
}

func TestBaseHRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 10} {
		packed := FromBinaryH(v, 4)
		if got := ToBinaryH(packed, 4); got != v {
			t.Errorf("base-H round trip v=%d: got %d via %#x", v, got, packed)
		}
	}
}

func TestBaseURoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 3, 10} {
		packed := FromBinaryU(v)
		if got := ToBinaryU(packed); got != v {
			t.Errorf("base-U round trip v=%d: got %d via %#x", v, got, packed)
		}
	}
}

func TestBaseVRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 3, 10} {
		packed := FromBinaryV(v)
		if got := ToBinaryV(packed); got != v {
			t.Errorf("base-V round trip v=%d: got %d via %#x", v, got, packed)
		}
	}
}

func TestBaseMRoundTrip(t *testing.T) {
	// 7 Gray-decodes to the odd carrier 5; an even carrier has no
	// base-M inverse.
	xorVal := uint32(7)
	pol := uint32(0)
	for _, v := range []uint32{0, 1, 7, 100} {
		packed := FromBinaryM(v, xorVal, pol)
		if got := ToBinaryM(packed, xorVal, pol); got != v {
			t.Errorf("base-M round trip v=%d: got %d via %#x", v, got, packed)
		}
	}
}

func TestBasePRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 5, 12345} {
		packed := FromBinaryP(v)
		if got := ToBinaryP(packed); got != v {
			t.Errorf("base-P round trip v=%d: got %d via %#x", v, got, packed)
		}
	}
}

func TestBasePAddSubMultiply(t *testing.T) {
	a := FromBinaryP(7)
	b := FromBinaryP(3)
	sum := AddBaseP(a, b)
	if got := ToBinaryP(sum); got != 10 {
		t.Errorf("7+3 in P-base decoded = %d, want 10", got)
	}
	diff := SubBaseP(sum, b)
	if got := ToBinaryP(diff); got != 7 {
		t.Errorf("(7+3)-3 in P-base decoded = %d, want 7", got)
	}
	prod := MultiplyBaseP(a, b)
	if got := ToBinaryP(prod); got != 21 {
		t.Errorf("7*3 in P-base decoded = %d, want 21", got)
	}
}

func TestBasePIsNegativeAndCmp(t *testing.T) {
	pos := FromBinaryP(5)
	neg := NegateBaseP(pos)
	if !IsNegativeBaseP(neg) {
		t.Errorf("NegateBaseP(FromBinaryP(5)) should be negative")
	}
	if IsNegativeBaseP(pos) {
		t.Errorf("FromBinaryP(5) should not be negative")
	}
	if CmpBaseP(pos, neg) != 1 {
		t.Errorf("CmpBaseP(pos,neg) = %d, want 1", CmpBaseP(pos, neg))
	}
	if CmpBaseP(pos, pos) != 0 {
		t.Errorf("CmpBaseP(pos,pos) = %d, want 0", CmpBaseP(pos, pos))
	}
}

func TestBase23RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 5, 1000} {
		packed := FromBinary23(v)
		if got := ToBinary23(packed); got != v {
			t.Errorf("base-23 round trip v=%d: got %d via %#x", v, got, packed)
		}
	}
}

func TestBase23StateMul(t *testing.T) {
	var st Base23State
	st.Mul(FromBinary23(6), FromBinary23(7))
	st.CleanCarry()
	if got := st.ToLinear(); got != 42 {
		t.Errorf("Base23State.Mul(FromBinary23(6), FromBinary23(7)).ToLinear() = %d, want 42", got)
	}
}

func TestBaseM3RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 5, -17, 100} {
		packed := RebaseBase2ToM3_32(v)
		if !IsBaseM3Valid32(packed) {
			t.Errorf("RebaseBase2ToM3_32(%d) produced invalid digits %#x", v, packed)
		}
		got := int32(RebaseM3To2_32(packed))
		if got != v {
			t.Errorf("base-(-3) round trip %d -> %#x -> %d", v, packed, got)
		}
	}
}

func TestInvBaseM3Involution(t *testing.T) {
	packed := RebaseBase2ToM3_32(12345)
	if got := InvBaseM3_32(InvBaseM3_32(packed)); got != packed {
		t.Errorf("InvBaseM3_32 is not an involution: got %#x, want %#x", got, packed)
	}
}
