package transform

// Square-wave transform over 3-adic two-dimensional vectors. Unlike
// Point (radix-2, float32), each vector here has only 9 distinct
// values and is encoded as a single byte, mapped to one of 8
// non-origin angles. Grounded on mbin_fst.c.

// squareAngleToVector and squareVectorToAngle are the fixed 3-adic
// angle<->vector lookup tables, grounded on
// mbin_fst_angle_to_vector/mbin_fst_vector_to_angle.
var (
	squareAngleToVector = [33]uint8{1, 7, 6, 8, 2, 5, 3, 4, 1, 7, 6, 8, 2, 5, 3, 4}
	squareVectorToAngle = [9]uint8{16, 0, 4, 6, 7, 5, 2, 1, 3}
)

func squareMultiply(a, b uint8) uint8 {
	return squareAngleToVector[squareVectorToAngle[a]+squareVectorToAngle[b]]
}

func squareAngleAdd(a, angle uint8) uint8 {
	return squareAngleToVector[squareVectorToAngle[a]+angle]
}

func squareAdd(a, b uint8) uint8 {
	rx := (a + b) % 3
	ry := ((a / 3) + (b / 3)) % 3
	return rx + 3*ry
}

func squareSub(a, b uint8) uint8 {
	rx := (9 + a - b) % 3
	ry := (3 + (a / 3) - (b / 3)) % 3
	return rx + 3*ry
}

// FwdSquare computes the forward square-wave transform in place, then
// reorders ptr from bit-reversed to natural order. Grounded on
// mbin_fst_fwd_2d.
func FwdSquare(ptr []uint8, log2Size uint8) {
	max := uint32(1) << log2Size
	for step := max; step/2 != 0; {
		step /= 2
		z := uint8(0)
		for y := uint32(0); y != max; y += 2 * step {
			for x := uint32(0); x != step; x++ {
				t0 := ptr[x+y]
				t1 := squareAngleAdd(ptr[x+y+step], z)
				ptr[x+y] = squareAdd(t0, t1)
				ptr[x+y+step] = squareSub(t0, t1)
			}
			z = uint8(addBitreversed(uint32(z), 2))
		}
	}
	bitreverseIndices(max, func(i, j uint32) { ptr[i], ptr[j] = ptr[j], ptr[i] })
}

// InvSquare undoes FwdSquare. Grounded on mbin_fst_inv_2d.
func InvSquare(ptr []uint8, log2Size uint8) {
	max := uint32(1) << log2Size
	bitreverseIndices(max, func(i, j uint32) { ptr[i], ptr[j] = ptr[j], ptr[i] })
	for step := uint32(1); step != max; step *= 2 {
		z := uint8(0)
		for y := uint32(0); y != max; y += 2 * step {
			for x := uint32(0); x != step; x++ {
				t0 := squareAdd(ptr[x+y], ptr[x+y+step])
				t1 := squareSub(ptr[x+y], ptr[x+y+step])
				ptr[x+y] = t0
				ptr[x+y+step] = squareAngleAdd(t1, uint8(-int8(z))&7)
			}
			z = uint8(addBitreversed(uint32(z), 2))
		}
	}
}

// MulSquare multiplies two transformed arrays pointwise into pc.
// Grounded on mbin_fst_mul_2d.
func MulSquare(pa, pb, pc []uint8) {
	for x := range pa {
		pc[x] = squareMultiply(pa[x], pb[x])
	}
}

// DiffSquare replaces pc with its discrete first difference; the
// derivative of a triangle function is a square wave. Grounded on
// mbin_fst_diff_2d.
func DiffSquare(pc []uint8) {
	prev := pc[len(pc)-1]
	for x := range pc {
		old := pc[x]
		pc[x] = squareSub(pc[x], prev)
		prev = old
	}
}

// IntegSquare replaces pc with its running sum; the integral of a
// square wave is a triangle function. Grounded on mbin_fst_integ_2d.
func IntegSquare(pc []uint8) {
	var sum uint8
	for x := range pc {
		sum = squareAdd(sum, pc[x])
		pc[x] = sum
	}
}

// Multiply3Adic multiplies two length-2^log2Size 3-adic digit
// sequences (values 0, 1, 2, encoded directly as small vectors 0/1/2)
// into pc, which must have length 2^(log2Size+1). Grounded on
// mbin_fst_multiply_3_adic_2d.
func Multiply3Adic(pa, pb, pc []uint8, log2Size uint8) {
	max := uint32(1) << log2Size
	ta := make([]uint8, 2*max)
	tb := make([]uint8, 2*max)
	copy(ta[:max], pa)
	copy(tb[:max], pb)

	FwdSquare(ta, log2Size+1)
	FwdSquare(tb, log2Size+1)
	MulSquare(ta, tb, ta)
	InvSquare(ta, log2Size+1)

	for x := range pc {
		pc[x] = ta[x] % 3
	}
}
