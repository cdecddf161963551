package transform

// ForwardAdd32 computes the forward additive transform in place:
// f(x,y) = 1 if (x&y)==y, else 0. Grounded on
// mbin_forward_add_xform_32.
func ForwardAdd32(ptr []int32, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z+x/2] = a + b
			}
		}
	}
}

// InverseAdd32 undoes ForwardAdd32. Grounded on
// mbin_inverse_add_xform_32.
func InverseAdd32(ptr []int32, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z+x/2] = b - a
			}
		}
	}
}

// AddXform32 is the combined forward/inverse additive transform,
// scaling each block's lower half by a running factor tog that is
// multiplied by tt after every block. Passing tog=1, tt=1 reproduces
// ForwardAdd32; tog=-1, tt=1 reproduces InverseAdd32. Grounded on
// mbin_add_xform_32.
func AddXform32(ptr []int32, log2Max uint8, tog, tt int32) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y, tog = y+x, tog*tt {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z+x/2] = b + tog*a
			}
		}
	}
}

// ForwardAddFloat64 is the float64 counterpart of ForwardAdd32,
// grounded on mbin_forward_add_xform_double.
func ForwardAddFloat64(ptr []float64, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z+x/2] = a + b
			}
		}
	}
}

// InverseAddFloat64 undoes ForwardAddFloat64. Grounded on
// mbin_inverse_add_xform_double.
func InverseAddFloat64(ptr []float64, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z+x/2] = b - a
			}
		}
	}
}

// ForwardRevAdd32 is the "reversed" additive transform, f(x,y) = 1 if
// (x|y)==y, else 0. Grounded on mbin_forward_rev_add_xform_32.
func ForwardRevAdd32(ptr []int32, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z] = a + b
			}
		}
	}
}

// InverseRevAdd32 undoes ForwardRevAdd32. Grounded on
// mbin_inverse_rev_add_xform_32.
func InverseRevAdd32(ptr []int32, log2Max uint8) {
	max := uint32(1) << log2Max
	for x := uint32(2); x <= max; x *= 2 {
		for y := uint32(0); y != max; y += x {
			for z := uint32(0); z != x/2; z++ {
				a := ptr[y+z]
				b := ptr[y+z+x/2]
				ptr[y+z] = a - b
			}
		}
	}
}
