package bitops

// SubIfGte64 treats (*a, *s) as a carry-save pair representing the
// value *a-*s. If *a-*s >= value, it overwrites *a and *s with the
// carry-save pair for *a-*s-value and returns true; otherwise it
// leaves *a and *s untouched and returns false. Used to implement long
// division and square root extraction without ever materialising a
// borrow chain.
func SubIfGte64(a, s *uint64, value uint64) bool {
	x := *a ^ *s ^ value
	y := 2 * ((^*a & *s) | (^(*a & ^*s) & value))
	if x >= y {
		*a = x
		*s = y
		return true
	}
	return false
}

// SubIfGt64 is the strict-inequality form of SubIfGte64.
func SubIfGt64(a, s *uint64, value uint64) bool {
	x := *a ^ *s ^ value
	y := 2 * ((^*a & *s) | (^(*a & ^*s) & value))
	if x > y {
		*a = x
		*s = y
		return true
	}
	return false
}

// SubIfGte32 is the 32-bit form of SubIfGte64.
func SubIfGte32(a, s *uint32, value uint32) bool {
	x := *a ^ *s ^ value
	y := 2 * ((^*a & *s) | (^(*a & ^*s) & value))
	if x >= y {
		*a = x
		*s = y
		return true
	}
	return false
}

// SubIfGt32 is the 32-bit form of SubIfGt64.
func SubIfGt32(a, s *uint32, value uint32) bool {
	x := *a ^ *s ^ value
	y := 2 * ((^*a & *s) | (^(*a & ^*s) & value))
	if x > y {
		*a = x
		*s = y
		return true
	}
	return false
}
