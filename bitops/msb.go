package bitops

// MSB8 returns a mask with only the highest set bit of val kept, or 0
// if val is zero. It is found by a branching binary search over the
// candidate bit, not by math/bits.Len.
func MSB8(val uint8) uint8 {
	var m uint8
	if val&0xF0 != 0 {
		m = 1 << 7
	} else {
		m = 1 << 3
	}
	for m != 0 {
		if val&m != 0 {
			break
		}
		m /= 2
	}
	return m
}

// MSB16 returns a mask with only the highest set bit of val kept.
func MSB16(val uint16) uint16 {
	var m uint16
	if val&0xFF00 != 0 {
		m = 1 << 15
	} else {
		m = 1 << 7
	}
	for m != 0 {
		if val&m != 0 {
			break
		}
		m /= 2
	}
	return m
}

// MSB32 returns a mask with only the highest set bit of val kept.
func MSB32(val uint32) uint32 {
	var m uint32
	if val&0xFFFF0000 != 0 {
		if val&0xFF000000 != 0 {
			m = 1 << 31
		} else {
			m = 1 << 23
		}
	} else {
		if val&0xFF00 != 0 {
			m = 1 << 15
		} else {
			m = 1 << 7
		}
	}
	for m != 0 {
		if val&m != 0 {
			break
		}
		m /= 2
	}
	return m
}

// MSB64 returns a mask with only the highest set bit of val kept.
func MSB64(val uint64) uint64 {
	if val&0xFFFFFFFF00000000 != 0 {
		return uint64(MSB32(uint32(val>>32))) << 32
	}
	return uint64(MSB32(uint32(val)))
}

// LSB8 returns a mask with only the lowest set bit of val kept, or 0
// if val is zero.
func LSB8(val uint8) uint8 { return val & (^val + 1) }

// LSB16 returns a mask with only the lowest set bit of val kept.
func LSB16(val uint16) uint16 { return val & (^val + 1) }

// LSB32 returns a mask with only the lowest set bit of val kept.
func LSB32(val uint32) uint32 { return val & (^val + 1) }

// LSB64 returns a mask with only the lowest set bit of val kept.
func LSB64(val uint64) uint64 { return val & (^val + 1) }
