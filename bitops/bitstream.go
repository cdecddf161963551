package bitops

// GetBits32 reads up to 32 bits from the little-endian word stream ptr
// starting at the bit offset *poff, advances *poff by bits, and returns
// the field right-justified in the low bits of the result. bits must
// be in [1, 32].
func GetBits32(ptr []uint32, poff *uint32, bits uint32) uint32 {
	offset := *poff
	rem := 32 - (offset & 31)

	var tmp uint32
	if rem >= bits {
		tmp = ptr[offset/32] >> (32 - rem)
	} else {
		tmp = (ptr[offset/32] >> (32 - rem)) | (ptr[offset/32+1] << rem)
	}
	if bits != 32 {
		tmp &= (1 << bits) - 1
	}
	*poff = offset + bits
	return tmp
}

// PutBits32 writes the low bits of value into the little-endian word
// stream ptr at bit offset *poff, via OR (the destination bits must be
// zero beforehand), and advances *poff by bits.
func PutBits32(ptr []uint32, poff *uint32, bits uint32, value uint32) {
	offset := *poff
	if bits < 32 {
		value &= (1 << bits) - 1
	}
	rem := 32 - (offset & 31)

	if rem >= bits {
		ptr[offset/32] |= value << (32 - rem)
	} else {
		ptr[offset/32] |= value << (32 - rem)
		ptr[offset/32+1] |= value >> rem
	}
	*poff = offset + bits
}

// GetRevBits32 reads bits starting bits below the current offset
// *poff (i.e. it walks the stream backwards), decrementing *poff by
// bits first. It is the mirror of GetBits32 used to drain a stream
// that was filled by PutRevBits32.
func GetRevBits32(ptr []uint32, poff *uint32, bits uint32) uint32 {
	offset := *poff - bits
	rem := 32 - (offset & 31)

	var tmp uint32
	if rem >= bits {
		tmp = ptr[offset/32] >> (32 - rem)
	} else {
		tmp = (ptr[offset/32] >> (32 - rem)) | (ptr[offset/32+1] << rem)
	}
	if bits < 32 {
		tmp &= (1 << bits) - 1
	}
	*poff = offset
	return tmp
}

// PutRevBits32 writes the low bits of value at the bit offset *poff
// and advances *poff by bits, so that GetRevBits32, walking backward
// from the final offset, reads the fields back last-written first.
func PutRevBits32(ptr []uint32, poff *uint32, bits uint32, value uint32) {
	if bits < 32 {
		value &= (1 << bits) - 1
	}
	offset := *poff
	rem := 32 - (offset & 31)

	if rem >= bits {
		ptr[offset/32] |= value << (32 - rem)
	} else {
		ptr[offset/32] |= value << (32 - rem)
		ptr[offset/32+1] |= value >> rem
	}
	*poff = offset + bits
}
