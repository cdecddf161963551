package transform

// NTTPrime is the modulus the modular NTT ring works over, a Fermat
// prime chosen so it has a primitive root usable as a wave vector.
// Grounded on MBIN_FPX_C32_PRIME.
const NTTPrime = 65537

// NTTPoint is an element of the two-dimensional ring (ℤ/NTTPrime)²
// used as the modular analogue of a complex root of unity. Grounded
// on c32_t in mbin_fpx.c.
type NTTPoint struct {
	X, Y uint32
}

func nttMul(a, b NTTPoint) NTTPoint {
	return NTTPoint{
		uint32((uint64(NTTPrime)*uint64(NTTPrime) + uint64(a.X)*uint64(b.X) - uint64(a.Y)*uint64(b.Y)) % NTTPrime),
		uint32((uint64(a.X)*uint64(b.Y) + uint64(a.Y)*uint64(b.X)) % NTTPrime),
	}
}

func nttAdd(a, b NTTPoint) NTTPoint {
	return NTTPoint{(a.X + b.X) % NTTPrime, (a.Y + b.Y) % NTTPrime}
}

func nttSub(a, b NTTPoint) NTTPoint {
	return NTTPoint{(NTTPrime + a.X - b.X) % NTTPrime, (NTTPrime + a.Y - b.Y) % NTTPrime}
}

// NTTTable is an explicitly-constructed wave table for the modular
// NTT: the successive powers of a primitive 2^k-th root of unity in
// (ℤ/NTTPrime)², generated once and reused across transforms of that
// size. This replaces the original's process-global
// mbin_fpx_wave_c32 pointer (populated once via mbin_fpx_init_c32)
// with an explicit, immutable value, per the re-architecture note in
// the accompanying design notes. Grounded on
// mbin_fpx_generate_table_c32.
type NTTTable struct {
	wave    []NTTPoint
	log2Max uint8
}

// GenerateNTTTable searches for a unit vector (x, y) with x>=startX,
// y>=startY whose powers cycle through a full period of length
// 2^log2Max before returning to (1, 0), and whose table halves are
// negatives of one another (the property the butterfly needs). It
// reports ok=false if no such vector is found before x reaches
// NTTPrime. Grounded on mbin_fpx_generate_table_c32.
func GenerateNTTTable(startX, startY uint32, log2Max uint8) (NTTTable, bool) {
	max := uint32(1) << log2Max
	for x := startX; x != NTTPrime; x++ {
		for y := startY; y != NTTPrime; y++ {
			if (x*x+y*y)%NTTPrime != 1 {
				continue
			}
			k := NTTPoint{x, y}
			a := NTTPoint{1, 0}
			wave := make([]NTTPoint, max)
			wave[0] = a
			a = nttMul(a, k)

			ok := true
			for z := uint32(1); z != max; z++ {
				if a.X == 1 && a.Y == 0 {
					ok = false
					break
				}
				wave[z] = a
				a = nttMul(a, k)
			}
			if !ok || a.X != 1 || a.Y != 0 {
				continue
			}
			mirrored := true
			for z := uint32(0); z != max/2; z++ {
				other := wave[z+max/2]
				if wave[z].X != (NTTPrime-other.X)%NTTPrime || wave[z].Y != (NTTPrime-other.Y)%NTTPrime {
					mirrored = false
					break
				}
			}
			if !mirrored {
				continue
			}
			return NTTTable{wave: wave, log2Max: log2Max}, true
		}
		startY = 0
	}
	return NTTTable{}, false
}

// Xform computes the forward modular NTT of ptr in place, using the
// wave table's entries as twiddle factors. ptr's length must equal
// 1<<log2Size, where log2Size<=table.log2Max. Grounded on
// mbin_fpx_xform_c32.
func (table NTTTable) Xform(ptr []NTTPoint, log2Size uint8) {
	max := uint32(1) << log2Size
	shift := table.log2Max - log2Size
	for step := max; step/2 != 0; {
		step /= 2
		var z uint32
		for y := uint32(0); y != max; y += 2 * step {
			for x := uint32(0); x != step; x++ {
				t0 := ptr[x+y]
				t1 := nttMul(ptr[x+y+step], table.wave[z<<shift])
				ptr[x+y] = nttAdd(t0, t1)
				ptr[x+y+step] = nttSub(t0, t1)
			}
			z = addBitreversed(z, uint32(1)<<(table.log2Max-2))
		}
	}
}

// MulNTT multiplies two transformed arrays pointwise into pc.
// Grounded on mbin_fpx_mul_c32.
func MulNTT(pa, pb, pc []NTTPoint) {
	for x := range pa {
		pc[x] = nttMul(pa[x], pb[x])
	}
}

// BitreverseNTT restores natural order after Xform (or scrambles it
// before calling Xform again to invert). Grounded on
// mbin_fpx_bitreverse_c32.
func BitreverseNTT(ptr []NTTPoint) {
	bitreverseIndices(uint32(len(ptr)), func(i, j uint32) { ptr[i], ptr[j] = ptr[j], ptr[i] })
}
