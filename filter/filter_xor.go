package filter

import "github.com/hselasky/mbin/xorring"

func make2DXor(rows, cols uint64) [][]uint64 {
	m := make([][]uint64, rows)
	for i := range m {
		m[i] = make([]uint64, cols)
	}
	return m
}

// SolveTableXor64 is SolveTable's GF(2)[x] counterpart: the filter
// coefficients live in the degree-p extension field xorring.MulMod64
// already operates over, so "subtract" becomes xor and the pivot
// inverse is xorring.NegMod64's Fermat-little-theorem-style exponent
// ladder. Grounded on mbin_xor2_filter_table_p_64.
func SolveTableXor64(n uint64, p uint8, input []uint64) ([]uint64, bool) {
	sx := 2 * tableSize64(n)
	sy := tableSize64(n)

	bitmap := make2DXor(sx, sy)
	value := make2DXor(sx, n)
	clean := make([]bool, sx)
	output := make([]uint64, sy*n)

	j := uint64(0)
	for x := uint64(0); x != n; x++ {
		for y := x; x+y != 2*n; y++ {
			copy(value[j], input[(x+y)*n:(x+y)*n+n])

			k := uint64(0)
			for t := uint64(0); t != n; t++ {
				for u := t; u != n; u++ {
					a, b := input[t+x*n], input[u+y*n]
					c, d := input[u+x*n], input[t+y*n]
					if t == u {
						bitmap[j][k] = xorring.MulMod64(a, b, p)
					} else {
						bitmap[j][k] = xorring.MulMod64(a, b, p) ^ xorring.MulMod64(c, d, p)
					}
					k++
				}
			}
			j++
		}
	}

	for {
		restart := false

		for x := uint64(0); x != sx; x++ {
			if clean[x] {
				continue
			}
			clean[x] = true

			y := uint64(0)
			for ; y != sy; y++ {
				if bitmap[x][y] != 0 {
					break
				}
			}
			if y == sy {
				for yy := uint64(0); yy != n; yy++ {
					if value[x][yy] != 0 {
						return nil, false
					}
				}
				continue
			}
			m := xorring.NegMod64(bitmap[x][y], p)

			for u := range bitmap[x] {
				bitmap[x][u] = xorring.MulMod64(bitmap[x][u], m, p)
			}
			for u := range value[x] {
				value[x][u] = xorring.MulMod64(value[x][u], m, p)
			}

			for u := uint64(0); u != sx; u++ {
				if u == x {
					continue
				}
				mm := bitmap[u][y]
				if mm == 0 {
					continue
				}
				for t := range bitmap[u] {
					bitmap[u][t] ^= xorring.MulMod64(bitmap[x][t], mm, p)
				}
				for t := range value[u] {
					value[u][t] ^= xorring.MulMod64(value[x][t], mm, p)
				}
				bitmap[u][y] = 0
				clean[u] = false
			}
		}

	sortLoop:
		for x := uint64(0); x != sx; x++ {
			u := uint64(0)
			for y := uint64(0); y != sy; y++ {
				if bitmap[x][y] != 0 {
					u++
				}
			}

			if u != 1 {
				if u == 0 {
					for yy := uint64(0); yy != n; yy++ {
						if value[x][yy] != 0 {
							return nil, false
						}
					}
					continue
				}
				u = 0
				for y := uint64(0); y != sy; y++ {
					if bitmap[x][y] != 0 {
						u++
					}
					if u == 2 {
						for xx := uint64(0); xx != sx; xx++ {
							if bitmap[xx][y] == 0 {
								continue
							}
							bitmap[xx][y] = 0
							clean[xx] = false
						}
						restart = true
						break sortLoop
					}
				}
				return nil, false
			}
			for y := uint64(0); y != sx; y++ {
				if bitmap[x][y] == 0 {
					continue
				}
				copy(output[y*n:y*n+n], value[x])
				break
			}
		}

		if !restart {
			break
		}
	}
	return output, true
}

func tableSize64(n uint64) uint64 {
	return (n*n + n) / 2
}

// MulXor64 is Mul's GF(2)[x] counterpart, grounded on
// mbin_xor2_filter_mul_p_64.
func MulXor64(a, b, table []uint64, p uint8, n uint64) []uint64 {
	c := make([]uint64, n)
	off := uint64(0)

	for x := uint64(0); x != n; x++ {
		for y := x; y != n; y++ {
			var f uint64
			if x == y {
				f = xorring.MulMod64(a[x], b[y], p)
			} else {
				f = xorring.MulMod64(a[x], b[y], p) ^ xorring.MulMod64(b[x], a[y], p)
			}
			if f != 0 {
				for z := uint64(0); z != n; z++ {
					c[z] ^= xorring.MulMod64(table[off+z], f, p)
				}
			}
			off += n
		}
	}
	return c
}

// ExpXor64 is Exp's GF(2)[x] counterpart, grounded on
// mbin_xor2_filter_exp_p_64.
func ExpXor64(base []uint64, exp uint64, table []uint64, identity []uint64, n uint64, p uint8) []uint64 {
	d := append([]uint64(nil), base...)
	c := append([]uint64(nil), identity...)

	for {
		if exp&1 != 0 {
			c = MulXor64(c, d, table, p, n)
		}
		exp /= 2
		if exp == 0 {
			break
		}
		d = MulXor64(d, d, table, p, n)
	}
	return c
}

// ImpulseXor64 is Impulse's GF(2)[x] counterpart, grounded on
// mbin_xor2_filter_impulse_p_64.
func ImpulseXor64(n uint64) []uint64 {
	ptr := make([]uint64, n)
	if n != 0 {
		ptr[0] = 1
	}
	return ptr
}
