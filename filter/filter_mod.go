package filter

import "github.com/hselasky/mbin/oddring"

func make2DMod(rows, cols uint32) [][]uint32 {
	m := make([][]uint32, rows)
	for i := range m {
		m[i] = make([]uint32, cols)
	}
	return m
}

// SolveTableMod32 is SolveTable's modular-arithmetic twin: it
// reconstructs the filter coefficient table modulo a prime mod via
// Gauss-Jordan elimination with modular pivot inversion, reusing
// oddring.PowerMod32 for the Fermat-little-theorem inverse
// (pow(m, mod-2, mod)) in place of a floating-point divide. Grounded
// on mbin_filter_table_p_32.
func SolveTableMod32(n uint32, mod uint32, input []uint32) ([]uint32, bool) {
	sx := 2 * tableSize(n)
	sy := tableSize(n)

	bitmap := make2DMod(sx, sy)
	value := make2DMod(sx, n)
	clean := make([]bool, sx)
	output := make([]uint32, sy*n)

	j := uint32(0)
	for x := uint32(0); x != n; x++ {
		for y := x; x+y != 2*n; y++ {
			copy(value[j], input[(x+y)*n:(x+y)*n+n])

			k := uint32(0)
			for t := uint32(0); t != n; t++ {
				for u := t; u != n; u++ {
					a, b := input[t+x*n], input[u+y*n]
					c, d := input[u+x*n], input[t+y*n]
					if t == u {
						bitmap[j][k] = uint32((uint64(a) * uint64(b)) % uint64(mod))
					} else {
						bitmap[j][k] = uint32((uint64(a)*uint64(b) + uint64(c)*uint64(d)) % uint64(mod))
					}
					k++
				}
			}
			j++
		}
	}

	for {
		restart := false

		for x := uint32(0); x != sx; x++ {
			if clean[x] {
				continue
			}
			clean[x] = true

			y := uint32(0)
			for ; y != sy; y++ {
				if bitmap[x][y] != 0 {
					break
				}
			}
			if y == sy {
				for yy := uint32(0); yy != n; yy++ {
					if value[x][yy] != 0 {
						return nil, false
					}
				}
				continue
			}
			k := oddring.PowerMod32(bitmap[x][y], mod-2, mod)

			for u := range bitmap[x] {
				bitmap[x][u] = uint32((uint64(bitmap[x][u]) * uint64(k)) % uint64(mod))
			}
			for u := range value[x] {
				value[x][u] = uint32((uint64(value[x][u]) * uint64(k)) % uint64(mod))
			}

			for u := uint32(0); u != sx; u++ {
				if u == x {
					continue
				}
				m := bitmap[u][y]
				if m == 0 {
					continue
				}
				for t := range bitmap[u] {
					bitmap[u][t] = uint32((uint64(mod) + uint64(bitmap[u][t]) -
						(uint64(bitmap[x][t])*uint64(m))%uint64(mod)) % uint64(mod))
				}
				for t := range value[u] {
					value[u][t] = uint32((uint64(mod) + uint64(value[u][t]) -
						(uint64(value[x][t])*uint64(m))%uint64(mod)) % uint64(mod))
				}
				bitmap[u][y] = 0
				clean[u] = false
			}
		}

	sortLoop:
		for x := uint32(0); x != sx; x++ {
			u := uint32(0)
			for y := uint32(0); y != sy; y++ {
				if bitmap[x][y] != 0 {
					u++
				}
			}

			if u != 1 {
				if u == 0 {
					for yy := uint32(0); yy != n; yy++ {
						if value[x][yy] != 0 {
							return nil, false
						}
					}
					continue
				}
				u = 0
				for y := uint32(0); y != sy; y++ {
					if bitmap[x][y] != 0 {
						u++
					}
					if u == 2 {
						for xx := uint32(0); xx != sx; xx++ {
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
			for y := uint32(0); y != sx; y++ {
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

// MulMod32 is Mul's modular counterpart, grounded on
// mbin_filter_mul_p_32.
func MulMod32(a, b, table []uint32, mod, n uint32) []uint32 {
	c := make([]uint32, n)
	off := 0

	for x := uint32(0); x != n; x++ {
		for y := x; y != n; y++ {
			var f uint32
			if x == y {
				f = uint32((uint64(a[x]) * uint64(b[y])) % uint64(mod))
			} else {
				f = uint32((uint64(a[x])*uint64(b[y]) + uint64(b[x])*uint64(a[y])) % uint64(mod))
			}
			if f != 0 {
				for z := uint32(0); z != n; z++ {
					c[z] = uint32((uint64(c[z]) + uint64(table[off+int(z)])*uint64(f)) % uint64(mod))
				}
			}
			off += int(n)
		}
	}
	return c
}

// ExpMod32 is Exp's modular counterpart, grounded on
// mbin_filter_exp_p_32.
func ExpMod32(base []uint32, exp uint64, table []uint32, identity []uint32, n, mod uint32) []uint32 {
	d := append([]uint32(nil), base...)
	c := append([]uint32(nil), identity...)

	for {
		if exp&1 != 0 {
			c = MulMod32(c, d, table, mod, n)
		}
		exp /= 2
		if exp == 0 {
			break
		}
		d = MulMod32(d, d, table, mod, n)
	}
	return c
}

// ImpulseMod32 is Impulse's modular counterpart, grounded on
// mbin_filter_impulse_p_32.
func ImpulseMod32(n uint32) []uint32 {
	ptr := make([]uint32, n)
	if n != 0 {
		ptr[0] = 1
	}
	return ptr
}
