package filter

import "math"

// tableSize returns the number of independent symmetric coefficients
// in an n x n table, MBIN_FILTER_SIZE(n) in the original.
func tableSize(n uint32) uint32 {
	return (n*n + n) / 2
}

func make2D(rows, cols uint32) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// SolveTable reconstructs the symmetric filter coefficient table from
// 2n consecutive n-wide samples of the filter's output, by Gaussian
// elimination over the quadratic system those samples impose. zero is
// the magnitude below which a pivot is treated as exactly zero. It
// returns false if the system has no solution, grounded on
// mbin_filter_table_d.
func SolveTable(n uint32, input []float64, zero float64) ([]float64, bool) {
	sx := 2 * tableSize(n)
	sy := tableSize(n)

	bitmap := make2D(sx, sy)
	value := make2D(sx, n)
	clean := make([]bool, sx)
	output := make([]float64, sy*n)

	j := uint32(0)
	for x := uint32(0); x != n; x++ {
		for y := x; x+y != 2*n; y++ {
			copy(value[j], input[(x+y)*n:(x+y)*n+n])

			k := uint32(0)
			for t := uint32(0); t != n; t++ {
				for u := t; u != n; u++ {
					bitmap[j][k] = (input[t+x*n] * input[u+y*n]) + (input[u+x*n] * input[t+y*n])
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
			for u := uint32(0); u != sy; u++ {
				if math.Abs(bitmap[x][y]) < math.Abs(bitmap[x][u]) {
					y = u
				}
			}
			m := bitmap[x][y]
			if math.Abs(m) <= zero {
				for yy := uint32(0); yy != n; yy++ {
					if math.Abs(value[x][yy]) > zero {
						return nil, false
					}
				}
				continue
			}
			for u := range bitmap[x] {
				bitmap[x][u] /= m
			}
			for u := range value[x] {
				value[x][u] /= m
			}
			bitmap[x][y] = 1.0

			for u := uint32(0); u != sx; u++ {
				if u == x {
					continue
				}
				mm := bitmap[u][y]
				if math.Abs(mm) <= zero {
					continue
				}
				for t := range bitmap[u] {
					bitmap[u][t] -= bitmap[x][t] * mm
				}
				for t := range value[u] {
					value[u][t] -= value[x][t] * mm
				}
				bitmap[u][y] = 0.0
				clean[u] = false
			}
		}

	sortLoop:
		for x := uint32(0); x != sx; x++ {
			u := uint32(0)
			for y := uint32(0); y != sy; y++ {
				if math.Abs(bitmap[x][y]) > zero {
					u++
				}
			}

			if u != 1 {
				if u == 0 {
					for yy := uint32(0); yy != n; yy++ {
						if math.Abs(value[x][yy]) > zero {
							return nil, false
						}
					}
					continue
				}
				u = 0
				for y := uint32(0); y != sy; y++ {
					if math.Abs(bitmap[x][y]) > zero {
						u++
					}
					if u == 2 {
						for xx := uint32(0); xx != sx; xx++ {
							if math.Abs(bitmap[xx][y]) <= zero {
								continue
							}
							bitmap[xx][y] = 0.0
							clean[xx] = false
						}
						restart = true
						break sortLoop
					}
				}
				return nil, false
			}
			for y := uint32(0); y != sx; y++ {
				if math.Abs(bitmap[x][y]) <= zero {
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

// Mul applies a table produced by SolveTable to combine filter states
// a and b into their quadratic-recurrence product, grounded on
// mbin_filter_mul_d.
func Mul(a, b, table []float64, n uint32) []float64 {
	c := make([]float64, n)
	off := 0

	for x := uint32(0); x != n; x++ {
		for y := x; y != n; y++ {
			f := (a[x] * b[y]) + (b[x] * a[y])
			if f != 0.0 {
				for z := uint32(0); z != n; z++ {
					c[z] += table[off+int(z)] * f
				}
			}
			off += int(n)
		}
	}
	return c
}

// Exp raises base to the exp'th filter power starting from identity
// (the original keeps the identity state appended past the table's
// last coefficient row inside one allocation managed by its caller's
// allocator; here the caller just passes it in, typically Impulse(n))
// and repeated Mul via square-and-multiply, grounded on
// mbin_filter_exp_d.
func Exp(base []float64, exp uint64, table []float64, identity []float64, n uint32) []float64 {
	d := append([]float64(nil), base...)
	c := append([]float64(nil), identity...)

	for {
		if exp&1 != 0 {
			c = Mul(c, d, table, n)
		}
		exp /= 2
		if exp == 0 {
			break
		}
		d = Mul(d, d, table, n)
	}
	return c
}

// Impulse returns the unit impulse state {1, 0, 0, ...} of width n,
// grounded on mbin_filter_impulse_d.
func Impulse(n uint32) []float64 {
	ptr := make([]float64, n)
	if n != 0 {
		ptr[0] = 1.0
	}
	return ptr
}
