package modarray

import "github.com/hselasky/mbin/oddring"

// CreateModuli fills mod with n successive odd numbers, each coprime
// to every modulus before it (the search tries the next odd candidate
// and rejects it if any smaller odd factor divides it), mirroring
// mbin_moda_create_32's incremental sieve.
func CreateModuli(n uint32) []uint32 {
	mod := make([]uint32, n)
	y := uint32(3)
	for x := uint32(0); x != n; x++ {
		mod[x] = y
		for {
			y += 2
			var z uint32
			for z = 3; z != y; z += 2 {
				if y%z == 0 {
					break
				}
			}
			if z == y {
				break
			}
		}
	}
	return mod
}

// LinearByModaSlow reconstructs the mixed-radix ("linear") digit
// vector from a vector of residues against mod, via the direct
// pairwise CRT update mbin_lina_by_moda_slow_32 performs in place.
func LinearByModaSlow(residues, mod []uint32) []uint32 {
	n := len(residues)
	ptr := make([]uint32, n)
	copy(ptr, residues)

	for x := 0; x != n; x++ {
		for y := x + 1; y != n; y++ {
			inv := oddring.PowerMod32(mod[x], mod[y]-2, mod[y])
			ptr[y] = uint32((uint64(mod[y]) + uint64(ptr[y]) - uint64(ptr[x])) * uint64(inv) % uint64(mod[y]))
		}
	}
	return ptr
}

// ModaByLinaSlow is LinearByModaSlow's inverse: it expands a
// mixed-radix digit vector back into residues against mod.
func ModaByLinaSlow(linear, mod []uint32) []uint32 {
	n := len(linear)
	ptr := make([]uint32, n)
	copy(ptr, linear)

	for x := n - 1; x >= 0; x-- {
		for y := x + 1; y != n; y++ {
			ptr[y] = uint32((uint64(ptr[y])*uint64(mod[x]) + uint64(ptr[x])) % uint64(mod[y]))
		}
	}
	return ptr
}

// Add adds two residue vectors componentwise modulo mod.
func Add(a, b, mod []uint32) []uint32 {
	n := len(a)
	c := make([]uint32, n)
	for x := 0; x != n; x++ {
		c[x] = uint32((uint64(a[x]) + uint64(b[x])) % uint64(mod[x]))
	}
	return c
}

// Sub subtracts b from a componentwise modulo mod.
func Sub(a, b, mod []uint32) []uint32 {
	n := len(a)
	c := make([]uint32, n)
	for x := 0; x != n; x++ {
		c[x] = uint32((uint64(mod[x]) + uint64(a[x]) - uint64(b[x])) % uint64(mod[x]))
	}
	return c
}

// Mul multiplies a and b componentwise modulo mod.
func Mul(a, b, mod []uint32) []uint32 {
	n := len(a)
	c := make([]uint32, n)
	for x := 0; x != n; x++ {
		c[x] = uint32((uint64(a[x]) * uint64(b[x])) % uint64(mod[x]))
	}
	return c
}

// Div divides a by b componentwise modulo mod, via each residue's
// multiplicative inverse (Fermat's little theorem: b[x]**(mod[x]-2)).
func Div(a, b, mod []uint32) []uint32 {
	n := len(a)
	c := make([]uint32, n)
	for x := 0; x != n; x++ {
		inv := oddring.PowerMod32(b[x], mod[x]-2, mod[x])
		c[x] = uint32((uint64(a[x]) * uint64(inv)) % uint64(mod[x]))
	}
	return c
}

// LeadingByLina computes the single linear (base-2) integer a
// mixed-radix digit vector represents, via Horner-style accumulation
// over the modulus vector's running product.
func LeadingByLina(linear, mod []uint32) uint32 {
	k := uint32(1)
	var y uint32
	for x := 0; x != len(linear); x++ {
		y += linear[x] * k
		k *= mod[x]
	}
	return y
}

// LinaByLeading expands a linear integer x into its mixed-radix digit
// vector against mod.
func LinaByLeading(x uint32, mod []uint32) []uint32 {
	ptr := make([]uint32, len(mod))
	for y := 0; y != len(mod); y++ {
		ptr[y] = x % mod[y]
		x /= mod[y]
	}
	return ptr
}

// IsSquare reports whether x is a quadratic residue modulo the odd
// prime p, via Euler's criterion (x**((p-1)/2) mod p == 1). The
// upstream header declares mbin_mod_is_square_32 but ships no
// definition anywhere in the retrieval pack, so this is a
// reconstruction from the standard Euler-criterion test rather than a
// direct port.
func IsSquare(x, p uint32) bool {
	if x%p == 0 {
		return true
	}
	return oddring.PowerMod32(x, (p-1)/2, p) == 1
}
