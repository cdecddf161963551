// Package modarray implements "mod arrays": a positive integer
// represented as a vector of residues against a fixed sequence of
// coprime moduli, convertible to and from its ordinary linear (base-2)
// form via Chinese Remainder reconstruction. Arithmetic (add/sub/mul/
// div) runs componentwise against each residue, making it cheap
// relative to big-integer arithmetic on the reconstructed value, at
// the cost of needing the full modulus vector to decode back.
//
// Grounded on mbin_mod_array.c.
package modarray
