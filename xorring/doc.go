// Package xorring implements arithmetic in the polynomial rings
// GF(2)[x] and GF(3)[x], represented as machine words where bit (or
// 2-bit slice) n holds the coefficient of x^n. Addition is XOR (for
// GF(2)) or the carry-propagating half-adder used throughout this
// module's "3" families (for GF(3)); multiplication is carry-less
// shift-and-combine, optionally reduced modulo an irreducible
// polynomial supplied as a packed word.
//
// The base-2 family is grounded on mbin_xor.c's xor2_* routines; the
// 2-vector extension (representing GF(2)[x]/(x^2+x+1)-style degree-2
// extensions as a pair of coefficients) follows the same file's
// xor2v_* routines; the base-3 family follows xor3_*, with its own
// GF(3) digit-wise half-adder, Add3.
package xorring
