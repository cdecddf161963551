// Package eqsolve solves systems of GF(2)-linear equations over
// boolean functions of bitmasks: each equation states that some XOR
// combination of "all bits of t are set in a AND all bits of u are
// set in b" terms equals a known value, and simplification/solving
// reduces the system to one term per independent variable. This is
// how the pack discovers a closed-form bitwise formula for an
// unknown, sampled function: build one equation per sample,
// eliminate dependent terms, and what remains is the function's
// minimal term expansion.
//
// Grounded on mbin_equation.c. Equations are represented as fixed-
// width bit vectors (Eq32.Bits, packed 64 bits per word) instead of
// being linked through a TAILQ of malloc'd 16-bit-word records; the
// slice of *Eq32 plays the role of the original's equation head list,
// with simplified/removed equations marked nil and compacted rather
// than unlinked in place.
package eqsolve
