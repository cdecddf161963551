// Package filter solves for the coefficient table of a quadratic
// recurrence filter: given 2n consecutive terms produced by an
// unknown rule c(k) = sum over i<=j of table[i][j] * (a(x+i)*b(y+j) +
// a(x+j)*b(y+i)), it reconstructs table by Gaussian elimination over
// the symmetric system of equations the samples impose, then lets
// that table be reapplied to multiply or exponentiate new filter
// states without knowing the closed-form recurrence.
//
// Grounded on mbin_filter.c; float64, modular uint32 and GF(2)[x]
// uint64 variants are provided since the pack builds exactly these
// three coefficient rings for its other transforms.
package filter
