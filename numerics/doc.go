// Package numerics collects the grab-bag of integer-arithmetic
// helpers this module's bit-trick family is built around: binomial
// coefficients computed via a lowest-set-bit factoring trick instead
// of a factorial table, several flavours of integer square root
// (digit-recurrence, Gray-coded, Newton-style for odd inputs, and
// inverse-square-root), sums of squares, 2-adic trigonometric series,
// and slow trial-division factoring.
//
// Grounded on mbin_coeff.c, mbin_sqrt.c, mbin_sos.c, mbin_sine.c and
// mbin_factor.c.
package numerics
