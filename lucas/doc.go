// Package lucas computes properties of a modular Lucas-style sequence
// a(n) = (2/3)a(n-1) - a(n-2), the discrete analogue of the sine wave
// obtained from a 2*pi / acos(1/3) oscillator once the state is
// reduced modulo an integer not divisible by three.
//
// Grounded on mbin_lucas.c.
package lucas
