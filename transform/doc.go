// Package transform implements the in-place butterfly transforms that
// turn pointwise convolution under one of the ring operations (XOR,
// carry-add, carry-add modulo p, triangle-wave multiply, modular
// root-of-unity multiply) into pointwise multiplication in the
// transformed domain.
//
// Every transform here operates on a dense array of length 2^k (or,
// for the 3-adic square-wave transform, 2^k pairs of trits) and
// mutates it in place. The modular NTT Xform leaves the array in
// bit-reversed order, which BitreverseNTT undoes; FwdSquare and
// FwdTriangle reorder their output to natural order before returning.
// Multiplying two transformed arrays pointwise and then inverting
// gives a convolution.
package transform
