// Package convolve wires transform.Forward*/Inverse* pairs into the
// canonical "forward both inputs, multiply pointwise, invert" recipe
// for fast convolution, plus the 3-way split multiply (x3) used when
// neither operand is transform-friendly on its own.
package convolve
