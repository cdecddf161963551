// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fourier provides a self-contained, allocation-free complex
// discrete Fourier transform for power-of-2 (CoefficientsRadix2) and
// power-of-4 (CoefficientsRadix4) lengths, operating in place on a
// []complex128. It underlies transform.SumDigitsR4's per-group 4-point
// complex DFT kernel.
package fourier
