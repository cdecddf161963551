// Copyright ©2024 The mbin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oddring implements arithmetic in the ring of integers modulo
// 2^n, restricted to odd elements, where every odd value has a unique
// multiplicative inverse. DivOdd32 and DivOdd64 compute that
// inverse-multiply in one pass without ever performing a division
// instruction; Power32, Power64 and PowerMod32 are ordinary
// square-and-multiply exponentiation specialised
// to this ring.
package oddring
