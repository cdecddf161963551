// Copyright ©2024 The mbin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitops implements the width-parameterised bit primitives that
// every other package in this module is built on: population count,
// lowest/highest set-bit isolation, full-width bit reversal, masked
// increment/decrement, and the carry-save subtract-if-greater-or-equal
// helper used to implement division and square root without borrow
// propagation.
//
// Every function here is specified by its bit-trick recurrence, not by
// a call into a compiler intrinsic: PopCount32, for instance, must
// reproduce the SWAR shift-mask-add ladder, because downstream packages
// rely on the exact sequence of operations to reason about overflow.
package bitops
