// Copyright ©2024 The mbin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package radix implements multi-radix positional integer arithmetic:
// digit-packed base-3/4/5/6/7 addition, subtraction, multiplication and
// division, the T-base and its 1.999 limit form, the factor-scaled
// G/H/U/V/M bases, balanced-ternary P-base, the two-thirds (23) base,
// and base -3. There is no negabinary (base -2) conversion. Every base
// packs its digits into an ordinary machine word; arithmetic on a
// packed word proceeds digit-slice by digit-slice with explicit carry
// propagation.
package radix
