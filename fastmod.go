// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

import "math/bits"

// reciprocalConstant computes K = floor((2^64 - 1) / capacity) + 1 (the
// reference library's UINT64_MAX/capacity + 1), the reciprocal used by
// fastIndex to turn a 64-bit counter into a slot index without a
// division on the hot path.
//
// See: Lemire, Kaser, Kurz, "Faster Remainder by Direct Computation:
// Applications to Compilers and Software Libraries", Software: Practice
// and Experience, 2019.
//
// capacity must be > 0; the division wraps the same way the reference
// library's unsigned 64-bit arithmetic does when capacity == 1.
func reciprocalConstant(capacity uint64) uint64 {
	return ^uint64(0)/capacity + 1
}

// fastIndex maps counter to counter % capacity using the reciprocal K
// computed by reciprocalConstant, via a 128-bit widening multiply
// instead of a division. The quotient estimate high64(counter * (K-1))
// is either exact or one too small, so a single conditional subtraction
// of capacity yields counter % capacity for every counter in [0, 2^64)
// and every capacity >= 2 used to compute K.
func fastIndex(counter, capacity, reciprocal uint64) uint64 {
	q, _ := bits.Mul64(counter, reciprocal-1)
	r := counter - q*capacity
	if r >= capacity {
		r -= capacity
	}
	return r
}
