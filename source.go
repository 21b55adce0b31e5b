// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wsample

// Source is the random-number contract every sampler in this module
// consumes. It is satisfied by *rand.Rand from math/rand/v2, and by any
// caller-supplied generator with the same two capabilities: a uniform
// integer in [0,n) and a uniform real in [0,1).
//
// A Source is owned by the caller. No sampler retains it beyond the call
// that received it.
type Source interface {
	// IntN returns a uniform pseudo-random int in [0,n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform pseudo-random float64 in [0,1).
	Float64() float64
}
