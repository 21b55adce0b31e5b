// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xrand adapts math/rand/v2 to the wsample.Source contract and
// supplies a process-wide default Source for callers that don't need a
// reproducible seed.
package xrand

import "math/rand/v2"

// Rand wraps a *rand.Rand so it satisfies wsample.Source. math/rand/v2's
// *rand.Rand already implements IntN(int) int and Float64() float64, so
// this type exists purely to give the adaptation a name callers can see in
// stack traces and godoc; it adds no behavior.
type Rand struct {
	*rand.Rand
}

// New returns a Rand seeded from two uint64 seeds, suitable for
// deterministic tests.
func New(seed1, seed2 uint64) Rand {
	return Rand{rand.New(rand.NewPCG(seed1, seed2))}
}

// Global is a process-wide default Source, seeded automatically by
// math/rand/v2.
var Global Rand = Rand{rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
