// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatutil provides the small set of float64 slice helpers that the
// sampler packages need to maintain their running-weight invariants. It is
// kept internal because the sampler packages are its only callers.
package floatutil

import "math"

const minNormalFloat64 = 2.2250738585072014e-308

// Sum returns the sum of the elements of s.
func Sum(s []float64) (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

// HasNaN returns true if s has any NaN elements.
func HasNaN(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// AllFinite returns true if every element of s is finite (not NaN or ±Inf).
func AllFinite(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// EqualWithinAbs returns true if a and b have an absolute difference of at
// most tol.
func EqualWithinAbs(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

// EqualWithinRel returns true if the difference between a and b is not
// greater than tol times the greater of the two absolute values.
func EqualWithinRel(a, b, tol float64) bool {
	if a == b {
		return true
	}
	delta := math.Abs(a - b)
	if delta <= minNormalFloat64 {
		return delta <= tol*minNormalFloat64
	}
	return delta/math.Max(math.Abs(a), math.Abs(b)) <= tol
}

// EqualWithinAbsOrRel returns true if a and b are equal to within the
// absolute tolerance absTol, or, failing that, within the relative
// tolerance relTol.
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	if EqualWithinAbs(a, b, absTol) {
		return true
	}
	return EqualWithinRel(a, b, relTol)
}
