// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wsample

import (
	"errors"
	"math"

	"github.com/gonumw/wsample/internal/floatutil"
)

// Error sentinels shared by every sampler package. Constructors return
// ErrEmptyInput, ErrNonFiniteWeight, ErrNegativeWeight or ErrAllZero instead
// of constructing a sampler; mutators (Update, Push, Pop) return
// ErrIndexOutOfRange, ErrPopEmpty, ErrNonFiniteWeight or ErrNegativeWeight
// instead of mutating state.
var (
	// ErrEmptyInput indicates construct was called with a zero-length
	// weight vector.
	ErrEmptyInput = errors.New("wsample: empty weight vector")

	// ErrNonFiniteWeight indicates a weight is NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("wsample: non-finite weight")

	// ErrNegativeWeight indicates a weight is less than zero.
	ErrNegativeWeight = errors.New("wsample: negative weight")

	// ErrAllZero indicates every supplied weight is zero, so W = 0 and no
	// index can be drawn.
	ErrAllZero = errors.New("wsample: all weights are zero")

	// ErrIndexOutOfRange indicates Update was called with i < 0 or i >= N.
	ErrIndexOutOfRange = errors.New("wsample: index out of range")

	// ErrPopEmpty indicates Pop was called when N == 0.
	ErrPopEmpty = errors.New("wsample: pop from empty sampler")
)

// Validate checks the common construction preconditions shared by every
// sampler: a non-empty, finite, non-negative weight vector with a positive
// total. It is the single place every package's InvalidInput classification
// is applied, so bad input is reported identically regardless of which
// sampler rejected it.
func Validate(weights []float64) (total float64, err error) {
	if len(weights) == 0 {
		return 0, ErrEmptyInput
	}
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNonFiniteWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
	}
	total = floatutil.Sum(weights)
	if total == 0 {
		return 0, ErrAllZero
	}
	return total, nil
}
