// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alias implements Walker's alias method: O(1) sampling from a
// static categorical distribution with non-negative weights. Construction
// is O(N); the table is never mutated afterward.
package alias

import "github.com/gonumw/wsample"

// slack is the symmetric tolerance used when classifying a threshold as
// exactly 1 during construction. Without it, accumulated floating-point
// error keeps re-queuing an entry whose threshold only appears to have
// passed 1, and construction never terminates on realistic inputs.
const slack = 1e-7

// Table is a Walker's-method alias table over N items. It is built once
// from a weight vector and never mutated.
type Table struct {
	element   []int
	alias     []int
	threshold []float64
}

// New builds a Table from weights. It returns wsample.ErrEmptyInput if
// weights is empty, wsample.ErrNonFiniteWeight if any weight is not finite,
// wsample.ErrNegativeWeight if any weight is negative, and
// wsample.ErrAllZero if every weight is zero.
func New(weights []float64) (*Table, error) {
	w, err := wsample.Validate(weights)
	if err != nil {
		return nil, err
	}
	n := len(weights)

	t := &Table{
		element:   make([]int, n),
		alias:     make([]int, n),
		threshold: make([]float64, n),
	}

	// scaled[i] = N * w_i / W; under/over/exact classification per spec.
	scaled := make([]float64, n)
	under := make([]int, 0, n)
	over := make([]int, 0, n)
	for i, wi := range weights {
		p := float64(n) * wi / w
		scaled[i] = p
		t.element[i] = i
		switch {
		case p < 1-slack:
			under = append(under, i)
		case p > 1+slack:
			over = append(over, i)
		default:
			t.alias[i] = i
			t.threshold[i] = 1
		}
	}

	for len(under) > 0 && len(over) > 0 {
		u := under[len(under)-1]
		under = under[:len(under)-1]
		o := over[len(over)-1]
		over = over[:len(over)-1]

		t.element[u] = u
		t.alias[u] = o
		t.threshold[u] = scaled[u]

		scaled[o] -= 1 - scaled[u]
		switch {
		case scaled[o] < 1-slack:
			under = append(under, o)
		case scaled[o] > 1+slack:
			over = append(over, o)
		default:
			t.alias[o] = o
			t.threshold[o] = 1
		}
	}
	// Whichever stack is non-empty at this point only holds entries whose
	// residual is within slack of 1 by construction; flush them as
	// self-aliased, full-threshold entries.
	for _, i := range under {
		t.alias[i] = i
		t.threshold[i] = 1
	}
	for _, i := range over {
		t.alias[i] = i
		t.threshold[i] = 1
	}

	return t, nil
}

// Len returns the number of items the table was built over.
func (t *Table) Len() int { return len(t.element) }

// Kind reports the sampler family this type implements.
func (t *Table) Kind() wsample.Kind { return wsample.AliasTableKind }

// Sample draws an index in [0, Len()) with probability proportional to its
// construction-time weight, in O(1) time.
func (t *Table) Sample(src wsample.Source) int {
	e := src.IntN(len(t.element))
	if src.Float64() < t.threshold[e] {
		return t.element[e]
	}
	return t.alias[e]
}
