// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"math"

	"github.com/gonumw/wsample"
)

// DefaultBranching is the branching factor K used by New. It matches the
// conventional binary segment tree.
const DefaultBranching = 2

// Tree is a k-ary segment tree over N weights. Index 0 of the backing
// array is unused so that child k of node j always lives at K*j+k with no
// off-by-one correction; the root, holding W = sum of all weights, is at
// index 1.
type Tree struct {
	t []float64
	k int
	s int // S: offset of the leaf layer
	n int
}

// New builds a Tree with the default branching factor.
func New(weights []float64) (*Tree, error) {
	return NewK(weights, DefaultBranching)
}

// NewK builds a Tree with branching factor k. It panics if k < 2, a
// programmer error rather than a data error.
func NewK(weights []float64, k int) (*Tree, error) {
	if k < 2 {
		panic("segment: branching factor must be at least 2")
	}
	if _, err := wsample.Validate(weights); err != nil {
		return nil, err
	}
	n := len(weights)

	levels := int(math.Ceil(math.Log(float64(n)) / math.Log(float64(k))))
	if levels < 0 {
		levels = 0
	}
	s := int(math.Pow(float64(k), float64(levels)))
	if s < 1 {
		s = 1
	}

	tr := &Tree{
		t: make([]float64, s*k),
		k: k,
		s: s,
		n: n,
	}
	for i, w := range weights {
		tr.t[s+i] = w
	}
	for j := s - 1; j >= 1; j-- {
		var sum float64
		for c := 0; c < k; c++ {
			sum += tr.t[k*j+c]
		}
		tr.t[j] = sum
	}
	return tr, nil
}

// Len returns the number of leaves the tree was built over.
func (tr *Tree) Len() int { return tr.n }

// Kind reports the sampler family this type implements.
func (tr *Tree) Kind() wsample.Kind { return wsample.BinaryTreeKind }

// Sum returns the current total weight, the root of the tree.
func (tr *Tree) Sum() float64 { return tr.t[1] }

// Sample draws an index in [0, Len()) with probability proportional to its
// current weight, in O(log N) time.
func (tr *Tree) Sample(src wsample.Source) int {
	x := tr.t[1] * src.Float64()
	i := 1
	for i < tr.s {
		for c := 0; c < tr.k; c++ {
			w := tr.t[tr.k*i+c]
			if x < w {
				i = tr.k*i + c
				break
			}
			x -= w
		}
	}
	return i - tr.s
}

// Update changes the weight of leaf i to w, propagating the delta up to
// the root in O(log N) time.
func (tr *Tree) Update(i int, w float64) error {
	if i < 0 || i >= tr.n {
		return wsample.ErrIndexOutOfRange
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return wsample.ErrNonFiniteWeight
	}
	if w < 0 {
		return wsample.ErrNegativeWeight
	}
	j := tr.s + i
	dw := w - tr.t[j]
	for j > 0 {
		tr.t[j] += dw
		j /= tr.k
	}
	return nil
}
