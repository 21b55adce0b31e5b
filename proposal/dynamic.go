// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proposal

import (
	"math"

	"github.com/gonumw/wsample"
)

// Dynamic is a mutable proposal-array sampler. It supports point updates,
// push and pop in amortized O(1) time by rebuilding its whole proposal list
// only when the running average drifts outside [buildAvg/2, 2*buildAvg];
// any single call may therefore cost O(N) in the worst case.
//
// Between rebuilds, each item's proposal-list entries are tracked with a
// P/L/B back-pointer arena so a single item's count can be grown or shrunk
// in O(1) time per entry, without touching any other item's entries.
type Dynamic struct {
	weights  []float64
	total    float64
	buildAvg float64

	r []float64 // residual acceptance probability per item
	p []int     // proposal list: flat, holds item indices with repeats
	l [][]int   // l[i] = positions in p currently holding item i
	b []int     // b[pos] = index of pos within l[p[pos]]
}

// NewDynamic builds a Dynamic proposal array from weights.
func NewDynamic(weights []float64) (*Dynamic, error) {
	total, err := wsample.Validate(weights)
	if err != nil {
		return nil, err
	}
	n := len(weights)
	d := &Dynamic{
		weights: append([]float64(nil), weights...),
		total:   total,
		r:       make([]float64, n),
		l:       make([][]int, n),
	}
	d.rebuild()
	return d, nil
}

// Len returns the number of items currently held.
func (d *Dynamic) Len() int { return len(d.weights) }

// Kind reports the sampler family this type implements.
func (d *Dynamic) Kind() wsample.Kind { return wsample.DynamicProposalArrayKind }

// rebuild recomputes buildAvg from the current total and reconstructs the
// entire proposal list from scratch. O(N).
func (d *Dynamic) rebuild() {
	n := len(d.weights)
	d.buildAvg = d.total / float64(n)
	d.p = d.p[:0]
	d.b = d.b[:0]
	for i := range d.l {
		d.l[i] = d.l[i][:0]
	}
	for i, w := range d.weights {
		ratio := w / d.buildAvg
		count := int(ratio)
		for k := 0; k < count; k++ {
			d.insertOne(i)
		}
		d.r[i] = ratio - float64(count)
	}
}

func (d *Dynamic) insertOne(i int) {
	d.b = append(d.b, len(d.l[i]))
	d.l[i] = append(d.l[i], len(d.p))
	d.p = append(d.p, i)
}

// removeOne deletes a single occurrence of i from the proposal list in O(1)
// by swapping the last slot of p into the freed slot and fixing up its
// back-pointer.
func (d *Dynamic) removeOne(i int) {
	last := len(d.l[i]) - 1
	pos := d.l[i][last]
	lastP := len(d.p) - 1

	d.p[pos] = d.p[lastP]
	d.b[pos] = d.b[lastP]
	d.l[d.p[pos]][d.b[pos]] = pos

	d.p = d.p[:lastP]
	d.b = d.b[:lastP]
	d.l[i] = d.l[i][:last]
}

func (d *Dynamic) setCount(i, count int) {
	for len(d.l[i]) < count {
		d.insertOne(i)
	}
	for len(d.l[i]) > count {
		d.removeOne(i)
	}
}

func (d *Dynamic) refreshItem(i int) {
	ratio := d.weights[i] / d.buildAvg
	count := int(ratio)
	d.setCount(i, count)
	d.r[i] = ratio - float64(count)
}

func (d *Dynamic) needsRebuild() bool {
	avg := d.total / float64(len(d.weights))
	return avg < d.buildAvg/2 || avg > 2*d.buildAvg
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return wsample.ErrNonFiniteWeight
	}
	if w < 0 {
		return wsample.ErrNegativeWeight
	}
	return nil
}

// Update changes the weight of item i, rebuilding the whole proposal list
// if the running average has drifted outside [avg/2, 2*avg] since the last
// rebuild.
func (d *Dynamic) Update(i int, w float64) error {
	if i < 0 || i >= len(d.weights) {
		return wsample.ErrIndexOutOfRange
	}
	if err := validateWeight(w); err != nil {
		return err
	}
	d.total += w - d.weights[i]
	d.weights[i] = w
	d.refreshItem(i)
	if d.needsRebuild() {
		d.rebuild()
	}
	return nil
}

// Push appends a new item with weight w, returning its index.
func (d *Dynamic) Push(w float64) (int, error) {
	if err := validateWeight(w); err != nil {
		return 0, err
	}
	i := len(d.weights)
	d.weights = append(d.weights, w)
	d.r = append(d.r, 0)
	d.l = append(d.l, nil)
	d.total += w
	d.refreshItem(i)
	if d.needsRebuild() {
		d.rebuild()
	}
	return i, nil
}

// Pop removes the last item and returns its weight.
func (d *Dynamic) Pop() (float64, error) {
	n := len(d.weights)
	if n == 0 {
		return 0, wsample.ErrPopEmpty
	}
	i := n - 1
	w := d.weights[i]
	d.setCount(i, 0)
	d.total -= w
	d.weights = d.weights[:i]
	d.r = d.r[:i]
	d.l = d.l[:i]
	if len(d.weights) > 0 {
		if d.needsRebuild() {
			d.rebuild()
		}
	}
	return w, nil
}

// Sample draws an index with probability proportional to its current
// weight.
func (d *Dynamic) Sample(src wsample.Source) int {
	n := len(d.weights)
	span := n + len(d.p)
	for {
		k := src.IntN(span)
		if k < n {
			if src.Float64() < d.r[k] {
				return k
			}
			continue
		}
		return d.p[k-n]
	}
}
