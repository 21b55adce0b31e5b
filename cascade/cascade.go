// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"math"

	"github.com/gonumw/wsample"
)

// alpha bounds the weight range the cascade is sized for: weights must
// lie in [0, n^alpha], with n the item count at construction. A weight
// above 2^ceil(alpha*log2 n) maps past the last partition, and NewK,
// Update or Push then panic with an index out of range. Weights at or
// below 2^-o all share partition 0, where the O(1)-per-layer rejection
// bound does not hold.
const alpha = 3

// DefaultDepth is the number of layers used by New.
const DefaultDepth = 3

type entry struct {
	idx  int
	pAcc float64
}

// layer holds one level of the cascade: weights is the level's own item
// weights, p partitions those items by magnitude, and l is the reverse
// index from item to its slot within p.
type layer struct {
	weights []float64
	p       [][]entry
	l       []int
}

// Cascade is a K-layer logarithmic cascade sampler.
type Cascade struct {
	layers []layer // layers[0] is the top partition-sum layer, layers[k] is the bottom (real items)
	k      int
	m      int
	o      int
	total  float64
}

// New builds a Cascade with the default depth.
func New(weights []float64) (*Cascade, error) {
	return NewK(weights, DefaultDepth)
}

// NewK builds a Cascade with k layers above the bottom item layer. It
// panics if k < 1, a programmer error rather than a data error.
func NewK(weights []float64, k int) (*Cascade, error) {
	if k < 1 {
		panic("cascade: depth must be at least 1")
	}
	total, err := wsample.Validate(weights)
	if err != nil {
		return nil, err
	}
	n := float64(len(weights))

	c := &Cascade{
		k:     k,
		m:     int(math.Ceil(2*math.Log2(n))) + int(math.Ceil(math.Log2(math.Pow(n, alpha)))) + 1,
		o:     int(math.Ceil(2 * math.Log2(n))),
		total: total,
	}
	c.layers = make([]layer, k+1)
	c.layers[k].weights = append([]float64(nil), weights...)

	for l := k; l >= 1; l-- {
		c.layers[l].p = make([][]entry, c.m)
		c.layers[l].l = make([]int, len(c.layers[l].weights))
		c.layers[l-1].weights = make([]float64, c.m)
		for i, w := range c.layers[l].weights {
			p := c.toPartition(w)
			wmax := c.wMaxOf(p)
			c.layers[l].l[i] = len(c.layers[l].p[p])
			c.layers[l].p[p] = append(c.layers[l].p[p], entry{idx: i, pAcc: w / wmax})
			c.layers[l-1].weights[p] += w
		}
	}
	return c, nil
}

// Len returns the number of bottom-layer items.
func (c *Cascade) Len() int { return len(c.layers[c.k].weights) }

func (c *Cascade) toPartition(w float64) int {
	switch {
	case w == 0:
		return 0
	case w > 1:
		return c.o + int(math.Ceil(math.Log2(w)))
	default:
		p := int(math.Floor(-math.Log2(w)))
		if c.o <= p {
			return 0
		}
		return c.o - p
	}
}

func (c *Cascade) wMaxOf(p int) float64 {
	return math.Pow(2, float64(p-c.o))
}

// Sample draws an index in [0, Len()) with probability proportional to its
// current weight.
func (c *Cascade) Sample(src wsample.Source) int {
	x := c.total * src.Float64()
	p := c.o
	pMax := c.m - 1
	for x > 0 {
		if p < pMax {
			p++
		} else {
			p = 0
		}
		x -= c.layers[0].weights[p]
	}

	l := 1
	for l <= c.k {
		bucket := c.layers[l].p[p]
		for {
			e := bucket[src.IntN(len(bucket))]
			if src.Float64() < e.pAcc {
				p = e.idx
				l++
				break
			}
		}
	}
	return p
}

// removeEntry swap-removes item i from partition p at layer l using the
// layer's reverse index.
func (c *Cascade) removeEntry(l, p, i int) {
	ly := &c.layers[l]
	pos := ly.l[i]
	last := len(ly.p[p]) - 1
	ly.p[p][pos] = ly.p[p][last]
	ly.l[ly.p[p][pos].idx] = pos
	ly.p[p] = ly.p[p][:last]
}

func (c *Cascade) addEntry(l, p, i int, pAcc float64) {
	ly := &c.layers[l]
	for len(ly.l) <= i {
		ly.l = append(ly.l, 0)
	}
	ly.l[i] = len(ly.p[p])
	ly.p[p] = append(ly.p[p], entry{idx: i, pAcc: pAcc})
}

func (c *Cascade) updateRec(l, i int, delta float64) {
	w := c.layers[l].weights[i]
	wNew := w + delta
	c.layers[l].weights[i] = wNew
	if l == 0 {
		return
	}
	p := c.toPartition(w)
	pNew := c.toPartition(wNew)
	wmax := c.wMaxOf(pNew)
	if p == pNew {
		c.layers[l].p[p][c.layers[l].l[i]].pAcc = wNew / wmax
		c.updateRec(l-1, p, delta)
		return
	}
	c.removeEntry(l, p, i)
	c.addEntry(l, pNew, i, wNew/wmax)
	c.updateRec(l-1, p, -w)
	c.updateRec(l-1, pNew, wNew)
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

// Update changes the weight of bottom-layer item i, propagating the
// change up through every layer's partition sums.
func (c *Cascade) Update(i int, wNew float64) error {
	if i < 0 || i >= len(c.layers[c.k].weights) {
		return wsample.ErrIndexOutOfRange
	}
	if err := validateWeight(wNew); err != nil {
		return err
	}
	w := c.layers[c.k].weights[i]
	delta := wNew - w
	c.total += delta
	c.updateRec(c.k, i, delta)
	return nil
}

// Push appends a new bottom-layer item with weight w, returning its
// index.
func (c *Cascade) Push(w float64) (int, error) {
	if err := validateWeight(w); err != nil {
		return 0, err
	}
	i := len(c.layers[c.k].weights)
	p := c.toPartition(0)
	wmax := c.wMaxOf(p)
	c.layers[c.k].weights = append(c.layers[c.k].weights, 0)
	c.addEntry(c.k, p, i, w/wmax)
	if err := c.Update(i, w); err != nil {
		return 0, err
	}
	return i, nil
}

// Pop removes the last bottom-layer item and returns its weight.
func (c *Cascade) Pop() (float64, error) {
	n := len(c.layers[c.k].weights)
	if n == 0 {
		return 0, wsample.ErrPopEmpty
	}
	i := n - 1
	w := c.layers[c.k].weights[i]
	if err := c.Update(i, 0); err != nil {
		return 0, err
	}
	p := c.toPartition(0)
	c.removeEntry(c.k, p, i)
	c.layers[c.k].weights = c.layers[c.k].weights[:i]
	c.layers[c.k].l = c.layers[c.k].l[:i]
	return w, nil
}

// Kind reports the sampler family this type implements.
func (c *Cascade) Kind() wsample.Kind { return wsample.LogCascadeKind }
