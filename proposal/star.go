// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proposal

import (
	"math"

	"github.com/gonumw/wsample"
)

//go:generate stringer -type=migrationState

// migrationState reports which way Star's migration cursors last moved.
type migrationState int

const (
	stable migrationState = iota
	growing
	shrinking
)

// Star is a mutable proposal-array sampler that never performs a full
// rebuild. Each item i is placed in the proposal list ceil(w_i/avg) times;
// sampling accepts a drawn element with probability
// (w_i/count_i) / (2*W/N), which stays in (0, 1] for every count produced
// by this scheme. An Update, Push or Pop sets the changed item's count
// directly to its new value, then migrates the proposal list by
// int(3*N*log2(newAvg/oldAvg)) steps plus one step away from zero, walking
// a forward cursor cur and a backward cursor back across the item set, so
// the cost of an average drift is spread over the updates that caused it
// instead of paid in one rebuild. The work of a single call therefore
// grows with the item's count change and with how far the call moves the
// average; it is not bounded by a constant.
type Star struct {
	weights []float64
	counts  []int
	total   float64
	avg     float64 // W/N as of the last full migration pass

	p []int   // proposal list
	l [][]int // l[i] = positions in p currently holding item i
	b []int   // b[pos] = index of pos within l[p[pos]]

	cur  int // forward migration cursor
	back int // backward migration cursor

	last migrationState
}

// NewStar builds a Star proposal array from weights.
func NewStar(weights []float64) (*Star, error) {
	total, err := wsample.Validate(weights)
	if err != nil {
		return nil, err
	}
	n := len(weights)
	s := &Star{
		weights: append([]float64(nil), weights...),
		counts:  make([]int, n),
		total:   total,
		l:       make([][]int, n),
		back:    n - 1,
	}
	s.avg = s.total / float64(n)
	for i := range weights {
		s.counts[i] = ceilDiv(s.weights[i], s.avg)
		for k := 0; k < s.counts[i]; k++ {
			s.insert(i)
		}
	}
	return s, nil
}

// Len returns the number of items currently held.
func (s *Star) Len() int { return len(s.weights) }

// State reports which way the migration cursors moved during the most
// recent Update, Push or Pop.
func (s *Star) State() migrationState { return s.last }

func ceilDiv(w, avg float64) int {
	return int(math.Ceil(w / avg))
}

func (s *Star) insert(i int) {
	s.b = append(s.b, len(s.l[i]))
	s.l[i] = append(s.l[i], len(s.p))
	s.p = append(s.p, i)
}

func (s *Star) erase(i int) {
	last := len(s.l[i]) - 1
	pos := s.l[i][last]
	lastP := len(s.p) - 1

	s.p[pos] = s.p[lastP]
	s.b[pos] = s.b[lastP]
	s.l[s.p[pos]][s.b[pos]] = pos

	s.p = s.p[:lastP]
	s.b = s.b[:lastP]
	s.l[i] = s.l[i][:last]
}

// resetCount replaces item i's proposal-list entries with count fresh
// ones, used when i's count needs to jump directly to a target value
// rather than migrate by one slot per budget step.
func (s *Star) resetCount(i, count int) {
	old := s.counts[i]
	switch {
	case count > old:
		for c := old; c < count; c++ {
			s.insert(i)
		}
	case count < old:
		for c := count; c < old; c++ {
			s.erase(i)
		}
	}
	s.counts[i] = count
}

// migrate spends the budget accrued by the average moving from s.avg to
// curAvg, walking the forward cursor to shrink over-counted items and the
// backward cursor to grow under-counted ones, at most one slot per step.
func (s *Star) migrate(curAvg float64) {
	n := len(s.weights)
	drift := 3 * float64(n) * math.Log2(curAvg/s.avg)
	steps := int(drift)
	if drift > 0 {
		steps++
	} else if drift < 0 {
		steps--
	}

	s.last = stable
	for steps > 0 {
		s.last = growing
		oc := s.counts[s.cur]
		nc := ceilDiv(s.weights[s.cur], curAvg)
		if nc < oc {
			s.erase(s.cur)
			s.counts[s.cur]--
		} else {
			s.cur++
			if s.cur == n {
				s.cur = 0
			}
		}
		steps--
	}
	for steps < 0 {
		s.last = shrinking
		oc := s.counts[s.back]
		nc := ceilDiv(s.weights[s.back], curAvg)
		if nc > oc {
			s.insert(s.back)
			s.counts[s.back]++
		} else {
			if s.back == 0 {
				s.back = n
			}
			s.back--
		}
		steps++
	}
	s.avg = curAvg
}

// Update changes the weight of item i, migrating a bounded number of
// proposal-list slots to account for the resulting drift in the average
// weight.
func (s *Star) Update(i int, w float64) error {
	n := len(s.weights)
	if i < 0 || i >= n {
		return wsample.ErrIndexOutOfRange
	}
	if err := validateWeight(w); err != nil {
		return err
	}

	s.total += w - s.weights[i]
	s.weights[i] = w

	curAvg := s.total / float64(n)
	s.resetCount(i, ceilDiv(w, curAvg))
	s.migrate(curAvg)
	return nil
}

// Push appends a new item with weight w, returning its index.
func (s *Star) Push(w float64) (int, error) {
	if err := validateWeight(w); err != nil {
		return 0, err
	}
	i := len(s.weights)
	s.weights = append(s.weights, w)
	s.counts = append(s.counts, 0)
	s.l = append(s.l, nil)
	s.total += w

	curAvg := s.total / float64(len(s.weights))
	s.resetCount(i, ceilDiv(w, curAvg))
	s.migrate(curAvg)
	return i, nil
}

// Pop removes the last item and returns its weight.
func (s *Star) Pop() (float64, error) {
	n := len(s.weights)
	if n == 0 {
		return 0, wsample.ErrPopEmpty
	}
	i := n - 1
	w := s.weights[i]
	s.resetCount(i, 0)
	s.total -= w
	s.weights = s.weights[:i]
	s.counts = s.counts[:i]
	s.l = s.l[:i]

	if len(s.weights) == 0 {
		return w, nil
	}
	if s.cur >= len(s.weights) {
		s.cur = 0
	}
	if s.back >= len(s.weights) {
		s.back = len(s.weights) - 1
	}
	curAvg := s.total / float64(len(s.weights))
	s.migrate(curAvg)
	return w, nil
}

// Kind reports the sampler family this type implements.
func (s *Star) Kind() wsample.Kind { return wsample.DynamicProposalArrayStarKind }

// Sample draws an index with probability proportional to its current
// weight.
func (s *Star) Sample(src wsample.Source) int {
	n := len(s.weights)
	twoAvg := 2 * s.total / float64(n)
	for {
		element := s.p[src.IntN(len(s.p))]
		pAcc := (s.weights[element] / float64(s.counts[element])) / twoAvg
		if src.Float64() < pAcc {
			return element
		}
	}
}
