// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proposal

import "github.com/gonumw/wsample"

// Static is a fixed-weight proposal-array sampler: amortized O(1) sampling,
// no mutation after construction. Use Dynamic or Star when weights change.
type Static struct {
	p []int     // proposal list: item i appears floor(w_i/avg) times
	r []float64 // residual acceptance probability per item, len == n
}

// NewStatic builds a Static proposal array from weights.
func NewStatic(weights []float64) (*Static, error) {
	total, err := wsample.Validate(weights)
	if err != nil {
		return nil, err
	}
	n := len(weights)
	avg := total / float64(n)

	s := &Static{
		r: make([]float64, n),
		p: make([]int, 0, n),
	}
	for i, wi := range weights {
		ratio := wi / avg
		count := int(ratio)
		for j := 0; j < count; j++ {
			s.p = append(s.p, i)
		}
		s.r[i] = ratio - float64(count)
	}
	return s, nil
}

// Len returns the number of items the sampler was built over.
func (s *Static) Len() int { return len(s.r) }

// Kind reports the sampler family this type implements.
func (s *Static) Kind() wsample.Kind { return wsample.ProposalArrayKind }

// Sample draws an index with probability proportional to its
// construction-time weight.
func (s *Static) Sample(src wsample.Source) int {
	n := len(s.r)
	span := n + len(s.p)
	for {
		k := src.IntN(span)
		if k < n {
			if src.Float64() < s.r[k] {
				return k
			}
			continue
		}
		return s.p[k-n]
	}
}
