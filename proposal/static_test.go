// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proposal

import (
	"math"
	"testing"

	"github.com/gonumw/wsample"
	"github.com/gonumw/wsample/internal/testutil"
	"github.com/gonumw/wsample/internal/xrand"
)

func TestNewStaticRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		weights []float64
		want    error
	}{
		{"empty", nil, wsample.ErrEmptyInput},
		{"nan", []float64{1, math.NaN()}, wsample.ErrNonFiniteWeight},
		{"inf", []float64{1, math.Inf(1)}, wsample.ErrNonFiniteWeight},
		{"negative", []float64{1, -1}, wsample.ErrNegativeWeight},
		{"all zero", []float64{0, 0, 0}, wsample.ErrAllZero},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewStatic(c.weights)
			if err != c.want {
				t.Errorf("NewStatic(%v) error = %v, want %v", c.weights, err, c.want)
			}
		})
	}
}

func TestStaticSampleNeverReturnsZeroWeight(t *testing.T) {
	weights := []float64{1, 0, 1, 0, 1}
	s, err := NewStatic(weights)
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}
	src := xrand.New(2, 2)
	for i := 0; i < 10000; i++ {
		idx := s.Sample(src)
		if weights[idx] == 0 {
			t.Fatalf("Sample() returned zero-weight index %d", idx)
		}
	}
}

func TestStaticGoodnessOfFit(t *testing.T) {
	weights := []float64{5.0, 1.5, 0.1, 2.0}
	const draws = 860000
	s, err := NewStatic(weights)
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}
	src := xrand.New(7, 11)

	observed := make([]float64, len(weights))
	for i := 0; i < draws; i++ {
		observed[s.Sample(src)]++
	}

	w := 0.0
	for _, wi := range weights {
		w += wi
	}
	expected := make([]float64, len(weights))
	for i, wi := range weights {
		expected[i] = draws * wi / w
	}

	stat, critical, ok := testutil.GoodnessOfFit(observed, expected, 0.001)
	if !ok {
		t.Errorf("chi-squared statistic %v exceeds critical value %v at p=0.001; observed=%v expected=%v",
			stat, critical, observed, expected)
	}
}

func FuzzNewStaticNoPanic(f *testing.F) {
	f.Add(1.0, 0.0, 2.0)
	f.Fuzz(func(t *testing.T, a, b, c float64) {
		if a < 0 || b < 0 || c < 0 {
			t.Skip()
		}
		s, err := NewStatic([]float64{a, b, c})
		if err != nil {
			return
		}
		src := xrand.New(9, 9)
		for i := 0; i < 10; i++ {
			s.Sample(src)
		}
	})
}
