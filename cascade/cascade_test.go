// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"math"
	"testing"

	"github.com/gonumw/wsample"
	"github.com/gonumw/wsample/internal/testutil"
	"github.com/gonumw/wsample/internal/xrand"
)

func TestNewRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		weights []float64
		want    error
	}{
		{"empty", nil, wsample.ErrEmptyInput},
		{"nan", []float64{1, math.NaN()}, wsample.ErrNonFiniteWeight},
		{"negative", []float64{1, -1}, wsample.ErrNegativeWeight},
		{"all zero", []float64{0, 0, 0}, wsample.ErrAllZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.weights)
			if err != c.want {
				t.Errorf("New(%v) error = %v, want %v", c.weights, err, c.want)
			}
		})
	}
}

func TestNewKPanicsOnSmallDepth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewK(weights, 0) did not panic")
		}
	}()
	NewK([]float64{1, 2}, 0)
}

func TestSingleItemAlwaysZero(t *testing.T) {
	c, err := New([]float64{1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src := xrand.New(101, 103)
	for i := 0; i < 100; i++ {
		if got := c.Sample(src); got != 0 {
			t.Fatalf("Sample() = %d, want 0", got)
		}
	}
}

func TestUpdateRejectsBadIndexOrWeight(t *testing.T) {
	c, err := New([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Update(-1, 1); err != wsample.ErrIndexOutOfRange {
		t.Errorf("Update(-1, 1) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := c.Update(5, 1); err != wsample.ErrIndexOutOfRange {
		t.Errorf("Update(5, 1) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := c.Update(0, -1); err != wsample.ErrNegativeWeight {
		t.Errorf("Update(0, -1) error = %v, want ErrNegativeWeight", err)
	}
}

func TestPopEmptyErrors(t *testing.T) {
	c, err := New([]float64{1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if _, err := c.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if _, err := c.Pop(); err != wsample.ErrPopEmpty {
		t.Errorf("Pop() on empty error = %v, want ErrPopEmpty", err)
	}
}

func TestPushPopStress(t *testing.T) {
	weights := make([]float64, 16)
	for i := range weights {
		weights[i] = 1
	}
	c, err := New(weights)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src := xrand.New(107, 109)
	for i := 0; i < 2000; i++ {
		if _, err := c.Push(src.Float64()*10 + 0.01); err != nil {
			t.Fatalf("Push: %v", err)
		}
		c.Sample(src)
		if c.Len() > 16 {
			if _, err := c.Pop(); err != nil {
				t.Fatalf("Pop: %v", err)
			}
			c.Sample(src)
		}
	}
}

func TestGoodnessOfFit(t *testing.T) {
	weights := []float64{5.0, 1.5, 0.1, 2.0}
	const draws = 860000
	c, err := New(weights)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src := xrand.New(113, 127)

	observed := make([]float64, len(weights))
	for i := 0; i < draws; i++ {
		observed[c.Sample(src)]++
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

func TestGoodnessOfFitAfterUpdate(t *testing.T) {
	c, err := New([]float64{5.0, 1.5, 0.1, 2.0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	updated := []float64{2.5, 10.0, 1.0, 0.01}
	for i, w := range updated {
		if err := c.Update(i, w); err != nil {
			t.Fatalf("Update(%d, %v): %v", i, w, err)
		}
	}

	const draws = 13510000
	src := xrand.New(131, 137)
	observed := make([]float64, len(updated))
	for i := 0; i < draws; i++ {
		observed[c.Sample(src)]++
	}

	total := 0.0
	for _, w := range updated {
		total += w
	}
	expected := make([]float64, len(updated))
	for i, w := range updated {
		expected[i] = draws * w / total
	}

	stat, critical, ok := testutil.GoodnessOfFit(observed, expected, 0.001)
	if !ok {
		t.Errorf("chi-squared statistic %v exceeds critical value %v at p=0.001; observed=%v expected=%v",
			stat, critical, observed, expected)
	}
}
