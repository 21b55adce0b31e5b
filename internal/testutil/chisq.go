// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil holds the goodness-of-fit helper shared by every
// sampler package's distributional tests, adapted from the chi2 helper in
// stat/sampleuv/weighted_test.go and generalized to an arbitrary degrees of
// freedom using gonum's own stat/distuv.ChiSquared quantile function instead
// of a hardcoded critical-value table.
package testutil

import "gonum.org/v1/gonum/stat/distuv"

// Chi2Stat returns the Pearson chi-squared statistic comparing observed
// counts against expected counts.
func Chi2Stat(observed, expected []float64) float64 {
	var sum float64
	for i, ob := range observed {
		ex := expected[i]
		if ex == 0 {
			continue
		}
		d := ob - ex
		sum += d * d / ex
	}
	return sum
}

// Chi2Critical returns the chi-squared critical value at the given
// right-tail significance alpha with df degrees of freedom, i.e. the value
// X such that P(ChiSquared(df) > X) = alpha.
func Chi2Critical(df float64, alpha float64) float64 {
	cs := distuv.ChiSquared{K: df}
	return cs.Quantile(1 - alpha)
}

// GoodnessOfFit reports whether the observed counts are consistent with the
// expected counts at significance alpha (fails to reject H0 at that level).
// len(observed)-1 degrees of freedom are used, matching a categorical fit
// with no estimated parameters.
func GoodnessOfFit(observed, expected []float64, alpha float64) (stat, critical float64, ok bool) {
	stat = Chi2Stat(observed, expected)
	critical = Chi2Critical(float64(len(observed)-1), alpha)
	return stat, critical, stat < critical
}
