// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

import (
	"math"
	"sort"
)

// KSStatistic returns the two-sample Kolmogorov-Smirnov statistic: the
// maximum absolute difference between the empirical CDFs of a and b.
func KSStatistic(a, b []float64) float64 {
	as := append([]float64(nil), a...)
	bs := append([]float64(nil), b...)
	sort.Float64s(as)
	sort.Float64s(bs)

	na, nb := float64(len(as)), float64(len(bs))
	var i, j int
	var d, maxD float64
	for i < len(as) && j < len(bs) {
		switch {
		case as[i] < bs[j]:
			i++
		case as[i] > bs[j]:
			j++
		default:
			v := as[i]
			for i < len(as) && as[i] == v {
				i++
			}
			for j < len(bs) && bs[j] == v {
				j++
			}
		}
		d = float64(i)/na - float64(j)/nb
		if d < 0 {
			d = -d
		}
		if d > maxD {
			maxD = d
		}
	}
	return maxD
}

// KSCritical returns the asymptotic two-sample KS critical value at
// significance alpha for samples of size na and nb.
func KSCritical(na, nb int, alpha float64) float64 {
	c := ksCoefficient(alpha)
	n, m := float64(na), float64(nb)
	return c * math.Sqrt((n+m)/(n*m))
}

// ksCoefficient gives the asymptotic Kolmogorov distribution quantile
// c(alpha) such that P(D > c(alpha)*sqrt((n+m)/(n*m))) = alpha, for the
// handful of significance levels the test suite uses.
func ksCoefficient(alpha float64) float64 {
	switch {
	case alpha <= 0.01:
		return 1.63
	case alpha <= 0.05:
		return 1.36
	default:
		return 1.22
	}
}
