// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package proposal implements rejection-based sampling over a padded
"proposal list": each item i is placed in the list floor(w_i/avg) times,
where avg = W/N, with a per-item residual handling the fractional leftover.
Sampling draws a uniform slot from [0, N+len(P)); a slot in the first N
positions is accepted with probability equal to the item's residual, a slot
in the proposal list is always accepted.

Static provides the fixed-weight variant in amortized O(1) time. Dynamic
and Star add point updates, push and pop: Dynamic rebuilds its whole
proposal list whenever avg drifts outside [avg/2, 2*avg], giving O(1)
amortized and O(N) worst-case updates; Star instead migrates a number of
proposal slots per update proportional to N times the log2 change in avg
that the update causes, spreading the rebuild across the updates that
drive the drift. Star does not use the residual slots described above:
it places item i ceil(w_i/avg) times, draws only from the proposal list,
and accepts a drawn item with probability (w_i/count_i) / (2*W/N).
*/
package proposal // import "github.com/gonumw/wsample/proposal"
