// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wsample defines the shared contract for the weighted index sampling
data structures in its sibling packages (alias, proposal, segment, cascade):
the Source random-number contract and the error sentinels every constructor
and mutator reports through.

Each sibling package implements one family of samplers that draws an index j
from [0, N) with probability w_j / W, given a vector of non-negative weights
w and W = sum(w). alias and segment are read-only after construction except
for segment's O(log N) Update; proposal and cascade additionally support
Update, Push and Pop. See the package docs of each for the algorithm and its
complexity.

None of the samplers is safe for concurrent use; callers that need
parallelism construct one sampler per goroutine.
*/
package wsample // import "github.com/gonumw/wsample"
