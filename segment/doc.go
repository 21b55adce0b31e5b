// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package segment implements a k-ary segment tree over weights, giving exact
O(log N) sampling and O(log N) point updates with no approximation or
rejection. Every internal node stores the sum of its K children; sampling
descends from the root subtracting child sums from a draw in [0, W), and
update propagates a delta from a leaf to the root.

The branching factor K is fixed at construction. Nothing about the
algorithm requires K to be known at compile time, but a small constant K
(2 is the conventional default) keeps the per-node fan-out cheap to scan.
*/
package segment // import "github.com/gonumw/wsample/segment"
