// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cascade implements a K-layer logarithmic cascade: a rejection
sampler that buckets items by the power-of-two magnitude of their weight
so that, within a bucket, the worst-case-to-mean weight ratio never
exceeds 2 and rejection sampling inside the bucket takes O(1) expected
attempts. The lowest bucket is the exception: it collects zero weights
and every weight too small for its own magnitude class, so its ratio is
not bounded.

The bottom layer holds the real item weights. Each layer above groups the
layer below into m partitions keyed by weight magnitude; a partition's
weight is the sum of the items assigned to it, and that per-partition
weight vector becomes the "items" of the next layer up. The top layer is
searched linearly (m is O(log N)), and then each layer from top to bottom
is resolved by rejection sampling within the chosen partition, giving
O(K) expected work per draw for a K-layer cascade.

The branching depth K is a construction-time parameter; nothing about the
algorithm depends on it being known at compile time.
*/
package cascade // import "github.com/gonumw/wsample/cascade"
