// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wsample_test

import (
	"github.com/gonumw/wsample"
	"github.com/gonumw/wsample/alias"
	"github.com/gonumw/wsample/cascade"
	"github.com/gonumw/wsample/proposal"
	"github.com/gonumw/wsample/segment"
)

// These declarations fail to compile if a sampler family stops satisfying
// the capability set the benchmark and test harnesses depend on.
var (
	_ wsample.Sampler = (*alias.Table)(nil)
	_ wsample.Sampler = (*proposal.Static)(nil)
	_ wsample.Sampler = (*segment.Tree)(nil)

	_ wsample.Dynamic = (*proposal.Dynamic)(nil)
	_ wsample.Dynamic = (*cascade.Cascade)(nil)

	_ wsample.Sampler = (*proposal.Star)(nil)
	_ wsample.Updater = (*proposal.Star)(nil)
	_ wsample.Pusher  = (*proposal.Star)(nil)
	_ wsample.Popper  = (*proposal.Star)(nil)

	_ wsample.Updater = (*segment.Tree)(nil)
)
