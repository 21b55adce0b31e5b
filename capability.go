// Copyright 2026 The Gonumw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wsample

//go:generate stringer -type=Kind

// Kind identifies which sampling algorithm a sampler implements. A
// benchmark or test driver that needs to parameterize over every sampler
// family can switch on Kind instead of a type assertion ladder.
type Kind int

const (
	AliasTableKind Kind = iota
	ProposalArrayKind
	DynamicProposalArrayKind
	DynamicProposalArrayStarKind
	BinaryTreeKind
	LogCascadeKind
)

// Sampler is the capability every sampler family implements: drawing an
// index with probability proportional to its weight.
type Sampler interface {
	Kind() Kind
	Len() int
	Sample(src Source) int
}

// Updater is implemented by samplers whose item weights can change after
// construction.
type Updater interface {
	Update(i int, w float64) error
}

// Pusher is implemented by samplers that can grow by one item.
type Pusher interface {
	Push(w float64) (int, error)
}

// Popper is implemented by samplers that can shrink by removing their
// last item.
type Popper interface {
	Pop() (float64, error)
}

// Dynamic is the capability set of a sampler that supports the full
// update/push/pop surface, as opposed to a Sampler that only supports
// construct-then-sample. AliasTable and BinaryTree are Samplers but not
// Dynamic; BinaryTree additionally satisfies Updater without being
// Dynamic, since it has no push/pop.
type Dynamic interface {
	Sampler
	Updater
	Pusher
	Popper
}
