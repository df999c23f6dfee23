// SPDX-License-Identifier: MIT
// Package: arrayset/indset
//
// types.go - options and sentinel errors for the independent-set searches.

package indset

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arrayset/sparseset"
)

// Sentinel errors for independent-set searches.
var (
	// ErrNilAdjacency is returned if a nil adjacency relation is passed.
	ErrNilAdjacency = errors.New("indset: adjacency is nil")

	// ErrBadNeighbor is returned when the relation is not an undirected
	// simple graph (out-of-range neighbor, self-loop, missing mirror).
	ErrBadNeighbor = errors.New("indset: invalid neighbor")

	// ErrBudgetExceeded is returned by Maximum when the search visited more
	// than MaxNodes branch nodes. The best set found so far is returned
	// alongside it.
	ErrBudgetExceeded = errors.New("indset: search budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("indset: invalid option supplied")
)

// Option configures the searches via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Maximal and Maximum.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxNodes, if > 0, caps the number of branch nodes Maximum may visit.
	// 0 means no limit.
	MaxNodes int

	// OnBranch is called on every branch node with its depth and the size
	// of the partial solution.
	OnBranch func(depth, size int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background(), no node budget
// and a no-op OnBranch.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxNodes: 0,
		OnBranch: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes caps the branch-and-bound search.
//
//	n > 0: at most n branch nodes
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithOnBranch registers a callback run on each branch node.
func WithOnBranch(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBranch = fn
		}
	}
}

// resolve applies opts over the defaults and validates adj.
func resolve(adj sparseset.Adjacency, opts []Option) (Options, error) {
	o := DefaultOptions()
	if adj == nil {
		return o, ErrNilAdjacency
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if u, v, bad := sparseset.InvalidEdge(adj); bad {
		return o, fmt.Errorf("%w: edge %d→%d", ErrBadNeighbor, u, v)
	}

	return o, nil
}
