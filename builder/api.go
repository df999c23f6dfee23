// SPDX-License-Identifier: MIT
// Package: arrayset/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildAdjacency(bopts, cons...). Resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical relations.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/arrayset/sparseset"
)

// Constructor appends one topology to the relation under construction using
// the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only touch vertices they created themselves (disjoint union).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *graph, cfg builderConfig) error

// BuildAdjacency resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting undirected relation.
// Any constructor error is wrapped with the context "BuildAdjacency: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - WithSortedNeighbors: O(Σ d·log d).
func BuildAdjacency(bopts []BuilderOption, cons ...Constructor) (sparseset.AdjacencyList, error) {
	cfg := newBuilderConfig(bopts...)
	g := &graph{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildAdjacency: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: %w", err)
		}
	}

	if cfg.sortNeighbors {
		for _, list := range g.lists {
			sort.Ints(list)
		}
	}
	if g.lists == nil {
		return sparseset.AdjacencyList{}, nil
	}

	return g.lists, nil
}
