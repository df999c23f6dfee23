// SPDX-License-Identifier: MIT
// Package: arrayset/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil   (pure/deterministic unless seeded)
//   • sortNeighbors = false (emission order)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Sort neighbor lists once construction is complete.
	sortNeighbors bool
}

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		sortNeighbors: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
