// SPDX-License-Identifier: MIT
// Package: arrayset/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first appended vertex; leaves follow in ascending order.
//   • Emits spokes hub–leaf by increasing leaf index.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n vertices: one hub and
// n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.addVertices(n)
		for i := 1; i < n; i++ {
			if err := g.addEdge(methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
