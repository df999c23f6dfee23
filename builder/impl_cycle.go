// SPDX-License-Identifier: MIT
// Package: arrayset/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices base..base+n-1.
//   • Emits edges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the lists.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := g.addVertices(n)
		// For i==n-1 connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := g.addEdge(methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
