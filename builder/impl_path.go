// SPDX-License-Identifier: MIT
// Package: arrayset/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n vertices base..base+n-1.
//   • Emits edges i–(i+1) for i=0..n-2 in ascending order.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the lists.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := g.addVertices(n)
		for i := 0; i < n-1; i++ {
			if err := g.addEdge(methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
