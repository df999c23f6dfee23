// Package builder provides the internal accumulator used by Constructor
// implementations.
//
// Design principles:
//   - Constructors only append: vertices get consecutive IDs after the
//     ones already present.
//   - Edges are undirected and stored in both endpoint lists.
package builder

import (
	"fmt"

	"github.com/katalvlaran/arrayset/sparseset"
)

// graph accumulates an undirected simple relation.
type graph struct {
	lists sparseset.AdjacencyList
}

// addVertices appends n isolated vertices and returns the ID of the first.
// Complexity: O(n) amortized.
func (g *graph) addVertices(n int) int {
	base := len(g.lists)
	for i := 0; i < n; i++ {
		g.lists = append(g.lists, []int{})
	}

	return base
}

// hasEdge reports whether v is already a neighbor of u. O(deg(u)).
func (g *graph) hasEdge(u, v int) bool {
	for _, w := range g.lists[u] {
		if w == v {
			return true
		}
	}

	return false
}

// addEdge links u and v in both directions. Loops, unknown endpoints and
// repeated edges are construction bugs and reported as ErrConstructFailed.
func (g *graph) addEdge(method string, u, v int) error {
	n := len(g.lists)
	switch {
	case u < 0 || u >= n || v < 0 || v >= n:
		return fmt.Errorf("%s: edge %d-%d outside [0,%d): %w", method, u, v, n, ErrConstructFailed)
	case u == v:
		return fmt.Errorf("%s: self-loop at %d: %w", method, u, ErrConstructFailed)
	case g.hasEdge(u, v):
		return fmt.Errorf("%s: duplicate edge %d-%d: %w", method, u, v, ErrConstructFailed)
	}

	g.lists[u] = append(g.lists[u], v)
	g.lists[v] = append(g.lists[v], u)

	return nil
}
