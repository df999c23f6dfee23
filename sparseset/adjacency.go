// SPDX-License-Identifier: MIT
// Package: arrayset/sparseset
//
// adjacency.go - bulk construction from an adjacency relation.
//
// The adjacency relation is the only collaborator of Set: a mapping from a
// vertex ID in [0, Len()) to its ordered neighbor IDs. Set never mutates it.

package sparseset

// Adjacency is a read-only adjacency relation over vertices 0..Len()-1.
type Adjacency interface {
	// Len returns the number of vertices.
	Len() int
	// Neighbors returns the neighbor IDs of node in a stable order.
	// The returned slice must not be modified by the caller.
	Neighbors(node int) []int
}

// AdjacencyList is the slice form of Adjacency: AdjacencyList[v] lists the
// neighbors of v.
type AdjacencyList [][]int

// Len returns the number of vertices.
func (a AdjacencyList) Len() int { return len(a) }

// Neighbors returns a[node].
func (a AdjacencyList) Neighbors(node int) []int { return a[node] }

// Degree returns len(a[node]).
func (a AdjacencyList) Degree(node int) int { return len(a[node]) }

// InitFromAdjacency resizes the set to adj.Len() and inserts every neighbor
// of node in adjacency order. Existing members are kept; call Clear first
// for a fresh neighborhood.
//
// A relation may list more neighbors than it has vertices (e.g. {0:[1,2,3],
// 1:[0]}); the capacity is then raised to Len()+degree so the load cannot
// overflow. The capacity never drops below the current members.
//
// Panics (ErrPrecondition) when adj is nil or node is outside [0, adj.Len()).
//
// Complexity: O(V + d²) with d = degree of node (Insert checks duplicates).
func (s *Set) InitFromAdjacency(adj Adjacency, node int) {
	if adj == nil {
		violate(methodInitFromAdjacency, "adjacency is nil")
	}
	n := adj.Len()
	if node < 0 || node >= n {
		violate(methodInitFromAdjacency, "node=%d outside [0,%d)", node, n)
	}

	neighbors := adj.Neighbors(node)
	if need := s.Len() + len(neighbors); need > n {
		n = need
	}

	s.Resize(n)
	for _, neighbor := range neighbors {
		s.Insert(neighbor)
	}
}

// NewFromAdjacency returns a fresh set holding the neighbors of node.
func NewFromAdjacency(adj Adjacency, node int) *Set {
	s := NewEmpty()
	s.InitFromAdjacency(adj, node)

	return s
}

// Neighborhoods returns one set per vertex of adj, set v holding the
// neighbors of v. This is the usual "currently eligible neighbors" table of
// coloring and independent-set searches.
//
// Panics (ErrPrecondition) when adj is nil.
func Neighborhoods(adj Adjacency) []*Set {
	if adj == nil {
		violate(methodNeighborhoods, "adjacency is nil")
	}

	sets := make([]*Set, adj.Len())
	for v := range sets {
		sets[v] = NewFromAdjacency(adj, v)
	}

	return sets
}

// InvalidEdge scans adj for the first entry that breaks the shape expected
// of an undirected simple graph: a neighbor outside [0, Len()), a vertex
// listing itself, or an edge u→v without the mirror v→u. ok is false when
// no such entry exists.
//
// Complexity: O(Σ d²) for the mirror lookups.
func InvalidEdge(adj Adjacency) (u, v int, ok bool) {
	n := adj.Len()
	for u = 0; u < n; u++ {
		for _, v = range adj.Neighbors(u) {
			if v < 0 || v >= n || v == u || !lists(adj.Neighbors(v), u) {
				return u, v, true
			}
		}
	}

	return 0, 0, false
}

func lists(neighbors []int, x int) bool {
	for _, w := range neighbors {
		if w == x {
			return true
		}
	}

	return false
}
