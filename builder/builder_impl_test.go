// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, symmetry and composition.
package builder_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrayset/builder"
	"github.com/katalvlaran/arrayset/sparseset"
)

// edgeCount returns |E| of an undirected relation.
func edgeCount(adj sparseset.AdjacencyList) int {
	total := 0
	for _, list := range adj {
		total += len(list)
	}
	return total / 2
}

// requireSimpleUndirected checks symmetry, no loops and no duplicates.
func requireSimpleUndirected(t *testing.T, adj sparseset.AdjacencyList) {
	t.Helper()
	for u, list := range adj {
		seen := map[int]bool{}
		for _, v := range list {
			require.NotEqual(t, u, v, "self-loop at %d", u)
			require.False(t, seen[v], "duplicate neighbor %d of %d", v, u)
			seen[v] = true
			require.Contains(t, adj[v], u, "edge %d-%d not mirrored", u, v)
		}
	}
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		edges     int
		degreeOf0 int
	}{
		{"Path5", builder.Path(5), 5, 4, 1},
		{"Cycle6", builder.Cycle(6), 6, 6, 2},
		{"Complete4", builder.Complete(4), 4, 6, 3},
		{"Complete1", builder.Complete(1), 1, 0, 0},
		{"Star5", builder.Star(5), 5, 4, 4},
		{"K23", builder.CompleteBipartite(2, 3), 5, 6, 3},
		{"RandomP1", builder.RandomSparse(5, 1), 5, 10, 4},
		{"RandomP0", builder.RandomSparse(5, 0), 5, 0, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			adj, err := builder.BuildAdjacency(nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.vertices, adj.Len())
			require.Equal(t, tc.edges, edgeCount(adj))
			require.Equal(t, tc.degreeOf0, adj.Degree(0))
			requireSimpleUndirected(t, adj)
		})
	}
}

func TestBuildAdjacency_DisjointUnion(t *testing.T) {
	adj, err := builder.BuildAdjacency(nil, builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, 5, adj.Len())
	assert.ElementsMatch(t, []int{1, 2}, adj[0])
	assert.Equal(t, []int{4}, adj[3])
	assert.Equal(t, []int{3}, adj[4])
	requireSimpleUndirected(t, adj)
}

func TestBuildAdjacency_Empty(t *testing.T) {
	adj, err := builder.BuildAdjacency(nil)
	require.NoError(t, err)
	require.NotNil(t, adj)
	require.Equal(t, 0, adj.Len())
}

func TestBuildAdjacency_SortedNeighbors(t *testing.T) {
	adj, err := builder.BuildAdjacency(
		[]builder.BuilderOption{builder.WithSortedNeighbors()},
		builder.Cycle(4),
	)
	require.NoError(t, err)
	for v, list := range adj {
		assert.True(t, sort.IntsAreSorted(list), "vertex %d: %v", v, list)
	}
	assert.Equal(t, []int{1, 3}, adj[0])
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"Path1", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete0", builder.Complete(0), builder.ErrTooFewVertices},
		{"Star1", builder.Star(1), builder.ErrTooFewVertices},
		{"K01", builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"RandomN0", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomP", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomNoRNG", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildAdjacency(nil, tc.con)
		assert.True(t, errors.Is(err, tc.want), "%s: got %v", tc.name, err)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, err := builder.BuildAdjacency(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildAdjacency(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	require.Equal(t, a, b, "same seed must give the same relation")
	requireSimpleUndirected(t, a)
	require.Greater(t, edgeCount(a), 0)
	require.Less(t, edgeCount(a), 30*29/2)
}

func TestInitFromBuiltAdjacency(t *testing.T) {
	adj, err := builder.BuildAdjacency(nil, builder.Star(6))
	require.NoError(t, err)

	hub := sparseset.NewFromAdjacency(adj, 0)
	require.Equal(t, 5, hub.Len())
	require.Equal(t, 6, hub.Cap())
	for leaf := 1; leaf < 6; leaf++ {
		require.True(t, hub.Contains(leaf))
	}
}
