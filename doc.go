// Package arrayset is a small toolkit around one data structure: the sparse
// array set, a fixed-capacity set of small non-negative integers with
// swap-to-end removal, built for the inner loops of graph algorithms.
//
// Under the hood, everything is organized under four subpackages:
//
//	sparseset/ - Set (insert, remove, move between sets, O(1) clear),
//	             Adjacency relation and bulk neighborhood loading
//	builder/   - deterministic adjacency fixtures: path, cycle, complete,
//	             star, complete bipartite, G(n,p)
//	coloring/  - greedy vertex coloring that moves vertices from an
//	             "uncolored" set into per-color class sets
//	indset/    - maximal (greedy) and maximum (branch-and-bound)
//	             independent sets over per-level candidate sets
//
// Quick example:
//
//	adj := sparseset.AdjacencyList{0: {1, 2, 3}, 1: {0}, 2: {0}, 3: {0}}
//	undecided := sparseset.NewFromAdjacency(adj, 0) // {1 2 3}
//	colored := sparseset.New(adj.Len())
//	undecided.MoveTo(2, colored)                    // {1 3}, {2}
//
// Sets are not safe for concurrent mutation; give each worker its own.
//
//	go get github.com/katalvlaran/arrayset
package arrayset
