// Package indset finds independent sets (vertex sets with no edge inside)
// of undirected graphs, keeping candidate vertices in sparse array sets.
//
// What
//
//   - Maximal: greedy minimum-degree heuristic. Every vertex keeps a
//     sparseset.Set of its still-eligible neighbors; the candidate of
//     smallest remaining degree is moved into the solution and its
//     neighborhood is removed from play.
//   - Maximum: exact branch-and-bound. One candidate Set per search level;
//     a branch is pruned when |current| + |candidates| cannot beat the best
//     set found so far.
//   - IsIndependent: checks a vertex list.
//
// Complexity
//
//   - Maximal: O(V·(V + E)) with linear-scan sets.
//   - Maximum: exponential in V in the worst case; bound it with
//     WithMaxNodes or a context deadline.
//
// Usage
//
//	best, err := indset.Maximum(adj,
//	    indset.WithContext(ctx),
//	    indset.WithMaxNodes(1_000_000),
//	)
//	if errors.Is(err, indset.ErrBudgetExceeded) {
//	    // best holds the largest set found before the budget ran out
//	}
package indset
