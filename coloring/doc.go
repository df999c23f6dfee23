// Package coloring assigns colors to the vertices of an undirected graph so
// that no edge joins two vertices of the same color, using sparse array sets
// as its working storage.
//
// What
//
//   - All vertices start in one "uncolored" sparseset.Set.
//   - Vertices are taken in a fixed order (ascending ID, largest-degree-first,
//     or a caller-supplied permutation) and given the smallest color not
//     worn by an already colored neighbor.
//   - The chosen vertex is moved with Set.MoveTo from the uncolored set into
//     its color class set.
//   - Validate checks any coloring for properness.
//
// Complexity (V vertices, E edges, k colors)
//
//   - Time:   O(V·k + E·k) in the worst case (linear-scan sets).
//   - Memory: O(V·k) for the class sets.
//
// Usage
//
//	res, err := coloring.Greedy(adj,
//	    coloring.WithContext(ctx),
//	    coloring.WithStrategy(coloring.LargestFirst),
//	    coloring.WithOnAssign(func(v, c int) { /* ... */ }),
//	)
package coloring
