// Package builder produces deterministic sparseset.AdjacencyList fixtures
// for the algorithms that run on sparse array sets: paths, cycles,
// complete graphs, stars, complete bipartite graphs and Erdős–Rényi-style
// random graphs.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildAdjacency(opts, cons...): resolves options, runs constructors
//     in order and returns the finished relation.
//   - Constructors (Constructor implementations):
//     – Path(n), Cycle(n), Complete(n), Star(n), CompleteBipartite(n1, n2),
//     RandomSparse(n, p).
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before construction.
//     – WithSeed / WithRand: RNG for RandomSparse.
//
// Guarantees:
//
//   - Undirected simple graphs: every edge {u,v} appears in the lists of both
//     u and v, no self-loops, no duplicate neighbors.
//   - Composition is a disjoint union: each constructor appends its own
//     vertices after those of the previous constructors.
//   - Neighbor lists are emitted in a fixed order, so equal inputs and seeds
//     give identical relations.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return sentinel errors wrapped with %w.
//
// Example:
//
//	adj, err := builder.BuildAdjacency(nil, builder.Cycle(5), builder.Star(4))
//	// vertices 0..4 form C5, vertices 5..8 form a star centered at 5
package builder
