package indset

import (
	"context"
	"sort"

	"github.com/katalvlaran/arrayset/sparseset"
)

// Maximal returns a maximal independent set of adj (no vertex can be added)
// chosen by the minimum-degree greedy rule, sorted ascending. Ties go to the
// vertex met first in the candidate set.
//
// Returns ErrNilAdjacency, ErrBadNeighbor or ErrOptionViolation for invalid
// input and ctx.Err() on cancellation.
func Maximal(adj sparseset.Adjacency, opts ...Option) ([]int, error) {
	o, err := resolve(adj, opts)
	if err != nil {
		return nil, err
	}

	return maximal(o.Ctx, adj)
}

// maximal runs the greedy on an already validated relation.
func maximal(ctx context.Context, adj sparseset.Adjacency) ([]int, error) {
	n := adj.Len()
	live := sparseset.Neighborhoods(adj) // live[v]: neighbors of v still in play
	candidates := sparseset.New(n)
	solution := sparseset.New(n)
	for v := 0; v < n; v++ {
		candidates.InsertUnchecked(v)
	}

	// retire takes w out of every neighborhood it appears in.
	retire := func(w int) {
		for _, x := range adj.Neighbors(w) {
			live[x].Remove(w)
		}
	}

	var dropped []int
	for !candidates.Empty() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		v := minDegree(candidates, live)
		candidates.MoveTo(v, solution)
		retire(v)

		// the neighborhood of v can no longer join the solution
		dropped = live[v].AppendTo(dropped[:0])
		for _, w := range dropped {
			candidates.Remove(w)
			retire(w)
		}
	}

	out := solution.AppendTo(make([]int, 0, solution.Len()))
	sort.Ints(out)

	return out, nil
}

// minDegree returns the candidate with the fewest live neighbors.
func minDegree(candidates *sparseset.Set, live []*sparseset.Set) int {
	best, bestDeg := -1, -1
	for v := range candidates.All() {
		if d := live[v].Len(); best < 0 || d < bestDeg {
			best, bestDeg = v, d
		}
	}

	return best
}

// IsIndependent reports whether set lists distinct in-range vertices of adj
// with no edge between any two of them.
func IsIndependent(adj sparseset.Adjacency, set []int) bool {
	if adj == nil {
		return false
	}
	n := adj.Len()
	in := make([]bool, n)
	for _, v := range set {
		if v < 0 || v >= n || in[v] {
			return false
		}
		in[v] = true
	}
	for _, v := range set {
		for _, w := range adj.Neighbors(v) {
			if w >= 0 && w < n && in[w] {
				return false
			}
		}
	}

	return true
}
