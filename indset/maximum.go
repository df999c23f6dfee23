// SPDX-License-Identifier: MIT
// Package: arrayset/indset
//
// maximum.go - exact maximum independent set by branch-and-bound.
//
// Search:
//   • levels[d] holds the candidate set of the include-branch at depth d.
//   • Branch vertex v = candidate of largest degree.
//     Include: recurse on candidates \ N[v] at depth+1.
//     Exclude: remove v from the current level, recurse, reinsert v.
//   • If v has no neighbor among the candidates the exclude branch is skipped.
//   • Bound: prune when |current| + |candidates| <= |best|.
//   • best starts from the greedy maximal set.

package indset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/arrayset/sparseset"
)

// searcher holds the mutable branch-and-bound state.
type searcher struct {
	adj     sparseset.Adjacency
	opts    Options
	levels  []*sparseset.Set // candidate set per include depth
	mark    []bool           // scratch: neighbors of the branch vertex
	current []int            // partial solution
	best    []int
	nodes   int
}

// Maximum returns a maximum independent set of adj, sorted ascending.
//
// On ErrBudgetExceeded or context cancellation during the search, the
// largest independent set found so far is returned together with the error;
// it is maximal but not necessarily maximum. Invalid input (ErrNilAdjacency,
// ErrBadNeighbor, ErrOptionViolation) returns a nil set.
func Maximum(adj sparseset.Adjacency, opts ...Option) ([]int, error) {
	o, err := resolve(adj, opts)
	if err != nil {
		return nil, err
	}

	seed, err := maximal(o.Ctx, adj)
	if err != nil {
		return nil, err
	}

	n := adj.Len()
	s := &searcher{
		adj:    adj,
		opts:   o,
		levels: make([]*sparseset.Set, n+1),
		mark:   make([]bool, n),
		best:   seed,
	}
	for d := range s.levels {
		s.levels[d] = sparseset.New(n)
	}
	for v := 0; v < n; v++ {
		s.levels[0].InsertUnchecked(v)
	}

	err = s.expand(0, s.levels[0])

	out := append([]int(nil), s.best...)
	sort.Ints(out)

	return out, err
}

// expand explores the subtree rooted at the candidate set cand.
func (s *searcher) expand(depth int, cand *sparseset.Set) error {
	s.nodes++
	if s.opts.MaxNodes > 0 && s.nodes > s.opts.MaxNodes {
		return fmt.Errorf("%w: limit %d nodes", ErrBudgetExceeded, s.opts.MaxNodes)
	}
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	s.opts.OnBranch(depth, len(s.current))

	if len(s.current)+cand.Len() <= len(s.best) {
		return nil
	}
	if cand.Empty() {
		s.best = append(s.best[:0], s.current...)
		return nil
	}

	v := s.pick(cand)
	next := s.levels[depth+1]
	next.Clear()
	for _, w := range s.adj.Neighbors(v) {
		s.mark[w] = true
	}
	for w := range cand.All() {
		if w != v && !s.mark[w] {
			next.InsertUnchecked(w)
		}
	}
	for _, w := range s.adj.Neighbors(v) {
		s.mark[w] = false
	}
	isolated := next.Len() == cand.Len()-1

	s.current = append(s.current, v)
	err := s.expand(depth+1, next)
	s.current = s.current[:len(s.current)-1]
	if err != nil || isolated {
		return err
	}

	cand.Remove(v)
	err = s.expand(depth, cand)
	cand.InsertUnchecked(v)

	return err
}

// pick returns the candidate with the largest degree in the whole graph.
func (s *searcher) pick(cand *sparseset.Set) int {
	best, bestDeg := -1, -1
	for v := range cand.All() {
		if d := len(s.adj.Neighbors(v)); d > bestDeg {
			best, bestDeg = v, d
		}
	}

	return best
}
