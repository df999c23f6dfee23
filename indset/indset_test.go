package indset_test

import (
	"context"
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/arrayset/builder"
	"github.com/katalvlaran/arrayset/indset"
	"github.com/katalvlaran/arrayset/sparseset"
)

// petersen is the Petersen graph: outer C5 0..4, inner pentagram 5..9.
var petersen = sparseset.AdjacencyList{
	0: {1, 4, 5}, 1: {0, 2, 6}, 2: {1, 3, 7}, 3: {2, 4, 8}, 4: {3, 0, 9},
	5: {0, 7, 8}, 6: {1, 8, 9}, 7: {2, 9, 5}, 8: {3, 5, 6}, 9: {4, 6, 7},
}

// bruteForce returns α(G) by enumerating every subset. n must be small.
func bruteForce(adj sparseset.AdjacencyList) int {
	n := adj.Len()
	masks := make([]uint32, n)
	for u, list := range adj {
		for _, v := range list {
			masks[u] |= 1 << uint(v)
		}
	}
	best := 0
	for set := uint32(0); set < 1<<uint(n); set++ {
		ok := true
		for u := 0; u < n && ok; u++ {
			if set&(1<<uint(u)) != 0 && set&masks[u] != 0 {
				ok = false
			}
		}
		if ok && bits.OnesCount32(set) > best {
			best = bits.OnesCount32(set)
		}
	}
	return best
}

type IndsetSuite struct {
	suite.Suite
}

func (s *IndsetSuite) build(opts []builder.BuilderOption, cons ...builder.Constructor) sparseset.AdjacencyList {
	adj, err := builder.BuildAdjacency(opts, cons...)
	s.Require().NoError(err)
	return adj
}

func (s *IndsetSuite) TestMaximum_KnownValues() {
	cases := []struct {
		name string
		adj  sparseset.AdjacencyList
		want int
	}{
		{"Path5", s.build(nil, builder.Path(5)), 3},
		{"Cycle5", s.build(nil, builder.Cycle(5)), 2},
		{"Cycle8", s.build(nil, builder.Cycle(8)), 4},
		{"K5", s.build(nil, builder.Complete(5)), 1},
		{"Star6", s.build(nil, builder.Star(6)), 5},
		{"K23", s.build(nil, builder.CompleteBipartite(2, 3)), 3},
		{"Union", s.build(nil, builder.Cycle(5), builder.Complete(3), builder.Path(4)), 5},
		{"Petersen", petersen, 4},
		{"Empty", sparseset.AdjacencyList{}, 0},
		{"Isolated", sparseset.AdjacencyList{{}, {}, {}}, 3},
	}
	for _, tc := range cases {
		got, err := indset.Maximum(tc.adj)
		s.Require().NoError(err, tc.name)
		s.Equal(tc.want, len(got), tc.name)
		s.True(indset.IsIndependent(tc.adj, got), tc.name)
	}
}

func (s *IndsetSuite) TestMaximum_MatchesBruteForce() {
	for seed := int64(1); seed <= 8; seed++ {
		adj := s.build([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(14, 0.3))
		got, err := indset.Maximum(adj)
		s.Require().NoError(err)
		s.True(indset.IsIndependent(adj, got), "seed %d", seed)
		s.Equal(bruteForce(adj), len(got), "seed %d", seed)
	}
}

func (s *IndsetSuite) TestMaximal_IsMaximal() {
	for seed := int64(1); seed <= 5; seed++ {
		adj := s.build([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(25, 0.2))
		got, err := indset.Maximal(adj)
		s.Require().NoError(err)
		s.True(indset.IsIndependent(adj, got))

		// no outside vertex can be added
		in := make(map[int]bool, len(got))
		for _, v := range got {
			in[v] = true
		}
		for v := 0; v < adj.Len(); v++ {
			if in[v] {
				continue
			}
			s.False(indset.IsIndependent(adj, append(append([]int(nil), got...), v)), "seed %d: %d addable", seed, v)
		}
	}
}

func (s *IndsetSuite) TestMaximal_Star() {
	got, err := indset.Maximal(s.build(nil, builder.Star(5)))
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3, 4}, got, "leaves have the smallest degree")
}

func (s *IndsetSuite) TestMaximum_Budget() {
	adj := s.build(nil, builder.Path(5))
	got, err := indset.Maximum(adj, indset.WithMaxNodes(1))
	s.True(errors.Is(err, indset.ErrBudgetExceeded), "got %v", err)
	s.Len(got, 3, "greedy seed is returned")
	s.True(indset.IsIndependent(adj, got))
}

func (s *IndsetSuite) TestMaximum_OnBranch() {
	calls := 0
	maxDepth := 0
	_, err := indset.Maximum(petersen, indset.WithOnBranch(func(depth, size int) {
		calls++
		s.Equal(depth, size, "every include step adds one vertex")
		if depth > maxDepth {
			maxDepth = depth
		}
	}))
	s.Require().NoError(err)
	s.Greater(calls, 0)
	s.LessOrEqual(maxDepth, 5)
}

func (s *IndsetSuite) TestErrors() {
	_, err := indset.Maximum(nil)
	s.ErrorIs(err, indset.ErrNilAdjacency)
	_, err = indset.Maximal(nil)
	s.ErrorIs(err, indset.ErrNilAdjacency)

	_, err = indset.Maximum(sparseset.AdjacencyList{{0}})
	s.ErrorIs(err, indset.ErrBadNeighbor)
	_, err = indset.Maximal(sparseset.AdjacencyList{{1}, {}})
	s.ErrorIs(err, indset.ErrBadNeighbor)

	_, err = indset.Maximum(petersen, indset.WithMaxNodes(-1))
	s.ErrorIs(err, indset.ErrOptionViolation)
}

func (s *IndsetSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := indset.Maximum(petersen, indset.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
	_, err = indset.Maximal(petersen, indset.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

func TestIndsetSuite(t *testing.T) {
	suite.Run(t, new(IndsetSuite))
}

func TestIsIndependent(t *testing.T) {
	adj := sparseset.AdjacencyList{{1}, {0, 2}, {1}}
	assert.True(t, indset.IsIndependent(adj, []int{0, 2}))
	assert.True(t, indset.IsIndependent(adj, nil))
	assert.False(t, indset.IsIndependent(adj, []int{0, 1}))
	assert.False(t, indset.IsIndependent(adj, []int{0, 0}), "duplicates")
	assert.False(t, indset.IsIndependent(adj, []int{3}), "out of range")
	assert.False(t, indset.IsIndependent(nil, []int{0}))
	require.True(t, indset.IsIndependent(sparseset.AdjacencyList{}, []int{}))
}
