package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/arrayset/sparseset"
)

// colorer encapsulates mutable coloring state.
type colorer struct {
	adj       sparseset.Adjacency
	opts      Options
	uncolored *sparseset.Set   // vertices still waiting for a color
	forbidden *sparseset.Set   // colors worn by neighbors of the current vertex
	classes   []*sparseset.Set // color → members
	colors    []int            // vertex → color, -1 while uncolored
}

// Greedy colors adj with the greedy first-fit rule and returns the
// assignment. Returns ErrNilAdjacency, ErrBadNeighbor, ErrBadOrder or
// ErrOptionViolation for invalid input and ctx.Err() on cancellation.
func Greedy(adj sparseset.Adjacency, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if u, v, bad := sparseset.InvalidEdge(adj); bad {
		return nil, fmt.Errorf("%w: edge %d→%d", ErrBadNeighbor, u, v)
	}

	n := adj.Len()
	order, err := resolveOrder(adj, o)
	if err != nil {
		return nil, err
	}

	c := &colorer{
		adj:       adj,
		opts:      o,
		uncolored: sparseset.New(n),
		forbidden: sparseset.New(n),
		colors:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		c.uncolored.InsertUnchecked(v)
		c.colors[v] = -1
	}

	for _, v := range order {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		c.assign(v)
	}

	return c.result(), nil
}

// assign gives v the smallest color absent from its colored neighbors and
// moves it into that class.
func (c *colorer) assign(v int) {
	c.forbidden.Clear()
	for _, nbr := range c.adj.Neighbors(v) {
		if col := c.colors[nbr]; col >= 0 {
			c.forbidden.Insert(col)
		}
	}

	col := 0
	for c.forbidden.Contains(col) {
		col++
	}
	if col == len(c.classes) {
		c.classes = append(c.classes, sparseset.New(c.adj.Len()))
	}

	c.uncolored.MoveTo(v, c.classes[col])
	c.colors[v] = col
	c.opts.OnAssign(v, col)
}

func (c *colorer) result() *Result {
	res := &Result{
		Colors:    c.colors,
		Classes:   make([][]int, len(c.classes)),
		NumColors: len(c.classes),
	}
	for i, class := range c.classes {
		res.Classes[i] = class.AppendTo(make([]int, 0, class.Len()))
	}

	return res
}

// resolveOrder returns the vertex order: the explicit permutation if given,
// otherwise the one implied by the strategy.
func resolveOrder(adj sparseset.Adjacency, o Options) ([]int, error) {
	n := adj.Len()
	if o.Order != nil {
		if len(o.Order) != n {
			return nil, fmt.Errorf("%w: len=%d, want %d", ErrBadOrder, len(o.Order), n)
		}
		seen := sparseset.New(n)
		for _, v := range o.Order {
			if v < 0 || v >= n || seen.Contains(v) {
				return nil, fmt.Errorf("%w: vertex %d", ErrBadOrder, v)
			}
			seen.InsertUnchecked(v)
		}
		return o.Order, nil
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	if o.Strategy == LargestFirst {
		sort.SliceStable(order, func(i, j int) bool {
			return len(adj.Neighbors(order[i])) > len(adj.Neighbors(order[j]))
		})
	}

	return order, nil
}

// Validate reports whether colors is a proper coloring of adj: one
// non-negative color per vertex and no edge between equal colors.
func Validate(adj sparseset.Adjacency, colors []int) error {
	if adj == nil {
		return ErrNilAdjacency
	}
	n := adj.Len()
	if len(colors) != n {
		return fmt.Errorf("%w: %d colors for %d vertices", ErrInvalidColoring, len(colors), n)
	}
	for u := 0; u < n; u++ {
		if colors[u] < 0 {
			return fmt.Errorf("%w: vertex %d uncolored", ErrInvalidColoring, u)
		}
		for _, v := range adj.Neighbors(u) {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: edge %d→%d", ErrBadNeighbor, u, v)
			}
			if colors[u] == colors[v] {
				return fmt.Errorf("%w: %d and %d both have color %d", ErrConflict, u, v, colors[u])
			}
		}
	}

	return nil
}
