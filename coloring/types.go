// Package coloring provides tunable options and error definitions for
// greedy vertex coloring over a sparseset.Adjacency.
package coloring

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for coloring.
var (
	// ErrNilAdjacency is returned if a nil adjacency relation is passed.
	ErrNilAdjacency = errors.New("coloring: adjacency is nil")

	// ErrBadNeighbor is returned when a neighbor ID is out of range or a
	// vertex lists itself.
	ErrBadNeighbor = errors.New("coloring: invalid neighbor")

	// ErrBadOrder is returned when WithOrder is not a permutation of 0..V-1.
	ErrBadOrder = errors.New("coloring: order is not a permutation")

	// ErrInvalidColoring is returned by Validate for a malformed color slice.
	ErrInvalidColoring = errors.New("coloring: invalid color assignment")

	// ErrConflict is returned by Validate when an edge joins equal colors.
	ErrConflict = errors.New("coloring: adjacent vertices share a color")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// Strategy selects the vertex order when no explicit order is given.
type Strategy int

const (
	// Natural colors vertices by ascending ID.
	Natural Strategy = iota
	// LargestFirst colors vertices by descending degree, ties by ascending ID.
	LargestFirst
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Natural:
		return "Natural"
	case LargestFirst:
		return "LargestFirst"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures Greedy via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Greedy.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy picks the default vertex order.
	Strategy Strategy

	// Order, when non-nil, overrides Strategy with an explicit permutation.
	Order []int

	// OnAssign is called after vertex v received color c.
	OnAssign func(v, c int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Natural strategy, no explicit order
//   - no-op OnAssign.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Natural,
		Order:    nil,
		OnAssign: func(int, int) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the default vertex order.
// Unknown strategies are recorded as ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Natural, LargestFirst:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
		}
	}
}

// WithOrder colors vertices in exactly the given order. The slice must be a
// permutation of 0..V-1; this is checked when Greedy runs (ErrBadOrder).
func WithOrder(order []int) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithOnAssign registers a callback run after each color assignment.
func WithOnAssign(fn func(v, c int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// Result holds the outcome of a coloring:
//   - Colors: vertex → color in [0, NumColors).
//   - Classes: color → member vertices (unordered).
//   - NumColors: number of colors used.
type Result struct {
	Colors    []int
	Classes   [][]int
	NumColors int
}
