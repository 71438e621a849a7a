// Package astar: the Heuristic capability, options, sentinel errors and
// the result type shared by A* and greedy best-first.
package astar

import (
	"context"
	"errors"
)

// Heuristic estimates the remaining cost from a vertex to the search
// target. It must be a pure function of the vertex ID. A* is optimal
// only under an admissible, consistent heuristic — see the package
// documentation for the caller obligations.
type Heuristic func(id string) float64

// Zero is the trivial heuristic: it estimates nothing, degrading A* to
// uniform-cost ordering. Admissible and consistent on any non-negative
// graph.
func Zero(string) float64 { return 0 }

// Sentinel errors shared by AStar and Greedy.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrSourceNotFound indicates the source vertex is absent.
	ErrSourceNotFound = errors.New("astar: source vertex not found")

	// ErrTargetNotFound indicates the target vertex is absent.
	ErrTargetNotFound = errors.New("astar: target vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was reached
	// during expansion; accumulated costs would be meaningless.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
)

// Option configures an informed search run.
type Option func(*Options)

// Options holds parameters shared by AStar and Greedy.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of an informed search toward a fixed target.
type Result struct {
	// Found reports whether the target was reached. When false the
	// frontier was exhausted: no path exists.
	Found bool

	// Route is the vertex sequence source→target; nil unless Found.
	Route []string

	// Cost is the sum of edge weights along Route; 0 unless Found.
	Cost float64

	// Expanded counts popped (expanded) vertices.
	Expanded int

	// Frontier is the frontier size at termination.
	Frontier int
}
