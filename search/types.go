// Package search: the Algorithm and Outcome enumerations, options,
// sentinel errors and the SearchResult type.
package search

import (
	"context"
	"errors"

	"github.com/veltrane/lodestar/astar"
	"github.com/veltrane/lodestar/path"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the
	// closed enumeration.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrMissingHeuristic indicates an informed algorithm was selected
	// without WithHeuristic.
	ErrMissingHeuristic = errors.New("search: informed algorithm requires a heuristic")
)

// Algorithm selects the search strategy. The set is closed.
type Algorithm int

const (
	// BFS explores by path length, level order; minimum edge count when
	// weights are equal or ignored.
	BFS Algorithm = iota

	// DFS explores depth-first; reachability only, no optimality.
	DFS

	// UniformCost explores by accumulated cost; minimum cost under
	// non-negative weights.
	UniformCost

	// GreedyBestFirst explores by heuristic estimate only; fast, no
	// optimality. Requires WithHeuristic.
	GreedyBestFirst

	// AStar explores by accumulated cost plus heuristic estimate;
	// minimum cost under an admissible, consistent heuristic.
	// Requires WithHeuristic.
	AStar
)

// String names the algorithm for diagnostics.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case UniformCost:
		return "uniform-cost"
	case GreedyBestFirst:
		return "greedy-best-first"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Informed reports whether the algorithm requires a heuristic.
func (a Algorithm) Informed() bool {
	return a == GreedyBestFirst || a == AStar
}

// Outcome is the terminal classification of a search.
type Outcome int

const (
	// OutcomeFound means a source→target path was found.
	OutcomeFound Outcome = iota

	// OutcomeNoPath means the frontier was exhausted without reaching
	// the target. This is a legitimate answer, not a failure.
	OutcomeNoPath

	// OutcomeCancelled means cooperative cancellation was observed.
	OutcomeCancelled
)

// String names the outcome for diagnostics.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNoPath:
		return "no-path"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of one search invocation. It is owned
// by the caller and never shared with later searches.
type Result struct {
	// Outcome classifies the termination.
	Outcome Outcome

	// Path is the reconstructed walk when Outcome is OutcomeFound; the
	// zero (empty) path otherwise. Source == target yields an empty
	// path with OutcomeFound.
	Path path.Path

	// Cost is Path.Cost() when found, 0 otherwise.
	Cost float64

	// Expanded counts vertices expanded by the underlying algorithm.
	Expanded int

	// Frontier is the frontier size at termination.
	Frontier int
}

// Option configures a Run invocation.
type Option func(*Options)

// Options holds driver parameters.
type Options struct {
	// Ctx allows cancellation; observed between frontier pops and
	// reported as OutcomeCancelled.
	Ctx context.Context

	// Heuristic estimates remaining cost to the target; required by the
	// informed algorithms, ignored by the uninformed ones.
	Heuristic astar.Heuristic
}

// DefaultOptions returns Options with a background context and no
// heuristic.
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

// WithHeuristic injects the heuristic for GreedyBestFirst and AStar.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}
