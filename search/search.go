package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/veltrane/lodestar/astar"
	"github.com/veltrane/lodestar/bfs"
	"github.com/veltrane/lodestar/core"
	"github.com/veltrane/lodestar/dfs"
	"github.com/veltrane/lodestar/path"
	"github.com/veltrane/lodestar/ucs"
)

// Run executes one search over g from source to target using the
// selected algorithm and returns a terminal Result.
//
// Validation order: ErrNilGraph, unknown source then target
// (core.ErrVertexNotFound), ErrMissingHeuristic for informed
// algorithms, ErrUnknownAlgorithm. Negative weights surface from the
// cost-sensitive algorithms (ucs.ErrNegativeWeight,
// astar.ErrNegativeWeight). An unreachable target is OutcomeNoPath,
// never an error; cancellation is OutcomeCancelled.
func Run(g core.Graph, source, target string, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("search: source %q: %w", source, core.ErrVertexNotFound)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("search: target %q: %w", target, core.ErrVertexNotFound)
	}
	if algo.Informed() && o.Heuristic == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeuristic, algo)
	}

	switch algo {
	case BFS:
		return runBFS(g, source, target, o)
	case DFS:
		return runDFS(g, source, target, o)
	case UniformCost:
		return runUniformCost(g, source, target, o)
	case GreedyBestFirst:
		return runInformed(g, source, target, o, astar.Greedy)
	case AStar:
		return runInformed(g, source, target, o, astar.AStar)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
}

// cancelled reports whether err is a context termination.
func cancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func runBFS(g core.Graph, source, target string, o Options) (*Result, error) {
	res, err := bfs.BFS(g, source, bfs.WithContext(o.Ctx))
	if err != nil {
		if cancelled(err) {
			return &Result{Outcome: OutcomeCancelled, Expanded: res.Expanded, Frontier: res.Frontier}, nil
		}

		return nil, err
	}

	seq, err := res.PathTo(target)
	if err != nil {
		return &Result{Outcome: OutcomeNoPath, Expanded: res.Expanded, Frontier: res.Frontier}, nil
	}

	return found(g, seq, res.Expanded, res.Frontier)
}

func runDFS(g core.Graph, source, target string, o Options) (*Result, error) {
	res, err := dfs.DFS(g, source, dfs.WithContext(o.Ctx))
	if err != nil {
		if cancelled(err) {
			return &Result{Outcome: OutcomeCancelled, Expanded: res.Expanded, Frontier: res.Frontier}, nil
		}

		return nil, err
	}

	seq, err := res.PathTo(target)
	if err != nil {
		return &Result{Outcome: OutcomeNoPath, Expanded: res.Expanded, Frontier: res.Frontier}, nil
	}

	return found(g, seq, res.Expanded, res.Frontier)
}

func runUniformCost(g core.Graph, source, target string, o Options) (*Result, error) {
	res, err := ucs.UniformCost(g, source, ucs.WithTarget(target), ucs.WithContext(o.Ctx))
	if err != nil {
		if cancelled(err) {
			return &Result{Outcome: OutcomeCancelled}, nil
		}

		return nil, err
	}

	seq, err := res.PathTo(target)
	if err != nil {
		return &Result{Outcome: OutcomeNoPath, Expanded: res.Expanded, Frontier: res.Frontier}, nil
	}

	return found(g, seq, res.Expanded, res.Frontier)
}

// informedFn is the shared shape of astar.AStar and astar.Greedy.
type informedFn func(core.Graph, string, string, astar.Heuristic, ...astar.Option) (*astar.Result, error)

func runInformed(g core.Graph, source, target string, o Options, run informedFn) (*Result, error) {
	res, err := run(g, source, target, o.Heuristic, astar.WithContext(o.Ctx))
	if err != nil {
		if cancelled(err) {
			return &Result{Outcome: OutcomeCancelled}, nil
		}

		return nil, err
	}
	if !res.Found {
		return &Result{Outcome: OutcomeNoPath, Expanded: res.Expanded, Frontier: res.Frontier}, nil
	}

	return found(g, res.Route, res.Expanded, res.Frontier)
}

// found reconstructs the walk along seq into a Path-backed Result.
func found(g core.Graph, seq []string, expanded, frontier int) (*Result, error) {
	p, err := buildPath(g, seq)
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome:  OutcomeFound,
		Path:     p,
		Cost:     p.Cost(),
		Expanded: expanded,
		Frontier: frontier,
	}, nil
}

// buildPath turns a vertex sequence into a Path by resolving each
// consecutive pair to its stored arc. A missing arc would mean the
// algorithm returned a sequence the graph does not support; surface it
// rather than fabricate a weight.
func buildPath(g core.Graph, seq []string) (path.Path, error) {
	p := path.Path{}
	for i := 1; i < len(seq); i++ {
		e, err := arcBetween(g, seq[i-1], seq[i])
		if err != nil {
			return path.Path{}, err
		}
		if p, err = p.Append(e); err != nil {
			return path.Path{}, err
		}
	}

	return p, nil
}

// arcBetween finds the stored arc from→to with its exact weight and
// orientation.
func arcBetween(g core.Graph, from, to string) (core.Edge, error) {
	arcs, err := g.Neighbors(from)
	if err != nil {
		return core.Edge{}, fmt.Errorf("search: reconstructing %s→%s: %w", from, to, err)
	}
	for _, e := range arcs {
		if e.To == to {
			return e, nil
		}
	}

	return core.Edge{}, fmt.Errorf("search: reconstructing %s→%s: %w", from, to, core.ErrEdgeNotFound)
}
