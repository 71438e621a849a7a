package astar

import (
	"fmt"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/veltrane/lodestar/core"
)

// Greedy searches from source to target expanding the frontier vertex
// with the lowest heuristic estimate h(v), ignoring accumulated cost
// entirely. It usually expands few vertices but makes no optimality
// promise: the returned route can be arbitrarily more expensive than
// the minimum.
//
// Since h is a pure function of the vertex, every vertex enters the
// frontier at most once; the frontier is an int-keyed heap over the
// arena view. Validation order matches AStar.
// An exhausted frontier yields Found == false, never an error.
func Greedy(g core.Graph, source, target string, h Heuristic, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	ix, err := core.NewIndex(g)
	if err != nil {
		return nil, err
	}
	n := ix.Size()
	src, _ := ix.Of(source)
	dst, _ := ix.Of(target)

	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	seen := sparsesets.New(n) // discovered: in the frontier or expanded
	open := yagh.New[float64](n)

	seen.Insert(src)
	open.Put(src, h(source))

	res := &Result{}
	for open.Size() > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		entry := open.Pop()
		u := entry.Elem
		res.Expanded++

		if u == dst {
			res.Found = true
			res.Route, res.Cost = reconstruct(ix, prev, src, dst)
			res.Frontier = open.Size()

			return res, nil
		}

		for _, arc := range ix.Out(u) {
			if seen.Contains(arc.To) {
				continue
			}
			seen.Insert(arc.To)
			prev[arc.To] = u
			open.Put(arc.To, h(ix.ID(arc.To)))
		}
	}

	res.Frontier = 0

	return res, nil
}
