package dfs

import (
	"fmt"

	"github.com/veltrane/lodestar/core"
)

// frame is one pending stack entry. A vertex may be stacked more than
// once; stale frames are discarded at pop when the vertex was already
// visited via another branch.
type frame struct {
	id     string
	parent string // empty for the root
	depth  int
}

// DFS performs depth-first search on g from startID using an explicit
// slice-backed stack (no recursion).
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, the
// context error on cancellation, or any user-supplied hook error.
func DFS(g core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]string, 0, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	stack := make([]frame, 0, n)
	stack = append(stack, frame{id: startID})

	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			res.Frontier = len(stack)

			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if res.Visited[top.id] {
			continue // stale frame: reached earlier via another branch
		}
		res.Visited[top.id] = true
		res.Expanded++
		if top.parent != "" {
			res.Parent[top.id] = top.parent
		}
		res.Order = append(res.Order, top.id)

		if err := o.OnVisit(top.id, top.depth); err != nil {
			res.Frontier = len(stack)

			return res, fmt.Errorf("dfs: OnVisit error at %q: %w", top.id, err)
		}

		arcs, err := g.Neighbors(top.id)
		if err != nil {
			res.Frontier = len(stack)

			return res, fmt.Errorf("dfs: neighbors of %q: %w", top.id, err)
		}
		// Push in reverse so neighbors pop in the graph's stable order.
		for i := len(arcs) - 1; i >= 0; i-- {
			e := arcs[i]
			if res.Visited[e.To] || !o.FilterNeighbor(top.id, e.To) {
				continue
			}
			stack = append(stack, frame{id: e.To, parent: top.id, depth: top.depth + 1})
		}
	}

	return res, nil
}
