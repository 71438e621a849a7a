package core

import (
	"fmt"
	"sync"
)

// edgeListGraph is the compact backing: a flat arc slice in insertion
// order, scanned linearly on every query.
//
// Complexity: AddEdge/HasEdge/Weight O(E), Neighbors O(E), space O(E).
// The smallest footprint of the three backings; suited to tiny graphs
// or build-once-query-rarely use.
type edgeListGraph struct {
	mu       sync.RWMutex
	directed bool
	vs       arena
	list     []Edge
}

func newEdgeListGraph(cfg config) *edgeListGraph {
	return &edgeListGraph{directed: cfg.directed, vs: newArena()}
}

func (g *edgeListGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vs.add(id)

	return nil
}

func (g *edgeListGraph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vs.lookup(id)

	return ok
}

func (g *edgeListGraph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vs.lookup(from); !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vs.lookup(to); !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	e := Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(&e)
	}

	g.putArc(from, to, weight, e.Directed)
	if !e.Directed && from != to {
		g.putArc(to, from, weight, e.Directed)
	}

	return nil
}

// putArc overwrites an existing from→to arc in place (last write wins)
// or appends a new one.
func (g *edgeListGraph) putArc(from, to string, weight float64, directed bool) {
	for i := range g.list {
		if g.list[i].From == from && g.list[i].To == to {
			g.list[i].Weight = weight
			g.list[i].Directed = directed

			return
		}
	}
	g.list = append(g.list, Edge{From: from, To: to, Weight: weight, Directed: directed})
}

func (g *edgeListGraph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := range g.list {
		if g.list[i].From == from && g.list[i].To == to {
			return true
		}
	}

	return false
}

func (g *edgeListGraph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vs.lookup(from); !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vs.lookup(to); !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	for i := range g.list {
		if g.list[i].From == from && g.list[i].To == to {
			return g.list[i].Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// Neighbors scans the arc slice; out-arcs come back in arc insertion
// order.
func (g *edgeListGraph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vs.lookup(id); !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, 0, defaultNeighborReserve)
	for i := range g.list {
		if g.list[i].From == id {
			out = append(out, g.list[i])
		}
	}

	return out, nil
}

func (g *edgeListGraph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vs.list()
}

func (g *edgeListGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vs.ids)
}

func (g *edgeListGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.list)
}

func (g *edgeListGraph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
