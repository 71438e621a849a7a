package core

import (
	"fmt"
	"sync"
)

// halfEdge is a stored out-arc: destination index, weight, orientation.
type halfEdge struct {
	to       int
	weight   float64
	directed bool
}

// adjacencyGraph is the default backing: per-vertex out-arc slices kept
// in arc insertion order.
//
// Complexity: AddVertex O(1), AddEdge O(deg) for the last-write-wins
// scan, HasEdge/Weight O(deg), Neighbors O(deg), space O(V+E).
type adjacencyGraph struct {
	mu       sync.RWMutex
	directed bool
	vs       arena
	adj      [][]halfEdge
	arcs     int
}

func newAdjacencyGraph(cfg config) *adjacencyGraph {
	return &adjacencyGraph{directed: cfg.directed, vs: newArena()}
}

// AddVertex registers id; re-adding an existing ID is a no-op.
func (g *adjacencyGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.vs.add(id) == len(g.adj) {
		g.adj = append(g.adj, nil)
	}

	return nil
}

func (g *adjacencyGraph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vs.lookup(id)

	return ok
}

// AddEdge stores from→to, mirroring to→from when the effective
// orientation is undirected. Unknown endpoints are rejected.
func (g *adjacencyGraph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	f, ok := g.vs.lookup(from)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	t, ok := g.vs.lookup(to)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	e := Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(&e)
	}

	g.putArc(f, t, weight, e.Directed)
	if !e.Directed && f != t {
		g.putArc(t, f, weight, e.Directed)
	}

	return nil
}

// putArc inserts or overwrites the arc f→t. Overwrites keep the arc's
// original position so neighbor order stays stable.
func (g *adjacencyGraph) putArc(f, t int, weight float64, directed bool) {
	for i := range g.adj[f] {
		if g.adj[f][i].to == t {
			g.adj[f][i].weight = weight
			g.adj[f][i].directed = directed

			return
		}
	}
	g.adj[f] = append(g.adj[f], halfEdge{to: t, weight: weight, directed: directed})
	g.arcs++
}

func (g *adjacencyGraph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f, ok := g.vs.lookup(from)
	if !ok {
		return false
	}
	t, ok := g.vs.lookup(to)
	if !ok {
		return false
	}
	for _, h := range g.adj[f] {
		if h.to == t {
			return true
		}
	}

	return false
}

func (g *adjacencyGraph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f, ok := g.vs.lookup(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	t, ok := g.vs.lookup(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	for _, h := range g.adj[f] {
		if h.to == t {
			return h.weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// Neighbors returns the out-arcs of id in arc insertion order.
func (g *adjacencyGraph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f, ok := g.vs.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(g.adj[f]))
	for i, h := range g.adj[f] {
		out[i] = Edge{From: id, To: g.vs.ids[h.to], Weight: h.weight, Directed: h.directed}
	}

	return out, nil
}

func (g *adjacencyGraph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vs.list()
}

func (g *adjacencyGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vs.ids)
}

func (g *adjacencyGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

func (g *adjacencyGraph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
