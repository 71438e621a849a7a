package core

import (
	"fmt"
	"sync"
)

// matrixGraph is the dense backing: a V×V weight table with a parallel
// presence table, grown geometrically as vertices are added.
//
// Complexity: HasEdge/Weight O(1), Neighbors O(V), AddVertex amortized
// O(V), space O(V²). Chosen when constant-time membership matters more
// than memory, per the classic space-versus-query trade-off.
type matrixGraph struct {
	mu       sync.RWMutex
	directed bool
	vs       arena

	dim      int // allocated dimension (≥ vertex count)
	weights  []float64
	present  []bool
	oriented []bool // arc inserted as directed
	arcs     int
}

func newMatrixGraph(cfg config) *matrixGraph {
	return &matrixGraph{directed: cfg.directed, vs: newArena()}
}

// at maps (row, col) to the flattened table offset.
func (g *matrixGraph) at(r, c int) int { return r*g.dim + c }

// grow reallocates the tables when n vertices no longer fit.
func (g *matrixGraph) grow(n int) {
	if n <= g.dim {
		return
	}
	dim := g.dim * 2
	if dim < 4 {
		dim = 4
	}
	for dim < n {
		dim *= 2
	}
	weights := make([]float64, dim*dim)
	present := make([]bool, dim*dim)
	oriented := make([]bool, dim*dim)
	for r := 0; r < g.dim; r++ {
		copy(weights[r*dim:r*dim+g.dim], g.weights[r*g.dim:(r+1)*g.dim])
		copy(present[r*dim:r*dim+g.dim], g.present[r*g.dim:(r+1)*g.dim])
		copy(oriented[r*dim:r*dim+g.dim], g.oriented[r*g.dim:(r+1)*g.dim])
	}
	g.dim, g.weights, g.present, g.oriented = dim, weights, present, oriented
}

func (g *matrixGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.vs.ids)
	if g.vs.add(id) == n {
		g.grow(n + 1)
	}

	return nil
}

func (g *matrixGraph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vs.lookup(id)

	return ok
}

func (g *matrixGraph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
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

	g.putCell(f, t, weight, e.Directed)
	if !e.Directed && f != t {
		g.putCell(t, f, weight, e.Directed)
	}

	return nil
}

func (g *matrixGraph) putCell(f, t int, weight float64, directed bool) {
	i := g.at(f, t)
	if !g.present[i] {
		g.present[i] = true
		g.arcs++
	}
	g.weights[i] = weight
	g.oriented[i] = directed
}

func (g *matrixGraph) HasEdge(from, to string) bool {
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

	return g.present[g.at(f, t)]
}

func (g *matrixGraph) Weight(from, to string) (float64, error) {
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
	i := g.at(f, t)
	if !g.present[i] {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return g.weights[i], nil
}

// Neighbors scans row id of the table; out-arcs come back in vertex
// index (insertion) order, which is stable for a fixed construction
// sequence.
func (g *matrixGraph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f, ok := g.vs.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, 0, defaultNeighborReserve)
	for t := range g.vs.ids {
		i := g.at(f, t)
		if !g.present[i] {
			continue
		}
		out = append(out, Edge{
			From:     id,
			To:       g.vs.ids[t],
			Weight:   g.weights[i],
			Directed: g.oriented[i],
		})
	}

	return out, nil
}

// defaultNeighborReserve is the initial capacity for neighbor slices.
const defaultNeighborReserve = 8

func (g *matrixGraph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vs.list()
}

func (g *matrixGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vs.ids)
}

func (g *matrixGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

func (g *matrixGraph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
