package gridgraph

import (
	"fmt"

	"github.com/veltrane/lodestar/core"
)

// offsets4 and offsets8 are the neighbor displacement tables, clockwise
// from north.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Grid is an immutable 2D terrain-cost map. Values below 1 are walls;
// everything else is the cost of stepping onto that cell.
type Grid struct {
	width, height int
	cells         [][]int
	conn          Connectivity
}

// New constructs a Grid from a non-empty rectangular 2D slice. The
// input is deep-copied so later mutation of values cannot leak in.
// Complexity: O(W*H).
func New(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{width: w, height: h, cells: cells, conn: o.Conn}, nil
}

// Width is the number of columns.
func (gr *Grid) Width() int { return gr.width }

// Height is the number of rows.
func (gr *Grid) Height() int { return gr.height }

// InBounds reports whether (x,y) lies within the grid.
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.width && y >= 0 && y < gr.height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gr *Grid) Passable(x, y int) bool {
	return gr.InBounds(x, y) && gr.cells[y][x] >= 1
}

// Cost returns the terrain cost of stepping onto (x,y).
func (gr *Grid) Cost(x, y int) (int, error) {
	if !gr.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return gr.cells[y][x], nil
}

// ID formats the vertex identifier of cell (x,y), e.g. "2,5".
func ID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// offsets returns the displacement table for the grid's connectivity.
func (gr *Grid) offsets() [][2]int {
	if gr.conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// ToGraph materializes the grid as a directed core.Graph: one vertex
// per passable cell, one arc per passable neighbor pair, weighted by
// the terrain cost of the destination cell. Arcs are directed because
// the cost of u→v (entering v) differs from v→u on uneven terrain.
// Complexity: O(W*H*d) with d the connectivity degree.
func (gr *Grid) ToGraph() (core.Graph, error) {
	g := core.New(core.WithDirected(true))

	for y := 0; y < gr.height; y++ {
		for x := 0; x < gr.width; x++ {
			if !gr.Passable(x, y) {
				continue
			}
			if err := g.AddVertex(ID(x, y)); err != nil {
				return nil, err
			}
		}
	}

	for y := 0; y < gr.height; y++ {
		for x := 0; x < gr.width; x++ {
			if !gr.Passable(x, y) {
				continue
			}
			for _, d := range gr.offsets() {
				nx, ny := x+d[0], y+d[1]
				if !gr.Passable(nx, ny) {
					continue
				}
				if err := g.AddEdge(ID(x, y), ID(nx, ny), float64(gr.cells[ny][nx])); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
