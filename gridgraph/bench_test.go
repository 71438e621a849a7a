package gridgraph_test

import (
	"testing"

	"github.com/veltrane/lodestar/gridgraph"
	"github.com/veltrane/lodestar/search"
)

// BenchmarkAStarOpenGrid measures corner-to-corner A* with the
// Manhattan heuristic on a 100x100 unit-cost grid.
// Complexity: O(W*H*d) per iteration.
func BenchmarkAStarOpenGrid(b *testing.B) {
	const n = 100
	values := make([][]int, n)
	for y := range values {
		row := make([]int, n)
		for x := range row {
			row[x] = 1
		}
		values[y] = row
	}
	gr, err := gridgraph.New(values)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g, err := gr.ToGraph()
	if err != nil {
		b.Fatalf("setup ToGraph failed: %v", err)
	}
	src, dst := gridgraph.ID(0, 0), gridgraph.ID(n-1, n-1)
	h := gridgraph.Manhattan(n-1, n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(g, src, dst, search.AStar, search.WithHeuristic(h)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUniformCostOpenGrid is the uninformed baseline on the same
// grid, for comparison against BenchmarkAStarOpenGrid.
func BenchmarkUniformCostOpenGrid(b *testing.B) {
	const n = 100
	values := make([][]int, n)
	for y := range values {
		row := make([]int, n)
		for x := range row {
			row[x] = 1
		}
		values[y] = row
	}
	gr, err := gridgraph.New(values)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g, err := gr.ToGraph()
	if err != nil {
		b.Fatalf("setup ToGraph failed: %v", err)
	}
	src, dst := gridgraph.ID(0, 0), gridgraph.ID(n-1, n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(g, src, dst, search.UniformCost); err != nil {
			b.Fatal(err)
		}
	}
}
