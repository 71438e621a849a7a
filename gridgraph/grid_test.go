package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrane/lodestar/gridgraph"
	"github.com/veltrane/lodestar/search"
)

// ring is a 3x3 unit-cost grid with a wall in the middle:
//
//	1 1 1
//	1 0 1
//	1 1 1
var ring = [][]int{
	{1, 1, 1},
	{1, 0, 1},
	{1, 1, 1},
}

func TestNew_Validation(t *testing.T) {
	_, err := gridgraph.New(nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{}})
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{1, 1}, {1}})
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestNew_DeepCopies(t *testing.T) {
	values := [][]int{{1, 1}}
	gr, err := gridgraph.New(values)
	require.NoError(t, err)

	values[0][0] = 0 // mutate the input after construction
	assert.True(t, gr.Passable(0, 0))
}

func TestGrid_Accessors(t *testing.T) {
	gr, err := gridgraph.New(ring)
	require.NoError(t, err)

	assert.Equal(t, 3, gr.Width())
	assert.Equal(t, 3, gr.Height())
	assert.True(t, gr.InBounds(2, 2))
	assert.False(t, gr.InBounds(3, 0))
	assert.True(t, gr.Passable(0, 0))
	assert.False(t, gr.Passable(1, 1)) // the wall
	assert.False(t, gr.Passable(-1, 0))

	c, err := gr.Cost(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = gr.Cost(9, 9)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestToGraph_WallsExcluded(t *testing.T) {
	gr, err := gridgraph.New(ring)
	require.NoError(t, err)
	g, err := gr.ToGraph()
	require.NoError(t, err)

	assert.Equal(t, 8, g.VertexCount()) // 9 cells minus the wall
	assert.False(t, g.HasVertex(gridgraph.ID(1, 1)))
	assert.True(t, g.HasEdge(gridgraph.ID(0, 0), gridgraph.ID(1, 0)))
	assert.False(t, g.HasEdge(gridgraph.ID(1, 0), gridgraph.ID(1, 1)))
}

func TestToGraph_EntryCostAsymmetry(t *testing.T) {
	// Stepping onto the expensive cell costs 5; stepping back costs 1.
	gr, err := gridgraph.New([][]int{{1, 5}})
	require.NoError(t, err)
	g, err := gr.ToGraph()
	require.NoError(t, err)

	in, err := g.Weight(gridgraph.ID(0, 0), gridgraph.ID(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 5.0, in)

	out, err := g.Weight(gridgraph.ID(1, 0), gridgraph.ID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, out)
}

func TestManhattan_AStarMatchesUniformCost(t *testing.T) {
	gr, err := gridgraph.New(ring)
	require.NoError(t, err)
	g, err := gr.ToGraph()
	require.NoError(t, err)

	src, dst := gridgraph.ID(0, 0), gridgraph.ID(2, 2)

	informed, err := search.Run(g, src, dst, search.AStar,
		search.WithHeuristic(gridgraph.Manhattan(2, 2)))
	require.NoError(t, err)
	uninformed, err := search.Run(g, src, dst, search.UniformCost)
	require.NoError(t, err)

	assert.Equal(t, search.OutcomeFound, informed.Outcome)
	assert.Equal(t, 4.0, informed.Cost) // around the wall in four steps
	assert.Equal(t, uninformed.Cost, informed.Cost)
	assert.LessOrEqual(t, informed.Expanded, uninformed.Expanded)
}

func TestChebyshev_DiagonalShortcut(t *testing.T) {
	open := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	gr, err := gridgraph.New(open, gridgraph.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)
	g, err := gr.ToGraph()
	require.NoError(t, err)

	res, err := search.Run(g, gridgraph.ID(0, 0), gridgraph.ID(2, 2), search.AStar,
		search.WithHeuristic(gridgraph.Chebyshev(2, 2)))
	require.NoError(t, err)

	assert.Equal(t, search.OutcomeFound, res.Outcome)
	assert.Equal(t, 2.0, res.Cost) // two diagonal steps
	assert.Equal(t, 2, res.Path.Length())
}

func TestToGraph_SealedRoomHasNoPath(t *testing.T) {
	sealed := [][]int{
		{1, 0, 1},
		{0, 0, 1},
		{1, 1, 1},
	}
	gr, err := gridgraph.New(sealed)
	require.NoError(t, err)
	g, err := gr.ToGraph()
	require.NoError(t, err)

	res, err := search.Run(g, gridgraph.ID(0, 0), gridgraph.ID(2, 2), search.BFS)
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeNoPath, res.Outcome)
}

func TestHeuristics_MalformedIDFallsBackToZero(t *testing.T) {
	h := gridgraph.Manhattan(3, 3)
	assert.Equal(t, 0.0, h("not-a-cell"))
	assert.Equal(t, 0.0, h("a,b"))

	c := gridgraph.Chebyshev(3, 3)
	assert.Equal(t, 0.0, c("nope"))
}

func TestConnectivity_String(t *testing.T) {
	assert.Equal(t, "conn4", gridgraph.Conn4.String())
	assert.Equal(t, "conn8", gridgraph.Conn8.String())
}
