package ucs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrane/lodestar/core"
	"github.com/veltrane/lodestar/ucs"
)

// triangle builds the directed graph A→B(1), B→C(2).
func triangle(t *testing.T) core.Graph {
	t.Helper()
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))

	return g
}

func TestUniformCost_Validation(t *testing.T) {
	_, err := ucs.UniformCost(nil, "A")
	require.ErrorIs(t, err, ucs.ErrNilGraph)

	g := triangle(t)
	_, err = ucs.UniformCost(g, "ghost")
	require.ErrorIs(t, err, ucs.ErrSourceNotFound)

	_, err = ucs.UniformCost(g, "A", ucs.WithTarget("ghost"))
	require.ErrorIs(t, err, ucs.ErrTargetNotFound)

	_, err = ucs.UniformCost(g, "A", ucs.WithMaxCost(-1))
	require.ErrorIs(t, err, ucs.ErrOptionViolation)
}

func TestUniformCost_NegativeWeightFailsFast(t *testing.T) {
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", -5))

	_, err := ucs.UniformCost(g, "A")
	require.ErrorIs(t, err, ucs.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
}

func TestUniformCost_SpecTriangle(t *testing.T) {
	g := triangle(t)

	res, err := ucs.UniformCost(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist["A"])
	assert.Equal(t, 1.0, res.Dist["B"])
	assert.Equal(t, 3.0, res.Dist["C"])

	seq, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, seq)

	// The reverse direction is unreachable in this directed graph.
	rev, err := ucs.UniformCost(g, "C")
	require.NoError(t, err)
	assert.False(t, rev.Reached("A"))
	_, err = rev.PathTo("A")
	require.ErrorIs(t, err, ucs.ErrNoPathTo)
}

func TestUniformCost_PrefersCheaperLongerRoute(t *testing.T) {
	// Direct A→C(5) loses to A→B(1)→C(2).
	g := triangle(t)
	require.NoError(t, g.AddEdge("A", "C", 5))

	res, err := ucs.UniformCost(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist["C"])
	assert.Equal(t, "B", res.Parent["C"])
}

func TestUniformCost_OptimalOnWeightedGrid(t *testing.T) {
	// Minimum cost must be ≤ the cost of every alternative route.
	g := core.New() // undirected
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 7))
	require.NoError(t, g.AddEdge("C", "E", 3))
	require.NoError(t, g.AddEdge("D", "E", 1))

	res, err := ucs.UniformCost(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 3.0, res.Dist["C"]) // A-B-C beats A-C
	assert.Equal(t, 6.0, res.Dist["E"]) // A-B-C-E
	assert.Equal(t, 7.0, res.Dist["D"]) // A-B-C-E-D beats A-B-D
}

func TestUniformCost_FIFOTieBreak(t *testing.T) {
	// Two equal-cost paths to D: via B (inserted first) and via C.
	// FIFO tie-breaking keeps the first-discovered parent.
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := ucs.UniformCost(g, "A")
	require.NoError(t, err)
	assert.Equal(t, "B", res.Parent["D"])
}

func TestUniformCost_TargetEarlyExit(t *testing.T) {
	// A long tail hangs off B; with a target of B the tail must never
	// be expanded.
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "T1", "T2", "T3"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "T1", 10))
	require.NoError(t, g.AddEdge("T1", "T2", 10))
	require.NoError(t, g.AddEdge("T2", "T3", 10))

	res, err := ucs.UniformCost(g, "A", ucs.WithTarget("B"))
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Dist["B"])
	assert.Equal(t, 2, res.Expanded) // A and B only
	assert.False(t, res.Reached("T1"))
}

func TestUniformCost_MaxCost(t *testing.T) {
	g := triangle(t)
	res, err := ucs.UniformCost(g, "A", ucs.WithMaxCost(1))
	require.NoError(t, err)

	assert.True(t, res.Reached("B"))
	assert.False(t, res.Reached("C"))
}

func TestUniformCost_ZeroWeightEdges(t *testing.T) {
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	res, err := ucs.UniformCost(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["C"])
	assert.False(t, math.IsInf(res.Dist["C"], 1))
}

func TestUniformCost_Cancellation(t *testing.T) {
	g := triangle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ucs.UniformCost(g, "A", ucs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestUniformCost_SingleVertex(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("solo"))

	res, err := ucs.UniformCost(g, "solo")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["solo"])
	assert.Equal(t, 1, res.Expanded)
}
