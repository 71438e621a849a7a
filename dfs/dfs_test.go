package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrane/lodestar/core"
	"github.com/veltrane/lodestar/dfs"
)

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.New()
	_, err := dfs.DFS(g, "ghost")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PreOrderIsDeterministic(t *testing.T) {
	// A→B, A→C, B→D. Depth-first in neighbor order: A B D C.
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, "B", res.Parent["D"])
	assert.Equal(t, 4, res.Expanded)
	assert.Equal(t, 0, res.Frontier)
}

func TestDFS_DiamondVisitsOnce(t *testing.T) {
	// A→B, A→C, B→D, C→D: D must be visited exactly once even though it
	// is stacked twice.
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	seen := 0
	for _, id := range res.Order {
		if id == "D" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestDFS_Reachability(t *testing.T) {
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	// C is isolated from A.

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	assert.True(t, res.Visited["B"])
	assert.False(t, res.Visited["C"])

	_, err = res.PathTo("C")
	require.ErrorIs(t, err, dfs.ErrNoPathTo)

	seq, err := res.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, seq)
}

func TestDFS_DeepChainNoRecursion(t *testing.T) {
	// 200k-vertex chain: recursion would overflow long before this; the
	// explicit stack must not.
	const n = 200_000
	g := core.New(core.WithDirected(true))
	require.NoError(t, g.AddVertex("v0"))
	for i := 1; i < n; i++ {
		id := fmt.Sprintf("v%d", i)
		require.NoError(t, g.AddVertex(id))
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i-1), id, 1))
	}

	res, err := dfs.DFS(g, "v0")
	require.NoError(t, err)
	assert.Equal(t, n, res.Expanded)
	assert.True(t, res.Visited[fmt.Sprintf("v%d", n-1)])
}

func TestDFS_OnVisitAborts(t *testing.T) {
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))

	boom := errors.New("boom")
	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string, _ int) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "B"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Order)
}

func TestDFS_Cancellation(t *testing.T) {
	g := core.New(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
