package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrane/lodestar/core"
)

func TestNewIndex_NilGraph(t *testing.T) {
	_, err := core.NewIndex(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestIndex_Snapshot(t *testing.T) {
	g := core.New(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("B", "C", 2))

	ix, err := core.NewIndex(g)
	require.NoError(t, err)

	require.Equal(t, 3, ix.Size())

	// Index order matches Vertices insertion order.
	a, ok := ix.Of("A")
	require.True(t, ok)
	assert.Equal(t, 0, a)
	assert.Equal(t, "A", ix.ID(0))
	assert.Equal(t, "C", ix.ID(2))

	_, ok = ix.Of("Z")
	assert.False(t, ok)

	// Out-arc order matches Neighbors order.
	b, _ := ix.Of("B")
	c, _ := ix.Of("C")
	assert.Equal(t, []core.IndexedArc{{To: b, Weight: 1}, {To: c, Weight: 5}}, ix.Out(a))
	assert.Empty(t, ix.Out(c))
}

func TestIndex_DoesNotObserveLaterMutation(t *testing.T) {
	g := core.New(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 1))

	ix, err := core.NewIndex(g)
	require.NoError(t, err)

	require.NoError(t, g.AddVertex("C"))
	require.NoError(t, g.AddEdge("A", "C", 9))

	assert.Equal(t, 2, ix.Size())
	a, _ := ix.Of("A")
	assert.Len(t, ix.Out(a), 1)
}
