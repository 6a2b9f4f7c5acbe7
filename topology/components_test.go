package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkern/graphkern/core"
	"github.com/graphkern/graphkern/topology"
)

func mustEdge(t *testing.T, g *core.Graph, u, v int) {
	t.Helper()
	_, err := g.AddEdge(u, v)
	require.NoError(t, err)
}

func TestLabelComponents_UndirectedIslands(t *testing.T) {
	// Two islands {0,1,2} and {3,4}, plus the singleton 5.
	g := core.NewGraph(6)
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)
	mustEdge(t, g, 3, 4)
	comp := core.NewVertexInt32(g)

	n, err := topology.LabelComponents(g, comp)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, core.VertexInt32{0, 0, 0, 1, 1, 2}, comp)
}

func TestLabelComponents_StronglyConnected(t *testing.T) {
	// 0 <-> 1 form one SCC; 2 is reachable but cannot return.
	g := core.NewGraph(3, core.WithDirected(true))
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 0)
	mustEdge(t, g, 1, 2)
	comp := core.NewVertexInt32(g)

	n, err := topology.LabelComponents(g, comp)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, comp[0], comp[1])
	assert.NotEqual(t, comp[0], comp[2])
}

func TestLabelComponents_DirectedCycleIsOneComponent(t *testing.T) {
	g := core.NewGraph(4, core.WithDirected(true))
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)
	mustEdge(t, g, 2, 3)
	mustEdge(t, g, 3, 0)
	comp := core.NewVertexInt32(g)

	n, err := topology.LabelComponents(g, comp)
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, core.VertexInt32{0, 0, 0, 0}, comp)
}

func TestLabelComponents_DirectedChainIsAllSingletons(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)
	comp := core.NewVertexInt32(g)

	n, err := topology.LabelComponents(g, comp)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	// Ids follow first appearance by vertex index.
	assert.Equal(t, core.VertexInt32{0, 1, 2}, comp)
}

func TestLabelComponents_UndirectedView(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 2, 1)
	comp := core.NewVertexInt32(g)

	n, err := topology.LabelComponents(g, comp, topology.WithUndirectedView())
	require.NoError(t, err)

	assert.Equal(t, 1, n)
}

func TestLabelComponents_SelfLoop(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected(true))
	mustEdge(t, g, 0, 0)
	comp := core.NewVertexInt32(g)

	n, err := topology.LabelComponents(g, comp)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
}

func TestLabelComponents_EmptyGraph(t *testing.T) {
	g := core.NewGraph(0)
	n, err := topology.LabelComponents(g, core.NewVertexInt32(g))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLabelComponents_Validation(t *testing.T) {
	g := core.NewGraph(3)

	_, err := topology.LabelComponents(nil, core.NewVertexInt32(g))
	assert.ErrorIs(t, err, topology.ErrGraphNil)

	_, err = topology.LabelComponents(g, nil)
	assert.ErrorIs(t, err, topology.ErrNilProperty)

	_, err = topology.LabelComponents(g, make(core.VertexInt32, 1))
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}
