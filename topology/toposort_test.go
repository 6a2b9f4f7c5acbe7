package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkern/graphkern/core"
	"github.com/graphkern/graphkern/topology"
)

// assertTopological checks that every edge of g points forward in order.
func assertTopological(t *testing.T, g *core.Graph, order []int32) {
	t.Helper()
	require.Len(t, order, g.NumVertices())
	pos := make([]int, g.NumVertices())
	for i, v := range order {
		pos[v] = i
	}
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Source(e), g.Target(e)
		assert.Lessf(t, pos[u], pos[v], "edge %d -> %d out of order", u, v)
	}
}

func TestTopologicalSort_Diamond(t *testing.T) {
	// 0 -> {1, 2} -> 3
	g := core.NewGraph(4, core.WithDirected(true))
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 0, 2)
	mustEdge(t, g, 1, 3)
	mustEdge(t, g, 2, 3)

	order, err := topology.TopologicalSort(g)
	require.NoError(t, err)

	assertTopological(t, g, order)
	assert.EqualValues(t, 0, order[0])
	assert.EqualValues(t, 3, order[3])
}

func TestTopologicalSort_Deterministic(t *testing.T) {
	g := core.NewGraph(5, core.WithDirected(true))
	mustEdge(t, g, 4, 2)
	mustEdge(t, g, 2, 0)
	mustEdge(t, g, 3, 1)

	first, err := topology.TopologicalSort(g)
	require.NoError(t, err)
	second, err := topology.TopologicalSort(g)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assertTopological(t, g, first)
}

func TestTopologicalSort_EdgelessGraph(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))

	order, err := topology.TopologicalSort(g)
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2}, order)
}

func TestTopologicalSort_CycleDetected(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)
	mustEdge(t, g, 2, 0)

	_, err := topology.TopologicalSort(g)
	assert.ErrorIs(t, err, topology.ErrCycleDetected)
}

func TestTopologicalSort_SelfLoopIsCycle(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected(true))
	mustEdge(t, g, 0, 0)

	_, err := topology.TopologicalSort(g)
	assert.ErrorIs(t, err, topology.ErrCycleDetected)
}

func TestTopologicalSort_Validation(t *testing.T) {
	_, err := topology.TopologicalSort(nil)
	assert.ErrorIs(t, err, topology.ErrGraphNil)

	_, err = topology.TopologicalSort(core.NewGraph(2))
	assert.ErrorIs(t, err, topology.ErrUndirectedGraph)
}
