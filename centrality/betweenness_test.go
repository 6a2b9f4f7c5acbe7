// Package centrality_test pins down the Brandes accumulation semantics on
// canonical topologies, the normalization factors, and the dispatch-layer
// validation.
package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/graphkern/graphkern/centrality"
	"github.com/graphkern/graphkern/core"
	"github.com/graphkern/graphkern/paths"
)

const eps = 1e-12

// buildGraph wires the given edges into a fresh graph.
func buildGraph(t *testing.T, n int, directed bool, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n, core.WithDirected(directed))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// betweennessOf runs the kernel with fresh float64 maps.
func betweennessOf(t *testing.T, g *core.Graph, opts ...centrality.Option) (core.EdgeFloat64, core.VertexFloat64) {
	t.Helper()
	eb, vb := core.NewEdgeFloat64(g), core.NewVertexFloat64(g)
	require.NoError(t, centrality.Betweenness(g, eb, vb, opts...))

	return eb, vb
}

var pathEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

func TestBetweenness_PathGraphNormalized(t *testing.T) {
	g := buildGraph(t, 5, false, pathEdges)
	eb, vb := betweennessOf(t, g, centrality.WithNormalize(true))

	wantVB := []float64{0, 0.5, 2.0 / 3.0, 0.5, 0}
	require.True(t, floats.EqualApprox(vb, wantVB, eps), "vb = %v; want %v", []float64(vb), wantVB)

	// Edge (0-1) lies on 4 unordered pairs, edge (1-2) on 6; efactor is
	// 2/(n(n-1)) = 1/10 for the undirected 5-path.
	wantEB := []float64{0.4, 0.6, 0.6, 0.4}
	require.True(t, floats.EqualApprox(eb, wantEB, eps), "eb = %v; want %v", []float64(eb), wantEB)
}

func TestBetweenness_TriangleUnnormalized(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	eb, vb := betweennessOf(t, g)

	assert.Equal(t, []float64{0, 0, 0}, []float64(vb), "no vertex is interior to any shortest path")
	require.True(t, floats.EqualApprox(eb, []float64{1, 1, 1}, eps),
		"each triangle edge carries exactly its endpoint pair: eb = %v", []float64(eb))
}

func TestBetweenness_StarNormalized(t *testing.T) {
	// Center 0 with four leaves.
	g := buildGraph(t, 5, false, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	_, vb := betweennessOf(t, g, centrality.WithNormalize(true))

	assert.InDelta(t, 1.0, vb[0], eps, "the hub mediates every leaf pair")
	for leaf := 1; leaf < 5; leaf++ {
		assert.Zero(t, vb[leaf])
	}

	cpd, err := centrality.CentralPointDominance(g, vb)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cpd, eps, "a star is maximally dominated")
}

func TestBetweenness_DirectedCycleUnnormalized(t *testing.T) {
	g := buildGraph(t, 3, true, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	eb, vb := betweennessOf(t, g)

	// Each vertex is interior to exactly one 2-hop ordered pair.
	require.True(t, floats.EqualApprox(vb, []float64{1, 1, 1}, eps), "vb = %v", []float64(vb))
	// Each edge lies on three ordered-pair shortest paths, e.g. 0->1 serves
	// (0,1), (0,2) and (2,1).
	require.True(t, floats.EqualApprox(eb, []float64{3, 3, 3}, eps), "eb = %v", []float64(eb))
}

func TestBetweenness_WeightedTwoPathDisambiguation(t *testing.T) {
	g := buildGraph(t, 4, true, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	w := core.EdgeFloat64{1, 2, 1, 1}

	_, vb := betweennessOf(t, g, centrality.WithWeights(w))
	assert.InDelta(t, 1.0, vb[1], eps, "the unique optimum runs through 1")
	assert.Zero(t, vb[2])
}

func TestBetweenness_WeightedMatchesUnweightedOnUnitWeights(t *testing.T) {
	// Undirected 6-cycle with a chord: unit weights must reproduce BFS.
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}}
	g := buildGraph(t, 6, false, edges)
	unit := core.NewEdgeFloat64(g)
	for i := range unit {
		unit[i] = 1
	}

	ebU, vbU := betweennessOf(t, g)
	ebW, vbW := betweennessOf(t, g, centrality.WithWeights(unit))

	tol := 1e-9 * float64(g.NumVertices())
	require.True(t, floats.EqualApprox(vbU, vbW, tol))
	require.True(t, floats.EqualApprox(ebU, ebW, tol))
}

func TestBetweenness_SumIdentity(t *testing.T) {
	// Directed graph: sum of vertex betweenness equals the sum over
	// reachable ordered pairs of (shortest-path hop count - 1).
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 2}, {2, 4}, {4, 0}}
	g := buildGraph(t, 5, true, edges)
	_, vb := betweennessOf(t, g)

	var want float64
	for s := 0; s < g.NumVertices(); s++ {
		res, err := paths.BFS(g, s)
		require.NoError(t, err)
		for v, d := range res.Dist {
			if v != s && d != paths.Unreached {
				want += float64(d - 1)
			}
		}
	}
	assert.InDelta(t, want, floats.Sum(vb), 1e-9)
}

func TestBetweenness_ValuesNonnegative(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 1}, {3, 3}}
	g := buildGraph(t, 4, true, edges)
	eb, vb := betweennessOf(t, g)
	for v, b := range vb {
		assert.GreaterOrEqual(t, b, 0.0, "vb[%d]", v)
	}
	for e, b := range eb {
		assert.GreaterOrEqual(t, b, 0.0, "eb[%d]", e)
	}
}

func TestBetweenness_NormalizationInverseRoundTrip(t *testing.T) {
	g := buildGraph(t, 5, false, pathEdges)
	ebRaw, vbRaw := betweennessOf(t, g)
	ebN, vbN := betweennessOf(t, g, centrality.WithNormalize(true))

	n := float64(g.NumVertices())
	vInv := (n - 1) * (n - 2) / 2 // undirected factors are doubled
	eInv := n * (n - 1) / 2
	for v := range vbN {
		vbN[v] *= vInv
	}
	for e := range ebN {
		ebN[e] *= eInv
	}
	require.True(t, floats.EqualApprox(vbRaw, vbN, eps))
	require.True(t, floats.EqualApprox(ebRaw, ebN, eps))
}

func TestBetweenness_NormVertexCountOverride(t *testing.T) {
	// A logical count larger than the view shrinks every value accordingly.
	g := buildGraph(t, 5, false, pathEdges)
	_, vb5 := betweennessOf(t, g, centrality.WithNormalize(true))
	_, vb10 := betweennessOf(t, g, centrality.WithNormalize(true), centrality.WithNormVertexCount(10))

	ratio := float64(9*8) / float64(4*3)
	for v := range vb5 {
		assert.InDelta(t, vb5[v], vb10[v]*ratio, eps, "vertex %d", v)
	}
}

func TestBetweenness_WorkerCountInvariance(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}, {1, 4}}
	g := buildGraph(t, 6, false, edges)

	eb1, vb1 := betweennessOf(t, g, centrality.WithWorkers(1))
	eb4, vb4 := betweennessOf(t, g, centrality.WithWorkers(4))

	tol := 1e-9 * float64(g.NumVertices())
	require.True(t, floats.EqualApprox(vb1, vb4, tol), "vertex result depends on worker count")
	require.True(t, floats.EqualApprox(eb1, eb4, tol), "edge result depends on worker count")
}

func TestBetweenness_TinyGraphsZeroed(t *testing.T) {
	for _, n := range []int{0, 1} {
		g := core.NewGraph(n)
		eb, vb := core.NewEdgeFloat64(g), core.NewVertexFloat64(g)
		// Pre-poison to prove the kernel zeroes its outputs.
		for i := range vb {
			vb[i] = 99
		}
		require.NoError(t, centrality.Betweenness(g, eb, vb))
		for _, b := range vb {
			assert.Zero(t, b)
		}
	}
}

func TestBetweenness_Float32Maps(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	eb, vb := core.NewEdgeFloat32(g), core.NewVertexFloat32(g)
	require.NoError(t, centrality.Betweenness(g, eb, vb))
	for e := range eb {
		assert.InDelta(t, 1.0, float64(eb[e]), 1e-6)
	}
	for v := range vb {
		assert.Zero(t, vb[v])
	}
}

func TestBetweenness_WeightKindCoercion(t *testing.T) {
	// float32 weights against float64 outputs are copied across, exactly as
	// a matching-kind weight map would behave.
	g := buildGraph(t, 4, true, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	w32 := core.EdgeFloat32{1, 2, 1, 1}
	w64 := core.EdgeFloat64{1, 2, 1, 1}

	_, vbA := betweennessOf(t, g, centrality.WithWeights(w32))
	_, vbB := betweennessOf(t, g, centrality.WithWeights(w64))
	require.True(t, floats.EqualApprox(vbA, vbB, eps))
}

func TestBetweenness_DispatchValidation(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})
	eb, vb := core.NewEdgeFloat64(g), core.NewVertexFloat64(g)

	err := centrality.Betweenness(nil, eb, vb)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)

	err = centrality.Betweenness(g, nil, vb)
	assert.ErrorIs(t, err, centrality.ErrNilProperty)
	err = centrality.Betweenness(g, eb, nil)
	assert.ErrorIs(t, err, centrality.ErrNilProperty)

	err = centrality.Betweenness(g, eb, core.NewVertexInt32(g))
	assert.ErrorIs(t, err, centrality.ErrNonFloatProperty)
	err = centrality.Betweenness(g, core.NewEdgeBool(g), vb)
	assert.ErrorIs(t, err, centrality.ErrNonFloatProperty)

	err = centrality.Betweenness(g, core.NewEdgeFloat32(g), vb)
	assert.ErrorIs(t, err, centrality.ErrMixedKinds)

	err = centrality.Betweenness(g, core.EdgeFloat64{1}, vb)
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
	err = centrality.Betweenness(g, eb, core.VertexFloat64{1})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)

	err = centrality.Betweenness(g, eb, vb, centrality.WithWorkers(-1))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)
	err = centrality.Betweenness(g, eb, vb, centrality.WithNormVertexCount(-5))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)

	err = centrality.Betweenness(g, eb, vb, centrality.WithWeights(core.EdgeFloat64{1, -1}))
	assert.ErrorIs(t, err, paths.ErrNegativeWeight)
	err = centrality.Betweenness(g, eb, vb, centrality.WithWeights(core.NewEdgeBool(g)))
	assert.ErrorIs(t, err, centrality.ErrNonFloatProperty)
}
