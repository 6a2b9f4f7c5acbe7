package topology

import (
	"fmt"
	"sort"

	"github.com/graphkern/graphkern/core"
)

// dsu is a union-find over vertex indices with union by rank and path
// compression.
type dsu struct {
	parent []int32
	rank   []uint8
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int32, n), rank: make([]uint8, n)}
	for i := range d.parent {
		d.parent[i] = int32(i)
	}

	return d
}

func (d *dsu) find(u int32) int32 {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v, reporting whether they were disjoint.
func (d *dsu) union(u, v int32) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}

// MinSpanningTree marks the edges of a minimum spanning forest of the
// undirected graph g in the caller-owned map tree, and returns the total
// weight of the marked edges. Kruskal's algorithm is used: edges are taken
// by ascending weight with ties broken by edge index, so the result is
// deterministic. Without WithWeights every edge costs 1. Self-loops are
// never part of a spanning tree; disconnected graphs yield one tree per
// component.
// Complexity: O(E log E + E alpha(V)).
func MinSpanningTree(g *core.Graph, tree core.EdgeBool, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.Directed() {
		return 0, ErrDirectedGraph
	}
	if tree == nil {
		return 0, ErrNilProperty
	}
	if err := core.CheckEdgeLen(g, tree); err != nil {
		return 0, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	w, err := resolveWeights(g, o.weights)
	if err != nil {
		return 0, err
	}

	for e := range tree {
		tree[e] = false
	}
	m := g.NumEdges()
	edges := make([]int32, 0, m)
	for e := 0; e < m; e++ {
		if g.Source(e) == g.Target(e) {
			continue
		}
		edges = append(edges, int32(e))
	}
	if w != nil {
		sort.SliceStable(edges, func(i, j int) bool {
			return w[edges[i]] < w[edges[j]]
		})
	}

	d := newDSU(g.NumVertices())
	var total float64
	for _, e := range edges {
		u, v := g.Source(int(e)), g.Target(int(e))
		if !d.union(int32(u), int32(v)) {
			continue
		}
		tree[e] = true
		if w != nil {
			total += w[e]
		} else {
			total++
		}
	}

	return total, nil
}

// resolveWeights flattens an optional floating-point weight map into one
// float64 per edge; nil means unit weights.
func resolveWeights(g *core.Graph, w core.EdgeProp) ([]float64, error) {
	if w == nil {
		return nil, nil
	}
	if !w.Kind().IsFloating() {
		return nil, fmt.Errorf("%w: got %s", ErrNonFloatWeight, w.Kind())
	}
	if err := core.CheckEdgeLen(g, w); err != nil {
		return nil, err
	}
	switch wt := w.(type) {
	case core.EdgeFloat64:
		return wt, nil
	case core.EdgeFloat32:
		out := make([]float64, len(wt))
		for i, v := range wt {
			out[i] = float64(v)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported concrete type", ErrNonFloatWeight)
	}
}
