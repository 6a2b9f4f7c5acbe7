// Package centrality - central-point dominance.
package centrality

import (
	"fmt"

	"github.com/graphkern/graphkern/core"
)

// CentralPointDominance computes Freeman's central-point dominance from a
// vertex-betweenness map: the mean gap between the maximum betweenness and
// every vertex's betweenness, normalized by n-1. For vb computed with
// normalization the result lies in [0, 1]. Graphs with n <= 1 yield 0.
//
// The graph view is consulted only for its vertex count; it is never
// reversed or otherwise traversed.
//
// vb must be floating-point and sized to the graph.
// Complexity: O(V).
func CentralPointDominance(g *core.Graph, vb core.VertexProp) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if vb == nil {
		return 0, fmt.Errorf("%w: vertex betweenness", ErrNilProperty)
	}
	if !vb.Kind().IsFloating() {
		return 0, fmt.Errorf("%w: vertex map is %s", ErrNonFloatProperty, vb.Kind())
	}
	if err := core.CheckVertexLen(g, vb); err != nil {
		return 0, err
	}

	n := g.NumVertices()
	if n <= 1 {
		return 0, nil
	}

	switch vbt := vb.(type) {
	case core.VertexFloat64:
		return dominance(vbt, n), nil
	case core.VertexFloat32:
		return dominance(vbt, n), nil
	default:
		return 0, fmt.Errorf("%w: unsupported vertex map %s", ErrNonFloatProperty, vb.Kind())
	}
}

// dominance folds (1/(n-1)) * sum_v (b_max - vb[v]) in double precision.
func dominance[F ~float32 | ~float64](vb []F, n int) float64 {
	bmax := float64(vb[0])
	for _, b := range vb[1:] {
		if float64(b) > bmax {
			bmax = float64(b)
		}
	}
	var sum float64
	for _, b := range vb {
		sum += bmax - float64(b)
	}

	return sum / float64(n-1)
}
