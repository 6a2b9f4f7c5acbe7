// Package paths - unweighted sweep (breadth-first search).
package paths

import (
	"fmt"

	"github.com/graphkern/graphkern/core"
)

// BFS runs an unweighted sweep from src and returns freshly allocated
// buffers. Returns ErrGraphNil or ErrSourceRange on invalid input.
// Complexity: O(V + E) time, O(V + E) space.
func BFS(g *core.Graph, src int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res := NewResult(g.NumVertices())
	if err := BFSInto(g, src, res); err != nil {
		return nil, err
	}

	return res, nil
}

// BFSInto runs an unweighted sweep from src into res, reusing its buffers.
// Parallel edges contribute independently to Sigma and appear separately in
// Preds; self-loops are skipped.
// Complexity: O(V + E) time; no allocation after buffer warm-up.
func BFSInto(g *core.Graph, src int, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.NumVertices()
	if g.Vertex(src) == core.NullVertex {
		return fmt.Errorf("%w: %d (n=%d)", ErrSourceRange, src, n)
	}

	res.reset(n)
	res.Dist[src] = 0
	res.Sigma[src] = 1

	// Order doubles as the FIFO queue: vertices are appended on discovery
	// and scanned front to back, which leaves it in nondecreasing Dist with
	// ties in discovery order.
	res.Order = append(res.Order, int32(src))
	for qi := 0; qi < len(res.Order); qi++ {
		v := int(res.Order[qi])
		dv := res.Dist[v]
		for _, e := range g.OutEdges(v) {
			w := g.Opposite(int(e), v)
			if w == v {
				continue // self-loop
			}
			if res.Dist[w] == Unreached {
				res.Dist[w] = dv + 1
				res.Order = append(res.Order, int32(w))
			}
			if res.Dist[w] == dv+1 {
				res.Sigma[w] += res.Sigma[v]
				res.Preds[w] = append(res.Preds[w], e)
			}
		}
	}

	return nil
}
