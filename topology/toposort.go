package topology

import (
	"github.com/graphkern/graphkern/core"
)

// Vertex colors of the iterative DFS: untouched, on the stack, done.
const (
	white uint8 = iota
	gray
	black
)

// topoFrame is one explicit stack entry: the vertex and the scan position
// inside its out-edge list.
type topoFrame struct {
	v  int32
	ei int
}

// TopologicalSort returns an ordering of all vertices in which every edge
// points from an earlier to a later position. Roots are taken in ascending
// vertex order and out-edges in insertion order, so the result is
// deterministic. Undirected graphs are rejected; a cycle (including a
// self-loop) yields ErrCycleDetected.
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph) ([]int32, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	n := g.NumVertices()
	color := make([]uint8, n)
	order := make([]int32, 0, n)
	var frames []topoFrame
	for s := 0; s < n; s++ {
		if color[s] != white {
			continue
		}
		frames = append(frames[:0], topoFrame{v: int32(s)})
		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			v := int(f.v)
			if f.ei == 0 {
				color[v] = gray
			}
			descended := false
			out := g.OutEdges(v)
			for f.ei < len(out) {
				e := int(out[f.ei])
				f.ei++
				w := g.Target(e)
				switch color[w] {
				case gray:
					return nil, ErrCycleDetected
				case white:
					frames = append(frames, topoFrame{v: int32(w)})
					descended = true
				}
				if descended {
					break
				}
			}
			if descended {
				continue
			}
			color[v] = black
			order = append(order, f.v)
			frames = frames[:len(frames)-1]
		}
	}

	// DFS emits a post-order; the topological order is its reverse.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
