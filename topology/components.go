package topology

import (
	"github.com/graphkern/graphkern/core"
)

// LabelComponents writes the component id of every vertex into comp and
// returns the number of components. Directed graphs are decomposed into
// strongly connected components; pass WithUndirectedView to ignore edge
// direction instead. Ids run 0..N-1 in order of first appearance by vertex
// index, so the labelling is deterministic.
// Complexity: O(V + E).
func LabelComponents(g *core.Graph, comp core.VertexInt32, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if comp == nil {
		return 0, ErrNilProperty
	}
	if err := core.CheckVertexLen(g, comp); err != nil {
		return 0, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var n int
	if g.Directed() && !o.undirectedView {
		n = strongComponents(g, comp)
	} else {
		n = weakComponents(g, comp)
	}

	return relabelByFirstSeen(comp, n), nil
}

// weakComponents floods the graph ignoring edge direction.
func weakComponents(g *core.Graph, comp core.VertexInt32) int {
	n := g.NumVertices()
	for v := range comp {
		comp[v] = -1
	}
	var queue []int32
	next := int32(0)
	for s := 0; s < n; s++ {
		if comp[s] != -1 {
			continue
		}
		comp[s] = next
		queue = append(queue[:0], int32(s))
		for qi := 0; qi < len(queue); qi++ {
			v := int(queue[qi])
			for _, e := range g.OutEdges(v) {
				w := g.Opposite(int(e), v)
				if comp[w] == -1 {
					comp[w] = next
					queue = append(queue, int32(w))
				}
			}
			if g.Directed() {
				for _, e := range g.InEdges(v) {
					w := g.Opposite(int(e), v)
					if comp[w] == -1 {
						comp[w] = next
						queue = append(queue, int32(w))
					}
				}
			}
		}
		next++
	}

	return int(next)
}

// sccFrame is one explicit stack entry of the iterative Tarjan traversal:
// the vertex and the scan position inside its out-edge list.
type sccFrame struct {
	v  int32
	ei int
}

// strongComponents runs Tarjan's algorithm with an explicit stack.
func strongComponents(g *core.Graph, comp core.VertexInt32) int {
	n := g.NumVertices()
	index := make([]int32, n)
	low := make([]int32, n)
	onStack := make([]bool, n)
	for v := range index {
		index[v] = -1
	}
	var (
		stack  []int32
		frames []sccFrame
		idx    int32
		count  int32
	)
	for s := 0; s < n; s++ {
		if index[s] != -1 {
			continue
		}
		frames = append(frames[:0], sccFrame{v: int32(s)})
		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			v := int(f.v)
			if f.ei == 0 {
				index[v] = idx
				low[v] = idx
				idx++
				stack = append(stack, f.v)
				onStack[v] = true
			}
			descended := false
			out := g.OutEdges(v)
			for f.ei < len(out) {
				e := int(out[f.ei])
				f.ei++
				w := g.Target(e)
				if index[w] == -1 {
					frames = append(frames, sccFrame{v: int32(w)})
					descended = true
					break
				}
				if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
			}
			if descended {
				continue
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				p := int(frames[len(frames)-1].v)
				if low[v] < low[p] {
					low[p] = low[v]
				}
			}
			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = count
					if int(w) == v {
						break
					}
				}
				count++
			}
		}
	}

	return int(count)
}

// relabelByFirstSeen renumbers component ids in order of first appearance
// by vertex index.
func relabelByFirstSeen(comp core.VertexInt32, n int) int {
	remap := make([]int32, n)
	for i := range remap {
		remap[i] = -1
	}
	next := int32(0)
	for v, c := range comp {
		if remap[c] == -1 {
			remap[c] = next
			next++
		}
		comp[v] = remap[comp[v]]
	}

	return int(next)
}
