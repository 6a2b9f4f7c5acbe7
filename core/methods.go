// Package core - Graph accessors and mutators.
//
// Mutators (AddVertex, AddVertices, AddEdge) must be externally serialized;
// accessors are safe for concurrent use once mutation has stopped.
package core

import "fmt"

// Directed reports the static directedness of the graph.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// NumVertices returns n, the number of vertices.
// Complexity: O(1).
func (g *Graph) NumVertices() int { return len(g.out) }

// NumEdges returns m, the number of edges. Parallel edges and self-loops
// each count once.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.from) }

// Vertex maps a dense index to itself, or NullVertex when i lies outside
// [0, n). The index space is sparse-safe: callers may probe freely.
// Complexity: O(1).
func (g *Graph) Vertex(i int) int {
	if i < 0 || i >= len(g.out) {
		return NullVertex
	}

	return i
}

// AddVertex appends one vertex and returns its index.
// Complexity: amortized O(1).
func (g *Graph) AddVertex() int {
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return len(g.out) - 1
}

// AddVertices appends k vertices (k <= 0 is a no-op) and returns the index
// of the first one added, or NullVertex when nothing was added.
// Complexity: amortized O(k).
func (g *Graph) AddVertices(k int) int {
	if k <= 0 {
		return NullVertex
	}
	first := len(g.out)
	g.out = append(g.out, make([][]int32, k)...)
	if g.directed {
		g.in = append(g.in, make([][]int32, k)...)
	}

	return first
}

// AddEdge inserts the edge u->v (or u-v when undirected) and returns its
// dense edge index. Both endpoints must already exist; otherwise
// ErrVertexRange is returned with the offending index in context.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int) (int, error) {
	n := len(g.out)
	if u < 0 || u >= n {
		return NullVertex, fmt.Errorf("%w: source %d (n=%d)", ErrVertexRange, u, n)
	}
	if v < 0 || v >= n {
		return NullVertex, fmt.Errorf("%w: target %d (n=%d)", ErrVertexRange, v, n)
	}

	e := len(g.from)
	g.from = append(g.from, int32(u))
	g.to = append(g.to, int32(v))
	g.out[u] = append(g.out[u], int32(e))
	if g.directed {
		g.in[v] = append(g.in[v], int32(e))
	} else if v != u {
		// Undirected: the edge is incident to both endpoints but stored once.
		g.out[v] = append(g.out[v], int32(e))
	}

	return e, nil
}

// Source returns the source endpoint of edge e, or NullVertex when e lies
// outside [0, m).
// Complexity: O(1).
func (g *Graph) Source(e int) int {
	if e < 0 || e >= len(g.from) {
		return NullVertex
	}

	return int(g.from[e])
}

// Target returns the target endpoint of edge e, or NullVertex when e lies
// outside [0, m).
// Complexity: O(1).
func (g *Graph) Target(e int) int {
	if e < 0 || e >= len(g.to) {
		return NullVertex
	}

	return int(g.to[e])
}

// Opposite returns the endpoint of edge e that is not v. For a self-loop it
// returns v itself. The result is NullVertex when e is out of range or v is
// not an endpoint of e.
// Complexity: O(1).
func (g *Graph) Opposite(e, v int) int {
	if e < 0 || e >= len(g.from) {
		return NullVertex
	}
	u, w := int(g.from[e]), int(g.to[e])
	switch v {
	case u:
		return w
	case w:
		return u
	default:
		return NullVertex
	}
}

// OutEdges returns the edge indices leaving v (for undirected graphs: every
// edge incident to v, self-loops once). The returned slice is shared with
// the graph and must not be mutated. Out-of-range v yields nil.
// Complexity: O(1).
func (g *Graph) OutEdges(v int) []int32 {
	if v < 0 || v >= len(g.out) {
		return nil
	}

	return g.out[v]
}

// InEdges returns the edge indices entering v. For undirected graphs this is
// identical to OutEdges. The returned slice is shared with the graph and
// must not be mutated. Out-of-range v yields nil.
// Complexity: O(1).
func (g *Graph) InEdges(v int) []int32 {
	if v < 0 || v >= len(g.out) {
		return nil
	}
	if !g.directed {
		return g.out[v]
	}

	return g.in[v]
}

// OutDegree counts edges leaving v; for undirected graphs, edges incident
// to v. Self-loops count once. Out-of-range v yields 0.
// Complexity: O(1).
func (g *Graph) OutDegree(v int) int { return len(g.OutEdges(v)) }

// InDegree counts edges entering v; for undirected graphs this equals
// OutDegree. Out-of-range v yields 0.
// Complexity: O(1).
func (g *Graph) InDegree(v int) int { return len(g.InEdges(v)) }
