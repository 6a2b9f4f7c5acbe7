// Package core - Graph type, construction options, and sentinel errors.
package core

import "errors"

// NullVertex is the sentinel returned for out-of-range vertex lookups.
// It never collides with a valid dense index.
const NullVertex = -1

// Sentinel errors for core graph and property-map operations.
var (
	// ErrVertexRange indicates a vertex index outside [0, NumVertices).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrEdgeRange indicates an edge index outside [0, NumEdges).
	ErrEdgeRange = errors.New("core: edge index out of range")

	// ErrKindMismatch indicates a property map of the wrong value-type category.
	ErrKindMismatch = errors.New("core: property map kind mismatch")

	// ErrLengthMismatch indicates a property map whose length disagrees with
	// the graph it is attached to.
	ErrLengthMismatch = errors.New("core: property map length mismatch")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected fixes the directedness of the graph (true = directed).
// Directedness is a static attribute: it cannot change after NewGraph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a dense-index multigraph view.
//
// Vertices are the integers [0, n); edges are the integers [0, m) with
// endpoints recorded in from/to. out[v] lists the edge indices leaving v
// (for undirected graphs: all edges incident to v). in[v] lists the edge
// indices entering v and is maintained only for directed graphs; for
// undirected graphs InEdges aliases OutEdges.
//
// Self-loops and parallel edges are always permitted - generators produce
// multigraphs, and it is the caller's responsibility to reject either if
// undesired.
type Graph struct {
	directed bool

	from []int32 // edge index -> source vertex
	to   []int32 // edge index -> target vertex

	out [][]int32 // vertex -> outgoing (or incident) edge indices
	in  [][]int32 // vertex -> incoming edge indices; directed graphs only
}

// NewGraph creates a graph with n vertices and no edges. Negative n is
// treated as zero. By default the graph is undirected; pass
// WithDirected(true) for directed semantics.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{out: make([][]int32, n)}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.in = make([][]int32, n)
	}

	return g
}
