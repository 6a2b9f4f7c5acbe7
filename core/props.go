// Package core - externally owned vertex and edge property maps.
//
// A property map is a total function over the vertex (or edge) index space,
// backed by a plain slice so that kernels can index it directly. Concrete
// map types carry a Kind tag; kernel entry points validate the tag once at
// the dispatch boundary and hand the raw slice to their inner engines.
package core

import "fmt"

// Kind is the runtime value-type tag of a property map.
type Kind uint8

// Supported property value-type categories.
const (
	Float64 Kind = iota // double precision floating point
	Float32             // single precision floating point
	Int32               // small signed integer
	Bool                // boolean flag
)

// String names the kind for error messages.
func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsFloating reports whether the kind belongs to the floating-point
// category required by the centrality kernels.
func (k Kind) IsFloating() bool { return k == Float64 || k == Float32 }

// VertexProp is the capability set a kernel needs from a vertex property
// map before dispatch: its value-type tag and its length.
type VertexProp interface {
	Kind() Kind
	Len() int
}

// EdgeProp is the capability set a kernel needs from an edge property map
// before dispatch: its value-type tag and its length.
type EdgeProp interface {
	Kind() Kind
	Len() int
}

// Concrete vertex property maps. Indexing is the access path on hot loops;
// Get/Put exist for callers that prefer the narrow map contract.

// VertexFloat64 is a total map V -> float64.
type VertexFloat64 []float64

// NewVertexFloat64 allocates a zeroed map sized to the graph.
func NewVertexFloat64(g *Graph) VertexFloat64 { return make(VertexFloat64, g.NumVertices()) }

// Kind reports Float64.
func (p VertexFloat64) Kind() Kind { return Float64 }

// Len returns the size of the index space.
func (p VertexFloat64) Len() int { return len(p) }

// Get returns the value at vertex v.
func (p VertexFloat64) Get(v int) float64 { return p[v] }

// Put stores t at vertex v.
func (p VertexFloat64) Put(v int, t float64) { p[v] = t }

// VertexFloat32 is a total map V -> float32.
type VertexFloat32 []float32

// NewVertexFloat32 allocates a zeroed map sized to the graph.
func NewVertexFloat32(g *Graph) VertexFloat32 { return make(VertexFloat32, g.NumVertices()) }

// Kind reports Float32.
func (p VertexFloat32) Kind() Kind { return Float32 }

// Len returns the size of the index space.
func (p VertexFloat32) Len() int { return len(p) }

// Get returns the value at vertex v.
func (p VertexFloat32) Get(v int) float32 { return p[v] }

// Put stores t at vertex v.
func (p VertexFloat32) Put(v int, t float32) { p[v] = t }

// VertexInt32 is a total map V -> int32.
type VertexInt32 []int32

// NewVertexInt32 allocates a zeroed map sized to the graph.
func NewVertexInt32(g *Graph) VertexInt32 { return make(VertexInt32, g.NumVertices()) }

// Kind reports Int32.
func (p VertexInt32) Kind() Kind { return Int32 }

// Len returns the size of the index space.
func (p VertexInt32) Len() int { return len(p) }

// Get returns the value at vertex v.
func (p VertexInt32) Get(v int) int32 { return p[v] }

// Put stores t at vertex v.
func (p VertexInt32) Put(v int, t int32) { p[v] = t }

// Concrete edge property maps.

// EdgeFloat64 is a total map E -> float64.
type EdgeFloat64 []float64

// NewEdgeFloat64 allocates a zeroed map sized to the graph.
func NewEdgeFloat64(g *Graph) EdgeFloat64 { return make(EdgeFloat64, g.NumEdges()) }

// Kind reports Float64.
func (p EdgeFloat64) Kind() Kind { return Float64 }

// Len returns the size of the index space.
func (p EdgeFloat64) Len() int { return len(p) }

// Get returns the value at edge e.
func (p EdgeFloat64) Get(e int) float64 { return p[e] }

// Put stores t at edge e.
func (p EdgeFloat64) Put(e int, t float64) { p[e] = t }

// EdgeFloat32 is a total map E -> float32.
type EdgeFloat32 []float32

// NewEdgeFloat32 allocates a zeroed map sized to the graph.
func NewEdgeFloat32(g *Graph) EdgeFloat32 { return make(EdgeFloat32, g.NumEdges()) }

// Kind reports Float32.
func (p EdgeFloat32) Kind() Kind { return Float32 }

// Len returns the size of the index space.
func (p EdgeFloat32) Len() int { return len(p) }

// Get returns the value at edge e.
func (p EdgeFloat32) Get(e int) float32 { return p[e] }

// Put stores t at edge e.
func (p EdgeFloat32) Put(e int, t float32) { p[e] = t }

// EdgeBool is a total map E -> bool.
type EdgeBool []bool

// NewEdgeBool allocates a zeroed map sized to the graph.
func NewEdgeBool(g *Graph) EdgeBool { return make(EdgeBool, g.NumEdges()) }

// Kind reports Bool.
func (p EdgeBool) Kind() Kind { return Bool }

// Len returns the size of the index space.
func (p EdgeBool) Len() int { return len(p) }

// Get returns the value at edge e.
func (p EdgeBool) Get(e int) bool { return p[e] }

// Put stores t at edge e.
func (p EdgeBool) Put(e int, t bool) { p[e] = t }

// CheckVertexLen verifies that p covers the whole vertex index space of g.
func CheckVertexLen(g *Graph, p VertexProp) error {
	if p.Len() != g.NumVertices() {
		return fmt.Errorf("%w: vertex map len %d, graph n=%d", ErrLengthMismatch, p.Len(), g.NumVertices())
	}

	return nil
}

// CheckEdgeLen verifies that p covers the whole edge index space of g.
func CheckEdgeLen(g *Graph, p EdgeProp) error {
	if p.Len() != g.NumEdges() {
		return fmt.Errorf("%w: edge map len %d, graph m=%d", ErrLengthMismatch, p.Len(), g.NumEdges())
	}

	return nil
}
