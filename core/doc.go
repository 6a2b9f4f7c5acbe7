// Package core defines the central Graph view and the vertex/edge property
// maps consumed by every kernel in graphkern.
//
// A Graph is a finite multigraph over vertices indexed densely by [0, n).
// Edges are likewise indexed densely by [0, m) and carry an ordered
// (Source, Target) pair; undirected graphs store each edge once, and
// traversal semantics treat it as passable in both directions. Directedness
// is fixed at construction and never changes for the lifetime of the value.
//
// Property maps are externally owned total functions V->T or E->T backed by
// plain slices. Each concrete map carries a runtime Kind tag so that public
// kernel entry points can validate value-type categories before dispatching
// to their generic inner engines; the engines themselves never inspect tags.
//
// Concurrency: a Graph is safe for any number of concurrent readers. It is
// not internally synchronized against writers - kernels treat the view as
// read-only for the duration of a call, and population (AddEdge and friends)
// must be externally serialized.
//
// Errors:
//
//	ErrVertexRange    - vertex index outside [0, n).
//	ErrEdgeRange      - edge index outside [0, m).
//	ErrKindMismatch   - property map has the wrong value-type category.
//	ErrLengthMismatch - property map length disagrees with the graph.
package core
