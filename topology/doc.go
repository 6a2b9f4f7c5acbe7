// Package topology provides structural graph queries: component labelling,
// topological ordering, and minimum spanning trees.
//
// LabelComponents writes a component id per vertex, numbered 0..N-1 in
// order of first appearance by vertex index. Directed graphs are labelled
// by strongly connected components; WithUndirectedView falls back to weak
// connectivity.
//
// TopologicalSort orders the vertices of a DAG so every edge points
// forward, failing with ErrCycleDetected otherwise.
//
// MinSpanningTree runs Kruskal with union by rank and path compression,
// marking tree edges in a caller-owned boolean edge map. Disconnected
// graphs yield a spanning forest rather than an error.
package topology
