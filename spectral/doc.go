// Package spectral builds the standard matrix representations of a graph
// as gonum dense matrices: adjacency, Laplacian (plain or normalized, with
// a choice of degree for directed graphs), incidence, and transition.
//
// Orientation convention: the entry at row i, column j describes the edge
// j -> i. Columns of the transition matrix therefore sum to one for every
// vertex with outgoing edges. Undirected edges contribute symmetrically,
// and an undirected self-loop adds twice its weight to the diagonal of the
// adjacency matrix.
//
// All constructors accept an optional floating-point edge weight map via
// WithWeight; without it every edge counts as 1. Parallel edges accumulate.
package spectral
