// Package graphkern is a graph analytics kernel: a compact multigraph
// representation plus the algorithms that operate on it, from shortest
// paths and betweenness centrality to stochastic block-model generation
// and spectral matrices.
//
// Graphs are dense: vertices are the integers [0, n) and edges the
// integers [0, m), so property maps are plain slices indexed directly.
// A graph is a multigraph by construction; parallel edges and self-loops
// are first-class.
//
// Everything is organized under seven subpackages:
//
//	core/       — Graph type, vertex/edge index spaces, typed property maps
//	rng/        — seedable deterministic RNG with derived substreams
//	paths/      — BFS and Dijkstra producing distances, path counts and
//	              the predecessor DAG used by the centrality kernels
//	centrality/ — Brandes betweenness, central point dominance, PageRank
//	sbm/        — stochastic block-model multigraph generator
//	spectral/   — adjacency, Laplacian, incidence and transition matrices
//	topology/   — component labelling, topological sort, spanning trees
//
// Quick example:
//
//	g := core.NewGraph(4)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	vb := core.NewVertexFloat64(g)
//	eb := core.NewEdgeFloat64(g)
//	if err := centrality.Betweenness(g, eb, vb); err != nil {
//		// handle configuration error
//	}
//
// The heavy kernels (betweenness, SBM generation) shard their work across
// goroutines; results are deterministic for a fixed seed and worker count.
// Graphs are treated as read-only while a kernel runs, and callers own
// every property map they pass in.
package graphkern
