// Package centrality implements centrality kernels over a core.Graph view:
// Brandes betweenness (vertex and edge), the derived central-point
// dominance, and PageRank.
//
// Betweenness follows Brandes' accumulation: one shortest-path sweep per
// source (BFS when no weight map is supplied, Dijkstra otherwise), then a
// reverse pass over the predecessor DAG that folds partial dependencies
// into the caller-owned vertex and edge maps. Sources are embarrassingly
// parallel: they are striped across a worker pool, each worker owns its
// scratch buffers and partial accumulators, and the partials are summed
// after the pool drains. The result differs from a serial run only by
// floating-point associativity.
//
// The public entry points are the only place where property-map value-type
// tags are inspected: betweenness requires floating-point vertex and edge
// maps of the same kind, and the inner engine is generic over that scalar.
//
// Normalization scales vertex values by 1/((n-1)(n-2)) and edge values by
// 1/(n(n-1)), doubling both factors for undirected graphs where the sum
// visits each unordered source/target pair twice.
package centrality
