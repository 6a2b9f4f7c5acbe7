// Package paths implements the single-source shortest-path engine shared by
// the centrality kernels.
//
// For a source s the engine produces, in one sweep:
//
//   - Dist    - shortest-path length from s (hop count for BFS, weight sum
//     for Dijkstra; unreachable vertices are marked).
//   - Sigma   - the number of distinct shortest paths from s, with every
//     parallel edge counted independently.
//   - Preds   - the predecessor DAG: for each vertex, the edges (u,v) lying
//     on some shortest path from s to v. Preds[s] is empty.
//   - Order   - the finalized vertices in nondecreasing Dist; popping it in
//     reverse gives the accumulation order Brandes' algorithm needs.
//
// The unweighted sweep is a plain BFS with ties broken by discovery order.
// The weighted sweep is Dijkstra over a lazy-decrease-key min-heap; edge
// weights must be nonnegative, and shortest-path ties are recognized under
// exact floating comparison.
//
// Self-loops never lie on a shortest path and are skipped.
//
// Results can be reused across sources via BFSInto/DijkstraInto to keep the
// per-source cost allocation-free inside parallel kernels.
package paths
