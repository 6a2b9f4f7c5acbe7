// Package sbm generates directed multigraphs from a stochastic block model.
//
// The model is described by a vertex-group label map b, a plan of K block
// pairs (rs[k], ss[k]) with expected edge counts probs[k], and per-vertex
// in/out degree propensities. For every block pair the generator samples a
// Poisson count with mean probs[k], then draws each edge's source from the
// vertices of block rs[k] (weighted by out-propensity) and its target from
// block ss[k] (weighted by in-propensity). Self-loops and parallel edges
// are produced freely; rejecting either is the caller's business.
//
// probs is accepted either as a length-K vector aligned with rs/ss, or as a
// square matrix read at (rs[k], ss[k]).
//
// Determinism: block pair k always draws from the RNG substream derived
// from (seed, k). For a fixed seed, fixed inputs, and fixed worker count
// the emitted edge sequence is bytewise identical; across worker counts the
// edge multiset is identical and only the concatenation order may move,
// following ascending worker index and ascending k within each worker.
//
// Configuration errors are surfaced before any sampling starts: mismatched
// array shapes, negative rates or propensities, and blocks that are empty
// (or have zero total propensity) while their expected edge count is
// positive.
package sbm
