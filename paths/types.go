// Package paths - result buffers, scalar constraints, and sentinel errors.
package paths

import "errors"

// Sentinel errors for sweep execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrSourceRange is returned when the source index lies outside [0, n).
	ErrSourceRange = errors.New("paths: source vertex out of range")

	// ErrWeightsLength is returned when the weight vector does not cover the
	// edge index space.
	ErrWeightsLength = errors.New("paths: weight vector length mismatch")

	// ErrNegativeWeight is returned when Dijkstra meets a negative weight.
	ErrNegativeWeight = errors.New("paths: negative edge weight")
)

// Float constrains the weighted engine to concrete floating scalar types.
type Float interface {
	~float32 | ~float64
}

// Unreached marks unreachable vertices in the unweighted Dist vector.
const Unreached int32 = -1

// Result holds the outputs of one unweighted (BFS) sweep.
type Result struct {
	// Dist is the hop count from the source; Unreached if no path exists.
	Dist []int32

	// Sigma counts shortest paths from the source; 0 if unreachable, 1 at
	// the source itself.
	Sigma []int64

	// Preds[v] lists the edge indices (u,v) with Dist[u]+1 == Dist[v].
	Preds [][]int32

	// Order lists the reached vertices in nondecreasing Dist.
	Order []int32
}

// NewResult allocates sweep buffers for an n-vertex graph.
func NewResult(n int) *Result {
	return &Result{
		Dist:  make([]int32, n),
		Sigma: make([]int64, n),
		Preds: make([][]int32, n),
		Order: make([]int32, 0, n),
	}
}

// reset prepares the buffers for a fresh sweep, growing them when the graph
// is larger than the previous one. Preds sub-slices are truncated in place
// so their capacity survives across sources.
func (r *Result) reset(n int) {
	if cap(r.Dist) < n {
		r.Dist = make([]int32, n)
		r.Sigma = make([]int64, n)
		r.Preds = make([][]int32, n)
		r.Order = make([]int32, 0, n)
	}
	r.Dist = r.Dist[:n]
	r.Sigma = r.Sigma[:n]
	r.Preds = r.Preds[:n]
	r.Order = r.Order[:0]
	for i := 0; i < n; i++ {
		r.Dist[i] = Unreached
		r.Sigma[i] = 0
		r.Preds[i] = r.Preds[i][:0]
	}
}

// WeightedResult holds the outputs of one weighted (Dijkstra) sweep.
type WeightedResult[F Float] struct {
	// Dist is the weight sum from the source; +Inf if no path exists.
	Dist []F

	// Sigma counts shortest paths from the source under exact floating
	// comparison of path lengths.
	Sigma []int64

	// Preds[v] lists the edge indices (u,v) with Dist[u]+w(u,v) == Dist[v].
	Preds [][]int32

	// Order lists the finalized vertices in nondecreasing Dist.
	Order []int32
}

// NewWeightedResult allocates sweep buffers for an n-vertex graph.
func NewWeightedResult[F Float](n int) *WeightedResult[F] {
	return &WeightedResult[F]{
		Dist:  make([]F, n),
		Sigma: make([]int64, n),
		Preds: make([][]int32, n),
		Order: make([]int32, 0, n),
	}
}

// reset mirrors Result.reset for the weighted buffers.
func (r *WeightedResult[F]) reset(n int, inf F) {
	if cap(r.Dist) < n {
		r.Dist = make([]F, n)
		r.Sigma = make([]int64, n)
		r.Preds = make([][]int32, n)
		r.Order = make([]int32, 0, n)
	}
	r.Dist = r.Dist[:n]
	r.Sigma = r.Sigma[:n]
	r.Preds = r.Preds[:n]
	r.Order = r.Order[:0]
	for i := 0; i < n; i++ {
		r.Dist[i] = inf
		r.Sigma[i] = 0
		r.Preds[i] = r.Preds[i][:0]
	}
}
