// Package centrality - options and sentinel errors for the centrality
// kernels.
package centrality

import (
	"errors"
	"fmt"

	"github.com/graphkern/graphkern/core"
)

// Sentinel errors for kernel dispatch.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrNilProperty is returned when a required output map is nil.
	ErrNilProperty = errors.New("centrality: property map is nil")

	// ErrNonFloatProperty is returned when a betweenness map (or weight map)
	// is not of floating-point value type.
	ErrNonFloatProperty = errors.New("centrality: property must be of floating point value type")

	// ErrMixedKinds is returned when the vertex and edge betweenness maps do
	// not share the same floating kind.
	ErrMixedKinds = errors.New("centrality: vertex and edge maps must share value kind")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures Betweenness via functional arguments. An invalid option
// is recorded internally and surfaced as ErrOptionViolation on invocation.
type Option func(*options)

// options holds the resolved Betweenness configuration.
type options struct {
	weights   core.EdgeProp // nil => unweighted BFS sweeps
	normalize bool
	nNorm     int // 0 => num_vertices(g)
	workers   int // 0 => GOMAXPROCS

	err error // first invalid option, surfaced at dispatch
}

// defaultOptions returns the zero configuration: unweighted, unnormalized,
// hardware parallelism, normalization count taken from the graph.
func defaultOptions() options { return options{} }

// WithWeights supplies an edge-weight map, switching the sweeps from BFS to
// Dijkstra. The map must be floating-point and cover every edge; weights
// must be nonnegative.
func WithWeights(w core.EdgeProp) Option {
	return func(o *options) { o.weights = w }
}

// WithNormalize toggles normalization of the computed maps.
func WithNormalize(normalize bool) Option {
	return func(o *options) { o.normalize = normalize }
}

// WithNormVertexCount overrides the vertex count used by the normalization
// factors; callers masking the view externally pass their logical count.
//
//	n > 0:  use n
//	n == 0: use num_vertices(g)
//	n < 0:  invalid option -> ErrOptionViolation
func WithNormVertexCount(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NormVertexCount cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.nNorm = n
	}
}

// WithWorkers bounds the source-level parallelism.
//
//	k > 0:  use k workers
//	k == 0: hardware parallelism (GOMAXPROCS)
//	k < 0:  invalid option -> ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.workers = k
	}
}
