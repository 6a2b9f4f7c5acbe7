package topology

import (
	"errors"

	"github.com/graphkern/graphkern/core"
)

// Sentinel errors shared by the topology operations.
var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("topology: graph is nil")

	// ErrNilProperty is returned when a required output map is nil.
	ErrNilProperty = errors.New("topology: property map is nil")

	// ErrUndirectedGraph is returned by TopologicalSort for graphs without
	// edge direction.
	ErrUndirectedGraph = errors.New("topology: graph must be directed")

	// ErrDirectedGraph is returned by MinSpanningTree for directed graphs.
	ErrDirectedGraph = errors.New("topology: graph must be undirected")

	// ErrCycleDetected is returned by TopologicalSort when the graph is not
	// a DAG.
	ErrCycleDetected = errors.New("topology: cycle detected")

	// ErrNonFloatWeight is returned when a weight map is not of a
	// floating-point kind.
	ErrNonFloatWeight = errors.New("topology: weight map must be float64 or float32")
)

// Option configures a topology operation.
type Option func(*options)

type options struct {
	weights        core.EdgeProp
	undirectedView bool
}

// WithWeights supplies edge weights to MinSpanningTree. Without it every
// edge costs the same and ties break by edge index.
func WithWeights(w core.EdgeProp) Option {
	return func(o *options) { o.weights = w }
}

// WithUndirectedView makes LabelComponents ignore edge direction on a
// directed graph, producing weakly connected components.
func WithUndirectedView() Option {
	return func(o *options) { o.undirectedView = true }
}
