package spectral

import (
	"errors"
	"fmt"

	"github.com/graphkern/graphkern/core"
)

// Sentinel errors returned by the matrix constructors.
var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("spectral: graph is nil")

	// ErrEmptyGraph is returned when the requested matrix would have a zero
	// dimension: no vertices, or no edges for the incidence matrix.
	ErrEmptyGraph = errors.New("spectral: matrix would have a zero dimension")

	// ErrNonFloatWeight is returned when a weight map is not of a
	// floating-point kind.
	ErrNonFloatWeight = errors.New("spectral: weight map must be float64 or float32")

	// ErrOptionViolation is returned when a functional option receives an
	// out-of-range argument.
	ErrOptionViolation = errors.New("spectral: option violation")
)

// Deg selects which degree fills the Laplacian diagonal of a directed
// graph. Undirected graphs ignore the choice: all three coincide.
type Deg uint8

const (
	// DegTotal sums the weights of all incident edges, in and out.
	DegTotal Deg = iota
	// DegOut sums the weights of outgoing edges.
	DegOut
	// DegIn sums the weights of incoming edges.
	DegIn
)

// String names the degree choice for error messages.
func (d Deg) String() string {
	switch d {
	case DegTotal:
		return "total"
	case DegOut:
		return "out"
	case DegIn:
		return "in"
	default:
		return fmt.Sprintf("deg(%d)", uint8(d))
	}
}

// Option configures a matrix constructor.
type Option func(*options)

type options struct {
	weight     core.EdgeProp
	deg        Deg
	normalized bool
	err        error
}

func defaultOptions() options {
	return options{deg: DegTotal}
}

// WithWeight supplies an edge weight map. The map must be float64 or
// float32 and cover the whole edge index space.
func WithWeight(w core.EdgeProp) Option {
	return func(o *options) { o.weight = w }
}

// WithDeg picks the degree used on the Laplacian diagonal. Only Laplacian
// reads it; the default is DegTotal.
func WithDeg(d Deg) Option {
	return func(o *options) {
		if d > DegIn {
			o.err = fmt.Errorf("%w: unknown degree %s", ErrOptionViolation, d)
			return
		}
		o.deg = d
	}
}

// WithNormalized switches Laplacian to the symmetrically normalized form:
// unit diagonal on vertices with nonzero degree and off-diagonal entries
// scaled by 1/sqrt(deg_i * deg_j).
func WithNormalized() Option {
	return func(o *options) { o.normalized = true }
}

// resolveWeight flattens an optional weight map into one float64 per edge.
// A nil map yields nil, which the builders treat as unit weights.
func resolveWeight(g *core.Graph, w core.EdgeProp) ([]float64, error) {
	if w == nil {
		return nil, nil
	}
	if !w.Kind().IsFloating() {
		return nil, fmt.Errorf("%w: got %s", ErrNonFloatWeight, w.Kind())
	}
	if err := core.CheckEdgeLen(g, w); err != nil {
		return nil, err
	}
	switch wt := w.(type) {
	case core.EdgeFloat64:
		return wt, nil
	case core.EdgeFloat32:
		out := make([]float64, len(wt))
		for i, v := range wt {
			out[i] = float64(v)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported concrete type", ErrNonFloatWeight)
	}
}

// weightAt reads edge e from a resolved weight vector, defaulting to 1.
func weightAt(w []float64, e int) float64 {
	if w == nil {
		return 1
	}

	return w[e]
}
