package sbm

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Generate. All of them describe configuration
// problems detected before sampling starts.
var (
	// ErrGraphNil is returned when the destination graph is nil.
	ErrGraphNil = errors.New("sbm: graph is nil")

	// ErrUndirectedGraph is returned when the destination graph is not
	// directed. The model places sources and targets independently, so an
	// undirected destination would silently conflate the two roles.
	ErrUndirectedGraph = errors.New("sbm: graph must be directed")

	// ErrShapeMismatch is returned when rs, ss, and probs disagree on the
	// number of block pairs, when a probs matrix is not square or too small
	// for the labels it is indexed with, or when a block label is negative.
	ErrShapeMismatch = errors.New("sbm: shape mismatch")

	// ErrEmptyBlock is returned when a block pair has a positive expected
	// edge count but its source or target block has no vertices, or only
	// vertices with zero propensity.
	ErrEmptyBlock = errors.New("sbm: empty block with positive rate")

	// ErrNegativeRate is returned when any expected edge count is negative.
	ErrNegativeRate = errors.New("sbm: negative rate")

	// ErrNegativePropensity is returned when any degree propensity is
	// negative.
	ErrNegativePropensity = errors.New("sbm: negative propensity")

	// ErrRNGNil is returned when the random source is nil.
	ErrRNGNil = errors.New("sbm: rng is nil")

	// ErrOptionViolation is returned when a functional option receives an
	// out-of-range argument.
	ErrOptionViolation = errors.New("sbm: option violation")
)

// Probs carries the expected edge count per block pair, in one of the two
// accepted layouts. The zero value is invalid; construct with ProbsVector
// or ProbsMatrix.
type Probs struct {
	vec []float64
	m   mat.Matrix
}

// ProbsVector wraps a length-K vector of expected counts aligned with the
// rs/ss plan: pair k draws probs[k] edges in expectation.
func ProbsVector(v []float64) Probs { return Probs{vec: v} }

// ProbsMatrix wraps a square matrix of expected counts indexed by block
// label: pair k draws m.At(rs[k], ss[k]) edges in expectation. The matrix
// side must exceed every label referenced by the plan.
func ProbsMatrix(m mat.Matrix) Probs { return Probs{m: m} }

// resolve flattens the probs layout into one rate per block pair.
func (p Probs) resolve(rs, ss []int) ([]float64, error) {
	if p.vec != nil {
		if len(p.vec) != len(rs) {
			return nil, ErrShapeMismatch
		}
		out := make([]float64, len(p.vec))
		copy(out, p.vec)
		return out, nil
	}
	if p.m == nil {
		return nil, ErrShapeMismatch
	}
	r, c := p.m.Dims()
	if r != c {
		return nil, ErrShapeMismatch
	}
	out := make([]float64, len(rs))
	for k := range rs {
		if rs[k] >= r || ss[k] >= c {
			return nil, ErrShapeMismatch
		}
		out[k] = p.m.At(rs[k], ss[k])
	}
	return out, nil
}

// Option configures Generate.
type Option func(*options)

type options struct {
	workers    int
	lowVarSize bool
	err        error
}

func defaultOptions() options {
	return options{workers: 0}
}

// WithWorkers caps the number of goroutines sampling block pairs. Zero or
// unset picks runtime.GOMAXPROCS(0). Negative values are rejected.
func WithWorkers(k int) Option {
	return func(o *options) {
		if k < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.workers = k
	}
}

// WithLowVarianceCounts replaces the Poisson draw of each block pair's edge
// count with floor(rate) plus a Bernoulli trial on the fractional part. The
// expected count per pair is unchanged, but its variance drops from rate to
// at most 1/4.
func WithLowVarianceCounts() Option {
	return func(o *options) { o.lowVarSize = true }
}
