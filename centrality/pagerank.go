// Package centrality - PageRank over the in-neighbor relation.
package centrality

import (
	"fmt"
	"math"

	"github.com/graphkern/graphkern/core"
)

// PageRank defaults; damping follows the classic formulation.
const (
	// DefaultDamping is the damping factor d applied to propagated rank.
	DefaultDamping = 0.8

	// DefaultEpsilon stops iteration once the total absolute change across
	// all vertices falls below it.
	DefaultEpsilon = 1e-6
)

// PageRankOption configures PageRank via functional arguments.
type PageRankOption func(*pageRankOptions)

type pageRankOptions struct {
	damping float64
	epsilon float64
	maxIter int // 0 => unbounded
	out     core.VertexFloat64

	err error
}

func defaultPageRankOptions() pageRankOptions {
	return pageRankOptions{damping: DefaultDamping, epsilon: DefaultEpsilon}
}

// WithDamping sets the damping factor; it must lie in (0, 1).
func WithDamping(d float64) PageRankOption {
	return func(o *pageRankOptions) {
		if d <= 0 || d >= 1 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: damping must lie in (0,1), got %g", ErrOptionViolation, d)
			return
		}
		o.damping = d
	}
}

// WithEpsilon sets the convergence threshold (total absolute delta).
func WithEpsilon(eps float64) PageRankOption {
	return func(o *pageRankOptions) {
		if eps <= 0 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: epsilon must be positive, got %g", ErrOptionViolation, eps)
			return
		}
		o.epsilon = eps
	}
}

// WithMaxIter bounds the number of iterations; 0 means unbounded.
func WithMaxIter(n int) PageRankOption {
	return func(o *pageRankOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIter cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxIter = n
	}
}

// WithPageRankResult writes the scores into the caller-owned map instead of
// allocating a fresh one. The map must be sized to the graph.
func WithPageRankResult(out core.VertexFloat64) PageRankOption {
	return func(o *pageRankOptions) { o.out = out }
}

// PageRank iterates
//
//	PR(v) = (1-d)/n + d * sum_{u in in(v)} PR(u) / outdeg(u)
//
// until the total absolute change drops below epsilon or MaxIter is
// reached, and returns the scores together with the iteration count.
// Vertices without out-edges simply stop propagating their rank.
// Complexity: O(iterations * (V + E)).
func PageRank(g *core.Graph, opts ...PageRankOption) (core.VertexFloat64, int, error) {
	o := defaultPageRankOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	n := g.NumVertices()
	pr := o.out
	if pr == nil {
		pr = core.NewVertexFloat64(g)
	} else if err := core.CheckVertexLen(g, pr); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return pr, 0, nil
	}

	init := 1 / float64(n)
	for v := range pr {
		pr[v] = init
	}

	next := make([]float64, n)
	base := (1 - o.damping) / float64(n)
	iters := 0
	for {
		var delta float64
		for v := 0; v < n; v++ {
			acc := 0.0
			for _, e := range g.InEdges(v) {
				u := g.Opposite(int(e), v)
				if d := g.OutDegree(u); d > 0 {
					acc += pr[u] / float64(d)
				}
			}
			next[v] = base + o.damping*acc
			delta += math.Abs(next[v] - pr[v])
		}
		copy(pr, next)
		iters++
		if delta < o.epsilon || (o.maxIter > 0 && iters >= o.maxIter) {
			break
		}
	}

	return pr, iters, nil
}
