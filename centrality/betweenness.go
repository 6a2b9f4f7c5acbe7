// Package centrality - Brandes betweenness: dispatch and generic engine.
package centrality

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/graphkern/graphkern/core"
	"github.com/graphkern/graphkern/paths"
)

// Betweenness computes vertex and edge betweenness centrality into the
// caller-owned maps vb and eb.
//
// On return vb[v] holds the Brandes betweenness sum over all shortest-path
// pairs s != v != t (and eb[e] the analogous edge-passing sum); for
// undirected graphs each unordered pair is counted once. With
// WithNormalize(true) the maps are scaled by the standard factors, taking
// the vertex count from WithNormVertexCount when supplied.
//
// Both maps must be floating-point (ErrNonFloatProperty) of the same kind
// (ErrMixedKinds) and sized to the graph (core.ErrLengthMismatch). A weight
// map supplied via WithWeights switches the sweeps to Dijkstra; negative
// weights are rejected with paths.ErrNegativeWeight.
//
// Complexity: O(V*E) unweighted, O(V*E + V*(V+E) log V) weighted, divided
// across the worker pool; O(V+E) scratch per worker.
func Betweenness(g *core.Graph, eb core.EdgeProp, vb core.VertexProp, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if g == nil {
		return ErrGraphNil
	}
	if vb == nil {
		return fmt.Errorf("%w: vertex betweenness", ErrNilProperty)
	}
	if eb == nil {
		return fmt.Errorf("%w: edge betweenness", ErrNilProperty)
	}
	if !vb.Kind().IsFloating() {
		return fmt.Errorf("%w: vertex map is %s", ErrNonFloatProperty, vb.Kind())
	}
	if !eb.Kind().IsFloating() {
		return fmt.Errorf("%w: edge map is %s", ErrNonFloatProperty, eb.Kind())
	}
	if err := core.CheckVertexLen(g, vb); err != nil {
		return err
	}
	if err := core.CheckEdgeLen(g, eb); err != nil {
		return err
	}

	// The dispatch boundary: resolve runtime kind tags once, then hand raw
	// slices to the scalar-generic engine.
	switch vbt := vb.(type) {
	case core.VertexFloat64:
		ebt, ok := eb.(core.EdgeFloat64)
		if !ok {
			return fmt.Errorf("%w: vertex float64, edge %s", ErrMixedKinds, eb.Kind())
		}
		w, err := weightVector[float64](g, o.weights)
		if err != nil {
			return err
		}

		return brandes(g, w, ebt, vbt, o)
	case core.VertexFloat32:
		ebt, ok := eb.(core.EdgeFloat32)
		if !ok {
			return fmt.Errorf("%w: vertex float32, edge %s", ErrMixedKinds, eb.Kind())
		}
		w, err := weightVector[float32](g, o.weights)
		if err != nil {
			return err
		}

		return brandes(g, w, ebt, vbt, o)
	default:
		return fmt.Errorf("%w: unsupported vertex map %s", ErrNonFloatProperty, vb.Kind())
	}
}

// weightVector resolves the optional weight map to the engine scalar. A
// matching kind is used in place; the other floating kind is copied across
// (mirroring how the original system coerces weight maps to the output
// value type). nil stays nil, selecting the unweighted sweeps.
func weightVector[F paths.Float](g *core.Graph, w core.EdgeProp) ([]F, error) {
	if w == nil {
		return nil, nil
	}
	if err := core.CheckEdgeLen(g, w); err != nil {
		return nil, fmt.Errorf("weight map: %w", err)
	}
	var out []F
	switch wt := w.(type) {
	case core.EdgeFloat64:
		if same, ok := any([]float64(wt)).([]F); ok {
			return validateWeights(same)
		}
		out = make([]F, len(wt))
		for i, x := range wt {
			out[i] = F(x)
		}
	case core.EdgeFloat32:
		if same, ok := any([]float32(wt)).([]F); ok {
			return validateWeights(same)
		}
		out = make([]F, len(wt))
		for i, x := range wt {
			out[i] = F(x)
		}
	default:
		return nil, fmt.Errorf("%w: weight map is %s", ErrNonFloatProperty, w.Kind())
	}

	return validateWeights(out)
}

// validateWeights fails fast on negative entries so the parallel sweeps
// never start on an invalid configuration.
func validateWeights[F paths.Float](w []F) ([]F, error) {
	for e, x := range w {
		if x < 0 {
			return nil, fmt.Errorf("%w: edge %d weight=%v", paths.ErrNegativeWeight, e, x)
		}
	}

	return w, nil
}

// brandes runs the source sweeps across a worker pool and folds the
// per-worker partial maps into vb and eb.
func brandes[F paths.Float](g *core.Graph, weights []F, eb, vb []F, o options) error {
	for i := range vb {
		vb[i] = 0
	}
	for i := range eb {
		eb[i] = 0
	}

	n := g.NumVertices()
	if n > 1 {
		workers := o.workers
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		if workers > n {
			workers = n
		}

		vparts := make([][]F, workers)
		eparts := make([][]F, workers)
		var grp errgroup.Group
		for w := 0; w < workers; w++ {
			vparts[w] = make([]F, len(vb))
			eparts[w] = make([]F, len(eb))
			vp, ep, first := vparts[w], eparts[w], w
			grp.Go(func() error {
				return brandesWorker(g, weights, vp, ep, first, workers)
			})
		}
		if err := grp.Wait(); err != nil {
			return err
		}

		// Merge in ascending worker index: for a fixed worker count the
		// summation order, and therefore the result bits, are reproducible.
		for w := 0; w < workers; w++ {
			for i, x := range vparts[w] {
				vb[i] += x
			}
			for i, x := range eparts[w] {
				eb[i] += x
			}
		}

		if !g.Directed() {
			// The sweeps visit every unordered pair from both endpoints;
			// fold the double count away.
			for i := range vb {
				vb[i] /= 2
			}
			for i := range eb {
				eb[i] /= 2
			}
		}
	}

	if o.normalize {
		nNorm := o.nNorm
		if nNorm == 0 {
			nNorm = n
		}
		normalizeBetweenness(g, eb, vb, nNorm)
	}

	return nil
}

// brandesWorker sweeps the sources {first, first+stride, ...}, accumulating
// dependencies into its private partial maps.
func brandesWorker[F paths.Float](g *core.Graph, weights []F, vp, ep []F, first, stride int) error {
	n := g.NumVertices()
	delta := make([]F, n)

	if weights == nil {
		res := paths.NewResult(n)
		for s := first; s < n; s += stride {
			if err := paths.BFSInto(g, s, res); err != nil {
				return err
			}
			accumulate(g, s, res.Order, res.Preds, res.Sigma, delta, vp, ep)
		}

		return nil
	}

	res := paths.NewWeightedResult[F](n)
	for s := first; s < n; s += stride {
		if err := paths.DijkstraInto(g, weights, s, res); err != nil {
			return err
		}
		accumulate(g, s, res.Order, res.Preds, res.Sigma, delta, vp, ep)
	}

	return nil
}

// accumulate performs the reverse pass of Brandes' algorithm for source s.
// delta must be zero on entry; it is re-zeroed over the touched vertices
// before returning so workers can reuse it across sources.
func accumulate[F paths.Float](g *core.Graph, s int, order []int32, preds [][]int32, sigma []int64,
	delta, vp, ep []F) {
	for i := len(order) - 1; i >= 0; i-- {
		w := int(order[i])
		dw := delta[w]
		for _, e := range preds[w] {
			v := g.Opposite(int(e), w)
			c := F(sigma[v]) / F(sigma[w]) * (1 + dw)
			delta[v] += c
			ep[e] += c
		}
		if w != s {
			vp[w] += dw
		}
	}
	for _, w := range order {
		delta[w] = 0
	}
}

// normalizeBetweenness applies the standard scaling: vertex values by
// 1/((n-1)(n-2)), edge values by 1/(n(n-1)), both doubled for undirected
// graphs. Degenerate counts leave the factor at 1.
func normalizeBetweenness[F paths.Float](g *core.Graph, eb, vb []F, n int) {
	vfactor, efactor := 1.0, 1.0
	if n > 2 {
		vfactor = 1 / float64((n-1)*(n-2))
	}
	if n > 1 {
		efactor = 1 / float64(n*(n-1))
	}
	if !g.Directed() {
		vfactor *= 2
		efactor *= 2
	}
	for i := range vb {
		vb[i] *= F(vfactor)
	}
	for i := range eb {
		eb[i] *= F(efactor)
	}
}
