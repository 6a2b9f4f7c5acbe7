package sbm

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/graphkern/graphkern/core"
	"github.com/graphkern/graphkern/rng"
)

// blockSampler draws vertices of one block with probability proportional to
// a degree propensity. cum is the cumulative propensity over verts.
type blockSampler struct {
	verts []int32
	cum   []float64
}

func (s *blockSampler) draw(r *rng.RNG) (int32, error) {
	i, err := r.ChoiceCumulative(s.cum)
	if err != nil {
		return 0, err
	}

	return s.verts[i], nil
}

// Generate appends stochastic-block-model edges to the directed graph g.
//
// b maps each vertex to its block label; the plan lists K block pairs
// (rs[k], ss[k]) whose expected edge counts come from probs. For every
// pair, a Poisson-distributed number of edges is drawn: each edge's source
// is sampled from block rs[k] weighted by outDeg, its target from block
// ss[k] weighted by inDeg. Self-loops and parallel edges are kept.
//
// Block pair k consumes the substream src.Substream(k) exclusively, so the
// edge multiset depends only on the seed and the inputs, never on the
// worker count. With a fixed worker count the emitted sequence is identical
// run to run: workers take pairs round-robin and their buffers are merged
// in ascending worker order, ascending k within each worker.
//
// All configuration errors (shape mismatches, negative rates or
// propensities, empty blocks with positive rates) are reported before any
// edge is added; on error g is untouched.
// Complexity: O(V + K + E_out * log V) where E_out is the number of edges
// produced.
func Generate(g *core.Graph, b core.VertexInt32, rs, ss []int, probs Probs,
	inDeg, outDeg core.VertexFloat64, src *rng.RNG, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return ErrUndirectedGraph
	}
	if src == nil {
		return ErrRNGNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if err := core.CheckVertexLen(g, b); err != nil {
		return err
	}
	if err := core.CheckVertexLen(g, inDeg); err != nil {
		return err
	}
	if err := core.CheckVertexLen(g, outDeg); err != nil {
		return err
	}
	if len(ss) != len(rs) {
		return fmt.Errorf("%w: %d source blocks, %d target blocks", ErrShapeMismatch, len(rs), len(ss))
	}
	for k := range rs {
		if rs[k] < 0 || ss[k] < 0 {
			return fmt.Errorf("%w: negative block in plan entry %d", ErrShapeMismatch, k)
		}
	}
	rate, err := probs.resolve(rs, ss)
	if err != nil {
		return err
	}
	for k, r := range rate {
		if r < 0 {
			return fmt.Errorf("%w: probs[%d] = %g", ErrNegativeRate, k, r)
		}
	}
	if err := checkPropensity(inDeg, "in"); err != nil {
		return err
	}
	if err := checkPropensity(outDeg, "out"); err != nil {
		return err
	}

	members, err := groupByBlock(b)
	if err != nil {
		return err
	}
	outSamp, err := samplersFor(rs, rate, members, outDeg)
	if err != nil {
		return err
	}
	inSamp, err := samplersFor(ss, rate, members, inDeg)
	if err != nil {
		return err
	}

	K := len(rs)
	if K == 0 {
		return nil
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > K {
		workers = K
	}

	// One edge buffer per block pair; worker w owns pairs w, w+W, w+2W, ...
	buf := make([][][2]int32, K)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			for k := w; k < K; k += workers {
				if rate[k] == 0 {
					continue
				}
				edges, err := sampleBlockPair(src.Substream(uint64(k)), rate[k],
					outSamp[rs[k]], inSamp[ss[k]], o.lowVarSize)
				if err != nil {
					return err
				}
				buf[k] = edges
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for w := 0; w < workers; w++ {
		for k := w; k < K; k += workers {
			for _, e := range buf[k] {
				if _, err := g.AddEdge(int(e[0]), int(e[1])); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// sampleBlockPair draws the edge count and endpoints for one block pair
// from its dedicated substream.
func sampleBlockPair(r *rng.RNG, rate float64, out, in *blockSampler, lowVar bool) ([][2]int32, error) {
	var count int64
	switch {
	case lowVar:
		floor := math.Floor(rate)
		count = int64(floor)
		if r.Float64() < rate-floor {
			count++
		}
	default:
		count = r.Poisson(rate)
	}
	if count == 0 {
		return nil, nil
	}
	edges := make([][2]int32, count)
	for i := range edges {
		u, err := out.draw(r)
		if err != nil {
			return nil, err
		}
		v, err := in.draw(r)
		if err != nil {
			return nil, err
		}
		edges[i] = [2]int32{u, v}
	}

	return edges, nil
}

// groupByBlock buckets vertex indices by their block label.
func groupByBlock(b core.VertexInt32) ([][]int32, error) {
	max := int32(-1)
	for v, lbl := range b {
		if lbl < 0 {
			return nil, fmt.Errorf("%w: negative block label %d at vertex %d", ErrShapeMismatch, lbl, v)
		}
		if lbl > max {
			max = lbl
		}
	}
	members := make([][]int32, max+1)
	for v, lbl := range b {
		members[lbl] = append(members[lbl], int32(v))
	}

	return members, nil
}

// samplersFor builds one weighted sampler per block referenced with a
// positive rate. Blocks that are never drawn from stay nil.
func samplersFor(blocks []int, rate []float64, members [][]int32, deg core.VertexFloat64) ([]*blockSampler, error) {
	side := len(members)
	samp := make([]*blockSampler, side)
	for k, blk := range blocks {
		if rate[k] == 0 {
			continue
		}
		if blk >= side || len(members[blk]) == 0 {
			return nil, fmt.Errorf("%w: block %d has no vertices (plan entry %d)", ErrEmptyBlock, blk, k)
		}
		if samp[blk] != nil {
			continue
		}
		verts := members[blk]
		w := make([]float64, len(verts))
		for i, v := range verts {
			w[i] = deg[v]
		}
		cum := floats.CumSum(make([]float64, len(w)), w)
		if cum[len(cum)-1] <= 0 {
			return nil, fmt.Errorf("%w: block %d has zero total propensity (plan entry %d)", ErrEmptyBlock, blk, k)
		}
		samp[blk] = &blockSampler{verts: verts, cum: cum}
	}

	return samp, nil
}

// checkPropensity rejects negative degree propensities.
func checkPropensity(deg core.VertexFloat64, role string) error {
	for v, d := range deg {
		if d < 0 {
			return fmt.Errorf("%w: %s propensity %g at vertex %d", ErrNegativePropensity, role, d, v)
		}
	}

	return nil
}
