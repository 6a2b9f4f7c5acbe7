// Package paths - weighted sweep (Dijkstra with a lazy-decrease-key heap).
package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/graphkern/graphkern/core"
)

// Dijkstra runs a weighted sweep from src and returns freshly allocated
// buffers. weights must cover the edge index space and be nonnegative.
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[F Float](g *core.Graph, weights []F, src int) (*WeightedResult[F], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res := NewWeightedResult[F](g.NumVertices())
	if err := DijkstraInto(g, weights, src, res); err != nil {
		return nil, err
	}

	return res, nil
}

// DijkstraInto runs a weighted sweep from src into res, reusing its buffers.
//
// The heap follows the lazy-decrease-key strategy: improved distances push
// duplicate entries, and stale entries are discarded on pop. Shortest-path
// ties are recognized under exact floating comparison, so each parallel
// edge realizing the same minimum contributes independently to Sigma and
// appears separately in Preds. Negative weights abort with
// ErrNegativeWeight; self-loops are skipped.
// Complexity: O((V + E) log V) time.
func DijkstraInto[F Float](g *core.Graph, weights []F, src int, res *WeightedResult[F]) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.NumVertices()
	if g.Vertex(src) == core.NullVertex {
		return fmt.Errorf("%w: %d (n=%d)", ErrSourceRange, src, n)
	}
	if len(weights) != g.NumEdges() {
		return fmt.Errorf("%w: len %d, m=%d", ErrWeightsLength, len(weights), g.NumEdges())
	}

	inf := F(math.Inf(1))
	res.reset(n, inf)
	res.Dist[src] = 0
	res.Sigma[src] = 1

	done := make([]bool, n)
	pq := make(nodePQ[F], 0, n)
	heap.Init(&pq)
	heap.Push(&pq, nodeItem[F]{v: int32(src), dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem[F])
		u := int(item.v)
		if done[u] {
			continue // stale lazy entry
		}
		done[u] = true
		res.Order = append(res.Order, item.v)

		du := res.Dist[u]
		for _, e := range g.OutEdges(u) {
			v := g.Opposite(int(e), u)
			if v == u {
				continue // self-loop
			}
			if done[v] {
				// Already finalized; with nonnegative weights no improvement
				// or new tie is possible, and skipping keeps Preds acyclic
				// even across zero-weight edges.
				continue
			}
			w := weights[e]
			if w < 0 {
				return fmt.Errorf("%w: edge %d (%d->%d) weight=%v",
					ErrNegativeWeight, e, g.Source(int(e)), g.Target(int(e)), w)
			}
			nd := du + w
			switch {
			case nd < res.Dist[v]:
				// Strictly better path: previous predecessors are obsolete.
				res.Dist[v] = nd
				res.Sigma[v] = res.Sigma[u]
				res.Preds[v] = append(res.Preds[v][:0], e)
				heap.Push(&pq, nodeItem[F]{v: int32(v), dist: nd})
			case nd == res.Dist[v]:
				// Another shortest path through u along e.
				res.Sigma[v] += res.Sigma[u]
				res.Preds[v] = append(res.Preds[v], e)
			}
		}
	}

	return nil
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem[F Float] struct {
	v    int32
	dist F
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ[F Float] []nodeItem[F]

func (pq nodePQ[F]) Len() int            { return len(pq) }
func (pq nodePQ[F]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[F]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[F]) Push(x interface{}) { *pq = append(*pq, x.(nodeItem[F])) }
func (pq *nodePQ[F]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
