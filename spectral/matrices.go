package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/graphkern/graphkern/core"
)

// Adjacency returns the n x n adjacency matrix: the entry at (i, j) is the
// summed weight of edges j -> i. Undirected edges contribute to both (i, j)
// and (j, i); an undirected self-loop adds twice its weight to the
// diagonal.
// Complexity: O(V^2 + E).
func Adjacency(g *core.Graph, opts ...Option) (*mat.Dense, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	w, err := resolveWeight(g, o.weight)
	if err != nil {
		return nil, err
	}

	return adjacency(g, w), nil
}

// checkNonEmpty rejects graphs whose matrix would have a zero dimension.
func checkNonEmpty(g *core.Graph) error {
	if g.NumVertices() == 0 {
		return ErrEmptyGraph
	}

	return nil
}

func adjacency(g *core.Graph, w []float64) *mat.Dense {
	n := g.NumVertices()
	a := mat.NewDense(n, n, nil)
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Source(e), g.Target(e)
		c := weightAt(w, e)
		a.Set(v, u, a.At(v, u)+c)
		if !g.Directed() {
			a.Set(u, v, a.At(u, v)+c)
		}
	}

	return a
}

// Laplacian returns the n x n Laplacian matrix: the chosen degree on the
// diagonal and -w on the entry (i, j) for every edge j -> i. Directed
// graphs pick the diagonal via WithDeg (default DegTotal); for undirected
// graphs all degree choices coincide. WithNormalized switches to the
// symmetrically normalized form with unit diagonal on vertices of nonzero
// degree.
// Complexity: O(V^2 + E).
func Laplacian(g *core.Graph, opts ...Option) (*mat.Dense, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	w, err := resolveWeight(g, o.weight)
	if err != nil {
		return nil, err
	}

	n := g.NumVertices()
	l := mat.NewDense(n, n, nil)
	deg := degrees(g, w, o.deg)
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Source(e), g.Target(e)
		if u == v {
			continue
		}
		c := weightAt(w, e)
		if o.normalized {
			s := math.Sqrt(deg[u] * deg[v])
			if s == 0 {
				continue
			}
			l.Set(v, u, l.At(v, u)-c/s)
			if !g.Directed() {
				l.Set(u, v, l.At(u, v)-c/s)
			}
			continue
		}
		l.Set(v, u, l.At(v, u)-c)
		if !g.Directed() {
			l.Set(u, v, l.At(u, v)-c)
		}
	}
	for i := 0; i < n; i++ {
		switch {
		case o.normalized && deg[i] != 0:
			l.Set(i, i, 1)
		case !o.normalized:
			l.Set(i, i, deg[i])
		}
	}

	return l, nil
}

// degrees sums edge weights around each vertex per the degree choice.
func degrees(g *core.Graph, w []float64, d Deg) []float64 {
	deg := make([]float64, g.NumVertices())
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Source(e), g.Target(e)
		c := weightAt(w, e)
		if !g.Directed() {
			deg[u] += c
			deg[v] += c
			continue
		}
		if d == DegOut || d == DegTotal {
			deg[u] += c
		}
		if d == DegIn || d == DegTotal {
			deg[v] += c
		}
	}

	return deg
}

// Incidence returns the n x m incidence matrix. For directed graphs the
// entry at (v, e) is +1 where e enters v and -1 where it leaves, so a
// self-loop nets zero. For undirected graphs incident entries are 1.
// Complexity: O(V*E).
func Incidence(g *core.Graph) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n, m := g.NumVertices(), g.NumEdges()
	if n == 0 || m == 0 {
		return nil, ErrEmptyGraph
	}
	b := mat.NewDense(n, m, nil)
	for e := 0; e < m; e++ {
		u, v := g.Source(e), g.Target(e)
		if !g.Directed() {
			b.Set(u, e, 1)
			b.Set(v, e, 1)
			continue
		}
		b.Set(u, e, b.At(u, e)-1)
		b.Set(v, e, b.At(v, e)+1)
	}

	return b, nil
}

// Transition returns the n x n transition matrix: the adjacency matrix
// with every nonzero column rescaled to sum to one. The entry at (i, j) is
// the probability that a random walk at j steps to i.
// Complexity: O(V^2 + E).
func Transition(g *core.Graph, opts ...Option) (*mat.Dense, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	w, err := resolveWeight(g, o.weight)
	if err != nil {
		return nil, err
	}

	a := adjacency(g, w)
	n := g.NumVertices()
	for j := 0; j < n; j++ {
		var k float64
		for i := 0; i < n; i++ {
			k += a.At(i, j)
		}
		if k == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			a.Set(i, j, a.At(i, j)/k)
		}
	}

	return a, nil
}

func buildOptions(g *core.Graph, opts []Option) (options, error) {
	if g == nil {
		return options{}, ErrGraphNil
	}
	if err := checkNonEmpty(g); err != nil {
		return options{}, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, o.err
	}

	return o, nil
}
