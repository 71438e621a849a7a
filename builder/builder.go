package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/veltrane/lodestar/core"
)

// ErrTooFewVertices indicates a size below the shape's minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices for shape")

// WeightFunc computes the weight of the edge between vertex indices
// i and j. The default assigns unit weight everywhere.
type WeightFunc func(i, j int) float64

// Option configures fixture construction.
type Option func(*Options)

// Options holds builder parameters.
type Options struct {
	// Weight assigns edge weights by endpoint index pair.
	Weight WeightFunc

	// Graph options forwarded to core.New (directedness, backing).
	Graph []core.Option
}

// DefaultOptions returns unit weights on an undirected adjacency-list
// graph.
func DefaultOptions() Options {
	return Options{Weight: func(int, int) float64 { return 1 }}
}

// WithWeightFunc sets the edge weight function.
func WithWeightFunc(w WeightFunc) Option {
	return func(o *Options) {
		if w != nil {
			o.Weight = w
		}
	}
}

// WithGraphOptions forwards options to the underlying core.New call.
func WithGraphOptions(gopts ...core.Option) Option {
	return func(o *Options) { o.Graph = gopts }
}

// ID formats the builder's vertex identifier for index i, e.g. "v7".
func ID(i int) string {
	return fmt.Sprintf("v%d", i)
}

// Path builds the path graph v0—v1—...—v(n-1). Needs n >= 2.
func Path(n int, opts ...Option) (core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: path needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g, o, err := seed(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(ID(i), ID(i+1), o.Weight(i, i+1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle graph v0—v1—...—v(n-1)—v0. Needs n >= 3.
func Cycle(n int, opts ...Option) (core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n >= 3, got %d", ErrTooFewVertices, n)
	}
	g, o, err := seed(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if err := g.AddEdge(ID(i), ID(j), o.Weight(i, j)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds a star: v0 is the hub, v1..v(n-1) are leaves. Needs
// n >= 2.
func Star(n int, opts ...Option) (core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: star needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g, o, err := seed(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(ID(0), ID(i), o.Weight(0, i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete graph on n vertices. Needs n >= 2.
// Edge count grows quadratically; keep n modest.
func Complete(n int, opts ...Option) (core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: complete needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g, o, err := seed(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(ID(i), ID(j), o.Weight(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomSparse builds a connected sparse graph: a spanning path plus
// roughly extra additional chords chosen by the seeded RNG. The same
// (n, extra, rngSeed) triple always yields the same graph.
func RandomSparse(n, extra int, rngSeed int64, opts ...Option) (core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: random sparse needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g, o, err := seed(n, opts)
	if err != nil {
		return nil, err
	}
	// spanning path guarantees connectivity
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(ID(i), ID(i+1), o.Weight(i, i+1)); err != nil {
			return nil, err
		}
	}
	rng := rand.New(rand.NewSource(rngSeed))
	for k := 0; k < extra; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		if err := g.AddEdge(ID(i), ID(j), o.Weight(i, j)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// seed resolves options and creates the graph with its n vertices.
func seed(n int, opts []Option) (core.Graph, Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := core.New(o.Graph...)
	for i := 0; i < n; i++ {
		if err := g.AddVertex(ID(i)); err != nil {
			return nil, o, err
		}
	}

	return g, o, nil
}
