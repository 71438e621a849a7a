package ucs

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/veltrane/lodestar/core"
)

// UniformCost computes minimum costs from source over the non-negative
// weighted graph g. With WithTarget the search stops as soon as the
// target's cost is final; otherwise it explores everything reachable
// within MaxCost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrSourceNotFound).
//  3. The WithTarget vertex, if set, must exist (ErrTargetNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight, fail fast).
func UniformCost(g core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if o.Target != "" && !g.HasVertex(o.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, o.Target)
	}

	ix, err := core.NewIndex(g)
	if err != nil {
		return nil, err
	}
	if err := scanWeights(ix); err != nil {
		return nil, err
	}

	r := newRunner(ix, o)
	if err := r.run(source); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// scanWeights rejects negative weights before any search work happens.
func scanWeights(ix *core.Index) error {
	for u := 0; u < ix.Size(); u++ {
		for _, arc := range ix.Out(u) {
			if arc.Weight < 0 {
				return fmt.Errorf("%w: %s→%s weight=%g",
					ErrNegativeWeight, ix.ID(u), ix.ID(arc.To), arc.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state of a single uniform-cost execution:
// dense distance/predecessor slices over the indexed view, a sparse
// finalized set, and the lazily updated frontier heap.
type runner struct {
	ix       *core.Index
	opts     Options
	dist     []float64
	prev     []int
	done     *sparsesets.Set
	pq       frontier
	seq      uint64
	expanded int
}

func newRunner(ix *core.Index, o Options) *runner {
	n := ix.Size()
	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}

	return &runner{
		ix:   ix,
		opts: o,
		dist: dist,
		prev: prev,
		done: sparsesets.New(n),
		pq:   make(frontier, 0, n),
	}
}

// push enqueues v at cost c with the next FIFO sequence number.
func (r *runner) push(v int, c float64) {
	r.seq++
	heap.Push(&r.pq, frontierItem{v: v, cost: c, seq: r.seq})
}

func (r *runner) run(source string) error {
	src, _ := r.ix.Of(source)
	target := -1
	if r.opts.Target != "" {
		target, _ = r.ix.Of(r.opts.Target)
	}

	r.dist[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)

	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(frontierItem)
		u := item.v
		if r.done.Contains(u) {
			continue // stale entry under lazy decrease-key
		}
		if item.cost > r.opts.MaxCost {
			break // everything left is at least this expensive
		}

		// u's cost is final from here on.
		r.done.Insert(u)
		r.expanded++
		if u == target {
			break
		}

		r.relax(u)
	}

	return nil
}

// relax attempts to improve the cost of every out-neighbor of u,
// pushing a fresh frontier entry on strict improvement only — equal
// costs keep their earlier (FIFO) entry.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, arc := range r.ix.Out(u) {
		newDist := du + arc.Weight
		if newDist > r.opts.MaxCost || newDist >= r.dist[arc.To] {
			continue
		}
		r.dist[arc.To] = newDist
		r.prev[arc.To] = u
		r.push(arc.To, newDist)
	}
}

// result converts the dense finalized state back to ID-keyed maps.
func (r *runner) result() *Result {
	res := &Result{
		Dist:     make(map[string]float64, r.expanded),
		Parent:   make(map[string]string, r.expanded),
		Expanded: r.expanded,
		Frontier: r.pq.Len(),
	}
	for _, v := range r.done.Content() {
		res.Dist[r.ix.ID(v)] = r.dist[v]
		if r.prev[v] >= 0 {
			res.Parent[r.ix.ID(v)] = r.ix.ID(r.prev[v])
		}
	}

	return res
}

// frontierItem is one heap entry: vertex index, accumulated cost, and a
// monotone sequence number for FIFO tie-breaking among equal costs.
type frontierItem struct {
	v    int
	cost float64
	seq  uint64
}

// frontier is a min-heap of frontierItem ordered by (cost, seq).
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
