package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/veltrane/lodestar/core"
)

// AStar searches for a minimum-cost path from source to target, guided
// by h. Optimality holds iff h is admissible and consistent (caller
// obligations, documented on Heuristic).
//
// Validation order: ErrNilGraph, ErrNilHeuristic, ErrSourceNotFound,
// ErrTargetNotFound. Negative weights are rejected with
// ErrNegativeWeight the moment one is reached during expansion.
// An exhausted frontier yields Found == false, never an error.
func AStar(g core.Graph, source, target string, h Heuristic, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	ix, err := core.NewIndex(g)
	if err != nil {
		return nil, err
	}
	n := ix.Size()
	src, _ := ix.Of(source)
	dst, _ := ix.Of(target)

	gScore := make([]float64, n)
	prev := make([]int, n)
	hCache := make([]float64, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		prev[i] = -1
		hCache[i] = math.NaN() // not yet evaluated
	}
	estimate := func(v int) float64 {
		if math.IsNaN(hCache[v]) {
			hCache[v] = h(ix.ID(v))
		}

		return hCache[v]
	}

	closed := sparsesets.New(n)
	open := make(openSet, 0, n)
	heap.Init(&open)

	var seq uint64
	push := func(v int, gv float64) {
		seq++
		hv := estimate(v)
		heap.Push(&open, openItem{v: v, g: gv, h: hv, f: gv + hv, seq: seq})
	}

	gScore[src] = 0
	push(src, 0)

	res := &Result{}
	for open.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := heap.Pop(&open).(openItem)
		u := item.v
		if closed.Contains(u) {
			continue // stale entry under lazy decrease-key
		}
		closed.Insert(u)
		res.Expanded++

		if u == dst {
			res.Found = true
			res.Route, res.Cost = reconstruct(ix, prev, src, dst)
			res.Frontier = open.Len()

			return res, nil
		}

		for _, arc := range ix.Out(u) {
			if arc.Weight < 0 {
				return nil, fmt.Errorf("%w: %s→%s weight=%g",
					ErrNegativeWeight, ix.ID(u), ix.ID(arc.To), arc.Weight)
			}
			tentative := gScore[u] + arc.Weight
			if tentative >= gScore[arc.To] {
				continue
			}
			gScore[arc.To] = tentative
			prev[arc.To] = u
			push(arc.To, tentative)
		}
	}

	res.Frontier = 0

	return res, nil
}

// reconstruct walks prev from dst back to src and sums arc weights.
func reconstruct(ix *core.Index, prev []int, src, dst int) ([]string, float64) {
	idxSeq := []int{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		idxSeq = append(idxSeq, cur)
	}
	route := make([]string, len(idxSeq))
	for i, v := range idxSeq {
		route[len(idxSeq)-1-i] = ix.ID(v)
	}
	var cost float64
	for i := 1; i < len(idxSeq); i++ {
		to, from := idxSeq[i-1], idxSeq[i]
		for _, arc := range ix.Out(from) {
			if arc.To == to {
				cost += arc.Weight

				break
			}
		}
	}

	return route, cost
}

// openItem is one frontier entry. f orders the heap; h then seq break
// ties for reproducible runs.
type openItem struct {
	v   int
	g   float64
	h   float64
	f   float64
	seq uint64
}

// openSet is a min-heap of openItem ordered by (f, h, seq).
type openSet []openItem

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	if s[i].h != s[j].h {
		return s[i].h < s[j].h
	}

	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) { *s = append(*s, x.(openItem)) }

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]

	return item
}
