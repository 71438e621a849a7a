package core

import "fmt"

// arena is the append-only vertex store shared by all backings: IDs are
// held in insertion order and addressed by stable integer indices, so
// the backings never reference vertices through pointers.
type arena struct {
	ids []string
	pos map[string]int
}

func newArena() arena {
	return arena{pos: make(map[string]int)}
}

// add registers id and returns its index; existing IDs keep their index.
func (a *arena) add(id string) int {
	if i, ok := a.pos[id]; ok {
		return i
	}
	i := len(a.ids)
	a.ids = append(a.ids, id)
	a.pos[id] = i

	return i
}

// lookup resolves id to its index.
func (a *arena) lookup(id string) (int, bool) {
	i, ok := a.pos[id]

	return i, ok
}

// list returns a copy of the IDs in insertion order.
func (a *arena) list() []string {
	out := make([]string, len(a.ids))
	copy(out, a.ids)

	return out
}

// IndexedArc is an out-arc in the indexed view: destination index plus
// traversal weight.
type IndexedArc struct {
	To     int
	Weight float64
}

// Index is a read-only, integer-indexed snapshot of a Graph, built once
// per search so cost-based algorithms can run over dense slices instead
// of string-keyed maps.
//
// Index ordering matches Vertices() insertion order; Out ordering
// matches Neighbors ordering of the source graph. The snapshot does not
// observe later mutations of the graph.
type Index struct {
	ids []string
	pos map[string]int
	out [][]IndexedArc
}

// NewIndex snapshots g into an indexed view.
// Complexity: O(V + E) time and space.
func NewIndex(g Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	ix := &Index{
		ids: ids,
		pos: make(map[string]int, len(ids)),
		out: make([][]IndexedArc, len(ids)),
	}
	for i, id := range ids {
		ix.pos[id] = i
	}
	for i, id := range ids {
		arcs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("core: indexing neighbors of %q: %w", id, err)
		}
		if len(arcs) == 0 {
			continue
		}
		row := make([]IndexedArc, len(arcs))
		for j, e := range arcs {
			row[j] = IndexedArc{To: ix.pos[e.To], Weight: e.Weight}
		}
		ix.out[i] = row
	}

	return ix, nil
}

// Size reports the number of indexed vertices.
func (ix *Index) Size() int { return len(ix.ids) }

// Of resolves a vertex ID to its index.
func (ix *Index) Of(id string) (int, bool) {
	i, ok := ix.pos[id]

	return i, ok
}

// ID resolves an index back to its vertex ID.
// Panics on out-of-range indices, mirroring slice semantics.
func (ix *Index) ID(i int) string { return ix.ids[i] }

// Out returns the out-arcs of vertex index i. The returned slice is
// shared; callers must not mutate it.
func (ix *Index) Out(i int) []IndexedArc { return ix.out[i] }
