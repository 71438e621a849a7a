// Package ucs implements uniform-cost search (Dijkstra-style) over a
// core.Graph with non-negative edge weights.
//
// The frontier is a min-heap ordered by accumulated path cost; ties are
// broken by insertion order (FIFO among equal costs) so runs are
// reproducible. The heap uses the lazy decrease-key pattern: improved
// costs push duplicate entries and stale ones are discarded at pop.
// A vertex's cost is final when it is popped, which is what licenses
// the early exit when a target is supplied via WithTarget.
//
// Weights must be non-negative; the graph is scanned up front and
// ErrNegativeWeight is returned before any search work happens, never a
// silently wrong answer.
//
// The search runs over the arena-indexed view (core.Index): distances
// and predecessors live in dense slices and the visited set is a sparse
// set over vertex indices.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy decrease-key.
package ucs
