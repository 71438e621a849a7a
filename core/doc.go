// Package core defines the Graph contract and its three interchangeable
// backings, plus the arena-indexed view consumed by cost-based searches.
//
// One contract, three representations:
//
//   - BackingAdjacencyList (default) — per-vertex out-arc slices.
//     Neighbors O(deg(v)), HasEdge O(deg(v)), space O(V+E).
//     The right default for sparse graphs and traversal-heavy workloads.
//   - BackingMatrix — dense V×V weight table.
//     HasEdge and Weight O(1), Neighbors O(V), space O(V²).
//     Pays memory for constant-time membership; best for small dense graphs.
//   - BackingEdgeList — flat arc slice.
//     HasEdge and Neighbors O(E), space O(E).
//     Smallest footprint; query time is the trade-off.
//
// All backings store vertices in an arena: IDs live in an append-only
// slice and are addressed by stable integer indices, so no backing holds
// vertex pointers to one another and there is no cyclic ownership.
//
// Determinism: Vertices returns IDs in insertion order, and Neighbors
// returns out-arcs in a stable order per backing (arc insertion order
// for the list backings, vertex-index order for the matrix), so searches
// over the same construction sequence are reproducible.
//
// Edge semantics:
//
//   - Every edge endpoint must already exist as a vertex; AddEdge
//     rejects unknown endpoints with ErrVertexNotFound.
//   - An undirected edge is mirrored at insertion time: both
//     orientations are stored with equal weight, and both HasEdge
//     directions hold from that point on.
//   - Re-adding the same ordered pair overwrites the stored weight
//     (last write wins); the arc keeps its original position in the
//     neighbor order.
//
// Concurrency: mutating methods take a write lock, queries a read lock.
// A graph that is no longer being mutated is safe for any number of
// concurrent searches.
package core
