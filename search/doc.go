// Package search is the driver tying the store, the path model and the
// algorithm packages together: pick an Algorithm, supply source and
// target, get back a SearchResult that is always terminal.
//
// The algorithm set is a closed enumeration — BFS, DFS, UniformCost,
// GreedyBestFirst, AStar — dispatched by tagged value, not by open
// subclassing; the set is fixed and finite.
//
// A Result is never partial. Its Outcome is one of:
//
//   - OutcomeFound     — Path holds a full source→target walk.
//   - OutcomeNoPath    — the frontier was exhausted; a legitimate
//     search answer, not an error.
//   - OutcomeCancelled — cooperative cancellation was observed between
//     frontier pops.
//
// Programming mistakes stay errors: unknown source/target vertices
// (core.ErrVertexNotFound), a missing heuristic for an informed
// algorithm (ErrMissingHeuristic), an algorithm value outside the
// enumeration (ErrUnknownAlgorithm), and negative weights surfaced by
// the cost-sensitive algorithms.
package search
