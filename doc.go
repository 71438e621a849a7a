// Package lodestar is an in-memory toolkit for building graphs and
// running shortest-path searches over them — from core primitives to
// informed (heuristic-guided) algorithms.
//
// What is lodestar?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: one Graph contract, three interchangeable
//		  backings (adjacency list, adjacency matrix, edge list)
//		• An immutable Path value with functional extension
//		• Uninformed search: BFS, DFS, uniform-cost (Dijkstra-style)
//		• Informed search: greedy best-first and A* with injected heuristics
//		• A search driver with explicit, never-partial results
//		• Grid helpers: 2D grids as graphs + Manhattan/Chebyshev heuristics
//		• A minimal YAML graph-description loader
//
// Everything is organized under flat subpackages:
//
//	core/      — Graph contract, backings, arena-indexed view
//	path/      — immutable Path with cost and length
//	bfs/       — breadth-first traversal, level order
//	dfs/       — depth-first traversal on an explicit stack
//	ucs/       — uniform-cost search, FIFO tie-breaking
//	astar/     — greedy best-first and A*, Heuristic injection
//	search/    — algorithm dispatch and SearchResult reporting
//	gridgraph/ — 2D grids as graphs, heuristic constructors
//	graphio/   — minimal YAML graph-description input
//	builder/   — deterministic graph fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    └──C──┘
//
//	uniform-cost from A to C prefers A→B→C (cost 3) over A→C (cost 5).
//
// Searches never mutate the graph: concurrent searches over one graph
// instance are safe, each owning its own frontier and visited set.
package lodestar
