// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// BFS explores vertices in increasing edge-count distance from a start
// vertex using a FIFO frontier and a visited set; the first discovery
// of any vertex is therefore a minimum-edge-count path to it. Edge
// weights are ignored — use ucs for cost-sensitive searches.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set and result maps.
//
// Options: WithContext (cancellation between dequeues), WithMaxDepth,
// WithFilterNeighbor, and the OnEnqueue/OnDequeue/OnVisit hooks.
package bfs
