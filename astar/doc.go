// Package astar implements informed (heuristic-guided) search over a
// core.Graph: A* and greedy best-first.
//
// Both algorithms are parameterized by a Heuristic — a pure function
// from vertex ID to an estimate of the remaining cost to the target.
// The core supplies no default heuristic; see gridgraph for ready-made
// Manhattan and Chebyshev constructors.
//
// A* orders its frontier by f(v) = g(v) + h(v), where g is the
// accumulated path cost. It returns a minimum-cost path if and only if
// the heuristic is admissible (never overestimates the true remaining
// cost) and consistent (h(u) ≤ w(u,v) + h(v) across every edge). Both
// properties are caller obligations and are not checked at runtime.
// Ties are broken by lower h first, then insertion order, so runs are
// reproducible.
//
// Greedy best-first orders its frontier by h(v) alone. It expands few
// vertices on well-behaved heuristics but guarantees nothing about path
// cost. Each vertex enters the frontier at most once (h is fixed per
// vertex), backed by an int-keyed heap over the arena view.
//
// Complexity (both):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E).
package astar
