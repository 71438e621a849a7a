// Package dfs implements depth-first search over a core.Graph on an
// explicit stack.
//
// DFS is a reachability traversal: it makes no optimality promise about
// the paths it finds. The frontier is an explicit slice-backed stack
// rather than recursion, so memory use is bounded and predictable and
// deep graphs cannot blow the goroutine stack.
//
// Determinism: neighbors are pushed in reverse neighbor order so they
// pop — and are therefore visited — in the graph's stable neighbor
// order.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack, visited set and result maps.
package dfs
