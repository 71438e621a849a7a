// Package graphio loads a graph description from a small YAML document
// into a core.Graph. It is the only input surface of the module; there
// is no rendering or export counterpart.
//
// Document shape:
//
//	directed: true            # optional, default false
//	backing: adjacency        # optional: adjacency | matrix | edgelist
//	vertices: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2, directed: true}   # per-edge override
//
// Decoding is strict: unknown fields are rejected so a typo in a key
// fails loudly instead of silently dropping data. Endpoints must appear
// in the vertices list; an undeclared endpoint surfaces as
// core.ErrVertexNotFound with the offending edge position.
package graphio
