package path

import (
	"errors"
	"fmt"
	"strings"

	"github.com/veltrane/lodestar/core"
)

// ErrDisconnected is returned when a path extension does not depart
// from the path's current terminal vertex.
var ErrDisconnected = errors.New("path: edge does not extend the path")

// Path is an immutable walk: consecutive edges share an endpoint
// (edges[i].To == edges[i+1].From). The zero value is the empty path.
type Path struct {
	edges []core.Edge
	cost  float64
}

// New builds a path from the given edges, validating contiguity.
// Complexity: O(len(edges)).
func New(edges ...core.Edge) (Path, error) {
	p := Path{}
	var err error
	for _, e := range edges {
		if p, err = p.Append(e); err != nil {
			return Path{}, err
		}
	}

	return p, nil
}

// Append returns a new path extended by e. The receiver is never
// mutated and its backing storage is never shared with the result, so
// two frontier states may extend the same prefix independently.
// Fails with ErrDisconnected when e.From differs from the path's
// terminal vertex.
// Complexity: O(Length) for the defensive copy.
func (p Path) Append(e core.Edge) (Path, error) {
	if len(p.edges) > 0 && p.edges[len(p.edges)-1].To != e.From {
		return Path{}, fmt.Errorf("%w: %s→%s after terminal %s",
			ErrDisconnected, e.From, e.To, p.edges[len(p.edges)-1].To)
	}
	edges := make([]core.Edge, len(p.edges)+1)
	copy(edges, p.edges)
	edges[len(p.edges)] = e

	return Path{edges: edges, cost: p.cost + e.Weight}, nil
}

// Cost is the sum of edge weights along the path.
func (p Path) Cost() float64 { return p.cost }

// Length is the number of edges in the path.
func (p Path) Length() int { return len(p.edges) }

// Empty reports whether the path has no edges.
func (p Path) Empty() bool { return len(p.edges) == 0 }

// Start returns the first vertex of the walk, or "" for the empty path.
func (p Path) Start() string {
	if len(p.edges) == 0 {
		return ""
	}

	return p.edges[0].From
}

// End returns the terminal vertex of the walk, or "" for the empty path.
func (p Path) End() string {
	if len(p.edges) == 0 {
		return ""
	}

	return p.edges[len(p.edges)-1].To
}

// Edges returns a copy of the edge sequence.
func (p Path) Edges() []core.Edge {
	out := make([]core.Edge, len(p.edges))
	copy(out, p.edges)

	return out
}

// Vertices returns the vertex IDs along the walk, start to end.
// The empty path yields nil.
func (p Path) Vertices() []string {
	if len(p.edges) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.edges)+1)
	out = append(out, p.edges[0].From)
	for _, e := range p.edges {
		out = append(out, e.To)
	}

	return out
}

// String renders the walk for diagnostics, e.g. "A→B→C (cost=3)".
// The format is not a compatibility contract.
func (p Path) String() string {
	if len(p.edges) == 0 {
		return "(empty path)"
	}
	var b strings.Builder
	b.WriteString(p.edges[0].From)
	for _, e := range p.edges {
		b.WriteString("→")
		b.WriteString(e.To)
	}
	fmt.Fprintf(&b, " (cost=%g)", p.cost)

	return b.String()
}
