package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/veltrane/lodestar/core"
)

// Sentinel errors returned by the loader.
var (
	// ErrEmptyDocument indicates the input decoded to a graph with no
	// vertices.
	ErrEmptyDocument = errors.New("graphio: document declares no vertices")

	// ErrUnknownBacking indicates an unrecognized backing name.
	ErrUnknownBacking = errors.New("graphio: unknown backing")

	// ErrMalformedEdge indicates an edge with a missing endpoint.
	ErrMalformedEdge = errors.New("graphio: malformed edge")
)

// document is the YAML shape of a graph description.
type document struct {
	Directed bool       `yaml:"directed"`
	Backing  string     `yaml:"backing"`
	Vertices []string   `yaml:"vertices"`
	Edges    []edgeSpec `yaml:"edges"`
}

// edgeSpec is one edge entry. Directed is a pointer so an absent key is
// distinguishable from an explicit false: absent inherits the document
// default, explicit overrides it per edge.
type edgeSpec struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Weight   float64 `yaml:"weight"`
	Directed *bool   `yaml:"directed"`
}

// FromYAML decodes a graph description and materializes it as a
// core.Graph. Unknown YAML keys are rejected.
func FromYAML(data []byte) (core.Graph, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML graph description from r.
func Decode(r io.Reader) (core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return build(doc)
}

// build validates the decoded document and assembles the graph.
func build(doc document) (core.Graph, error) {
	if len(doc.Vertices) == 0 {
		return nil, ErrEmptyDocument
	}
	backing, err := parseBacking(doc.Backing)
	if err != nil {
		return nil, err
	}

	g := core.New(core.WithDirected(doc.Directed), core.WithBacking(backing))
	for _, id := range doc.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", id, err)
		}
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d] needs both from and to", ErrMalformedEdge, i)
		}
		var opts []core.EdgeOption
		if e.Directed != nil {
			opts = append(opts, core.WithEdgeDirected(*e.Directed))
		}
		if err := g.AddEdge(e.From, e.To, e.Weight, opts...); err != nil {
			return nil, fmt.Errorf("graphio: edges[%d] %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// parseBacking maps the document's backing name to a core.Backing.
// The empty string selects the adjacency-list default.
func parseBacking(name string) (core.Backing, error) {
	switch name {
	case "", "adjacency":
		return core.BackingAdjacencyList, nil
	case "matrix":
		return core.BackingMatrix, nil
	case "edgelist":
		return core.BackingEdgeList, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBacking, name)
	}
}
