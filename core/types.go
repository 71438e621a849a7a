// Package core: Graph contract, Edge type, construction options and
// sentinel errors shared by all backings.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a weight lookup for an ordered pair with
	// no stored arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilGraph indicates a nil Graph was passed where one is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a directed arc From→To with a real-valued weight.
//
// An undirected insertion is represented as two mirrored arcs with
// Directed == false; Neighbors and Edges report arcs, so an undirected
// edge appears once per orientation.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost of the arc.
	Weight float64

	// Directed reports whether this arc was inserted as one-way (true)
	// or as half of a mirrored undirected edge (false).
	Directed bool
}

// Graph is the representation-agnostic store contract satisfied by all
// three backings. Construction happens once per problem instance; the
// search packages only ever call the query side.
type Graph interface {
	// AddVertex registers id. Adding an existing ID is a no-op.
	// Returns ErrEmptyVertexID for the empty string.
	AddVertex(id string) error

	// HasVertex reports whether id is registered.
	HasVertex(id string) bool

	// AddEdge stores an arc from→to with the given weight, mirrored when
	// the effective orientation is undirected. Both endpoints must
	// already exist (ErrVertexNotFound otherwise). Re-adding an ordered
	// pair overwrites its weight (last write wins).
	AddEdge(from, to string, weight float64, opts ...EdgeOption) error

	// HasEdge reports whether an arc from→to is stored.
	HasEdge(from, to string) bool

	// Weight returns the stored weight of the arc from→to.
	// Returns ErrVertexNotFound for unknown endpoints and ErrEdgeNotFound
	// when no arc is stored.
	Weight(from, to string) (float64, error)

	// Neighbors returns the out-arcs of id (every returned Edge has
	// From == id) in the backing's stable order.
	Neighbors(id string) ([]Edge, error)

	// Vertices returns all vertex IDs in insertion order.
	Vertices() []string

	// VertexCount reports the number of registered vertices.
	VertexCount() int

	// EdgeCount reports the number of stored arcs; an undirected edge
	// contributes two.
	EdgeCount() int

	// Directed reports the graph-wide default orientation for new edges.
	Directed() bool
}

// Backing selects the internal representation of a Graph.
type Backing int

const (
	// BackingAdjacencyList stores per-vertex out-arc slices (default).
	BackingAdjacencyList Backing = iota

	// BackingMatrix stores a dense V×V weight table.
	BackingMatrix

	// BackingEdgeList stores a flat arc slice.
	BackingEdgeList
)

// String names the backing for diagnostics.
func (b Backing) String() string {
	switch b {
	case BackingAdjacencyList:
		return "adjacency-list"
	case BackingMatrix:
		return "matrix"
	case BackingEdgeList:
		return "edge-list"
	default:
		return "unknown"
	}
}

// config collects construction-time options shared by the backings.
type config struct {
	directed bool
	backing  Backing
}

// Option configures a Graph before creation.
type Option func(*config)

// WithDirected sets the default orientation for all new edges
// (true = directed, false = undirected mirroring).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithBacking selects the internal representation.
func WithBacking(b Backing) Option {
	return func(c *config) { c.backing = b }
}

// EdgeOption configures a single edge at insertion time.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's default orientation for this
// edge only.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// New creates an empty Graph. By default the graph is undirected and
// backed by an adjacency list.
// Complexity: O(1).
func New(opts ...Option) Graph {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.backing {
	case BackingMatrix:
		return newMatrixGraph(cfg)
	case BackingEdgeList:
		return newEdgeListGraph(cfg)
	default:
		return newAdjacencyGraph(cfg)
	}
}
