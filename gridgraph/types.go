// Package gridgraph: types, options and sentinel errors for grid
// construction.
package gridgraph

import "errors"

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Connectivity selects the neighbor model: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 connects N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// String names the connectivity for diagnostics.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Option configures grid construction.
type Option func(*Options)

// Options holds grid parameters.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity. Default Conn4.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4 connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects the neighbor model.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}
