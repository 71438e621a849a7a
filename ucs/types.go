// Package ucs: options, sentinel errors and the result type for
// uniform-cost search.
package ucs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by UniformCost.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("ucs: graph is nil")

	// ErrSourceNotFound indicates the source vertex is absent.
	ErrSourceNotFound = errors.New("ucs: source vertex not found")

	// ErrTargetNotFound indicates the WithTarget vertex is absent.
	ErrTargetNotFound = errors.New("ucs: target vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Uniform-cost search requires non-negative weights as a
	// precondition; this is checked, not silently mis-answered.
	ErrNegativeWeight = errors.New("ucs: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ucs: invalid option supplied")

	// ErrNoPathTo is returned by Result.PathTo for unreached vertices.
	ErrNoPathTo = errors.New("ucs: vertex not reached")
)

// Option configures UniformCost behavior.
type Option func(*Options)

// Options holds parameters for a uniform-cost run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// Target, if non-empty, stops the search as soon as that vertex is
	// popped from the frontier — its cost is final at that point.
	// Empty means full single-source exploration.
	Target string

	// MaxCost caps exploration: vertices whose final cost would exceed
	// it are never finalized. Defaults to +Inf.
	MaxCost float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no target and
// no cost cap.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.Inf(1),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the search once the given vertex's cost is final.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithMaxCost caps the exploration radius. Negative caps are invalid
// and surface as ErrOptionViolation.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, max)

			return
		}
		o.MaxCost = max
	}
}

// Result holds the outcome of a uniform-cost run. Dist and Parent
// contain finalized vertices only: entries are present exactly for the
// vertices whose minimum cost is proven.
type Result struct {
	// Dist maps vertex ID → minimum cost from the source.
	Dist map[string]float64

	// Parent maps vertex ID → predecessor on a minimum-cost path.
	Parent map[string]string

	// Expanded counts finalized (popped) vertices.
	Expanded int

	// Frontier is the heap size at termination, stale entries included.
	Frontier int
}

// Reached reports whether id was finalized.
func (r *Result) Reached(id string) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs the vertex sequence of a minimum-cost path from
// the source to dest. Returns ErrNoPathTo if dest was not finalized.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNoPathTo, dest)
	}
	seq := []string{}
	for cur := dest; ; {
		seq = append(seq, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, nil
}
