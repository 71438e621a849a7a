// Package dfs: options, sentinel errors and the result type for
// depth-first search.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNoPathTo is returned by Result.PathTo for unreached vertices.
	ErrNoPathTo = errors.New("dfs: vertex not reached")
)

// Option configures DFS behavior.
type Option func(*Options)

// Options holds parameters to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// OnVisit is called when a vertex is visited (pre-order). A non-nil
	// error aborts the traversal and propagates to the caller.
	OnVisit func(id string, depth int) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with background context, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
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

// WithOnVisit registers a pre-order visit callback; returning an error
// from it stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips edges when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a DFS traversal.
type Result struct {
	// Order lists vertices in pre-order visit sequence.
	Order []string

	// Parent maps vertex ID → predecessor in the DFS tree.
	Parent map[string]string

	// Visited marks every vertex reached from the start.
	Visited map[string]bool

	// Expanded counts popped (visited) vertices.
	Expanded int

	// Frontier is the stack size at termination.
	Frontier int
}

// PathTo reconstructs the vertex sequence the traversal took from the
// start to dest. The path is a witness of reachability, not a shortest
// path. Returns ErrNoPathTo if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Visited[dest] {
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
