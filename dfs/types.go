// Package dfs defines options and errors for depth-first path search,
// including cancellation, depth limiting, and a path budget.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to a path search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrPathBudget is returned by FindAllPaths when WithMaxPaths stopped the
	// enumeration. The paths found so far are returned alongside it.
	ErrPathBudget = errors.New("dfs: path budget exhausted")
)

// Option configures optional behavior of a path search.
// Use with FindPath(g, start, end, opts...) and friends.
type Option func(*Options)

// Options holds configurable parameters for path search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per expanded vertex.
	Ctx context.Context

	// MaxDepth, if non-negative, limits paths to at most MaxDepth arcs.
	// A depth of 0 only matches start == end. Default is -1 (no limit).
	MaxDepth int

	// MaxPaths, if positive, stops FindAllPaths after that many paths.
	// Default is 0 (no limit).
	MaxPaths int

	// Expanded counts vertices whose neighbours were explored. It is an
	// output: the search starts it at zero, ignores any value set by the
	// caller, and reports the final count through WithStats.
	Expanded int

	stats *Options // set by WithStats
}

// DefaultOptions returns Options with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - No path budget (MaxPaths = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxPaths: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits path length to limit arcs.
// A negative limit disables the check.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithMaxPaths returns an Option that caps the number of paths
// FindAllPaths collects. n <= 0 disables the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// WithStats returns an Option that copies the final Options (including the
// Expanded counter) into dst when the search returns.
func WithStats(dst *Options) Option {
	return func(o *Options) {
		o.stats = dst
	}
}
