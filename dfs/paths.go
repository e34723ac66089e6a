// Package dfs implements depth-first path search on core.Graph:
// one path, every simple path, and the shortest simple path between two vertices.
//
// Search rules shared by all three functions:
//   - If start == end the result is the single-vertex path [start], even when
//     start is not a key of the graph.
//   - Otherwise a vertex that is not a key has no outgoing arcs.
//   - Neighbours are tried in stored adjacency order; a neighbour already on
//     the current path is skipped, so every reported path is simple.
//   - Each frame works on its own copy of the path.
//
// Errors:
//   - ErrGraphNil      if g is nil.
//   - ErrPathBudget    if FindAllPaths stopped at WithMaxPaths.
//   - ctx.Err()        if the context is done.
//
// "No path" is not an error: FindPath and FindShortestPath return a nil path,
// FindAllPaths returns an empty slice.
package dfs

import (
	"github.com/katalvlaran/adjgraph/core"
)

// pathWalker encapsulates state during one search.
type pathWalker[V comparable] struct {
	adj  map[V][]V // consistent snapshot of the graph
	end  V         // target vertex
	opts Options   // search options
}

// newWalker validates g, applies opts, and snapshots the adjacency.
func newWalker[V comparable](g *core.Graph[V], end V, opts []Option) (*pathWalker[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &pathWalker[V]{adj: g.Adjacency(), end: end, opts: o}, nil
}

// report copies diagnostics to the WithStats destination, if any.
func (w *pathWalker[V]) report() {
	if w.opts.stats == nil {
		return
	}
	dst := w.opts.stats
	*dst = w.opts
	dst.stats = nil
}

// alive returns the context error once the search has been cancelled.
func (w *pathWalker[V]) alive() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// next returns the neighbours of the last vertex on path that may extend it,
// honoring key membership and the depth limit.
func (w *pathWalker[V]) next(path []V) []V {
	at := path[len(path)-1]
	nbs, ok := w.adj[at]
	if !ok {
		return nil
	}
	// path has len(path)-1 arcs; extending adds one more.
	if w.opts.MaxDepth >= 0 && len(path) > w.opts.MaxDepth {
		return nil
	}
	w.opts.Expanded++

	return nbs
}

// FindPath returns some simple path from start to end: the first one found
// by depth-first search in adjacency order. It is not necessarily the shortest.
// A nil path with a nil error means no path exists.
//
// Complexity: O(V + A) per explored branch; exponential in the worst case.
func FindPath[V comparable](g *core.Graph[V], start, end V, opts ...Option) ([]V, error) {
	w, err := newWalker(g, end, opts)
	if err != nil {
		return nil, err
	}
	defer w.report()

	return w.first(start, nil)
}

func (w *pathWalker[V]) first(at V, path []V) ([]V, error) {
	if err := w.alive(); err != nil {
		return nil, err
	}
	path = extend(path, at)
	if at == w.end {
		return path, nil
	}

	var nb V
	for _, nb = range w.next(path) {
		if IndexOf(path, nb) >= 0 {
			continue
		}
		found, err := w.first(nb, path)
		if err != nil || found != nil {
			return found, err
		}
	}

	return nil, nil
}

// FindAllPaths returns every simple path from start to end in depth-first
// discovery order. The result is empty (not nil) when there is none.
//
// With WithMaxPaths(n) the search stops when an (n+1)-th path is found and
// returns the first n paths together with ErrPathBudget.
//
// Complexity: exponential in the worst case; bound it with WithMaxDepth,
// WithMaxPaths, or a context deadline on dense graphs.
func FindAllPaths[V comparable](g *core.Graph[V], start, end V, opts ...Option) ([][]V, error) {
	w, err := newWalker(g, end, opts)
	if err != nil {
		return nil, err
	}
	defer w.report()

	out := make([][]V, 0)
	err = w.all(start, nil, &out)

	return out, err
}

func (w *pathWalker[V]) all(at V, path []V, out *[][]V) error {
	if err := w.alive(); err != nil {
		return err
	}
	path = extend(path, at)
	if at == w.end {
		if w.opts.MaxPaths > 0 && len(*out) >= w.opts.MaxPaths {
			return ErrPathBudget
		}
		*out = append(*out, path)

		return nil
	}

	var nb V
	for _, nb = range w.next(path) {
		if IndexOf(path, nb) >= 0 {
			continue
		}
		if err := w.all(nb, path, out); err != nil {
			return err
		}
	}

	return nil
}

// FindShortestPath returns the simple path from start to end with the fewest
// vertices. Among equally short paths the first one in depth-first order wins.
// A nil path with a nil error means no path exists.
//
// The search explores simple paths depth-first and abandons a branch once it
// is as long as the best candidate, which cannot change the result.
func FindShortestPath[V comparable](g *core.Graph[V], start, end V, opts ...Option) ([]V, error) {
	w, err := newWalker(g, end, opts)
	if err != nil {
		return nil, err
	}
	defer w.report()

	var best []V
	if err = w.shortest(start, nil, &best); err != nil {
		return nil, err
	}

	return best, nil
}

func (w *pathWalker[V]) shortest(at V, path []V, best *[]V) error {
	if err := w.alive(); err != nil {
		return err
	}
	path = extend(path, at)
	if *best != nil && len(path) >= len(*best) {
		return nil // cannot be strictly shorter
	}
	if at == w.end {
		*best = path

		return nil
	}

	var nb V
	for _, nb = range w.next(path) {
		if IndexOf(path, nb) >= 0 {
			continue
		}
		if err := w.shortest(nb, path, best); err != nil {
			return err
		}
	}

	return nil
}
