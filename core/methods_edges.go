// File: methods_edges.go
// Role: Arc insertion and the undirected edge view.
//
// Storage is directed: AddArc/AddEdge insert only from→to and never create
// the target as a key. Callers wanting an undirected graph insert both
// directions. Edges() presents the arcs as deduplicated unordered pairs.
//
// Concurrency:
//   - Mutators hold the write lock; Edges/ArcCount hold the read lock.
package core

import "fmt"

// AddArc appends to to from's adjacency list, creating the from entry if absent.
//
// Behavior highlights:
//   - Parallel arcs are kept; every call appends.
//   - The reverse arc is not added and to is not registered as a key.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph[V]) AddArc(from, to V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	list, _ := g.adj.Get(from)
	g.adj.Set(from, append(list, to))
}

// AddLoop appends a self-loop arc v→v.
func (g *Graph[V]) AddLoop(v V) { g.AddArc(v, v) }

// AddEdge inserts the arc endpoints[0]→endpoints[1].
//
// The endpoints must be given explicitly; a self-loop is AddEdge(v, v).
// Any other arity fails with ErrInvalidEdge and leaves the graph unchanged.
func (g *Graph[V]) AddEdge(endpoints ...V) error {
	if len(endpoints) != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidEdge, len(endpoints))
	}
	g.AddArc(endpoints[0], endpoints[1])

	return nil
}

// Edges returns the undirected view of all arcs.
//
// Implementation:
//   - Stage 1: Walk vertices in insertion order and each adjacency list in stored order.
//   - Stage 2: Keep the pair {vertex, neighbour} unless it (in either orientation) was already emitted.
//
// Behavior highlights:
//   - Parallel arcs and a u→v / v→u mirror collapse to a single Edge.
//   - Self-loops appear once as Edge{v, v}.
//   - Order is first occurrence.
//
// Complexity:
//   - Time O(A), Space O(E), A = arcs, E = distinct edges.
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges()
}

// edges builds the deduplicated edge view. Caller holds g.mu.
func (g *Graph[V]) edges() []Edge[V] {
	seen := make(map[Edge[V]]struct{})
	out := make([]Edge[V], 0)
	var nb V
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		for _, nb = range pair.Value {
			e := Edge[V]{From: pair.Key, To: nb}
			if _, dup := seen[e]; dup {
				continue
			}
			if _, dup := seen[Edge[V]{From: nb, To: pair.Key}]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// ArcCount returns the total number of stored arcs, parallel arcs included.
func (g *Graph[V]) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		n += len(pair.Value)
	}

	return n
}
