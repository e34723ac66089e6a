// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns keys in first-insertion order.
//
// Concurrency:
//   - AddVertex holds the write lock; queries hold the read lock.
package core

// AddVertex inserts v with an empty adjacency list if it is not already a key.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and keeps its arcs and position.
//   - A vertex previously seen only as a neighbour becomes a key at the end of the order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj.Get(v); exists {
		return // no-op for existing vertex
	}
	g.adj.Set(v, nil)
}

// HasVertex reports whether v is a key of the adjacency mapping.
// Vertices that only appear as neighbours are not keys.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj.Get(v)

	return ok
}

// Vertices returns all keys of the adjacency mapping in insertion order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices()
}

// vertices lists keys in insertion order. Caller holds g.mu.
func (g *Graph[V]) vertices() []V {
	out := make([]V, 0, g.adj.Len())
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// VertexCount returns the number of keys in the adjacency mapping.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Len()
}

// Neighbors returns a copy of v's adjacency list in stored order.
// ok is false when v is not a key.
//
// Complexity:
//   - Time O(d), Space O(d), d = len(adjacency list).
func (g *Graph[V]) Neighbors(v V) (nbs []V, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adj.Get(v)
	if !ok {
		return nil, false
	}
	nbs = make([]V, len(list))
	copy(nbs, list)

	return nbs, true
}

// IsolatedVertices returns, in insertion order, the vertices whose adjacency
// list is empty. A vertex that is only a target of other arcs is still isolated.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph[V]) IsolatedVertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0)
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) == 0 {
			out = append(out, pair.Key)
		}
	}

	return out
}
