// File: methods_clone.go
// Role: Snapshots and copies of the adjacency mapping.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: same vertex order, same adjacency
// lists, no shared backing arrays.
//
// Complexity: O(V + A).
func (g *Graph[V]) Clone() *Graph[V] {
	return FromAdjacency(g.AdjacencyList()...)
}

// AdjacencyList returns the mapping as ordered entries, one per vertex key.
// Neighbour slices are copies.
//
// Complexity: O(V + A).
func (g *Graph[V]) AdjacencyList() []Adjacency[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Adjacency[V], 0, g.adj.Len())
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		nbs := make([]V, len(pair.Value))
		copy(nbs, pair.Value)
		out = append(out, Adjacency[V]{Vertex: pair.Key, Neighbors: nbs})
	}

	return out
}

// Adjacency returns an unordered snapshot of the mapping (vertex → copied
// neighbour list). Path searches use it to run against a consistent view
// without holding the graph lock.
//
// Complexity: O(V + A).
func (g *Graph[V]) Adjacency() map[V][]V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[V][]V, g.adj.Len())
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		nbs := make([]V, len(pair.Value))
		copy(nbs, pair.Value)
		out[pair.Key] = nbs
	}

	return out
}
