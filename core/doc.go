// Package core provides a thread-safe, insertion-ordered adjacency-mapping
// Graph with a minimal API surface.
//
// The Graph maps each vertex to an ordered sequence of adjacent vertices:
//
//	a → [d g]
//	c → [b c d e]   (c→c is a self-loop)
//	f → []          (isolated)
//
// Storage vs. view:
//
//   - Storage is directed. AddArc(u, v) (and AddEdge(u, v)) appends v to u's
//     list only. Neither the reverse arc nor a key for v is created.
//   - Edges() is undirected. Arcs u→v and v→u, and parallel arcs, collapse to
//     one Edge in first-occurrence order.
//   - For a true undirected graph the caller inserts both directions.
//
// Determinism:
//
//   - Vertices(), Edges(), IsolatedVertices() and AdjacencyList() follow vertex
//     insertion order and stored adjacency order, so traversals built on top of
//     the graph (see package dfs) are reproducible.
//
// Degrees:
//
//   - VertexDegree(v) = len(adj[v]) + (# of v in adj[v]); loops count twice.
//   - MinDegree (δ) / MaxDegree (Δ) fail with ErrEmptyGraph on a graph without vertices.
//   - DegreeSequence() is sorted descending.
//
// Core Methods:
//
//	// Construction
//	NewGraph[V]() *Graph[V]                          // O(1)
//	FromAdjacency(entries ...Adjacency[V]) *Graph[V] // O(V+A)
//	FromMap(adj map[V][]V) *Graph[V]                 // O(V+A), order unspecified
//
//	// Mutation (no deletion)
//	AddVertex(v V)                                   // O(1), idempotent
//	AddArc(from, to V)                               // O(1)
//	AddEdge(endpoints ...V) error                    // O(1), ErrInvalidEdge unless 2 endpoints
//	AddLoop(v V)                                     // O(1)
//
//	// Query
//	Vertices() []V                                   // O(V)
//	Edges() []Edge[V]                                // O(A)
//	Neighbors(v V) ([]V, bool)                       // O(d)
//	IsolatedVertices() []V                           // O(V)
//	VertexDegree(v V) (int, bool)                    // O(d)
//	MinDegree() / MaxDegree() (int, error)           // O(A)
//	DegreeSequence() []int                           // O(A + V log V)
//
// Concurrency: one sync.RWMutex guards the mapping; the Graph is safe for
// concurrent readers and writers.
package core
