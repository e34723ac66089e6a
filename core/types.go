// Package core defines the adjacency-mapping Graph, its Edge view type,
// and sentinel errors.
//
// A Graph stores directed arcs: every vertex key maps to an ordered sequence
// of adjacent vertices. Duplicates are permitted (parallel arcs, repeated
// self-loops). Adjacency entries may reference vertices that are not keys;
// such vertices behave as if they had an empty adjacency list but are not
// reported by Vertices().
//
// Errors:
//
//	ErrInvalidEdge - AddEdge received other than exactly two endpoints.
//	ErrEmptyGraph  - MinDegree/MaxDegree called on a graph with no vertices.
package core

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates an edge specification that does not resolve to
	// exactly two endpoints. Use AddLoop (or AddEdge(v, v)) for self-loops.
	ErrInvalidEdge = errors.New("core: edge must have exactly two endpoints")

	// ErrEmptyGraph indicates a degree extremum was requested on a graph with
	// no vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")
)

// Edge is the undirected view of one or more arcs between two vertices.
//
// From and To keep the orientation of the first arc that produced the edge.
// A self-loop has From == To.
type Edge[V comparable] struct {
	From V
	To   V
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge[V]) IsLoop() bool { return e.From == e.To }

// Same reports whether e and o denote the same unordered pair.
func (e Edge[V]) Same(o Edge[V]) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Adjacency is one entry of an adjacency mapping: a vertex and its
// ordered neighbour list. It is the ordered input form for FromAdjacency.
type Adjacency[V comparable] struct {
	Vertex    V
	Neighbors []V
}

// Graph is an in-memory adjacency mapping from vertex to ordered neighbour list.
//
// Vertex keys iterate in first-insertion order. mu guards adj: mutators take
// the write lock, queries the read lock.
type Graph[V comparable] struct {
	mu  sync.RWMutex
	adj *orderedmap.OrderedMap[V, []V]
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{adj: orderedmap.New[V, []V]()}
}

// FromAdjacency creates a Graph from ordered adjacency entries.
//
// No validation is performed: neighbours need not be keys. A vertex listed
// twice has its neighbour lists concatenated in order. Neighbour slices are
// copied; the caller keeps ownership of its input.
//
// Complexity: O(V + A), A = total number of arcs.
func FromAdjacency[V comparable](entries ...Adjacency[V]) *Graph[V] {
	g := NewGraph[V]()
	var e Adjacency[V]
	for _, e = range entries {
		list, _ := g.adj.Get(e.Vertex)
		g.adj.Set(e.Vertex, append(list, e.Neighbors...))
	}

	return g
}

// FromMap creates a Graph from a Go map. Vertex order then follows Go map
// iteration and is unspecified; use FromAdjacency when order matters.
func FromMap[V comparable](adj map[V][]V) *Graph[V] {
	entries := make([]Adjacency[V], 0, len(adj))
	for v, nbs := range adj {
		entries = append(entries, Adjacency[V]{Vertex: v, Neighbors: nbs})
	}

	return FromAdjacency(entries...)
}
