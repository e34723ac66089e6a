// File: methods_degree.go
// Role: Vertex degree and degree statistics.
//
// Degree policy:
//   - deg(v) = len(adj[v]) + number of entries in adj[v] equal to v.
//   - A self-loop therefore contributes 2; incoming arcs are not counted.
package core

import "sort"

// VertexDegree returns the degree of v. ok is false when v is not a key;
// that is an "unknown vertex" answer, not a failure.
//
// Complexity:
//   - Time O(d), Space O(1).
func (g *Graph[V]) VertexDegree(v V) (degree int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adj.Get(v)
	if !ok {
		return 0, false
	}

	return degreeOf(v, list), true
}

// degreeOf applies the degree policy to one adjacency list.
func degreeOf[V comparable](v V, list []V) int {
	d := len(list)
	for _, nb := range list {
		if nb == v {
			d++ // loops count twice
		}
	}

	return d
}

// degrees returns every vertex degree in insertion order.
// Caller must hold at least the read lock.
func (g *Graph[V]) degrees() []int {
	out := make([]int, 0, g.adj.Len())
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, degreeOf(pair.Key, pair.Value))
	}

	return out
}

// MinDegree returns the minimum vertex degree (δ).
//
// Errors:
//   - ErrEmptyGraph: the graph has no vertices.
//
// Complexity:
//   - Time O(A), Space O(V).
func (g *Graph[V]) MinDegree() (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ds := g.degrees()
	if len(ds) == 0 {
		return 0, ErrEmptyGraph
	}
	lo := ds[0]
	for _, d := range ds[1:] {
		lo = min(lo, d)
	}

	return lo, nil
}

// MaxDegree returns the maximum vertex degree (Δ).
//
// Errors:
//   - ErrEmptyGraph: the graph has no vertices.
func (g *Graph[V]) MaxDegree() (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ds := g.degrees()
	if len(ds) == 0 {
		return 0, ErrEmptyGraph
	}
	hi := ds[0]
	for _, d := range ds[1:] {
		hi = max(hi, d)
	}

	return hi, nil
}

// DegreeSequence returns all vertex degrees sorted in descending order.
// An empty graph yields an empty sequence.
//
// Complexity:
//   - Time O(A + V log V), Space O(V).
func (g *Graph[V]) DegreeSequence() []int {
	g.mu.RLock()
	ds := g.degrees()
	g.mu.RUnlock()

	sort.Sort(sort.Reverse(sort.IntSlice(ds)))

	return ds
}
