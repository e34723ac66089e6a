// Package core_test contains test fixtures for adjgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Avoid magic vertex names and sizes in test bodies.

package core_test

import (
	"github.com/katalvlaran/adjgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "a"
	VertexB = "b"
	VertexC = "c"
	VertexD = "d"
	VertexE = "e"
	VertexF = "f"
	VertexG = "g"
	VertexV = "v"
	VertexX = "x"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewSampleGraph RETURNS the seven-vertex reference graph:
//
//	a → [d g]      b → [c]      c → [b c d e]
//	d → [a c g]    e → [c]      f → []
//	g → [a d]
//
// c carries a self-loop; f is isolated.
func NewSampleGraph() *core.Graph[string] {
	return core.FromAdjacency(
		core.Adjacency[string]{Vertex: VertexA, Neighbors: []string{VertexD, VertexG}},
		core.Adjacency[string]{Vertex: VertexB, Neighbors: []string{VertexC}},
		core.Adjacency[string]{Vertex: VertexC, Neighbors: []string{VertexB, VertexC, VertexD, VertexE}},
		core.Adjacency[string]{Vertex: VertexD, Neighbors: []string{VertexA, VertexC, VertexG}},
		core.Adjacency[string]{Vertex: VertexE, Neighbors: []string{VertexC}},
		core.Adjacency[string]{Vertex: VertexF},
		core.Adjacency[string]{Vertex: VertexG, Neighbors: []string{VertexA, VertexD}},
	)
}
