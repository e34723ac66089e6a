// Package core_test verifies construction, ownership, and cloning contracts of core.Graph.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph[string]()
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.ArcCount())
}

func TestFromAdjacency_PreservesOrder(t *testing.T) {
	g := NewSampleGraph()
	assert.Equal(t,
		[]string{VertexA, VertexB, VertexC, VertexD, VertexE, VertexF, VertexG},
		g.Vertices())
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 13, g.ArcCount())
}

func TestFromAdjacency_DanglingNeighbor(t *testing.T) {
	// x is referenced but never declared; no validation happens.
	g := core.FromAdjacency(core.Adjacency[string]{Vertex: VertexA, Neighbors: []string{VertexX}})
	assert.Equal(t, []string{VertexA}, g.Vertices())
	assert.False(t, g.HasVertex(VertexX))
	_, ok := g.VertexDegree(VertexX)
	assert.False(t, ok)
}

func TestFromAdjacency_RepeatedVertexConcatenates(t *testing.T) {
	g := core.FromAdjacency(
		core.Adjacency[string]{Vertex: VertexA, Neighbors: []string{VertexB}},
		core.Adjacency[string]{Vertex: VertexB},
		core.Adjacency[string]{Vertex: VertexA, Neighbors: []string{VertexC}},
	)
	nbs, ok := g.Neighbors(VertexA)
	require.True(t, ok)
	assert.Equal(t, []string{VertexB, VertexC}, nbs)
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
}

func TestFromAdjacency_CopiesInput(t *testing.T) {
	in := []string{VertexB, VertexC}
	g := core.FromAdjacency(core.Adjacency[string]{Vertex: VertexA, Neighbors: in})
	in[0] = VertexX

	nbs, _ := g.Neighbors(VertexA)
	assert.Equal(t, []string{VertexB, VertexC}, nbs)
}

func TestFromMap_IntVertices(t *testing.T) {
	g := core.FromMap(map[int][]int{1: {2}, 2: {1, 3}, 3: nil})
	assert.ElementsMatch(t, []int{1, 2, 3}, g.Vertices())
	d, ok := g.VertexDegree(2)
	require.True(t, ok)
	assert.Equal(t, 2, d)
	assert.Equal(t, []int{3}, g.IsolatedVertices())
}

func TestClone_DeepCopy(t *testing.T) {
	g := NewSampleGraph()
	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.Edges(), c.Edges())

	// Mutating the clone leaves the original untouched.
	c.AddArc(VertexF, VertexA)
	c.AddVertex(VertexX)
	assert.Equal(t, []string{VertexF}, g.IsolatedVertices())
	assert.False(t, g.HasVertex(VertexX))
	assert.Equal(t, 13, g.ArcCount())
	assert.Equal(t, 14, c.ArcCount())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := NewSampleGraph()
	nbs, ok := g.Neighbors(VertexA)
	require.True(t, ok)
	nbs[0] = VertexX

	again, _ := g.Neighbors(VertexA)
	assert.Equal(t, []string{VertexD, VertexG}, again)

	_, ok = g.Neighbors(VertexX)
	assert.False(t, ok)
}

func TestAdjacencySnapshots(t *testing.T) {
	g := NewSampleGraph()

	list := g.AdjacencyList()
	require.Len(t, list, 7)
	assert.Equal(t, VertexC, list[2].Vertex)
	assert.Equal(t, []string{VertexB, VertexC, VertexD, VertexE}, list[2].Neighbors)
	assert.Empty(t, list[5].Neighbors)

	m := g.Adjacency()
	assert.Len(t, m, 7)
	m[VertexA][0] = VertexX
	nbs, _ := g.Neighbors(VertexA)
	assert.Equal(t, VertexD, nbs[0], "snapshot must not alias graph storage")
}

func TestEdge_SameAndLoop(t *testing.T) {
	e := core.Edge[string]{From: VertexA, To: VertexB}
	assert.True(t, e.Same(core.Edge[string]{From: VertexB, To: VertexA}))
	assert.False(t, e.Same(core.Edge[string]{From: VertexA, To: VertexC}))
	assert.False(t, e.IsLoop())
	assert.True(t, core.Edge[string]{From: VertexC, To: VertexC}.IsLoop())
	assert.Equal(t, "{a b}", e.String())
	assert.Equal(t, "{c}", core.Edge[string]{From: VertexC, To: VertexC}.String())
}
