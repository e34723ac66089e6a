// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/adjgraph/core"
)

// BenchmarkAddArc measures appending arcs from a single hub vertex.
func BenchmarkAddArc(b *testing.B) {
	g := core.NewGraph[string]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddArc("Root", fmt.Sprintf("N%d", i))
	}
}

// buildRing creates n vertices with arcs i→i+1 and i+1→i.
func buildRing(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		g.AddArc(i, j)
		g.AddArc(j, i)
	}

	return g
}

// BenchmarkEdges_Ring1000 measures building the deduplicated edge view.
func BenchmarkEdges_Ring1000(b *testing.B) {
	g := buildRing(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkDegreeSequence_Ring1000 measures the degree scan plus sort.
func BenchmarkDegreeSequence_Ring1000(b *testing.B) {
	g := buildRing(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.DegreeSequence()
	}
}
