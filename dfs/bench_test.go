package dfs_test

import (
	"testing"

	"github.com/katalvlaran/adjgraph/builder"
	"github.com/katalvlaran/adjgraph/core"
	"github.com/katalvlaran/adjgraph/dfs"
)

// buildChain creates a directed chain N0 → N1 → … → N{n-1}.
func buildChain(n int) *core.Graph[string] {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithPrefixIDs("N"), builder.WithDirected()},
		builder.Path(n),
	)
	if err != nil {
		panic(err)
	}

	return g
}

// BenchmarkFindShortestPath_Grid6 measures the pruned search on a 6×6 lattice.
func BenchmarkFindShortestPath_Grid6(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(6, 6))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindShortestPath(g, "0", "35", dfs.WithMaxDepth(12))
	}
}

// BenchmarkFindPath_Chain1000 measures a single deep search.
func BenchmarkFindPath_Chain1000(b *testing.B) {
	g := buildChain(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindPath(g, "N0", "N999")
	}
}

// BenchmarkFindAllPaths_K7 measures exhaustive enumeration on a small complete graph.
func BenchmarkFindAllPaths_K7(b *testing.B) {
	g := buildComplete(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindAllPaths(g, "K0", "K6")
	}
}

// BenchmarkFindShortestPath_K7 measures the pruned shortest search on the same graph.
func BenchmarkFindShortestPath_K7(b *testing.B) {
	g := buildComplete(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindShortestPath(g, "K0", "K6")
	}
}
