package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adjgraph/core"
	"github.com/katalvlaran/adjgraph/dfs"
)

// sampleGraph is the built-in demonstration graph.
//
//	a → [d g]      b → [c]      c → [b c d e]
//	d → [a c g]    e → [c]      f → []
//	g → [a d]
func sampleGraph() *core.Graph[string] {
	return core.FromAdjacency(
		core.Adjacency[string]{Vertex: "a", Neighbors: []string{"d", "g"}},
		core.Adjacency[string]{Vertex: "b", Neighbors: []string{"c"}},
		core.Adjacency[string]{Vertex: "c", Neighbors: []string{"b", "c", "d", "e"}},
		core.Adjacency[string]{Vertex: "d", Neighbors: []string{"a", "c", "g"}},
		core.Adjacency[string]{Vertex: "e", Neighbors: []string{"c"}},
		core.Adjacency[string]{Vertex: "f"},
		core.Adjacency[string]{Vertex: "g", Neighbors: []string{"a", "d"}},
	)
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run path and degree queries on a built-in seven-vertex graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.demo(cmd, sampleGraph())
		},
	}
}

func (a *app) demo(cmd *cobra.Command, g *core.Graph[string]) error {
	first, err := dfs.FindPath(g, "a", "e")
	if err != nil {
		return err
	}
	all, err := dfs.FindAllPaths(g, "a", "e")
	if err != nil {
		return err
	}
	shortest, err := dfs.FindShortestPath(g, "a", "e")
	if err != nil {
		return err
	}
	lo, err := g.MinDegree()
	if err != nil {
		return err
	}
	hi, err := g.MaxDegree()
	if err != nil {
		return err
	}

	return writeLines(cmd.OutOrStdout(),
		g.String(),
		fmt.Sprintf("path a→e: %v", first),
		fmt.Sprintf("all paths a→e: %v", all),
		fmt.Sprintf("shortest a→e: %v", shortest),
		fmt.Sprintf("isolated: %v", g.IsolatedVertices()),
		fmt.Sprintf("δ=%d Δ=%d sequence=%v", lo, hi, g.DegreeSequence()),
	)
}
