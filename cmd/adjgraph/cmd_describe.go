package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/adjgraph/core"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List vertices, edges, and isolated vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.describe(cmd, g)
		},
	}
}

func (a *app) describe(cmd *cobra.Command, g *core.Graph[string]) error {
	res := describeResult{
		Vertices: g.Vertices(),
		Edges:    edgePairs(g.Edges()),
		Isolated: g.IsolatedVertices(),
	}
	if a.cfg.JSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}

	return writeLines(cmd.OutOrStdout(),
		g.String(),
		"isolated: "+formatPath(res.Isolated),
	)
}
