package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/adjgraph/core"
)

func (a *app) degreesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "degrees",
		Short: "Report vertex degrees, δ, Δ, and the degree sequence",
		Long: `Report the degree of every vertex plus the minimum (δ), maximum (Δ)
and descending degree sequence. A self-loop counts twice; incoming arcs do
not count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.degrees(cmd, g)
		},
	}
}

func (a *app) degrees(cmd *cobra.Command, g *core.Graph[string]) error {
	res := degreesResult{
		Degrees:  make(map[string]int, g.VertexCount()),
		Order:    g.Vertices(),
		Sequence: g.DegreeSequence(),
	}
	for _, v := range res.Order {
		d, _ := g.VertexDegree(v)
		res.Degrees[v] = d
	}

	lo, err := g.MinDegree()
	switch {
	case errors.Is(err, core.ErrEmptyGraph):
		a.log.Warn("degree extrema undefined", zap.Error(err))
	case err != nil:
		return err
	default:
		hi, err := g.MaxDegree()
		if err != nil {
			return err
		}
		res.Min, res.Max = &lo, &hi
	}

	if a.cfg.JSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}

	lines := make([]string, 0, len(res.Order)+3)
	for _, v := range res.Order {
		lines = append(lines, fmt.Sprintf("%s %d", v, res.Degrees[v]))
	}
	if res.Min != nil {
		lines = append(lines,
			"min "+strconv.Itoa(*res.Min),
			"max "+strconv.Itoa(*res.Max))
	}
	seq := make([]string, len(res.Sequence))
	for i, d := range res.Sequence {
		seq[i] = strconv.Itoa(d)
	}
	lines = append(lines, "sequence "+strings.Join(seq, " "))

	return writeLines(cmd.OutOrStdout(), lines...)
}
