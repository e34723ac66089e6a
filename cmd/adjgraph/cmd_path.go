package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/adjgraph/core"
	"github.com/katalvlaran/adjgraph/dfs"
)

// pathMode selects which search "path" runs.
type pathMode int

const (
	modeFirst pathMode = iota
	modeAll
	modeShortest
)

func (m pathMode) String() string {
	switch m {
	case modeAll:
		return "all"
	case modeShortest:
		return "shortest"
	default:
		return "first"
	}
}

func (a *app) pathCmd() *cobra.Command {
	var all, shortest bool

	cmd := &cobra.Command{
		Use:   "path START END",
		Short: "Find a path, all simple paths, or the shortest path between two vertices",
		Long: `Find paths by depth-first search in adjacency order.

Without flags the first path found is printed; it is not necessarily the
shortest. --all lists every simple path, --shortest the one with the fewest
vertices (ties go to the first found). Searches are exponential on dense
graphs: bound them with --max-depth, --max-paths or --timeout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			mode := modeFirst
			switch {
			case all:
				mode = modeAll
			case shortest:
				mode = modeShortest
			}
			return a.path(cmd, g, args[0], args[1], mode)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&all, "all", false, "list every simple path")
	f.BoolVar(&shortest, "shortest", false, "print the shortest path")
	f.IntVar(&a.cfg.MaxDepth, "max-depth", a.cfg.MaxDepth, "maximum path length in arcs (-1 = unlimited)")
	f.IntVar(&a.cfg.MaxPaths, "max-paths", a.cfg.MaxPaths, "stop --all after this many paths, 0 = unlimited (env "+envMaxPaths+")")
	f.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "abort the search after this long, 0 = none (env "+envTimeout+")")
	cmd.MarkFlagsMutuallyExclusive("all", "shortest")

	return cmd
}

func (a *app) path(cmd *cobra.Command, g *core.Graph[string], start, end string, mode pathMode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	var stats dfs.Options
	opts := []dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithMaxDepth(a.cfg.MaxDepth),
		dfs.WithMaxPaths(a.cfg.MaxPaths),
		dfs.WithStats(&stats),
	}

	res := pathResult{Start: start, End: end}
	var err error
	switch mode {
	case modeAll:
		res.Paths, err = dfs.FindAllPaths(g, start, end, opts...)
		if errors.Is(err, dfs.ErrPathBudget) {
			a.log.Warn("path budget exhausted", zap.Int("max_paths", a.cfg.MaxPaths))
			res.Truncated, err = true, nil
		}
		res.Found = len(res.Paths) > 0
	case modeShortest:
		res.Path, err = dfs.FindShortestPath(g, start, end, opts...)
		res.Found = res.Path != nil
	default:
		res.Path, err = dfs.FindPath(g, start, end, opts...)
		res.Found = res.Path != nil
	}
	if err != nil {
		a.log.Error("path search failed", zap.Stringer("mode", mode), zap.Error(err))
		return err
	}
	a.log.Debug("path search done",
		zap.Stringer("mode", mode),
		zap.String("start", start),
		zap.String("end", end),
		zap.Int("expanded", stats.Expanded),
		zap.Bool("found", res.Found))

	if a.cfg.JSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	if !res.Found {
		return writeLines(cmd.OutOrStdout(), "no path")
	}
	if mode == modeAll {
		lines := make([]string, len(res.Paths))
		for i, p := range res.Paths {
			lines[i] = formatPath(p)
		}
		return writeLines(cmd.OutOrStdout(), lines...)
	}

	return writeLines(cmd.OutOrStdout(), formatPath(res.Path))
}
