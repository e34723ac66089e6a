package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/adjgraph/core"
	"github.com/katalvlaran/adjgraph/loader"
)

var errNoFile = errors.New("no graph file: pass --file or set " + envFile)

// app carries configuration and the logger shared by all subcommands.
type app struct {
	cfg Config
	log *zap.Logger
}

// newRootCmd assembles the command tree. A nil log builds one from cfg
// before the first subcommand runs.
func newRootCmd(cfg Config, log *zap.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:   "adjgraph",
		Short: "Query an adjacency-mapping graph",
		Long: `Load a graph document (a YAML or JSON mapping of vertex to neighbour list)
and report its vertices, edges, degrees, and paths.

Document example:
  a: [d, g]
  c: [b, c, d, e]   # c→c is a self-loop
  f: []             # isolated

Arcs are directed as written; list both directions for an undirected edge.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if a.log != nil {
				return nil
			}
			l, err := newLogger(a.cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfg.File, "file", "f", cfg.File, "graph document, YAML or JSON (env "+envFile+")")
	pf.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (env "+envLogLevel+")")
	pf.StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "console or json (env "+envLogFmt+")")
	pf.BoolVar(&a.cfg.JSON, "json", cfg.JSON, "print results as JSON")

	root.AddCommand(
		a.describeCmd(),
		a.degreesCmd(),
		a.pathCmd(),
		a.demoCmd(),
		a.generateCmd(),
	)

	return root
}

// loadGraph reads the configured graph document.
func (a *app) loadGraph() (*core.Graph[string], error) {
	if a.cfg.File == "" {
		return nil, errNoFile
	}
	g, err := loader.LoadFile(a.cfg.File)
	if err != nil {
		a.log.Error("load graph failed", zap.String("file", a.cfg.File), zap.Error(err))
		return nil, err
	}
	a.log.Info("graph loaded",
		zap.String("file", a.cfg.File),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("arcs", g.ArcCount()))

	return g, nil
}
