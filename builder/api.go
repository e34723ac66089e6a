// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// api.go — public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same options, seed and constructor order ⇒ identical graph,
//     including vertex order and adjacency order.
//   - Safety: constructors validate first and return sentinel errors; no panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; no cleanup is attempted.
//
// Complexity: Σ cost of the constructors.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
