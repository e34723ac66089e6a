// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_shapes.go — deterministic topologies: Path, Cycle, Complete, Star, Grid.
//
// Contract (all constructors):
//   • Vertices are added in ascending index order via cfg.idFn.
//   • Edges are emitted in a fixed order and linked per cfg.directed.
//   • Size validation happens before any mutation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minGridSide      = 1
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Path returns a Constructor for the path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew("Path", n, minPathNodes)
		}
		ids := cfg.addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			cfg.link(g, ids[i], ids[i+1])
		}

		return nil
	}
}

// Cycle returns a Constructor for the cycle C_n: i–(i+1 mod n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew("Cycle", n, minCycleNodes)
		}
		ids := cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			cfg.link(g, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. Edges are emitted for i<j in
// lexicographic (i, j) order; with WithDirected both i→j and j→i are still
// produced so that every ordered pair is an arc.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew("Complete", n, minCompleteNodes)
		}
		ids := cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					g.AddArc(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor for S_n: center 0 linked to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew("Star", n, minStarNodes)
		}
		ids := cfg.addVertices(g, n)
		for i := 1; i < n; i++ {
			cfg.link(g, ids[0], ids[i])
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice. Vertex (r, c) has
// index r*cols+c; each vertex links right, then down.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		ids := cfg.addVertices(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					cfg.link(g, ids[at], ids[at+1])
				}
				if r+1 < rows {
					cfg.link(g, ids[at], ids[at+cols])
				}
			}
		}

		return nil
	}
}
