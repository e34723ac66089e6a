// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) sampling.
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable trial order: for each i asc, j asc with j>i (or j≠i when directed).
//   - Identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each possible edge
// independently with probability p. An RNG (WithSeed/WithRand) is required
// unless p is 0 or 1.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew("RandomSparse", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomSparse: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		ids := cfg.addVertices(g, n)
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == i || (!cfg.directed && j < i) {
					continue
				}
				if keep() {
					cfg.link(g, ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
