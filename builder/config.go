// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// config.go — internal configuration, defaults, and options.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • rng      = nil (no randomness unless seeded)
//   • directed = false (every edge is stored as two arcs)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/adjgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	directed bool
}

// BuilderOption configures a BuildGraph call.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID function. Panics on nil: that is a
// configuration bug, not a runtime condition.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithDirected stores each generated edge as a single arc u→v instead of
// the default pair u→v, v→u.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// link adds the edge u–v according to the directedness policy.
func (c builderConfig) link(g *core.Graph[string], u, v string) {
	g.AddArc(u, v)
	if !c.directed {
		g.AddArc(v, u)
	}
}

// addVertices registers n vertices in index order and returns their IDs.
func (c builderConfig) addVertices(g *core.Graph[string], n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = c.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}
