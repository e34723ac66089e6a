// Package adjgraph is a small toolkit for graphs stored as an adjacency
// mapping: each vertex maps to an ordered list of neighbours, and that
// order drives every traversal.
//
// What is in the box:
//
//	core/    — Graph[V]: insertion-ordered adjacency mapping, edges view,
//	           isolated vertices, degrees, δ/Δ and the degree sequence
//	dfs/     — FindPath, FindAllPaths, FindShortestPath (depth-first,
//	           simple paths, context cancellation, depth and path budgets)
//	loader/  — YAML/JSON graph documents in and out, key order preserved
//	builder/ — deterministic fixtures: path, cycle, complete, star, grid, G(n,p)
//	cmd/adjgraph — CLI: describe, degrees, path, generate, demo
//
// Storage is directed, the edge view is undirected:
//
//	a: [b]      one arc a→b; Edges() still reports {a b}
//	b: [a]      add the reverse arc yourself for an undirected graph
//	c: [c]      a self-loop, counted twice in deg(c)
//
// Quick example:
//
//	g := core.FromAdjacency(
//		core.Adjacency[string]{Vertex: "a", Neighbors: []string{"b", "c"}},
//		core.Adjacency[string]{Vertex: "b", Neighbors: []string{"c"}},
//	)
//	p, _ := dfs.FindShortestPath(g, "a", "c") // [a c]
//
//	go install github.com/katalvlaran/adjgraph/cmd/adjgraph@latest
package adjgraph
