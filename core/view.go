package core

import (
	"fmt"
	"strings"
)

// String renders the graph for diagnostics:
//
//	vertices: a b c
//	edges: {a b} {b c} {c}
//
// Vertices and edges follow Vertices() and Edges() order. A self-loop prints
// as a single-element set. Both lines come from one consistent state of the
// graph. The format is not stable; do not parse it.
func (g *Graph[V]) String() string {
	g.mu.RLock()
	vs, es := g.vertices(), g.edges()
	g.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("vertices:")
	for _, v := range vs {
		fmt.Fprintf(&sb, " %v", v)
	}
	sb.WriteString("\nedges:")
	for _, e := range es {
		sb.WriteByte(' ')
		sb.WriteString(e.String())
	}

	return sb.String()
}

// String renders the edge as an unordered set, {from to} or {v} for a loop.
func (e Edge[V]) String() string {
	if e.IsLoop() {
		return fmt.Sprintf("{%v}", e.From)
	}

	return fmt.Sprintf("{%v %v}", e.From, e.To)
}
