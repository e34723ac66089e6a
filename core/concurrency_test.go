// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
)

// TestConcurrentAddArc ensures that concurrent AddArc calls on one source
// vertex are safe and every arc is stored.
func TestConcurrentAddArc(t *testing.T) {
	g := core.NewGraph[string]()
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddArc(VertexX, fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()

	nbs, ok := g.Neighbors(VertexX)
	require.True(t, ok)
	require.Len(t, nbs, NConcurrentAdds)
	require.Equal(t, NConcurrentAdds, g.ArcCount())
}

// TestConcurrentReadersAndWriter mixes queries with a single mutator to
// verify no races or panics occur.
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := NewSampleGraph()
	var wg sync.WaitGroup
	wg.Add(NReaders + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < NConcurrentAdds; i++ {
			g.AddVertex(fmt.Sprintf("W%d", i))
			g.AddArc(VertexF, VertexA)
		}
	}()
	for r := 0; r < NReaders; r++ {
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.DegreeSequence()
			_, _ = g.MaxDegree()
			_ = g.IsolatedVertices()
			_ = g.Clone()
		}()
	}
	wg.Wait()

	d, ok := g.VertexDegree(VertexF)
	require.True(t, ok)
	require.Equal(t, NConcurrentAdds, d)
	require.Equal(t, 7+NConcurrentAdds, g.VertexCount())
}

// TestConcurrentString checks that String renders one graph state: every
// edge printed has its source on the vertices line, even while arcs from
// new vertices are being added.
func TestConcurrentString(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex(VertexX)
	var wg sync.WaitGroup
	wg.Add(NReaders + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < NConcurrentAdds; i++ {
			g.AddArc(fmt.Sprintf("W%d", i), VertexX)
		}
	}()
	for r := 0; r < NReaders; r++ {
		go func() {
			defer wg.Done()
			lines := strings.SplitN(g.String(), "\n", 2)
			if !assert.Len(t, lines, 2) {
				return
			}
			vs := make(map[string]bool)
			for _, v := range strings.Fields(strings.TrimPrefix(lines[0], "vertices:")) {
				vs[v] = true
			}
			// "{W3 x}" splits into "{W3" and "x}"; the source carries the brace.
			for _, tok := range strings.Fields(strings.TrimPrefix(lines[1], "edges:")) {
				from, ok := strings.CutPrefix(tok, "{")
				if !ok {
					continue
				}
				assert.True(t, vs[from], "edge source %q missing from vertices", from)
			}
		}()
	}
	wg.Wait()
}
