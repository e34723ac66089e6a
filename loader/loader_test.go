package loader_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
	"github.com/katalvlaran/adjgraph/loader"
)

var sampleOrder = []string{"a", "b", "c", "d", "e", "f", "g"}

func TestLoadFile_YAMLAndJSON(t *testing.T) {
	for _, name := range []string{"sample.yaml", "sample.json"} {
		t.Run(name, func(t *testing.T) {
			g, err := loader.LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, sampleOrder, g.Vertices())
			assert.Equal(t, 13, g.ArcCount())
			assert.Equal(t, []string{"f"}, g.IsolatedVertices())

			nbs, ok := g.Neighbors("c")
			require.True(t, ok)
			assert.Equal(t, []string{"b", "c", "d", "e"}, nbs)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestDecode_EmptyDocuments(t *testing.T) {
	for _, doc := range []string{"", "~\n"} {
		g, err := loader.Decode(strings.NewReader(doc))
		require.NoError(t, err, "%q", doc)
		assert.Empty(t, g.Vertices())
	}
}

func TestDecode_NullAndEmptyNeighbours(t *testing.T) {
	g, err := loader.Decode(strings.NewReader("x:\ny: null\nz: []\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, g.IsolatedVertices())
}

func TestDecode_DuplicateKeysConcatenate(t *testing.T) {
	g, err := loader.Decode(strings.NewReader("a: [b]\nb: []\na: [c]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	nbs, _ := g.Neighbors("a")
	assert.Equal(t, []string{"b", "c"}, nbs)
}

func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"root sequence", "- a\n- b\n", loader.ErrNotMapping},
		{"root scalar", "hello\n", loader.ErrNotMapping},
		{"scalar neighbours", "a: b\n", loader.ErrBadAdjacency},
		{"mapping neighbours", "a: {b: c}\n", loader.ErrBadAdjacency},
		{"nested sequence", "a: [[b]]\n", loader.ErrBadAdjacency},
		{"mapping key", "? [a]\n: [b]\n", loader.ErrBadAdjacency},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_SyntaxError(t *testing.T) {
	_, err := loader.Decode(strings.NewReader("a: [b\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, loader.ErrNotMapping)
}

func TestEncode_RoundTrip(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddArc("a", "b")
	g.AddArc("b", "a")
	g.AddLoop("b")
	g.AddArc("b", "true") // must stay a string
	g.AddVertex("1")

	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, g))
	assert.Contains(t, buf.String(), "a: [b]")

	back, err := loader.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.AdjacencyList(), back.AdjacencyList())
}
