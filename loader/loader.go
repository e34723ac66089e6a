// Package loader reads and writes adjacency mappings as YAML (or JSON) documents.
//
// A document is a single mapping from vertex to a sequence of neighbours:
//
//	a: [d, g]
//	b: [c]
//	f: []      # or "f:" / "f: null" for an isolated vertex
//
// Key order is preserved: vertices enter the graph in document order, which
// keeps Vertices(), Edges() and path search results reproducible. JSON objects
// are accepted as well since JSON is a subset of YAML.
//
// Errors:
//
//	ErrNotMapping   - the document root is not a mapping.
//	ErrBadAdjacency - a key is not a scalar, or a value is not a sequence of scalars.
package loader

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjgraph/core"
)

// Sentinel errors for malformed documents.
var (
	// ErrNotMapping indicates the document root is not a mapping.
	ErrNotMapping = errors.New("loader: document is not a mapping")

	// ErrBadAdjacency indicates an entry that is not vertex → [vertex, ...].
	ErrBadAdjacency = errors.New("loader: malformed adjacency entry")
)

const nullTag = "!!null"

// Decode reads one document from r and builds a graph from it.
// An empty document yields an empty graph. Duplicate keys concatenate
// their neighbour lists.
func Decode(r io.Reader) (*core.Graph[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewGraph[string](), nil
		}

		return nil, errors.Wrap(err, "loader: decode document")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return core.NewGraph[string](), nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.Tag == nullTag {
		return core.NewGraph[string](), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrNotMapping, "line %d", root.Line)
	}

	g := core.NewGraph[string]()
	for i := 0; i+1 < len(root.Content); i += 2 {
		if err := decodeEntry(g, root.Content[i], root.Content[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// decodeEntry adds one "vertex: [neighbours]" pair to g.
func decodeEntry(g *core.Graph[string], key, val *yaml.Node) error {
	if key.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrBadAdjacency, "line %d: vertex must be a scalar", key.Line)
	}
	g.AddVertex(key.Value)

	switch val.Kind {
	case yaml.ScalarNode:
		if val.Tag != nullTag {
			return errors.Wrapf(ErrBadAdjacency, "line %d: neighbours of %q must be a sequence", val.Line, key.Value)
		}
	case yaml.SequenceNode:
		for _, nb := range val.Content {
			if nb.Kind != yaml.ScalarNode {
				return errors.Wrapf(ErrBadAdjacency, "line %d: neighbour of %q must be a scalar", nb.Line, key.Value)
			}
			g.AddArc(key.Value, nb.Value)
		}
	default:
		return errors.Wrapf(ErrBadAdjacency, "line %d: neighbours of %q must be a sequence", val.Line, key.Value)
	}

	return nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return g, nil
}

// Encode writes g to w as a YAML mapping in vertex order, one flow-style
// neighbour sequence per vertex. The output decodes back to an equal graph.
func Encode(w io.Writer, g *core.Graph[string]) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range g.AdjacencyList() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, nb := range entry.Neighbors {
			seq.Content = append(seq.Content, scalar(nb))
		}
		root.Content = append(root.Content, scalar(entry.Vertex), seq)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "loader: encode graph")
	}

	return errors.Wrap(enc.Close(), "loader: flush encoder")
}

// scalar returns a string node. The !!str tag keeps values such as "1",
// "true" or "null" from changing type on the way back in.
func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
