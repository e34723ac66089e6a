package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/adjgraph/core"
)

// describeResult is the JSON shape of "describe".
type describeResult struct {
	Vertices []string   `json:"vertices"`
	Edges    [][]string `json:"edges"`
	Isolated []string   `json:"isolated"`
}

// degreesResult is the JSON shape of "degrees". Min and Max are omitted for
// a graph without vertices.
type degreesResult struct {
	Degrees  map[string]int `json:"degrees"`
	Order    []string       `json:"order"`
	Min      *int           `json:"min,omitempty"`
	Max      *int           `json:"max,omitempty"`
	Sequence []int          `json:"sequence"`
}

// pathResult is the JSON shape of "path". Path is set for single-path
// queries, Paths for --all.
type pathResult struct {
	Start     string     `json:"start"`
	End       string     `json:"end"`
	Path      []string   `json:"path,omitempty"`
	Paths     [][]string `json:"paths,omitempty"`
	Found     bool       `json:"found"`
	Truncated bool       `json:"truncated,omitempty"`
}

// edgePairs renders edges as one- or two-element lists; a loop is [v].
func edgePairs(es []core.Edge[string]) [][]string {
	out := make([][]string, 0, len(es))
	for _, e := range es {
		if e.IsLoop() {
			out = append(out, []string{e.From})
			continue
		}
		out = append(out, []string{e.From, e.To})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPath(p []string) string {
	return strings.Join(p, " ")
}

func writeLines(w io.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
