// Command adjgraph loads an adjacency mapping from a YAML or JSON file and
// answers vertex, edge, degree, and path queries about it. It can also
// generate fixture documents.
//
//	adjgraph describe -f graph.yaml
//	adjgraph degrees  -f graph.yaml
//	adjgraph path a e -f graph.yaml --all
//	adjgraph generate grid 3 --cols 4 -o grid.yaml
//	adjgraph demo
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "adjgraph:", err)
		os.Exit(1)
	}

	root := newRootCmd(defaultConfig(), nil)
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "adjgraph:", err)
		os.Exit(1)
	}
}
