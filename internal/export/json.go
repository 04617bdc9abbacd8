// Package export renders the document tree and structure graph to output
// formats: indented JSON, GraphML, and Mermaid diagrams.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
)

// WriteTreeJSON writes the document tree as indented JSON, creating parent
// directories as needed.
func WriteTreeJSON(path string, root *doctree.Node) error {
	return writeJSON(path, root)
}

// WriteGraphJSON writes the structure graph as indented JSON, creating parent
// directories as needed. Nodes and edges keep build order, which is tree
// order and therefore stable.
func WriteGraphJSON(path string, g *graph.Graph) error {
	return writeJSON(path, g)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
