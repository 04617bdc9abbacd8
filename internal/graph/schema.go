// Package graph derives a directed attributed graph from a finished document
// tree and persists it behind a pluggable store.
package graph

import "github.com/Tesfalegnp/Auto-Document-Generation/internal/language"

// --- Enums ---

// NodeKind classifies nodes in the structure graph.
type NodeKind string

const (
	NodeKindFolder   NodeKind = "folder"
	NodeKindFile     NodeKind = "file"
	NodeKindClass    NodeKind = "class"
	NodeKindFunction NodeKind = "function"
	NodeKindVariable NodeKind = "variable"
)

// Relation classifies edges between nodes.
type Relation string

const (
	// RelationContains links a folder to its direct children.
	RelationContains Relation = "contains"
	// RelationDefines links a file to a class or top-level function it defines.
	RelationDefines Relation = "defines"
	// RelationHasMethod links a class to one of its methods.
	RelationHasMethod Relation = "hasMethod"
	// RelationUses links a function to a variable assigned inside it.
	RelationUses Relation = "uses"
)

// --- Models ---

// Node is one vertex of the structure graph. IDs are derived from file paths
// and definition names, so rebuilding the graph from the same tree yields the
// same IDs. Language is set on file nodes and on every definition node,
// inherited from the defining file; folder nodes leave it empty.
type Node struct {
	ID       string            `json:"id"`
	Kind     NodeKind          `json:"type"`
	Name     string            `json:"name"`
	Language language.Language `json:"language,omitempty"`
}

// Edge is one directed edge of the structure graph.
type Edge struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Relation Relation `json:"relation"`
}

// Graph is the full derived graph, nodes and edges in build order.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// GraphStats summarizes a structure graph by node kind and edge count.
type GraphStats struct {
	FolderCount   int `json:"folderCount"`
	FileCount     int `json:"fileCount"`
	ClassCount    int `json:"classCount"`
	FunctionCount int `json:"functionCount"`
	VariableCount int `json:"variableCount"`
	EdgeCount     int `json:"edgeCount"`
}

// Stats counts the graph's nodes by kind.
func (g *Graph) Stats() GraphStats {
	var s GraphStats
	for _, n := range g.Nodes {
		switch n.Kind {
		case NodeKindFolder:
			s.FolderCount++
		case NodeKindFile:
			s.FileCount++
		case NodeKindClass:
			s.ClassCount++
		case NodeKindFunction:
			s.FunctionCount++
		case NodeKindVariable:
			s.VariableCount++
		}
	}
	s.EdgeCount = len(g.Edges)
	return s
}
