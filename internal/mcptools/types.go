// Package mcptools exposes the document pipeline over the Model Context
// Protocol: scanning a project, querying the derived graph, and reading
// per-file definition records.
package mcptools

import (
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// ScanProjectInput is the input for the scan_project MCP tool.
type ScanProjectInput struct {
	RootPath         string `json:"rootPath" jsonschema:"the absolute path to the directory to scan"`
	Workers          int    `json:"workers,omitempty" jsonschema:"number of concurrent file workers (default: 1, sequential)"`
	IncludeVariables bool   `json:"includeVariables,omitempty" jsonschema:"add variable nodes and uses edges to the graph"`
}

// ScanProjectOutput is the result of the scan_project MCP tool.
type ScanProjectOutput struct {
	Summary doctree.Summary  `json:"summary"`
	Stats   graph.GraphStats `json:"stats"`
}

// QueryNodesInput is the input for the query_nodes MCP tool.
type QueryNodesInput struct {
	Query string `json:"query" jsonschema:"search query for node names (substring match, case-insensitive)"`
	Kind  string `json:"kind,omitempty" jsonschema:"filter by node kind: folder, file, class, function, variable"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default: 20)"`
}

// QueryNodesOutput is the result of the query_nodes MCP tool.
type QueryNodesOutput struct {
	Nodes []graph.Node `json:"nodes"`
	Total int          `json:"total"`
}

// FileDefinitionsInput is the input for the file_definitions MCP tool.
type FileDefinitionsInput struct {
	Path string `json:"path" jsonschema:"absolute path of a file from the last scan"`
}

// FileDefinitionsOutput is the result of the file_definitions MCP tool.
type FileDefinitionsOutput struct {
	Path        string              `json:"path"`
	Language    string              `json:"language,omitempty"`
	ParserKind  string              `json:"parserKind,omitempty"`
	ParseError  string              `json:"parseError,omitempty"`
	Definitions doctree.Definitions `json:"definitions,omitempty"`
}

// GetNeighborsInput is the input for the get_neighbors MCP tool.
type GetNeighborsInput struct {
	NodeID    string `json:"nodeId" jsonschema:"graph node ID (a path or path-derived definition ID)"`
	Direction string `json:"direction,omitempty" jsonschema:"out (nodes this one points to) or in (nodes pointing to this one). Default: out"`
}

// GetNeighborsOutput is the result of the get_neighbors MCP tool.
type GetNeighborsOutput struct {
	Neighbors []graph.Node `json:"neighbors"`
}
