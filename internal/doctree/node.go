// Package doctree builds the hierarchical folder/file document for a source
// tree: a depth-first walk that parses and extracts every recognized file,
// isolating each file's failures behind its own node.
package doctree

import "github.com/Tesfalegnp/Auto-Document-Generation/internal/language"

// NodeType distinguishes folders from files.
type NodeType string

const (
	TypeFolder NodeType = "folder"
	TypeFile   NodeType = "file"
)

// ParserKind records which front-end produced a file's definitions.
type ParserKind string

const (
	ParserExternal ParserKind = "external"
	ParserDSL      ParserKind = "dsl"
)

// Definitions is the per-file extraction record attached to file nodes.
// Concrete types: *extract.Definitions (conventional languages) and
// *metta.Definitions (the DSL).
type Definitions interface{}

// Node is one entry in the hierarchical document. Folders carry Children;
// files carry language/extraction fields. Once a walk completes, a file node
// holds either Definitions or ParseError, never both; a file with no detected
// language holds neither. Nodes are immutable after the walk.
type Node struct {
	Name        string            `json:"name"`
	Path        string            `json:"path"`
	Type        NodeType          `json:"type"`
	Children    []*Node           `json:"children,omitempty"`
	Language    language.Language `json:"language,omitempty"`
	Definitions Definitions       `json:"definitions,omitempty"`
	ParserKind  ParserKind        `json:"parser_kind,omitempty"`
	ParseError  string            `json:"parse_error,omitempty"`
}

// IsFile reports whether the node is a file.
func (n *Node) IsFile() bool {
	return n.Type == TypeFile
}
