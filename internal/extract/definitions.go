// Package extract harvests classes, functions, and variables from syntax
// trees supplied by tree-sitter grammars. The traversal itself is
// language-agnostic; only a static per-language table of node kinds differs.
package extract

// FunctionDef describes one function or method.
type FunctionDef struct {
	Name      string   `json:"name"`
	Line      int      `json:"line"`
	Variables []string `json:"variables"`
	LineCount int      `json:"line_count"`
}

// ClassDef describes one class-like declaration and the functions found in
// its subtree.
type ClassDef struct {
	Name      string        `json:"name"`
	Line      int           `json:"line"`
	Functions []FunctionDef `json:"functions"`
}

// Definitions is the per-file extraction record for conventional languages.
// Names are raw source text, in source order, never deduplicated.
type Definitions struct {
	Classes   []ClassDef    `json:"classes"`
	Functions []FunctionDef `json:"functions"`
}
