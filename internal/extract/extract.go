package extract

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

// FromSource parses source with the given tree-sitter grammar and extracts
// definitions. A new parser is created per call, matching tree-sitter's
// sequential-use model.
func FromSource(source []byte, grammar *tree_sitter.Language, lang language.Language) (*Definitions, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(grammar); err != nil {
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned nil tree for %s", lang)
	}
	defer tree.Close()

	return FromTree(tree.RootNode(), source, lang)
}

// FromTree performs one depth-first traversal of an already-parsed tree and
// returns the definitions record. The input tree is not mutated.
func FromTree(root *tree_sitter.Node, source []byte, lang language.Language) (*Definitions, error) {
	table, ok := tableFor(lang)
	if !ok {
		return nil, fmt.Errorf("no extraction table for language: %s", lang)
	}

	w := &walker{table: table, source: source, defs: &Definitions{
		Classes:   []ClassDef{},
		Functions: []FunctionDef{},
	}}
	w.walk(root, -1)

	// Materialize classes collected as pointers during the walk.
	for _, c := range w.classes {
		w.defs.Classes = append(w.defs.Classes, *c)
	}
	return w.defs, nil
}

type walker struct {
	table   langTable
	source  []byte
	defs    *Definitions
	classes []*ClassDef
}

// walk visits node and its subtree. currentClass is the index into w.classes
// of the enclosing class, or -1 at top level. It is a plain parameter, not a
// stack: a nested class replaces the enclosing reference for its own subtree
// and the outer one is not restored afterward, preserving the one-level
// nesting semantics of the traversal.
func (w *walker) walk(node *tree_sitter.Node, currentClass int) {
	kind := node.Kind()

	switch w.table.roles[kind] {
	case roleClass:
		if name, ok := w.nameOf(node); ok {
			w.classes = append(w.classes, &ClassDef{
				Name:      name,
				Line:      int(node.StartPosition().Row) + 1,
				Functions: []FunctionDef{},
			})
			currentClass = len(w.classes) - 1
		}

	case roleFunction:
		if name, ok := w.nameOf(node); ok {
			fn := FunctionDef{
				Name:      name,
				Line:      int(node.StartPosition().Row) + 1,
				Variables: w.collectVariables(node),
				LineCount: int(node.EndPosition().Row) - int(node.StartPosition().Row) + 1,
			}
			if currentClass >= 0 {
				w.classes[currentClass].Functions = append(w.classes[currentClass].Functions, fn)
			} else {
				w.defs.Functions = append(w.defs.Functions, fn)
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			w.walk(child, currentClass)
		}
	}
}

// nameOf returns the text of a declaration's name field. Declarations without
// a name token are skipped entirely.
func (w *walker) nameOf(node *tree_sitter.Node) (string, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return "", false
	}
	return nameNode.Utf8Text(w.source), true
}

// collectVariables runs a secondary traversal below a function node,
// restricted to the language's declarator kinds.
func (w *walker) collectVariables(fn *tree_sitter.Node) []string {
	vars := []string{}
	w.walkVariables(fn, &vars)
	return vars
}

func (w *walker) walkVariables(node *tree_sitter.Node, vars *[]string) {
	kind := node.Kind()
	if w.table.roles[kind] == roleVariable {
		if name := w.variableName(node, kind); name != "" {
			*vars = append(*vars, name)
		}
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			w.walkVariables(child, vars)
		}
	}
}

// variableName extracts the declared name from a declarator node, either via
// a named field or the node's first child. When the field holds a list (Go's
// expression_list for multi-assignment), the first declared name wins.
func (w *walker) variableName(node *tree_sitter.Node, kind string) string {
	field := w.table.varField[kind]
	if field != "" {
		nameNode := node.ChildByFieldName(field)
		if nameNode == nil {
			return ""
		}
		if nameNode.NamedChildCount() > 0 {
			if first := nameNode.NamedChild(0); first != nil {
				return first.Utf8Text(w.source)
			}
		}
		return nameNode.Utf8Text(w.source)
	}
	if node.ChildCount() == 0 {
		return ""
	}
	first := node.Child(0)
	if first == nil {
		return ""
	}
	return first.Utf8Text(w.source)
}
