package graph

import (
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/extract"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/metta"
)

// Builder derives a structure graph from a document tree.
type Builder struct {
	// IncludeVariables adds variable nodes and uses edges for variables
	// assigned inside conventional-language functions. DSL definitions never
	// produce variable nodes.
	IncludeVariables bool
}

// NewBuilder returns a builder with variables excluded.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build walks the tree and emits nodes and edges in tree order. Node IDs are
// derived from paths and names only, so the same tree always builds the same
// graph. Definition IDs are namespaced by kind (`::class::`, `::func::`,
// `::var::`) so a class and a function sharing a name never share an ID, and
// the node and edge lists are sets: a re-added ID keeps its first occurrence,
// so same-named definitions in one scope collapse to one vertex. File nodes
// that failed to parse or carry no definitions still appear in the graph;
// they just have no outgoing defines edges.
func (b *Builder) Build(root *doctree.Node) *Graph {
	g := &Graph{Nodes: []Node{}, Edges: []Edge{}}
	if root != nil {
		acc := &accum{g: g, nodes: map[string]struct{}{}, edges: map[Edge]struct{}{}}
		b.addTreeNode(acc, root)
	}
	return g
}

// accum collects nodes and edges with set semantics, preserving first-seen
// order.
type accum struct {
	g     *Graph
	nodes map[string]struct{}
	edges map[Edge]struct{}
}

func (a *accum) addNode(n Node) {
	if _, ok := a.nodes[n.ID]; ok {
		return
	}
	a.nodes[n.ID] = struct{}{}
	a.g.Nodes = append(a.g.Nodes, n)
}

func (a *accum) addEdge(e Edge) {
	if _, ok := a.edges[e]; ok {
		return
	}
	a.edges[e] = struct{}{}
	a.g.Edges = append(a.g.Edges, e)
}

func classID(fileID, name string) string  { return fileID + "::class::" + name }
func funcID(parentID, name string) string { return parentID + "::func::" + name }
func varID(funcID, name string) string    { return funcID + "::var::" + name }

// addTreeNode emits the node for one tree entry, then its children or
// definitions.
func (b *Builder) addTreeNode(acc *accum, n *doctree.Node) {
	if n.IsFile() {
		acc.addNode(Node{
			ID:       n.Path,
			Kind:     NodeKindFile,
			Name:     n.Name,
			Language: n.Language,
		})
		b.addDefinitions(acc, n)
		return
	}

	acc.addNode(Node{
		ID:   n.Path,
		Kind: NodeKindFolder,
		Name: n.Name,
	})
	for _, c := range n.Children {
		acc.addEdge(Edge{From: n.Path, To: c.Path, Relation: RelationContains})
		b.addTreeNode(acc, c)
	}
}

// addDefinitions expands a file's extraction record into definition nodes.
func (b *Builder) addDefinitions(acc *accum, file *doctree.Node) {
	switch defs := file.Definitions.(type) {
	case *extract.Definitions:
		b.addExternalDefs(acc, file, defs)
	case *metta.Definitions:
		b.addDSLDefs(acc, file, defs)
	}
}

// addExternalDefs maps a conventional-language record: classes hang off the
// file, methods off their class, top-level functions off the file.
func (b *Builder) addExternalDefs(acc *accum, file *doctree.Node, defs *extract.Definitions) {
	for _, cls := range defs.Classes {
		clsID := classID(file.Path, cls.Name)
		acc.addNode(Node{
			ID:       clsID,
			Kind:     NodeKindClass,
			Name:     cls.Name,
			Language: file.Language,
		})
		acc.addEdge(Edge{From: file.Path, To: clsID, Relation: RelationDefines})

		for _, fn := range cls.Functions {
			b.addFunction(acc, file, clsID, RelationHasMethod, fn)
		}
	}
	for _, fn := range defs.Functions {
		b.addFunction(acc, file, file.Path, RelationDefines, fn)
	}
}

// addFunction emits one function node under its parent, plus its variables
// when enabled.
func (b *Builder) addFunction(acc *accum, file *doctree.Node, parentID string, rel Relation, fn extract.FunctionDef) {
	fnID := funcID(parentID, fn.Name)
	acc.addNode(Node{
		ID:       fnID,
		Kind:     NodeKindFunction,
		Name:     fn.Name,
		Language: file.Language,
	})
	acc.addEdge(Edge{From: parentID, To: fnID, Relation: rel})

	if !b.IncludeVariables {
		return
	}
	for _, v := range fn.Variables {
		vID := varID(fnID, v)
		acc.addNode(Node{
			ID:       vID,
			Kind:     NodeKindVariable,
			Name:     v,
			Language: file.Language,
		})
		acc.addEdge(Edge{From: fnID, To: vID, Relation: RelationUses})
	}
}

// addDSLDefs maps a DSL record: every function definition hangs directly off
// the file. Parameters are metadata on the record, not graph nodes.
func (b *Builder) addDSLDefs(acc *accum, file *doctree.Node, defs *metta.Definitions) {
	for _, fn := range defs.Functions {
		fnID := funcID(file.Path, fn.Name)
		acc.addNode(Node{
			ID:       fnID,
			Kind:     NodeKindFunction,
			Name:     fn.Name,
			Language: file.Language,
		})
		acc.addEdge(Edge{From: file.Path, To: fnID, Relation: RelationDefines})
	}
}
