package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/extract"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/metta"
)

// sampleTree builds a document tree by hand: a folder holding one
// conventional file, one DSL file, and a subfolder with a failed file.
func sampleTree() *doctree.Node {
	return &doctree.Node{
		Name: "p", Path: "/p", Type: doctree.TypeFolder,
		Children: []*doctree.Node{
			{
				Name: "a.py", Path: "/p/a.py", Type: doctree.TypeFile,
				Language:   language.LangPython,
				ParserKind: doctree.ParserExternal,
				Definitions: &extract.Definitions{
					Classes: []extract.ClassDef{{
						Name: "Greeter", Line: 1,
						Functions: []extract.FunctionDef{{Name: "greet", Line: 2, Variables: []string{"message"}, LineCount: 3}},
					}},
					Functions: []extract.FunctionDef{{Name: "run", Line: 7, Variables: []string{"g"}, LineCount: 3}},
				},
			},
			{
				Name: "kb.metta", Path: "/p/kb.metta", Type: doctree.TypeFile,
				Language:   language.LangMetta,
				ParserKind: doctree.ParserDSL,
				Definitions: &metta.Definitions{
					Functions: []metta.FunctionDef{{Name: "double", StartLine: 1, EndLine: 1, Parameters: []string{"$x"}}},
				},
			},
			{
				Name: "sub", Path: "/p/sub", Type: doctree.TypeFolder,
				Children: []*doctree.Node{
					{Name: "bad.rs", Path: "/p/sub/bad.rs", Type: doctree.TypeFile, ParseError: "read file: gone"},
				},
			},
		},
	}
}

// nodeIDs projects a graph's node IDs in build order.
func nodeIDs(g *Graph) []string {
	out := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = n.ID
	}
	return out
}

func findEdge(g *Graph, from, to string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}

func TestBuild_NodesAndEdges(t *testing.T) {
	g := NewBuilder().Build(sampleTree())

	assert.Equal(t, []string{
		"/p",
		"/p/a.py",
		"/p/a.py::class::Greeter",
		"/p/a.py::class::Greeter::func::greet",
		"/p/a.py::func::run",
		"/p/kb.metta",
		"/p/kb.metta::func::double",
		"/p/sub",
		"/p/sub/bad.rs",
	}, nodeIDs(g))

	e, ok := findEdge(g, "/p", "/p/a.py")
	require.True(t, ok)
	assert.Equal(t, RelationContains, e.Relation)

	e, ok = findEdge(g, "/p/a.py", "/p/a.py::class::Greeter")
	require.True(t, ok)
	assert.Equal(t, RelationDefines, e.Relation)

	e, ok = findEdge(g, "/p/a.py::class::Greeter", "/p/a.py::class::Greeter::func::greet")
	require.True(t, ok)
	assert.Equal(t, RelationHasMethod, e.Relation)

	e, ok = findEdge(g, "/p/a.py", "/p/a.py::func::run")
	require.True(t, ok)
	assert.Equal(t, RelationDefines, e.Relation)

	e, ok = findEdge(g, "/p/kb.metta", "/p/kb.metta::func::double")
	require.True(t, ok)
	assert.Equal(t, RelationDefines, e.Relation)

	// The failed file is present but defines nothing.
	_, ok = findEdge(g, "/p/sub", "/p/sub/bad.rs")
	assert.True(t, ok)
	for _, e := range g.Edges {
		assert.NotEqual(t, "/p/sub/bad.rs", e.From)
	}
}

func TestBuild_LanguageInheritance(t *testing.T) {
	g := NewBuilder().Build(sampleTree())

	byID := map[string]Node{}
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	assert.Empty(t, byID["/p"].Language)
	assert.Equal(t, language.LangPython, byID["/p/a.py"].Language)
	assert.Equal(t, language.LangPython, byID["/p/a.py::class::Greeter"].Language)
	assert.Equal(t, language.LangPython, byID["/p/a.py::class::Greeter::func::greet"].Language)
	assert.Equal(t, language.LangMetta, byID["/p/kb.metta::func::double"].Language)
	assert.Equal(t, NodeKindClass, byID["/p/a.py::class::Greeter"].Kind)
	assert.Equal(t, NodeKindFunction, byID["/p/kb.metta::func::double"].Kind)
}

func TestBuild_IncludeVariables(t *testing.T) {
	b := NewBuilder()
	b.IncludeVariables = true
	g := b.Build(sampleTree())

	ids := nodeIDs(g)
	assert.Contains(t, ids, "/p/a.py::class::Greeter::func::greet::var::message")
	assert.Contains(t, ids, "/p/a.py::func::run::var::g")

	e, ok := findEdge(g, "/p/a.py::func::run", "/p/a.py::func::run::var::g")
	require.True(t, ok)
	assert.Equal(t, RelationUses, e.Relation)

	// DSL parameters never become variable nodes.
	for _, id := range ids {
		assert.NotContains(t, id, "kb.metta::func::double::var")
	}
}

func TestBuild_SameNameDefinitions(t *testing.T) {
	// Two same-named top-level functions (Go String() methods on different
	// receivers land here) share one node, and a class named like a function
	// gets its own ID.
	tree := &doctree.Node{
		Name: "m.go", Path: "/p/m.go", Type: doctree.TypeFile,
		Language:   language.LangGo,
		ParserKind: doctree.ParserExternal,
		Definitions: &extract.Definitions{
			Classes: []extract.ClassDef{{Name: "String", Line: 3, Functions: []extract.FunctionDef{}}},
			Functions: []extract.FunctionDef{
				{Name: "String", Line: 5, Variables: []string{}, LineCount: 3},
				{Name: "String", Line: 9, Variables: []string{}, LineCount: 3},
			},
		},
	}
	g := NewBuilder().Build(tree)

	seen := map[string]int{}
	for _, n := range g.Nodes {
		seen[n.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "node %q", id)
	}
	assert.Contains(t, seen, "/p/m.go::class::String")
	assert.Contains(t, seen, "/p/m.go::func::String")

	defines := 0
	for _, e := range g.Edges {
		if e.To == "/p/m.go::func::String" {
			defines++
		}
	}
	assert.Equal(t, 1, defines)
}

func TestBuild_Deterministic(t *testing.T) {
	first := NewBuilder().Build(sampleTree())
	second := NewBuilder().Build(sampleTree())
	assert.Equal(t, first, second)
}

func TestBuild_Stats(t *testing.T) {
	g := NewBuilder().Build(sampleTree())
	s := g.Stats()

	assert.Equal(t, 2, s.FolderCount)
	assert.Equal(t, 3, s.FileCount)
	assert.Equal(t, 1, s.ClassCount)
	assert.Equal(t, 3, s.FunctionCount)
	assert.Equal(t, 0, s.VariableCount)
	assert.Equal(t, len(g.Edges), s.EdgeCount)
}

func TestBuild_NilTree(t *testing.T) {
	g := NewBuilder().Build(nil)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}
