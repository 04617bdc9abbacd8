package export

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

func sampleGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: "/p", Kind: graph.NodeKindFolder, Name: "p"},
			{ID: "/p/a.py", Kind: graph.NodeKindFile, Name: "a.py", Language: language.LangPython},
			{ID: "/p/a.py::func::run", Kind: graph.NodeKindFunction, Name: "run", Language: language.LangPython},
		},
		Edges: []graph.Edge{
			{From: "/p", To: "/p/a.py", Relation: graph.RelationContains},
			{From: "/p/a.py", To: "/p/a.py::func::run", Relation: graph.RelationDefines},
		},
	}
}

func TestWriteTreeJSON(t *testing.T) {
	tree := &doctree.Node{
		Name: "p", Path: "/p", Type: doctree.TypeFolder,
		Children: []*doctree.Node{
			{Name: "a.py", Path: "/p/a.py", Type: doctree.TypeFile, Language: language.LangPython},
		},
	}

	// Parent directories are created on demand.
	out := filepath.Join(t.TempDir(), "docs", "tree.json")
	require.NoError(t, WriteTreeJSON(out, tree))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded doctree.Node
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "p", decoded.Name)
	require.Len(t, decoded.Children, 1)
	assert.Equal(t, language.LangPython, decoded.Children[0].Language)
	// Folder nodes never serialize file-only fields.
	assert.NotContains(t, string(data), "parse_error")
}

func TestWriteGraphJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, WriteGraphJSON(out, sampleGraph()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded graph.Graph
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Nodes, 3)
	assert.Len(t, decoded.Edges, 2)
	assert.Equal(t, graph.RelationDefines, decoded.Edges[1].Relation)
}

func TestWriteGraphML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "g.graphml")
	require.NoError(t, WriteGraphML(out, sampleGraph()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, xml.Header))
	assert.Contains(t, text, `edgedefault="directed"`)
	assert.Contains(t, text, `attr.name="relation"`)
	assert.Contains(t, text, `<node id="/p/a.py::func::run">`)
	assert.Contains(t, text, `<edge source="/p/a.py" target="/p/a.py::func::run">`)
	assert.Contains(t, text, ">defines<")
	// Folders carry no language datum.
	assert.Equal(t, 2, strings.Count(text, ">python<"))
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(sampleGraph())

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `N0[/"p"/]`)
	assert.Contains(t, out, `N1["a.py"]`)
	assert.Contains(t, out, `N2(["run"])`)
	assert.Contains(t, out, "N0 --> N1")
	assert.Contains(t, out, "N1 -- defines --> N2")
}
