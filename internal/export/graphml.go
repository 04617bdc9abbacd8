package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
)

// GraphML document model, just enough of the schema for attributed digraphs.

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string         `xml:"id,attr"`
	Data []graphmlDatum `xml:"data"`
}

type graphmlEdge struct {
	Source string         `xml:"source,attr"`
	Target string         `xml:"target,attr"`
	Data   []graphmlDatum `xml:"data"`
}

type graphmlDatum struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// Attribute key IDs, fixed so consumers can rely on them.
const (
	keyNodeType     = "d0"
	keyNodeName     = "d1"
	keyNodeLanguage = "d2"
	keyEdgeRelation = "d3"
)

// WriteGraphML writes the structure graph as a GraphML directed graph. Node
// attributes: type, name, language; edge attribute: relation.
func WriteGraphML(path string, g *graph.Graph) error {
	doc := graphmlDoc{
		XMLNS: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: keyNodeType, For: "node", AttrName: "type", AttrType: "string"},
			{ID: keyNodeName, For: "node", AttrName: "name", AttrType: "string"},
			{ID: keyNodeLanguage, For: "node", AttrName: "language", AttrType: "string"},
			{ID: keyEdgeRelation, For: "edge", AttrName: "relation", AttrType: "string"},
		},
		Graph: graphmlGraph{ID: "G", EdgeDefault: "directed"},
	}

	for _, n := range g.Nodes {
		data := []graphmlDatum{
			{Key: keyNodeType, Value: string(n.Kind)},
			{Key: keyNodeName, Value: n.Name},
		}
		if n.Language != "" {
			data = append(data, graphmlDatum{Key: keyNodeLanguage, Value: string(n.Language)})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{ID: n.ID, Data: data})
	}

	for _, e := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: e.From,
			Target: e.To,
			Data:   []graphmlDatum{{Key: keyEdgeRelation, Value: string(e.Relation)}},
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal graphml: %w", err)
	}
	payload := append([]byte(xml.Header), out...)
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
