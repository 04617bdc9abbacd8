package export

import (
	"fmt"
	"strings"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
)

// GenerateMermaid produces a Mermaid graph TD diagram of the containment and
// definition structure. Long IDs are replaced with short N<i> aliases.
func GenerateMermaid(g *graph.Graph) string {
	// Build node → ID mapping for Mermaid (alphanumeric only).
	nodeIDs := make(map[string]string)
	nextID := 0
	getID := func(id string) string {
		if alias, ok := nodeIDs[id]; ok {
			return alias
		}
		alias := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[id] = alias
		return alias
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range g.Nodes {
		label := n.Name
		if label == "" {
			label = n.ID
		}
		switch n.Kind {
		case graph.NodeKindFolder:
			sb.WriteString(fmt.Sprintf("  %s[/\"%s\"/]\n", getID(n.ID), escapeLabel(label)))
		case graph.NodeKindFile:
			sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", getID(n.ID), escapeLabel(label)))
		default:
			sb.WriteString(fmt.Sprintf("  %s([\"%s\"])\n", getID(n.ID), escapeLabel(label)))
		}
	}

	for _, e := range g.Edges {
		src := getID(e.From)
		dst := getID(e.To)
		if e.Relation == graph.RelationContains {
			sb.WriteString(fmt.Sprintf("  %s --> %s\n", src, dst))
		} else {
			sb.WriteString(fmt.Sprintf("  %s -- %s --> %s\n", src, e.Relation, dst))
		}
	}

	return sb.String()
}

// escapeLabel strips characters that break Mermaid node labels.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	return strings.ReplaceAll(s, "\n", " ")
}
