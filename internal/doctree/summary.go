package doctree

import (
	"fmt"
	"strings"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

// Summary aggregates file counts over a finished tree.
type Summary struct {
	TotalFiles  int `json:"total_files"`
	MettaFiles  int `json:"metta_files"`
	OtherFiles  int `json:"other_files"`
	ParseErrors int `json:"parse_errors"`
}

// Summarize counts files by category. Files whose language went undetected
// count as other.
func Summarize(root *Node) Summary {
	var s Summary
	countFiles(root, &s)
	return s
}

func countFiles(n *Node, s *Summary) {
	if n.IsFile() {
		s.TotalFiles++
		if language.IsMetta(n.Language) {
			s.MettaFiles++
		} else {
			s.OtherFiles++
		}
		if n.ParseError != "" {
			s.ParseErrors++
		}
		return
	}
	for _, c := range n.Children {
		countFiles(c, s)
	}
}

// String renders the summary as a small report block.
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "  Total files:  %d\n", s.TotalFiles)
	fmt.Fprintf(&sb, "  MeTTa files:  %d\n", s.MettaFiles)
	fmt.Fprintf(&sb, "  Other files:  %d\n", s.OtherFiles)
	fmt.Fprintf(&sb, "  Parse errors: %d", s.ParseErrors)
	return sb.String()
}
