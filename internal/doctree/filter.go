package doctree

import "github.com/Tesfalegnp/Auto-Document-Generation/internal/language"

// FilterMetta returns a copy of the tree containing only MeTTa files and the
// folders needed to reach them. It returns nil when nothing remains.
func FilterMetta(root *Node) *Node {
	if root == nil {
		return nil
	}

	if root.IsFile() {
		if language.IsMetta(root.Language) {
			return root
		}
		return nil
	}

	filtered := []*Node{}
	for _, c := range root.Children {
		if fc := FilterMetta(c); fc != nil {
			filtered = append(filtered, fc)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	out := *root
	out.Children = filtered
	return &out
}
