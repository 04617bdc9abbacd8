package metta

// NodeKind classifies an AST node.
type NodeKind string

const (
	KindProgram            NodeKind = "program"
	KindComment            NodeKind = "comment"
	KindExecution          NodeKind = "execution"
	KindExpression         NodeKind = "expression"
	KindEmptyExpression    NodeKind = "empty_expression"
	KindFunctionDefinition NodeKind = "function_definition"
	KindFunctionSignature  NodeKind = "function_signature"
	KindVariable           NodeKind = "variable"
	KindAtomspaceRef       NodeKind = "atomspace_ref"
	KindString             NodeKind = "string"
	KindNumber             NodeKind = "number"
	KindOperator           NodeKind = "operator"
	KindAtom               NodeKind = "atom"
	KindUnknown            NodeKind = "unknown"
)

// Node is a MeTTa AST node. Nodes form a strict tree: every node is owned by
// exactly one parent and the root is owned by the parse result. EndLine is
// maintained incrementally as children attach and is never below StartLine.
type Node struct {
	Kind      NodeKind
	Value     string
	StartLine int
	EndLine   int
	Children  []*Node
}

// NewNode creates a node spanning a single line.
func NewNode(kind NodeKind, value string, line int) *Node {
	return &Node{Kind: kind, Value: value, StartLine: line, EndLine: line}
}

// AddChild attaches a child and raises this node's EndLine if the child ends
// later.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
	if child.EndLine > n.EndLine {
		n.EndLine = child.EndLine
	}
}
