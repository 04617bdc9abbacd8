package metta

import (
	"fmt"
	"sort"
)

// FunctionDef is one `(= (name params...) body)` definition.
type FunctionDef struct {
	Name       string   `json:"name"`
	StartLine  int      `json:"start_line"`
	EndLine    int      `json:"end_line"`
	Parameters []string `json:"parameters"`
}

// Execution is one `!(...)` statement.
type Execution struct {
	Line       int    `json:"line"`
	Expression string `json:"expression"`
}

// Fact is a three-element expression whose head is a plain atom, read as a
// subject-predicate-object triple.
type Fact struct {
	Line    int    `json:"line"`
	Pattern string `json:"pattern"`
	Subject string `json:"subject"`
}

// Expression is any other parenthesized form.
type Expression struct {
	Line      int    `json:"line"`
	Signature string `json:"signature"`
}

// Summary holds derived counts; each count equals the length of the
// corresponding collection.
type Summary struct {
	FunctionCount   int `json:"function_count"`
	ExpressionCount int `json:"expression_count"`
	ExecutionCount  int `json:"execution_count"`
	FactCount       int `json:"fact_count"`
	VariableCount   int `json:"variable_count"`
	AtomspaceCount  int `json:"atomspace_count"`
}

// Definitions is the per-file extraction record for MeTTa sources.
// Variables and Atomspaces are deduplicated and sorted.
type Definitions struct {
	Functions   []FunctionDef `json:"functions"`
	Expressions []Expression  `json:"expressions"`
	Executions  []Execution   `json:"executions"`
	Facts       []Fact        `json:"facts"`
	Variables   []string      `json:"variables"`
	Atomspaces  []string      `json:"atomspaces"`
	Summary     Summary       `json:"summary"`
}

// Extract walks the AST twice: once collecting every variable and atomspace
// reference into sets, once classifying nodes into functions, executions,
// facts, and free expressions.
func Extract(root *Node) *Definitions {
	defs := &Definitions{
		Functions:   []FunctionDef{},
		Expressions: []Expression{},
		Executions:  []Execution{},
		Facts:       []Fact{},
	}

	variables := make(map[string]bool)
	atomspaces := make(map[string]bool)
	collectRefs(root, variables, atomspaces)

	classify(root, defs)

	defs.Variables = sortedKeys(variables)
	defs.Atomspaces = sortedKeys(atomspaces)
	defs.Summary = Summary{
		FunctionCount:   len(defs.Functions),
		ExpressionCount: len(defs.Expressions),
		ExecutionCount:  len(defs.Executions),
		FactCount:       len(defs.Facts),
		VariableCount:   len(defs.Variables),
		AtomspaceCount:  len(defs.Atomspaces),
	}
	return defs
}

func collectRefs(n *Node, variables, atomspaces map[string]bool) {
	switch n.Kind {
	case KindVariable:
		variables[n.Value] = true
	case KindAtomspaceRef:
		atomspaces[n.Value] = true
	}
	for _, c := range n.Children {
		collectRefs(c, variables, atomspaces)
	}
}

// classify categorizes a node and recurses into its children, so nested forms
// inside bodies are counted as well.
func classify(n *Node, defs *Definitions) {
	switch n.Kind {
	case KindFunctionDefinition:
		if fn, ok := functionInfo(n); ok {
			defs.Functions = append(defs.Functions, fn)
		}

	case KindExecution:
		if len(n.Children) > 0 {
			defs.Executions = append(defs.Executions, Execution{
				Line:       n.StartLine,
				Expression: signature(n.Children[0]),
			})
		}

	case KindExpression:
		sig := signature(n)
		if len(n.Children) == 3 && n.Children[0].Kind == KindAtom {
			defs.Facts = append(defs.Facts, Fact{
				Line:    n.StartLine,
				Pattern: sig,
				Subject: n.Children[0].Value,
			})
		} else {
			defs.Expressions = append(defs.Expressions, Expression{
				Line:      n.StartLine,
				Signature: sig,
			})
		}
	}

	for _, c := range n.Children {
		classify(c, defs)
	}
}

// functionInfo extracts name and parameters from a function definition's
// signature child. Definitions without a signature are dropped.
func functionInfo(n *Node) (FunctionDef, bool) {
	var sig *Node
	for _, c := range n.Children {
		if c.Kind == KindFunctionSignature {
			sig = c
			break
		}
	}
	if sig == nil {
		return FunctionDef{}, false
	}

	params := []string{}
	for _, c := range sig.Children {
		if c.Kind == KindVariable {
			params = append(params, c.Value)
		}
	}

	return FunctionDef{
		Name:       sig.Value,
		StartLine:  n.StartLine,
		EndLine:    n.EndLine,
		Parameters: params,
	}, true
}

// signature renders a readable description of an expression: the head value
// plus argument count, or just the head when there are no arguments.
func signature(n *Node) string {
	if len(n.Children) == 0 {
		if n.Value == "" {
			return "empty"
		}
		return n.Value
	}

	head := n.Children[0].Value
	argCount := len(n.Children) - 1
	if argCount > 0 {
		return fmt.Sprintf("%s(%d args)", head, argCount)
	}
	return head
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
