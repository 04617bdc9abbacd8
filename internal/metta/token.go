// Package metta implements the front-end for the MeTTa DSL: a hand-written
// lexer, a recursive-descent parser producing a typed AST, and a definitions
// extractor over that AST. No third-party grammar exists for MeTTa, so this
// package is the one place the pipeline parses source itself.
package metta

import "fmt"

// TokenKind classifies a lexer token.
type TokenKind int

const (
	TokenComment TokenKind = iota // ; to end of line
	TokenExecute                  // !
	TokenLParen                   // (
	TokenRParen                   // )
	TokenLBracket                 // [
	TokenRBracket                 // ]
	TokenAtomspace                // &name
	TokenVariable                 // $name
	TokenString                   // "..."
	TokenNumber                   // 123, -4.5
	TokenEquals                   // =
	TokenOperator                 // +, -, >=, ...
	TokenAtom                     // identifiers, println!
)

var tokenKindNames = map[TokenKind]string{
	TokenComment:   "comment",
	TokenExecute:   "execute",
	TokenLParen:    "lparen",
	TokenRParen:    "rparen",
	TokenLBracket:  "lbracket",
	TokenRBracket:  "rbracket",
	TokenAtomspace: "atomspace",
	TokenVariable:  "variable",
	TokenString:    "string",
	TokenNumber:    "number",
	TokenEquals:    "equals",
	TokenOperator:  "operator",
	TokenAtom:      "atom",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexeme with its source position. Line is 1-based;
// Column is the byte offset from the last newline.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d:%d)", t.Kind, t.Text, t.Line, t.Column)
}
