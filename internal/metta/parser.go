package metta

import (
	"strings"
	"unicode/utf8"
)

// Parser consumes a token sequence with one token of lookahead and no
// backtracking. Malformed top-level tokens are skipped rather than reported,
// and end of input inside an open form truncates the form: a parse always
// yields a program node, never an error.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates an empty parser. A single instance can parse many inputs;
// each Parse call resets its state.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes and parses MeTTa source into a program node. Invalid UTF-8
// sequences are dropped from the input rather than failing the file.
func (p *Parser) Parse(source []byte) *Node {
	text := string(source)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}

	p.tokens = Tokenize(text)
	p.pos = 0

	root := NewNode(KindProgram, "", 1)
	for !p.atEnd() {
		if expr := p.parseTopLevel(); expr != nil {
			root.AddChild(expr)
		}
	}
	return root
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance consumes and returns the current token.
func (p *Parser) advance() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// match reports whether the current token has one of the given kinds.
func (p *Parser) match(kinds ...TokenKind) bool {
	tok, ok := p.peek()
	if !ok {
		return false
	}
	for _, k := range kinds {
		if tok.Kind == k {
			return true
		}
	}
	return false
}

// parseTopLevel parses one top-level form: comment, execution, or expression.
// Any other token is skipped silently; stray fragments never abort the rest
// of the file.
func (p *Parser) parseTopLevel() *Node {
	tok, ok := p.peek()
	if !ok {
		return nil
	}

	switch tok.Kind {
	case TokenComment:
		p.advance()
		return NewNode(KindComment, strings.TrimSpace(tok.Text), tok.Line)
	case TokenExecute:
		return p.parseExecution()
	case TokenLParen:
		return p.parseExpression()
	default:
		p.advance()
		return nil
	}
}

// parseExecution parses `!` optionally followed by a parenthesized expression.
func (p *Parser) parseExecution() *Node {
	execTok, _ := p.advance() // consume !

	if p.match(TokenLParen) {
		if expr := p.parseExpression(); expr != nil {
			node := NewNode(KindExecution, "!", execTok.Line)
			node.AddChild(expr)
			return node
		}
	}
	return NewNode(KindExecution, "!", execTok.Line)
}

// parseExpression parses a parenthesized form. A leading `=` selects a
// function definition; otherwise the form is an ordinary expression. The
// closing paren's line, not the last child's, becomes the node's EndLine so
// trailing blank lines and comments inside the form are covered.
func (p *Parser) parseExpression() *Node {
	lparen, _ := p.advance() // consume (
	startLine := lparen.Line

	if p.atEnd() || p.match(TokenRParen) {
		if p.match(TokenRParen) {
			p.advance()
		}
		return NewNode(KindEmptyExpression, "", startLine)
	}

	var result *Node
	if p.match(TokenEquals) {
		result = p.parseFunctionDefinition(startLine)
	} else {
		result = p.parseFunctionCall(startLine)
	}

	if p.match(TokenRParen) {
		endTok, _ := p.advance()
		if result != nil {
			result.EndLine = endTok.Line
		}
	}
	return result
}

// parseFunctionDefinition parses `(= (signature) body...)` after the opening
// paren; the `=` is still pending.
func (p *Parser) parseFunctionDefinition(startLine int) *Node {
	p.advance() // consume =

	node := NewNode(KindFunctionDefinition, "", startLine)

	if p.match(TokenLParen) {
		if sig := p.parseFunctionSignature(); sig != nil {
			node.AddChild(sig)
		}
	}

	for !p.atEnd() && !p.match(TokenRParen) {
		if body := p.parseAnyExpression(); body != nil {
			node.AddChild(body)
		}
	}
	return node
}

// parseFunctionSignature parses `(name param...)`. An empty signature yields
// nil; its closing paren is then consumed by the enclosing definition.
func (p *Parser) parseFunctionSignature() *Node {
	p.advance() // consume (

	if p.atEnd() || p.match(TokenRParen) {
		return nil
	}

	nameTok, _ := p.advance()
	sig := NewNode(KindFunctionSignature, nameTok.Text, nameTok.Line)

	for !p.atEnd() && !p.match(TokenRParen) {
		if param := p.parseAnyExpression(); param != nil {
			sig.AddChild(param)
		}
	}

	if p.match(TokenRParen) {
		endTok, _ := p.advance()
		sig.EndLine = endTok.Line
	}
	return sig
}

// parseFunctionCall collects all inner elements of `(f arg...)`.
func (p *Parser) parseFunctionCall(startLine int) *Node {
	call := NewNode(KindExpression, "", startLine)
	for !p.atEnd() && !p.match(TokenRParen) {
		if elem := p.parseAnyExpression(); elem != nil {
			call.AddChild(elem)
		}
	}
	return call
}

// parseAnyExpression parses a nested expression or an atomic value.
func (p *Parser) parseAnyExpression() *Node {
	if p.match(TokenLParen) {
		return p.parseExpression()
	}
	return p.parseAtom()
}

// parseAtom converts a single token into a leaf node. Tokens with no atomic
// mapping (comments or brackets inside a form) become unknown nodes.
func (p *Parser) parseAtom() *Node {
	tok, ok := p.advance()
	if !ok {
		return nil
	}

	switch tok.Kind {
	case TokenVariable:
		return NewNode(KindVariable, tok.Text, tok.Line)
	case TokenAtomspace:
		return NewNode(KindAtomspaceRef, tok.Text, tok.Line)
	case TokenString:
		return NewNode(KindString, tok.Text, tok.Line)
	case TokenNumber:
		return NewNode(KindNumber, tok.Text, tok.Line)
	case TokenOperator:
		return NewNode(KindOperator, tok.Text, tok.Line)
	case TokenAtom:
		return NewNode(KindAtom, tok.Text, tok.Line)
	default:
		return NewNode(KindUnknown, tok.Text, tok.Line)
	}
}
