package metta

// Lexer tokenizes MeTTa source in a single left-to-right scan. When more than
// one token could start at the current byte, precedence is: comment, `!`,
// parens/brackets, atomspace, variable, string, number, `=`, operator run,
// atom. Whitespace and newlines are consumed but never emitted; bytes that
// start no token are dropped so a stray character cannot fail a whole file.
type Lexer struct {
	input     string
	pos       int
	line      int
	lineStart int
}

// NewLexer creates a lexer over the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Tokenize scans the entire input and returns the token sequence.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, ok := l.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// next returns the next token, or ok=false at end of input.
func (l *Lexer) next() (Token, bool) {
	for l.pos < len(l.input) {
		start := l.pos
		ch := l.input[l.pos]

		switch {
		case ch == '\n':
			l.pos++
			l.line++
			l.lineStart = l.pos

		case ch == ' ' || ch == '\t' || ch == '\r':
			l.pos++

		case ch == ';':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
			return l.emit(TokenComment, start), true

		case ch == '!':
			l.pos++
			return l.emit(TokenExecute, start), true

		case ch == '(':
			l.pos++
			return l.emit(TokenLParen, start), true

		case ch == ')':
			l.pos++
			return l.emit(TokenRParen, start), true

		case ch == '[':
			l.pos++
			return l.emit(TokenLBracket, start), true

		case ch == ']':
			l.pos++
			return l.emit(TokenRBracket, start), true

		case ch == '&':
			if l.pos+1 < len(l.input) && isIdentStart(l.input[l.pos+1]) {
				l.pos++
				l.scanIdent()
				return l.emit(TokenAtomspace, start), true
			}
			l.pos++ // bare & starts nothing

		case ch == '$':
			if l.pos+1 < len(l.input) && isIdentStart(l.input[l.pos+1]) {
				l.pos++
				l.scanIdent()
				return l.emit(TokenVariable, start), true
			}
			l.pos++

		case ch == '"':
			if tok, ok := l.scanString(start); ok {
				return tok, true
			}
			// Unterminated: drop the quote and keep scanning.
			l.pos = start + 1

		case isDigit(ch) || (ch == '-' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1])):
			l.scanNumber()
			return l.emit(TokenNumber, start), true

		case ch == '=':
			l.pos++
			return l.emit(TokenEquals, start), true

		case isOperatorStart(ch):
			for l.pos < len(l.input) && isOperatorChar(l.input[l.pos]) {
				l.pos++
			}
			return l.emit(TokenOperator, start), true

		case isIdentStart(ch):
			l.scanIdent()
			if l.pos < len(l.input) && l.input[l.pos] == '!' {
				l.pos++ // trailing ! belongs to the atom, e.g. println!
			}
			return l.emit(TokenAtom, start), true

		default:
			l.pos++ // unrecognized byte, drop it
		}
	}
	return Token{}, false
}

func (l *Lexer) emit(kind TokenKind, start int) Token {
	return Token{
		Kind:   kind,
		Text:   l.input[start:l.pos],
		Line:   l.line,
		Column: start - l.lineStart,
	}
}

// scanString consumes a double-quoted string starting at the opening quote.
// Strings may span newlines. The token carries the line and column of the
// opening quote; the lexer's position tracking advances past any newlines
// inside the string. Reports ok=false without committing anything when the
// closing quote is missing.
func (l *Lexer) scanString(start int) (Token, bool) {
	tok := Token{Kind: TokenString, Line: l.line, Column: start - l.lineStart}
	line, lineStart := l.line, l.lineStart
	i := start + 1
	for i < len(l.input) {
		switch l.input[i] {
		case '"':
			l.pos = i + 1
			l.line, l.lineStart = line, lineStart
			tok.Text = l.input[start:l.pos]
			return tok, true
		case '\n':
			line++
			i++
			lineStart = i
		case '\\':
			if i+1 >= len(l.input) {
				return Token{}, false
			}
			if l.input[i+1] == '\n' {
				line++
				lineStart = i + 2
			}
			i += 2
		default:
			i++
		}
	}
	return Token{}, false
}

// scanNumber consumes an optionally negative integer or decimal.
func (l *Lexer) scanNumber() {
	if l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
}

// scanIdent consumes identifier characters: letters, digits, `_`, `-`.
func (l *Lexer) scanIdent() {
	l.pos++ // first char already validated
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-'
}

func isOperatorStart(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '>', '<':
		return true
	}
	return false
}

func isOperatorChar(ch byte) bool {
	return isOperatorStart(ch) || ch == '!' || ch == '='
}
