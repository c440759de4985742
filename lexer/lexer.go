// Package lexer implements the scanner for D ("yahaha") source text: it
// recognizes identifiers, integer and real literals, string literals,
// reserved words, and reserved operators, skipping whitespace and
// "// ..." line comments along the way.
package lexer

import (
	"strings"

	"github.com/yahaha-lang/yahaha/token"
)

// Lexer scans D source text one token at a time. It tracks line/column
// position so the parser can attach it to parse diagnostics.
type Lexer struct {
	src       string
	position  int
	srcLength int
	current   byte
	line      int
	column    int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		src:       src,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
	if lex.srcLength > 0 {
		lex.current = src[0]
	}
	return lex
}

func (l *Lexer) peek() byte {
	if l.position+1 >= l.srcLength {
		return 0
	}
	return l.src[l.position+1]
}

func (l *Lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
	if l.position >= l.srcLength {
		l.current = 0
		l.position = l.srcLength
	} else {
		l.current = l.src[l.position]
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentStart(b byte) bool {
	return isAlpha(b)
}

func isIdentPart(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		if isWhitespace(l.current) {
			l.advance()
			continue
		}
		if l.current == '/' && l.peek() == '/' {
			for l.current != '\n' && l.current != 0 {
				l.advance()
			}
			continue
		}
		break
	}
}

// Next scans and returns the next token, advancing past it.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()
	pos := token.Pos{Line: l.line, Column: l.column}

	if l.current == 0 {
		return token.New(token.EOF, "", pos)
	}

	switch {
	case l.current == '"':
		return l.readString(pos)
	case isDigit(l.current):
		return l.readNumber(pos)
	case isIdentStart(l.current):
		return l.readIdent(pos)
	}

	// Maximal-munch operators/punctuation.
	switch l.current {
	case ':':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.ASSIGN, ":=", pos)
		}
		l.advance()
		return token.New(token.INVALID, ":", pos)
	case '=':
		if l.peek() == '>' {
			l.advance()
			l.advance()
			return token.New(token.ARROW, "=>", pos)
		}
		l.advance()
		return token.New(token.EQ, "=", pos)
	case '.':
		if l.peek() == '.' {
			l.advance()
			l.advance()
			return token.New(token.RANGE, "..", pos)
		}
		l.advance()
		return token.New(token.DOT, ".", pos)
	case '<':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.LE, "<=", pos)
		}
		l.advance()
		return token.New(token.LT, "<", pos)
	case '>':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.GE, ">=", pos)
		}
		l.advance()
		return token.New(token.GT, ">", pos)
	case '/':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.NE, "/=", pos)
		}
		l.advance()
		return token.New(token.SLASH, "/", pos)
	case '+':
		l.advance()
		return token.New(token.PLUS, "+", pos)
	case '-':
		l.advance()
		return token.New(token.MINUS, "-", pos)
	case '*':
		l.advance()
		return token.New(token.STAR, "*", pos)
	case '(':
		l.advance()
		return token.New(token.LPAREN, "(", pos)
	case ')':
		l.advance()
		return token.New(token.RPAREN, ")", pos)
	case '[':
		l.advance()
		return token.New(token.LBRACKET, "[", pos)
	case ']':
		l.advance()
		return token.New(token.RBRACKET, "]", pos)
	case '{':
		l.advance()
		return token.New(token.LBRACE, "{", pos)
	case '}':
		l.advance()
		return token.New(token.RBRACE, "}", pos)
	case ',':
		l.advance()
		return token.New(token.COMMA, ",", pos)
	case ';':
		l.advance()
		return token.New(token.SEMICOLON, ";", pos)
	}

	bad := string(l.current)
	l.advance()
	return token.New(token.INVALID, bad, pos)
}

func (l *Lexer) readIdent(pos token.Pos) token.Token {
	var b strings.Builder
	for isIdentPart(l.current) {
		b.WriteByte(l.current)
		l.advance()
	}
	lit := b.String()
	return token.New(token.LookupIdent(lit), lit, pos)
}

func (l *Lexer) readNumber(pos token.Pos) token.Token {
	var b strings.Builder
	for isDigit(l.current) {
		b.WriteByte(l.current)
		l.advance()
	}
	if l.current == '.' && isDigit(l.peek()) {
		b.WriteByte('.')
		l.advance()
		for isDigit(l.current) {
			b.WriteByte(l.current)
			l.advance()
		}
		return token.New(token.REAL, b.String(), pos)
	}
	return token.New(token.INT, b.String(), pos)
}

// readString scans a "..." literal. There are no escape sequences: the
// content is any byte other than the closing quote.
func (l *Lexer) readString(pos token.Pos) token.Token {
	l.advance() // consume opening quote
	var b strings.Builder
	for l.current != '"' && l.current != 0 {
		b.WriteByte(l.current)
		l.advance()
	}
	if l.current == '"' {
		l.advance() // consume closing quote
	}
	return token.New(token.STRING, b.String(), pos)
}

// Clone returns an independent copy of the lexer's scanning state, used by
// the parser's speculative lookahead (spec.md §9) to try a parse and
// rewind if it doesn't pan out.
func (l *Lexer) Clone() *Lexer {
	c := *l
	return &c
}

// Tokenize scans the entire source and returns every non-EOF token. Mostly
// useful for tests and debugging; the parser drives Next() itself.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		t := l.Next()
		if t.Type == token.EOF {
			break
		}
		toks = append(toks, t)
	}
	return toks
}
