// Package parser implements a hand-written recursive-descent parser for D
// ("yahaha") source text: a precedence-climbing expression grammar with
// postfix "tail" chains (call/index/member/type-test), and four points of
// speculative lookahead — assignment, tuple keys, function parameter
// lists, and for-loop range tails — per spec.md §9.
package parser

import (
	"fmt"

	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/lexer"
	"github.com/yahaha-lang/yahaha/token"
)

// Parser holds the state needed to turn a token stream into an AST. It
// never panics on malformed input; it records a ParseError and attempts
// to keep going, in the spirit of go-mix's error-collecting parser.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []*ParseError
}

// New creates a Parser over src, priming the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

// snapshot captures enough state to rewind a speculative parse attempt.
type snapshot struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

func (p *Parser) save() snapshot {
	return snapshot{lex: p.lex.Clone(), cur: p.cur, peek: p.peek}
}

func (p *Parser) restore(s snapshot) {
	p.lex = s.lex
	p.cur = s.cur
	p.peek = s.peek
}

func (p *Parser) errorf(pos token.Pos, format string, a ...interface{}) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Detail: fmt.Sprintf(format, a...)})
}

// expect verifies cur has type t, consumes it, and reports an error
// (without consuming) if it doesn't.
func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type != t {
		p.errorf(p.cur.Pos, "expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
		return false
	}
	p.advance()
	return true
}

// Errors returns every ParseError collected so far.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// HasErrors reports whether any ParseError has been collected.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// ParseProgram parses `program := (statement ";")*`, requiring end of
// input afterward. It returns the best-effort AST even when errors were
// collected, so a host can decide what to do with partial input; use
// HasErrors/Errors to check for failures.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt == nil {
			// Avoid looping forever on unrecoverable input.
			p.advance()
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
		if !p.expect(token.SEMICOLON) {
			// Resynchronize by skipping to the next semicolon or EOF.
			for p.cur.Type != token.SEMICOLON && p.cur.Type != token.EOF {
				p.advance()
			}
			if p.cur.Type == token.SEMICOLON {
				p.advance()
			}
		}
	}
	return prog
}

// Parse is the embedding-API entry point of spec.md §6: parse(source).
func Parse(src string) (*ast.Program, []*ParseError) {
	p := New(src)
	prog := p.ParseProgram()
	if p.HasErrors() {
		return prog, p.Errors()
	}
	return prog, nil
}
