package parser

import (
	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/token"
)

// parseStatement dispatches on the leading keyword; absent one of the
// keyword forms, it tries an assignment and falls back to an expression
// statement (spec.md §4.2).
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Type {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.LOOP:
		return p.parseLoopSugar()
	case token.VAR:
		return p.parseVarDecl()
	default:
		return p.parseAssignOrExprStmt()
	}
}

// parseBody parses statements until one of the given terminator keywords
// is seen (without consuming the terminator), per the `Body` production.
func (p *Parser) parseBody(terminators ...token.Type) []ast.Stmt {
	var body []ast.Stmt
	for !p.atAny(terminators...) && p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt == nil {
			p.advance()
			continue
		}
		body = append(body, stmt)
		if !p.atAny(terminators...) {
			p.expect(token.SEMICOLON)
		}
	}
	return body
}

func (p *Parser) atAny(types ...token.Type) bool {
	for _, t := range types {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.cur.Pos
	p.advance() // 'if'
	cond := p.parseExpr()
	p.expect(token.THEN)
	thenBody := p.parseBody(token.ELSE, token.END)
	var elseBody []ast.Stmt
	if p.cur.Type == token.ELSE {
		p.advance()
		elseBody = p.parseBody(token.END)
	}
	p.expect(token.END)
	return &ast.If{Cond: cond, Then: thenBody, Else: elseBody, Base: ast.Base{P: pos}}
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.cur.Pos
	p.advance() // 'while'
	cond := p.parseExpr()
	p.expect(token.LOOP)
	body := p.parseBody(token.END)
	p.expect(token.END)
	return &ast.While{Cond: cond, Body: body, Base: ast.Base{P: pos}}
}

// parseLoopSugar desugars `loop ... end` into `while true loop ... end`.
func (p *Parser) parseLoopSugar() ast.Stmt {
	pos := p.cur.Pos
	p.advance() // 'loop'
	body := p.parseBody(token.END)
	p.expect(token.END)
	return &ast.While{Cond: &ast.BoolLit{Value: true, Base: ast.Base{P: pos}}, Body: body, Base: ast.Base{P: pos}}
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.cur.Pos
	p.advance() // 'for'
	name := p.cur.Literal
	p.expect(token.IDENT)
	p.expect(token.IN)

	first := p.parseExpr()
	node := &ast.For{Name: name, Base: ast.Base{P: pos}}
	if p.cur.Type == token.RANGE {
		p.advance()
		hi := p.parseExpr()
		node.IsRange = true
		node.Lo = first
		node.Hi = hi
	} else {
		node.Iterable = first
	}
	p.expect(token.LOOP)
	node.Body = p.parseBody(token.END)
	p.expect(token.END)
	return node
}

func (p *Parser) parseVarDecl() ast.Stmt {
	pos := p.cur.Pos
	p.advance() // 'var'
	name := p.cur.Literal
	p.expect(token.IDENT)

	var value ast.Expr = &ast.Empty{}
	if p.cur.Type == token.ASSIGN {
		p.advance()
		value = p.parseExpr()
	}
	return &ast.Decl{Name: name, Value: value, Base: ast.Base{P: pos}}
}

// parseAssignOrExprStmt implements spec.md §4.2's assignment recognition:
// attempt `expr ":=" expr`, commit on seeing ":=", otherwise fall back to
// a plain expression statement. Parsing the candidate lvalue expression
// doesn't require rewinding the lexer on the happy path (":=" never
// appears inside an expression), but a snapshot is still taken first so a
// parse that goes wrong mid-expression can be retried as a bare
// expression statement instead of derailing the whole statement.
func (p *Parser) parseAssignOrExprStmt() ast.Stmt {
	pos := p.cur.Pos
	mark := p.save()
	errsBefore := len(p.errors)

	lhs := p.parseExpr()

	if p.cur.Type == token.ASSIGN {
		p.advance()
		rhs := p.parseExpr()
		return &ast.Assign{Target: lhs, Value: rhs, Base: ast.Base{P: pos}}
	}

	if len(p.errors) > errsBefore {
		// The speculative lvalue parse hit trouble; rewind and re-parse
		// as a plain expression statement so errors are reported once,
		// against the simpler production.
		p.restore(mark)
		p.errors = p.errors[:errsBefore]
		lhs = p.parseExpr()
	}

	return &ast.ExprStmt{X: lhs, Base: ast.Base{P: pos}}
}
