package parser

import (
	"strconv"

	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/token"
)

// parseExpr enters the precedence ladder at its lowest-binding level
// (spec.md §4.2 "Logical: and, or, xor").
func (p *Parser) parseExpr() ast.Expr {
	return p.parseLogical()
}

func (p *Parser) parseLogical() ast.Expr {
	left := p.parseRelational()
	for {
		var op ast.BinaryOp
		switch p.cur.Type {
		case token.AND:
			op = ast.LogAnd
		case token.OR:
			op = ast.LogOr
		case token.XOR:
			op = ast.LogXor
		default:
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseRelational()
		left = &ast.Binary{Op: op, X: left, Y: right, Base: ast.Base{P: pos}}
	}
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.cur.Type {
		case token.LT:
			op = ast.Lt
		case token.LE:
			op = ast.Le
		case token.GT:
			op = ast.Gt
		case token.GE:
			op = ast.Ge
		case token.EQ:
			op = ast.Eq
		case token.NE:
			op = ast.Ne
		default:
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Op: op, X: left, Y: right, Base: ast.Base{P: pos}}
	}
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for {
		var op ast.BinaryOp
		switch p.cur.Type {
		case token.PLUS:
			op = ast.Add
		case token.MINUS:
			op = ast.Sub
		default:
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Op: op, X: left, Y: right, Base: ast.Base{P: pos}}
	}
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch p.cur.Type {
		case token.STAR:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		default:
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Op: op, X: left, Y: right, Base: ast.Base{P: pos}}
	}
}

// parseUnary handles the right-associative prefix operators -, +, not.
func (p *Parser) parseUnary() ast.Expr {
	var op ast.UnaryOp
	switch p.cur.Type {
	case token.MINUS:
		op = ast.Neg
	case token.PLUS:
		op = ast.UPlus
	case token.NOT:
		op = ast.Not
	default:
		return p.parseTerm()
	}
	pos := p.cur.Pos
	p.advance()
	x := p.parseUnary()
	return &ast.Unary{Op: op, X: x, Base: ast.Base{P: pos}}
}

// parseTerm parses a primary followed by any number of chained postfix
// tails: call, index, member, and type test (spec.md §4.2).
func (p *Parser) parseTerm() ast.Expr {
	x := p.parsePrimary()
	for {
		switch p.cur.Type {
		case token.LPAREN:
			x = p.parseCallTail(x)
		case token.LBRACKET:
			x = p.parseIndexTail(x)
		case token.DOT:
			x = p.parseMemberTail(x)
		case token.IS:
			x = p.parseIsTail(x)
		default:
			return x
		}
	}
}

func (p *Parser) parseCallTail(fn ast.Expr) ast.Expr {
	pos := p.cur.Pos
	p.advance() // '('
	var args []ast.Expr
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		args = append(args, p.parseExpr())
		if p.cur.Type == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	return &ast.Call{Fn: fn, Args: args, Base: ast.Base{P: pos}}
}

func (p *Parser) parseIndexTail(x ast.Expr) ast.Expr {
	pos := p.cur.Pos
	p.advance() // '['
	idx := p.parseExpr()
	p.expect(token.RBRACKET)
	return &ast.Index{X: x, Index: idx, Base: ast.Base{P: pos}}
}

func (p *Parser) parseMemberTail(x ast.Expr) ast.Expr {
	pos := p.cur.Pos
	p.advance() // '.'
	m := &ast.Member{X: x, Base: ast.Base{P: pos}}
	switch p.cur.Type {
	case token.IDENT:
		m.Name = p.cur.Literal
		p.advance()
	case token.INT:
		n, _ := strconv.ParseInt(p.cur.Literal, 10, 64)
		m.Index = n
		m.IsInt = true
		p.advance()
	default:
		p.errorf(p.cur.Pos, "expected member name or index after '.', got %s", p.cur.Type)
	}
	return m
}

func (p *Parser) parseIsTail(x ast.Expr) ast.Expr {
	pos := p.cur.Pos
	p.advance() // 'is'
	t, ok := parseTypeIndicator(p.cur.Literal)
	if !ok {
		p.errorf(p.cur.Pos, "expected a type indicator after 'is', got %q", p.cur.Literal)
	}
	p.advance()
	return &ast.IsExpr{X: x, Type: t, Base: ast.Base{P: pos}}
}

func parseTypeIndicator(name string) (ast.TypeIndicator, bool) {
	switch name {
	case "int":
		return ast.TInt, true
	case "real":
		return ast.TReal, true
	case "bool":
		return ast.TBool, true
	case "string":
		return ast.TString, true
	case "empty":
		return ast.TEmpty, true
	case "array":
		return ast.TArray, true
	case "tuple":
		return ast.TTuple, true
	case "func":
		return ast.TFunc, true
	}
	return 0, false
}

// parsePrimary parses `( expr )`, an array/tuple/function literal, or a
// primitive (bool/number/string/identifier/Empty).
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Type {
	case token.LPAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return x
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.LBRACE:
		return p.parseTupleLit()
	case token.FUNC:
		return p.parseFuncLit()
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Base: ast.Base{P: pos}}
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Base: ast.Base{P: pos}}
	case token.INT:
		lit := p.cur.Literal
		p.advance()
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			p.errorf(pos, "invalid integer literal %q", lit)
		}
		return &ast.IntLit{Value: n, Base: ast.Base{P: pos}}
	case token.REAL:
		lit := p.cur.Literal
		p.advance()
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			p.errorf(pos, "invalid real literal %q", lit)
		}
		return &ast.RealLit{Value: f, Base: ast.Base{P: pos}}
	case token.STRING:
		lit := p.cur.Literal
		p.advance()
		return &ast.StringLit{Value: lit, Base: ast.Base{P: pos}}
	case token.IDENT:
		name := p.cur.Literal
		if name == "Empty" {
			p.advance()
			return &ast.Empty{Base: ast.Base{P: pos}}
		}
		p.advance()
		return &ast.Ident{Name: name, Base: ast.Base{P: pos}}
	default:
		p.errorf(pos, "unexpected token %s (%q) where an expression was expected", p.cur.Type, p.cur.Literal)
		// Don't loop forever: consume the offending token.
		p.advance()
		return &ast.Empty{Base: ast.Base{P: pos}}
	}
}

func (p *Parser) parseArrayLit() ast.Expr {
	pos := p.cur.Pos
	p.advance() // '['
	var elems []ast.Expr
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		elems = append(elems, p.parseExpr())
		if p.cur.Type == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayLit{Elements: elems, Base: ast.Base{P: pos}}
}

// parseTupleLit implements the tuple-key speculation of spec.md §4.2:
// each field tries `IDENT ":="`, falling back to an anonymous value.
func (p *Parser) parseTupleLit() ast.Expr {
	pos := p.cur.Pos
	p.advance() // '{'
	var fields []ast.TupleField
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		var name string
		if p.cur.Type == token.IDENT && p.peek.Type == token.ASSIGN {
			name = p.cur.Literal
			p.advance() // ident
			p.advance() // ':='
		}
		value := p.parseExpr()
		fields = append(fields, ast.TupleField{Name: name, Value: value})
		if p.cur.Type == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE)
	return &ast.TupleLit{Fields: fields, Base: ast.Base{P: pos}}
}

// parseFuncLit implements the parameter-list speculation of spec.md §4.2:
// `func [(params)] is body end` or the `=>` short form, which desugars to
// a single-statement body.
func (p *Parser) parseFuncLit() ast.Expr {
	pos := p.cur.Pos
	p.advance() // 'func'

	var params []string
	if p.cur.Type == token.LPAREN {
		p.advance()
		for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
			params = append(params, p.cur.Literal)
			p.expect(token.IDENT)
			if p.cur.Type == token.COMMA {
				p.advance()
			} else {
				break
			}
		}
		p.expect(token.RPAREN)
	}

	switch p.cur.Type {
	case token.ARROW:
		p.advance()
		expr := p.parseExpr()
		body := []ast.Stmt{&ast.ExprStmt{X: expr, Base: ast.Base{P: pos}}}
		return &ast.FuncLit{Params: params, Body: body, Base: ast.Base{P: pos}}
	case token.IS:
		p.advance()
		body := p.parseBody(token.END)
		p.expect(token.END)
		return &ast.FuncLit{Params: params, Body: body, Base: ast.Base{P: pos}}
	default:
		p.errorf(p.cur.Pos, "expected 'is' or '=>' in function literal, got %s", p.cur.Type)
		return &ast.FuncLit{Params: params, Base: ast.Base{P: pos}}
	}
}
