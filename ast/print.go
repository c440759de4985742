package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Render serializes a Program back into D source text. It is not meant to
// byte-for-byte match the original formatting; it exists so the parser's
// round-trip property (spec.md §8 P1 — "parse then print then re-parse
// yields an equivalent AST") can be exercised in tests.
func Render(p *Program) string {
	var b strings.Builder
	for _, s := range p.Statements {
		renderStmt(&b, s)
		b.WriteString(";\n")
	}
	return b.String()
}

func renderBody(b *strings.Builder, body []Stmt) {
	for _, s := range body {
		renderStmt(b, s)
		b.WriteString("; ")
	}
}

func renderStmt(b *strings.Builder, s Stmt) {
	switch n := s.(type) {
	case *Decl:
		fmt.Fprintf(b, "var %s := ", n.Name)
		renderExpr(b, n.Value)
	case *Assign:
		renderExpr(b, n.Target)
		b.WriteString(" := ")
		renderExpr(b, n.Value)
	case *ExprStmt:
		renderExpr(b, n.X)
	case *If:
		b.WriteString("if ")
		renderExpr(b, n.Cond)
		b.WriteString(" then ")
		renderBody(b, n.Then)
		b.WriteString("else ")
		renderBody(b, n.Else)
		b.WriteString("end")
	case *While:
		b.WriteString("while ")
		renderExpr(b, n.Cond)
		b.WriteString(" loop ")
		renderBody(b, n.Body)
		b.WriteString("end")
	case *For:
		fmt.Fprintf(b, "for %s in ", n.Name)
		if n.IsRange {
			renderExpr(b, n.Lo)
			b.WriteString("..")
			renderExpr(b, n.Hi)
		} else {
			renderExpr(b, n.Iterable)
		}
		b.WriteString(" loop ")
		renderBody(b, n.Body)
		b.WriteString("end")
	default:
		if e, ok := s.(Expr); ok {
			renderExpr(b, e)
		}
	}
}

func renderExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Ident:
		b.WriteString(n.Name)
	case *BoolLit:
		fmt.Fprintf(b, "%t", n.Value)
	case *IntLit:
		fmt.Fprintf(b, "%d", n.Value)
	case *RealLit:
		s := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		b.WriteString(s)
	case *StringLit:
		b.WriteString("\"" + n.Value + "\"")
	case *ArrayLit:
		b.WriteString("[")
		for i, el := range n.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			renderExpr(b, el)
		}
		b.WriteString("]")
	case *TupleLit:
		b.WriteString("{")
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			if f.Name != "" {
				fmt.Fprintf(b, "%s := ", f.Name)
			}
			renderExpr(b, f.Value)
		}
		b.WriteString("}")
	case *FuncLit:
		fmt.Fprintf(b, "func (%s) is ", strings.Join(n.Params, ", "))
		renderBody(b, n.Body)
		b.WriteString("end")
	case *Index:
		renderExpr(b, n.X)
		b.WriteString("[")
		renderExpr(b, n.Index)
		b.WriteString("]")
	case *Call:
		renderExpr(b, n.Fn)
		b.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			renderExpr(b, a)
		}
		b.WriteString(")")
	case *Member:
		renderExpr(b, n.X)
		b.WriteString(".")
		if n.IsInt {
			fmt.Fprintf(b, "%d", n.Index)
		} else {
			b.WriteString(n.Name)
		}
	case *Unary:
		b.WriteString("(")
		b.WriteString(n.Op.String())
		b.WriteString(" ")
		renderExpr(b, n.X)
		b.WriteString(")")
	case *Binary:
		b.WriteString("(")
		renderExpr(b, n.X)
		fmt.Fprintf(b, " %s ", n.Op.String())
		renderExpr(b, n.Y)
		b.WriteString(")")
	case *IsExpr:
		renderExpr(b, n.X)
		fmt.Fprintf(b, " is %s", n.Type.String())
	case *Empty:
		b.WriteString("Empty")
	}
}
