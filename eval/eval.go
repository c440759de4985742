// Package eval is the tree-walking evaluator: it turns an *ast.Program plus
// an *object.Environment into a final object.Value or a structured
// object.EvalError, per the dispatch tables in spec.md §4.5.
package eval

import (
	"fmt"

	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/object"
)

// Eval runs every top-level statement of prog in env in order and returns
// the value of the last one, or Empty for an empty program.
func Eval(prog *ast.Program, env *object.Environment) (object.Value, error) {
	return evalBody(prog.Statements, env)
}

// evalBody evaluates a statement list in the given environment without
// introducing a new scope: if/while/for bodies run directly in the
// enclosing environment, and a function body runs in the call
// environment evalCall builds for it (spec.md §4.5).
func evalBody(body []ast.Stmt, env *object.Environment) (object.Value, error) {
	var result object.Value = object.Empty{}
	for _, stmt := range body {
		v, err := evalStmt(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func evalStmt(stmt ast.Stmt, env *object.Environment) (object.Value, error) {
	switch n := stmt.(type) {
	case *ast.Decl:
		return evalDecl(n, env)
	case *ast.Assign:
		return evalAssign(n, env)
	case *ast.ExprStmt:
		return evalExpr(n.X, env)
	case *ast.If:
		return evalIf(n, env)
	case *ast.While:
		return evalWhile(n, env)
	case *ast.For:
		return evalFor(n, env)
	default:
		return nil, object.NewDefault(fmt.Sprintf("unhandled statement node %T", stmt))
	}
}

func evalDecl(n *ast.Decl, env *object.Environment) (object.Value, error) {
	v, err := evalExpr(n.Value, env)
	if err != nil {
		return nil, err
	}
	env.Define(n.Name, v)
	return v, nil
}

// evalAssign implements spec.md §9 OQ-1's recommended resolution (b):
// the parser accepts any expression as an lvalue, but the evaluator only
// supports identifiers; anything else is an eval-time TypeMismatch.
func evalAssign(n *ast.Assign, env *object.Environment) (object.Value, error) {
	ident, ok := n.Target.(*ast.Ident)
	if !ok {
		return nil, object.NewTypeMismatchf("unsupported lvalue in assignment: %T", n.Target)
	}
	v, err := evalExpr(n.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Assign(ident.Name, v) {
		return nil, object.NewUnboundVar("Setting an unbound variable", ident.Name)
	}
	return v, nil
}

func evalIf(n *ast.If, env *object.Environment) (object.Value, error) {
	cond, err := evalExpr(n.Cond, env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(object.Bool)
	if !ok {
		return nil, object.NewTypeMismatch("bool", cond)
	}
	if b {
		return evalBody(n.Then, env)
	}
	return evalBody(n.Else, env)
}

func evalWhile(n *ast.While, env *object.Environment) (object.Value, error) {
	var result object.Value = object.Empty{}
	for {
		cond, err := evalExpr(n.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(object.Bool)
		if !ok {
			return nil, object.NewTypeMismatch("bool", cond)
		}
		if !b {
			return result, nil
		}
		result, err = evalBody(n.Body, env)
		if err != nil {
			return nil, err
		}
	}
}

// evalFor implements both the range form (spec.md §4.5, half-open
// `[lo, hi)` integer iteration) and the plain-iterable form (spec.md §9
// OQ-2: iterate an Array's elements, or fail with TypeMismatch).
func evalFor(n *ast.For, env *object.Environment) (object.Value, error) {
	var result object.Value = object.Empty{}

	if n.IsRange {
		loVal, err := evalExpr(n.Lo, env)
		if err != nil {
			return nil, err
		}
		lo, ok := loVal.(object.Int)
		if !ok {
			return nil, object.NewTypeMismatch("int", loVal)
		}
		hiVal, err := evalExpr(n.Hi, env)
		if err != nil {
			return nil, err
		}
		hi, ok := hiVal.(object.Int)
		if !ok {
			return nil, object.NewTypeMismatch("int", hiVal)
		}
		for i := lo; i < hi; i++ {
			env.Define(n.Name, i)
			result, err = evalBody(n.Body, env)
			if err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	iterVal, err := evalExpr(n.Iterable, env)
	if err != nil {
		return nil, err
	}
	arr, ok := iterVal.(*object.Array)
	if !ok {
		return nil, object.NewTypeMismatch("array", iterVal)
	}
	for _, elem := range arr.Elements {
		env.Define(n.Name, elem)
		result, err = evalBody(n.Body, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
