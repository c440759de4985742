package eval

import (
	"fmt"

	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/object"
)

func evalExpr(expr ast.Expr, env *object.Environment) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.Ident:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, object.NewUnboundVar("Getting an unbound variable", n.Name)
		}
		return v, nil
	case *ast.BoolLit:
		return object.Bool(n.Value), nil
	case *ast.IntLit:
		return object.Int(n.Value), nil
	case *ast.RealLit:
		return object.Real(n.Value), nil
	case *ast.StringLit:
		return object.String(n.Value), nil
	case *ast.Empty:
		return object.Empty{}, nil
	case *ast.ArrayLit:
		return evalArrayLit(n, env)
	case *ast.TupleLit:
		return evalTupleLit(n, env)
	case *ast.FuncLit:
		return &object.Closure{Params: n.Params, Body: n.Body, Env: env}, nil
	case *ast.Index:
		return evalIndex(n, env)
	case *ast.Member:
		return evalMember(n, env)
	case *ast.Call:
		return evalCall(n, env)
	case *ast.Unary:
		return evalUnary(n, env)
	case *ast.Binary:
		return evalBinary(n, env)
	case *ast.IsExpr:
		return evalIsExpr(n, env)
	default:
		return nil, object.NewDefault(fmt.Sprintf("unhandled expression node %T", expr))
	}
}

func evalArrayLit(n *ast.ArrayLit, env *object.Environment) (object.Value, error) {
	elems := make([]object.Value, len(n.Elements))
	for i, e := range n.Elements {
		v, err := evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &object.Array{Elements: elems}, nil
}

func evalTupleLit(n *ast.TupleLit, env *object.Environment) (object.Value, error) {
	fields := make([]object.TupleField, len(n.Fields))
	for i, f := range n.Fields {
		v, err := evalExpr(f.Value, env)
		if err != nil {
			return nil, err
		}
		fields[i] = object.TupleField{Name: f.Name, Value: v}
	}
	return &object.Tuple{Fields: fields}, nil
}

// evalIndex implements `e[e]`: array element access or single-character
// string indexing, bounds-checked (spec.md §4.5).
func evalIndex(n *ast.Index, env *object.Environment) (object.Value, error) {
	x, err := evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := evalExpr(n.Index, env)
	if err != nil {
		return nil, err
	}
	if isEmpty(x) || isEmpty(idxVal) {
		return nil, object.NewNullAccess()
	}
	idx, ok := idxVal.(object.Int)
	if !ok {
		return nil, object.NewTypeMismatch("int", idxVal)
	}

	switch c := x.(type) {
	case *object.Array:
		if idx < 0 || int(idx) >= len(c.Elements) {
			return nil, object.NewAttributeError(c, idx.String())
		}
		return c.Elements[idx], nil
	case object.String:
		if idx < 0 || int(idx) >= len(c) {
			return nil, object.NewAttributeError(c, idx.String())
		}
		return c[idx : idx+1], nil
	default:
		return nil, object.NewTypeMismatch("array or string", x)
	}
}

// evalMember implements `e.name` or `e.integer` tuple access.
func evalMember(n *ast.Member, env *object.Environment) (object.Value, error) {
	x, err := evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	if isEmpty(x) {
		return nil, object.NewNullAccess()
	}
	tup, ok := x.(*object.Tuple)
	if !ok {
		return nil, object.NewTypeMismatch("tuple", x)
	}
	if n.IsInt {
		v, ok := tup.At(n.Index)
		if !ok {
			return nil, object.NewAttributeError(tup, fmt.Sprintf("%d", n.Index))
		}
		return v, nil
	}
	v, ok := tup.Lookup(n.Name)
	if !ok {
		return nil, object.NewAttributeError(tup, n.Name)
	}
	return v, nil
}

// evalCall implements `e(args...)`: either a host builtin or a user
// closure, with a strict arity check for closures (spec.md §4.5).
func evalCall(n *ast.Call, env *object.Environment) (object.Value, error) {
	fnVal, err := evalExpr(n.Fn, env)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := fnVal.(type) {
	case *object.Builtin:
		return fn.Fn(args)
	case *object.Closure:
		if len(args) != len(fn.Params) {
			return nil, object.NewNumArgs(len(fn.Params), len(args))
		}
		callEnv := object.NewCallEnvironment(fn.Env, fn.Params, args)
		return evalBody(fn.Body, callEnv)
	default:
		return nil, object.NewNotFunction(fnVal.String())
	}
}

func evalIsExpr(n *ast.IsExpr, env *object.Environment) (object.Value, error) {
	x, err := evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	return object.Bool(x.Type() == n.Type), nil
}
