package eval

import (
	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/object"
)

// isEmpty reports whether v is the Empty sentinel. Every operator below
// checks this first so an Empty operand is reported as NullAccess
// (spec.md §7's "attempt to operate on Empty where a value is required")
// rather than the less specific TypeMismatch (spec.md §9 OQ-4).
func isEmpty(v object.Value) bool {
	_, ok := v.(object.Empty)
	return ok
}

func evalUnary(n *ast.Unary, env *object.Environment) (object.Value, error) {
	x, err := evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	if isEmpty(x) {
		return nil, object.NewNullAccess()
	}
	switch n.Op {
	case ast.Neg:
		switch v := x.(type) {
		case object.Int:
			return -v, nil
		case object.Real:
			return -v, nil
		}
		return nil, object.NewTypeMismatch("int or real", x)
	case ast.UPlus:
		switch x.(type) {
		case object.Int, object.Real:
			return x, nil
		}
		return nil, object.NewTypeMismatch("int or real", x)
	case ast.Not:
		b, ok := x.(object.Bool)
		if !ok {
			return nil, object.NewTypeMismatch("bool", x)
		}
		return !b, nil
	default:
		return nil, object.NewDefault("unknown unary operator")
	}
}

func evalBinary(n *ast.Binary, env *object.Environment) (object.Value, error) {
	// Property 4 (spec.md §8): and/or/xor do NOT short-circuit — both
	// sides are always evaluated.
	x, err := evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	y, err := evalExpr(n.Y, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.LogAnd, ast.LogOr, ast.LogXor:
		return evalLogical(n.Op, x, y)
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return evalRelational(n.Op, x, y)
	case ast.Eq, ast.Ne:
		return evalEquality(n.Op, x, y)
	case ast.Add:
		return evalAdd(x, y)
	case ast.Sub:
		return evalArith(n.Op, x, y)
	case ast.Mul:
		return evalArith(n.Op, x, y)
	case ast.Div:
		return evalArith(n.Op, x, y)
	default:
		return nil, object.NewDefault("unknown binary operator")
	}
}

func evalLogical(op ast.BinaryOp, x, y object.Value) (object.Value, error) {
	if isEmpty(x) || isEmpty(y) {
		return nil, object.NewNullAccess()
	}
	xb, ok := x.(object.Bool)
	if !ok {
		return nil, object.NewTypeMismatch("bool", x)
	}
	yb, ok := y.(object.Bool)
	if !ok {
		return nil, object.NewTypeMismatch("bool", y)
	}
	switch op {
	case ast.LogAnd:
		return xb && yb, nil
	case ast.LogOr:
		return xb || yb, nil
	case ast.LogXor:
		return object.Bool(xb != yb), nil
	}
	return nil, object.NewDefault("unknown logical operator")
}

// toReal unpacks an Int or Real into a float64, per spec.md §4.5's
// relational-promotion rule.
func toReal(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case object.Int:
		return float64(n), true
	case object.Real:
		return float64(n), true
	}
	return 0, false
}

// evalRelational implements spec.md §9 OQ-3's resolution: the ordering
// operators <, <=, >, >= always promote both operands to real and compare
// numerically; string/bool ordering is not supported. = and /= are NOT
// routed through here — they admit string/bool/array/tuple equality too,
// see evalEquality.
func evalRelational(op ast.BinaryOp, x, y object.Value) (object.Value, error) {
	if isEmpty(x) || isEmpty(y) {
		return nil, object.NewNullAccess()
	}
	xf, ok := toReal(x)
	if !ok {
		return nil, object.NewTypeMismatch("int or real", x)
	}
	yf, ok := toReal(y)
	if !ok {
		return nil, object.NewTypeMismatch("int or real", y)
	}
	switch op {
	case ast.Lt:
		return object.Bool(xf < yf), nil
	case ast.Le:
		return object.Bool(xf <= yf), nil
	case ast.Gt:
		return object.Bool(xf > yf), nil
	case ast.Ge:
		return object.Bool(xf >= yf), nil
	}
	return nil, object.NewDefault("unknown relational operator")
}

// evalEquality implements = and /=. Unlike the ordering operators, D
// defines equality over every comparable value shape (spec.md §8 S4
// requires `s[0] = "a"` to succeed rather than raise TypeMismatch):
// numeric (with Int/Real promotion), Bool, String, and structural
// Array/Tuple equality. Empty is still rejected with NullAccess per
// spec.md §9 OQ-4; comparing values of incompatible shapes is a
// TypeMismatch.
func evalEquality(op ast.BinaryOp, x, y object.Value) (object.Value, error) {
	eq, err := valuesEqual(x, y)
	if err != nil {
		return nil, err
	}
	if op == ast.Ne {
		return object.Bool(!eq), nil
	}
	return object.Bool(eq), nil
}

func valuesEqual(x, y object.Value) (bool, error) {
	if isEmpty(x) || isEmpty(y) {
		return false, object.NewNullAccess()
	}
	if xf, xIsNum := toReal(x); xIsNum {
		yf, yIsNum := toReal(y)
		if !yIsNum {
			return false, object.NewTypeMismatch("int or real", y)
		}
		return xf == yf, nil
	}
	switch xv := x.(type) {
	case object.Bool:
		yb, ok := y.(object.Bool)
		if !ok {
			return false, object.NewTypeMismatch("bool", y)
		}
		return xv == yb, nil
	case object.String:
		ys, ok := y.(object.String)
		if !ok {
			return false, object.NewTypeMismatch("string", y)
		}
		return xv == ys, nil
	case *object.Array:
		ya, ok := y.(*object.Array)
		if !ok {
			return false, object.NewTypeMismatch("array", y)
		}
		if len(xv.Elements) != len(ya.Elements) {
			return false, nil
		}
		for i := range xv.Elements {
			eq, err := valuesEqual(xv.Elements[i], ya.Elements[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *object.Tuple:
		yt, ok := y.(*object.Tuple)
		if !ok {
			return false, object.NewTypeMismatch("tuple", y)
		}
		if len(xv.Fields) != len(yt.Fields) {
			return false, nil
		}
		for i := range xv.Fields {
			if xv.Fields[i].Name != yt.Fields[i].Name {
				return false, nil
			}
			eq, err := valuesEqual(xv.Fields[i].Value, yt.Fields[i].Value)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	}
	return false, object.NewTypeMismatchf("values of type %s are not comparable", x.Type())
}

// evalAdd handles `+`'s extra overloads beyond arithmetic: string
// concatenation, array concatenation, and tuple concatenation preserving
// keys (spec.md §4.5).
func evalAdd(x, y object.Value) (object.Value, error) {
	if isEmpty(x) || isEmpty(y) {
		return nil, object.NewNullAccess()
	}
	if xs, ok := x.(object.String); ok {
		if ys, ok := y.(object.String); ok {
			return xs + ys, nil
		}
		return nil, object.NewTypeMismatch("string", y)
	}
	if xa, ok := x.(*object.Array); ok {
		if ya, ok := y.(*object.Array); ok {
			elems := make([]object.Value, 0, len(xa.Elements)+len(ya.Elements))
			elems = append(elems, xa.Elements...)
			elems = append(elems, ya.Elements...)
			return &object.Array{Elements: elems}, nil
		}
		return nil, object.NewTypeMismatch("array", y)
	}
	if xt, ok := x.(*object.Tuple); ok {
		if yt, ok := y.(*object.Tuple); ok {
			fields := make([]object.TupleField, 0, len(xt.Fields)+len(yt.Fields))
			fields = append(fields, xt.Fields...)
			fields = append(fields, yt.Fields...)
			return &object.Tuple{Fields: fields}, nil
		}
		return nil, object.NewTypeMismatch("tuple", y)
	}
	return evalArith(ast.Add, x, y)
}

// evalArith handles the numeric-only operators -, *, / and the numeric
// fallback of +: Int+Int stays Int, any Real operand promotes both to
// Real. Integer division truncates toward zero; any Real operand makes
// division floating (spec.md §4.5).
func evalArith(op ast.BinaryOp, x, y object.Value) (object.Value, error) {
	if isEmpty(x) || isEmpty(y) {
		return nil, object.NewNullAccess()
	}
	xi, xIsInt := x.(object.Int)
	yi, yIsInt := y.(object.Int)
	if xIsInt && yIsInt {
		switch op {
		case ast.Add:
			return xi + yi, nil
		case ast.Sub:
			return xi - yi, nil
		case ast.Mul:
			return xi * yi, nil
		case ast.Div:
			if yi == 0 {
				return nil, object.NewDefault("division by zero")
			}
			return xi / yi, nil
		}
	}

	xf, xOk := toReal(x)
	if !xOk {
		return nil, object.NewTypeMismatch("int or real", x)
	}
	yf, yOk := toReal(y)
	if !yOk {
		return nil, object.NewTypeMismatch("int or real", y)
	}
	switch op {
	case ast.Add:
		return object.Real(xf + yf), nil
	case ast.Sub:
		return object.Real(xf - yf), nil
	case ast.Mul:
		return object.Real(xf * yf), nil
	case ast.Div:
		return object.Real(xf / yf), nil
	}
	return nil, object.NewDefault("unknown arithmetic operator")
}
