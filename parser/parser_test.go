package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahaha-lang/yahaha/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := Parse(src)
	require.Empty(t, errs, "unexpected parse errors for %q", src)
	require.NotNil(t, prog)
	return prog
}

func TestParse_VarDecl(t *testing.T) {
	prog := mustParse(t, "var x := 1;")
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.Decl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	lit, ok := decl.Value.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)
}

func TestParse_VarDeclWithoutInitializer(t *testing.T) {
	prog := mustParse(t, "var x;")
	decl := prog.Statements[0].(*ast.Decl)
	_, ok := decl.Value.(*ast.Empty)
	assert.True(t, ok, "expected implicit Empty initializer")
}

func TestParse_AssignVsExprStmt(t *testing.T) {
	prog := mustParse(t, "x := 2; x + 1;")
	require.Len(t, prog.Statements, 2)
	_, isAssign := prog.Statements[0].(*ast.Assign)
	assert.True(t, isAssign)
	_, isExprStmt := prog.Statements[1].(*ast.ExprStmt)
	assert.True(t, isExprStmt)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	prog := mustParse(t, "1 + 2 * 3;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	bin := stmt.X.(*ast.Binary)
	assert.Equal(t, ast.Add, bin.Op)
	_, ok := bin.X.(*ast.IntLit)
	require.True(t, ok)
	rhs, ok := bin.Y.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, rhs.Op)
}

func TestParse_RelationalBindsLooserThanAdditive(t *testing.T) {
	prog := mustParse(t, "1 + 1 < 3;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	bin := stmt.X.(*ast.Binary)
	assert.Equal(t, ast.Lt, bin.Op)
	_, ok := bin.X.(*ast.Binary)
	assert.True(t, ok, "left side of < should be the additive sub-expression")
}

func TestParse_LogicalBindsLoosestOfAll(t *testing.T) {
	prog := mustParse(t, "a < 1 and b < 2;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	bin := stmt.X.(*ast.Binary)
	assert.Equal(t, ast.LogAnd, bin.Op)
}

func TestParse_UnaryIsRightAssociative(t *testing.T) {
	prog := mustParse(t, "- - 1;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	outer := stmt.X.(*ast.Unary)
	assert.Equal(t, ast.Neg, outer.Op)
	inner, ok := outer.X.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, ast.Neg, inner.Op)
}

func TestParse_PostfixChainCallIndexMember(t *testing.T) {
	prog := mustParse(t, "a(1)[0].name;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	member := stmt.X.(*ast.Member)
	assert.Equal(t, "name", member.Name)
	idx := member.X.(*ast.Index)
	call := idx.X.(*ast.Call)
	ident := call.Fn.(*ast.Ident)
	assert.Equal(t, "a", ident.Name)
}

func TestParse_IsExprChains(t *testing.T) {
	prog := mustParse(t, "x is int;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	is := stmt.X.(*ast.IsExpr)
	assert.Equal(t, ast.TInt, is.Type)
}

func TestParse_ArrayLiteral(t *testing.T) {
	prog := mustParse(t, "[1, 2, 3];")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	arr := stmt.X.(*ast.ArrayLit)
	assert.Len(t, arr.Elements, 3)
}

func TestParse_TupleLiteralMixedKeysAndPositional(t *testing.T) {
	prog := mustParse(t, "{a := 1, 2, b := 3};")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	tup := stmt.X.(*ast.TupleLit)
	require.Len(t, tup.Fields, 3)
	assert.Equal(t, "a", tup.Fields[0].Name)
	assert.Equal(t, "", tup.Fields[1].Name)
	assert.Equal(t, "b", tup.Fields[2].Name)
}

func TestParse_TupleKeyLookaheadDoesNotConsumeNonKeyIdent(t *testing.T) {
	// "x" here is a bare identifier value, not a key, since it isn't
	// followed by ":=".
	prog := mustParse(t, "{x};")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	tup := stmt.X.(*ast.TupleLit)
	require.Len(t, tup.Fields, 1)
	assert.Equal(t, "", tup.Fields[0].Name)
	ident, ok := tup.Fields[0].Value.(*ast.Ident)
	require.True(t, ok)
	assert.Equal(t, "x", ident.Name)
}

func TestParse_FuncLitWithParens(t *testing.T) {
	prog := mustParse(t, "var f := func (a, b) is a + b end;")
	decl := prog.Statements[0].(*ast.Decl)
	fn := decl.Value.(*ast.FuncLit)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)
}

func TestParse_FuncLitWithoutParams(t *testing.T) {
	prog := mustParse(t, "var f := func is 1 end;")
	decl := prog.Statements[0].(*ast.Decl)
	fn := decl.Value.(*ast.FuncLit)
	assert.Nil(t, fn.Params)
}

func TestParse_FuncLitArrowShortForm(t *testing.T) {
	prog := mustParse(t, "var f := func (x) => x + 1;")
	decl := prog.Statements[0].(*ast.Decl)
	fn := decl.Value.(*ast.FuncLit)
	require.Len(t, fn.Body, 1)
	_, ok := fn.Body[0].(*ast.ExprStmt)
	assert.True(t, ok)
}

func TestParse_ForRange(t *testing.T) {
	prog := mustParse(t, "for i in 0..10 loop end;")
	f := prog.Statements[0].(*ast.For)
	assert.True(t, f.IsRange)
	assert.Equal(t, "i", f.Name)
}

func TestParse_ForOverIterable(t *testing.T) {
	prog := mustParse(t, "for i in xs loop end;")
	f := prog.Statements[0].(*ast.For)
	assert.False(t, f.IsRange)
	_, ok := f.Iterable.(*ast.Ident)
	assert.True(t, ok)
}

func TestParse_LoopSugarDesugarsToWhileTrue(t *testing.T) {
	prog := mustParse(t, "loop end;")
	w := prog.Statements[0].(*ast.While)
	cond := w.Cond.(*ast.BoolLit)
	assert.True(t, cond.Value)
}

func TestParse_IfWithElse(t *testing.T) {
	prog := mustParse(t, "if true then 1; else 2; end;")
	n := prog.Statements[0].(*ast.If)
	require.Len(t, n.Then, 1)
	require.Len(t, n.Else, 1)
}

func TestParse_IfWithoutElse(t *testing.T) {
	prog := mustParse(t, "if true then 1; end;")
	n := prog.Statements[0].(*ast.If)
	assert.Empty(t, n.Else)
}

func TestParse_ReportsErrorOnGarbageAndRecovers(t *testing.T) {
	prog, errs := Parse("var := ; var y := 1;")
	assert.NotEmpty(t, errs)
	require.NotNil(t, prog)
}

func TestParse_RoundTripThroughRender(t *testing.T) {
	sources := []string{
		"var x := 1;\n",
		"x := 2;\n",
		"if true then 1; else 2; end;\n",
		"while false loop end;\n",
		"for i in 0..3 loop end;\n",
		"var f := func (a, b) is a + b; end;\n",
	}
	for _, src := range sources {
		prog := mustParse(t, src)
		rendered := ast.Render(prog)
		reparsed, errs := Parse(rendered)
		require.Empty(t, errs, "re-parsing rendered output failed for %q -> %q", src, rendered)
		assert.Equal(t, len(prog.Statements), len(reparsed.Statements))
	}
}
