package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahaha-lang/yahaha/eval"
	"github.com/yahaha-lang/yahaha/object"
	"github.com/yahaha-lang/yahaha/parser"
)

// newTestEnv wires a minimal `assert` builtin so scenario tests (spec.md
// §8) can be written as plain D source instead of inspecting values by
// hand from Go.
func newTestEnv() *object.Environment {
	env := object.NewEnvironment(nil)
	env.Define("assert", &object.Builtin{Name: "assert", Fn: func(args []object.Value) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.NewNumArgs(1, len(args))
		}
		b, ok := args[0].(object.Bool)
		if !ok {
			return nil, object.NewTypeMismatch("bool", args[0])
		}
		if !b {
			return nil, object.NewDefault("assertion failed")
		}
		return object.Empty{}, nil
	}})
	return env
}

func run(t *testing.T, src string) (object.Value, error) {
	t.Helper()
	prog, errs := parser.Parse(src)
	require.Empty(t, errs, "unexpected parse errors")
	return eval.Eval(prog, newTestEnv())
}

func TestEval_ClosureSeesLiveOuterMutation_S1(t *testing.T) {
	_, err := run(t, `var x := 1; var f := func() => x; x := 2; assert(f() = 2);`)
	require.NoError(t, err)
}

func TestEval_RecursionViaCapturedSelf_S2(t *testing.T) {
	_, err := run(t, `
		var fact := func(n) is
			if n <= 1 then 1; else n * fact(n-1); end;
		end;
		assert(fact(5) = 120);
	`)
	require.NoError(t, err)
}

func TestEval_TupleByNameAndIndex_S3(t *testing.T) {
	_, err := run(t, `
		var t := {a := 1, 2, b := 3};
		assert(t.a = 1);
		assert(t.1 = 2);
		assert(t.b = 3);
	`)
	require.NoError(t, err)
}

func TestEval_StringIndexingYieldsOneCharString_S4(t *testing.T) {
	_, err := run(t, `var s := "abc"; assert(s[0] = "a"); assert(s[2] = "c");`)
	require.NoError(t, err)
}

func TestEval_ArrayConcatenation_S5(t *testing.T) {
	_, err := run(t, `var a := [1, 2] + [3]; assert(a[2] = 3);`)
	require.NoError(t, err)
}

func TestEval_HalfOpenIntegerRange_S6(t *testing.T) {
	_, err := run(t, `var sum := 0; for i in 1..5 loop sum := sum + i; end; assert(sum = 10);`)
	require.NoError(t, err)
}

func TestEval_UnboundVarInsideClosure_S7(t *testing.T) {
	_, err := run(t, `var e := func() => x; e();`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.UnboundVar, evalErr.Kind)
}

func TestEval_TypeMismatchOnIntPlusString_S8(t *testing.T) {
	_, err := run(t, `1 + "a";`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.TypeMismatch, evalErr.Kind)
}

func TestEval_ArithmeticPromotionIsCommutative(t *testing.T) {
	v1, err := run(t, `1 + 2.0;`)
	require.NoError(t, err)
	v2, err := run(t, `2.0 + 1;`)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	_, isReal := v1.(object.Real)
	assert.True(t, isReal)
}

func TestEval_IntDivisionTruncates(t *testing.T) {
	v, err := run(t, `7 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, object.Int(3), v)
}

func TestEval_RealDivisionIsFloating(t *testing.T) {
	v, err := run(t, `7.0 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, object.Real(3.5), v)
}

func TestEval_LogicalOperatorsDoNotShortCircuit(t *testing.T) {
	// Both sides must be evaluated even when the left side alone would
	// determine the result (spec.md §8 property 4); a side effect that
	// would only run under evaluation is observed via the shared counter.
	_, err := run(t, `
		var calls := 0;
		var bump := func() is calls := calls + 1; true; end;
		var r := false and bump();
		assert(calls = 1);
	`)
	require.NoError(t, err)
}

func TestEval_IndexOutOfBoundsIsAttributeError(t *testing.T) {
	_, err := run(t, `var a := [1, 2]; a[5];`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.AttributeError, evalErr.Kind)
}

func TestEval_MissingTupleMemberIsAttributeError(t *testing.T) {
	_, err := run(t, `var t := {a := 1}; t.b;`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.AttributeError, evalErr.Kind)
}

func TestEval_CallArityMismatchIsNumArgs(t *testing.T) {
	_, err := run(t, `var f := func(a, b) => a + b; f(1);`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.NumArgs, evalErr.Kind)
}

func TestEval_CallingNonFunctionIsNotFunction(t *testing.T) {
	_, err := run(t, `var x := 1; x();`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.NotFunction, evalErr.Kind)
}

func TestEval_TypeTestExactlyOneMatch(t *testing.T) {
	tests := []struct {
		src   string
		kind  string
		which string
	}{
		{`1 is int;`, "int", "true"},
		{`1 is real;`, "int", "false"},
		{`1.0 is real;`, "real", "true"},
		{`1.0 is int;`, "real", "false"},
		{`Empty is empty;`, "empty", "true"},
		{`(func() => 1) is func;`, "func", "true"},
	}
	for _, tt := range tests {
		v, err := run(t, tt.src)
		require.NoError(t, err, tt.src)
		want := object.Bool(tt.which == "true")
		assert.Equal(t, want, v, tt.src)
	}
}

func TestEval_EmptyIsRejectedByArithmetic(t *testing.T) {
	_, err := run(t, `var x; x + 1;`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.NullAccess, evalErr.Kind)
}

func TestEval_RelationalRejectsStringComparison(t *testing.T) {
	_, err := run(t, `"a" < "b";`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.TypeMismatch, evalErr.Kind)
}

func TestEval_EqualitySupportsStringBoolArrayTuple(t *testing.T) {
	_, err := run(t, `
		assert("a" = "a");
		assert("a" /= "b");
		assert(true = true);
		assert(false /= true);
		assert([1, 2] = [1, 2]);
		assert([1, 2] /= [1, 3]);
		assert({a := 1, 2} = {a := 1, 2});
		assert({a := 1} /= {b := 1});
	`)
	require.NoError(t, err)
}

func TestEval_EqualityAcrossIncompatibleShapesIsTypeMismatch(t *testing.T) {
	_, err := run(t, `1 = "1";`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.TypeMismatch, evalErr.Kind)
}

func TestEval_EmptyOperandIsNullAccess(t *testing.T) {
	cases := []string{
		`var x; -x;`,
		`var x; not x;`,
		`var x; x and true;`,
		`var x; x < 1;`,
		`var x; x = 1;`,
		`var x; x[0];`,
		`var x; x.a;`,
	}
	for _, src := range cases {
		_, err := run(t, src)
		require.Error(t, err, src)
		evalErr, ok := err.(*object.EvalError)
		require.True(t, ok, src)
		assert.Equal(t, object.NullAccess, evalErr.Kind, src)
	}
}

func TestEval_AssignToNonIdentIsUnsupportedLvalue(t *testing.T) {
	_, err := run(t, `var a := [1]; a[0] := 2;`)
	require.Error(t, err)
	evalErr, ok := err.(*object.EvalError)
	require.True(t, ok)
	assert.Equal(t, object.TypeMismatch, evalErr.Kind)
}

func TestEval_ForOverPlainArrayIterable(t *testing.T) {
	_, err := run(t, `
		var total := 0;
		for x in [10, 20, 30] loop total := total + x; end;
		assert(total = 60);
	`)
	require.NoError(t, err)
}

func TestEval_WhileLoopRunsUntilConditionIsFalse(t *testing.T) {
	_, err := run(t, `
		var i := 0;
		while i < 3 loop i := i + 1; end;
		assert(i = 3);
	`)
	require.NoError(t, err)
}

func TestEval_DeclRedeclareInSameScopeOverwritesCell(t *testing.T) {
	_, err := run(t, `
		var x := 1;
		var f := func() => x;
		var x := 2;
		assert(f() = 2);
	`)
	require.NoError(t, err)
}
