package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndLookup(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", Int(1))
	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Int(1), v)
}

func TestEnvironment_LookupWalksParentChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", Int(1))
	inner := NewEnvironment(outer)
	v, ok := inner.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Int(1), v)
}

func TestEnvironment_InnerShadowsOuter(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", Int(1))
	inner := NewEnvironment(outer)
	inner.Define("x", Int(2))
	v, _ := inner.Lookup("x")
	assert.Equal(t, Int(2), v)
	v, _ = outer.Lookup("x")
	assert.Equal(t, Int(1), v, "inner Define must not affect outer's own binding")
}

func TestEnvironment_AssignWritesThroughSharedCell(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", Int(1))
	inner := NewEnvironment(outer)

	ok := inner.Assign("x", Int(99))
	require.True(t, ok)

	v, _ := outer.Lookup("x")
	assert.Equal(t, Int(99), v, "assign must mutate the cell in the defining scope")
}

func TestEnvironment_AssignUnboundFails(t *testing.T) {
	env := NewEnvironment(nil)
	ok := env.Assign("missing", Int(1))
	assert.False(t, ok)
}

func TestEnvironment_ClosureSeesLiveMutation(t *testing.T) {
	// var x := 1; var f := func() => x; x := 2; f() observes 2.
	outer := NewEnvironment(nil)
	outer.Define("x", Int(1))

	// A closure "captures" outer by reference, not by copy.
	closureEnv := outer

	outer.Assign("x", Int(2))

	v, ok := closureEnv.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Int(2), v)
}

func TestNewCallEnvironment_SharesParentCells(t *testing.T) {
	captured := NewEnvironment(nil)
	captured.Define("shared", Int(10))

	call := NewCallEnvironment(captured, []string{"n"}, []Value{Int(5)})
	v, ok := call.Lookup("shared")
	require.True(t, ok)
	assert.Equal(t, Int(10), v)

	captured.Assign("shared", Int(20))
	v, _ = call.Lookup("shared")
	assert.Equal(t, Int(20), v, "call environment must see later writes to captured cells")
}
