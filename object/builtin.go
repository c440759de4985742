package object

import "github.com/yahaha-lang/yahaha/ast"

// HostFunc is the shape every host-registered builtin satisfies: it
// receives already-evaluated arguments and returns a value or an error,
// exactly like any other callable in DCall (spec.md §6 register_builtin).
type HostFunc func(args []Value) (Value, error)

// Builtin wraps a HostFunc as a callable Value so the evaluator's call
// dispatch doesn't need to special-case host functions versus closures.
type Builtin struct {
	Name string
	Fn   HostFunc
}

func (*Builtin) Type() ast.TypeIndicator { return ast.TFunc }
func (b *Builtin) String() string        { return "builtin:" + b.Name }
