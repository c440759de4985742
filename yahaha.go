// Package yahaha is the embedding API of spec.md §6: a host links this
// package to parse D ("yahaha") source, build an environment, register
// builtins, and execute a program, without reaching into the lexer/
// parser/eval/object packages directly. It plays the role go-mix's
// main.go fills ad hoc, lifted into a reusable package so cmd/yahaha (and
// any other host) can depend on a single front door.
package yahaha

import (
	"github.com/yahaha-lang/yahaha/ast"
	"github.com/yahaha-lang/yahaha/eval"
	"github.com/yahaha-lang/yahaha/object"
	"github.com/yahaha-lang/yahaha/parser"
)

// Program is the parsed form of a D source file, ready to Exec.
type Program = ast.Program

// ParseError is a structured parse diagnostic (spec.md §7 ParseError).
type ParseError = parser.ParseError

// Env is the mutable environment a program executes against.
type Env = object.Environment

// Value is the runtime value universe (spec.md §3).
type Value = object.Value

// Parse turns source into a Program, or a list of structured parse
// errors (spec.md §6 parse(source) -> Program | ParseError).
func Parse(source string) (*Program, []*ParseError) {
	return parser.Parse(source)
}

// NewEnv creates an empty top-level environment (spec.md §6 new_env()).
func NewEnv() *Env {
	return object.NewEnvironment(nil)
}

// RegisterBuiltin installs a host function as a callable D value under
// name (spec.md §6 register_builtin). Host functions receive already
// evaluated arguments and return a value or an error, exactly like any
// other callable reachable from a D call expression.
func RegisterBuiltin(env *Env, name string, fn func(args []Value) (Value, error)) {
	env.Define(name, &object.Builtin{Name: name, Fn: fn})
}

// Exec runs program against env and returns its final value or a
// structured runtime error (spec.md §6 exec(env, program) -> Value |
// RuntimeError).
func Exec(env *Env, program *Program) (Value, error) {
	return eval.Eval(program, env)
}
