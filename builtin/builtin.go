// Package builtin provides the host-side procedures spec.md §6 says
// programs expect but the core does not define: print, println, assert,
// readInt, readReal, readString. They are ordinary object.Builtin values
// registered through the embedding API's RegisterBuiltin hook, kept out
// of package eval to match the core/host split of spec.md §1, mirroring
// how go-mix keeps its "std" builtins outside the evaluator proper and
// wires them in from main/repl at startup.
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yahaha-lang/yahaha/object"
)

// Runtime is the I/O surface the host provides to the registered
// builtins: where print/println write, and where readInt/readReal/
// readString read from (go-mix's std.Runtime plays the same role for its
// CallbackFunc builtins).
type Runtime struct {
	Out io.Writer
	in  *bufio.Reader
}

// NewRuntime wraps out/in as a Runtime, buffering the reader so
// sequential readXxx calls don't lose data between reads.
func NewRuntime(out io.Writer, in io.Reader) *Runtime {
	return &Runtime{Out: out, in: bufio.NewReader(in)}
}

// Register installs every builtin of this package into env under its D
// name, via the core's object.Builtin callable value (spec.md §6
// register_builtin(env, name, host_fn)).
func Register(env *object.Environment, rt *Runtime) {
	for name, fn := range rt.table() {
		env.Define(name, &object.Builtin{Name: name, Fn: fn})
	}
}

func (rt *Runtime) table() map[string]object.HostFunc {
	return map[string]object.HostFunc{
		"print":      rt.print,
		"println":    rt.println,
		"assert":     rt.assert,
		"readInt":    rt.readInt,
		"readReal":   rt.readReal,
		"readString": rt.readString,
	}
}

// print(x, ...) writes each argument's D representation, space-separated,
// with no trailing newline.
func (rt *Runtime) print(args []object.Value) (object.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprint(rt.Out, strings.Join(parts, " "))
	return object.Empty{}, nil
}

// println() writes a single newline; D's println takes no arguments
// (print the arguments first, then println() to terminate the line).
func (rt *Runtime) println(args []object.Value) (object.Value, error) {
	if len(args) != 0 {
		return nil, object.NewNumArgs(0, len(args))
	}
	fmt.Fprintln(rt.Out)
	return object.Empty{}, nil
}

// assert(bool) halts the program with a runtime error when its argument
// is not true (spec.md §6).
func (rt *Runtime) assert(args []object.Value) (object.Value, error) {
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
}

func (rt *Runtime) readLine() (string, error) {
	line, err := rt.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (rt *Runtime) readInt(args []object.Value) (object.Value, error) {
	if len(args) != 0 {
		return nil, object.NewNumArgs(0, len(args))
	}
	line, err := rt.readLine()
	if err != nil {
		return nil, object.NewDefault(fmt.Sprintf("readInt: %v", err))
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return nil, object.NewDefault(fmt.Sprintf("readInt: %v", err))
	}
	return object.Int(n), nil
}

func (rt *Runtime) readReal(args []object.Value) (object.Value, error) {
	if len(args) != 0 {
		return nil, object.NewNumArgs(0, len(args))
	}
	line, err := rt.readLine()
	if err != nil {
		return nil, object.NewDefault(fmt.Sprintf("readReal: %v", err))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return nil, object.NewDefault(fmt.Sprintf("readReal: %v", err))
	}
	return object.Real(f), nil
}

func (rt *Runtime) readString(args []object.Value) (object.Value, error) {
	if len(args) != 0 {
		return nil, object.NewNumArgs(0, len(args))
	}
	line, err := rt.readLine()
	if err != nil {
		return nil, object.NewDefault(fmt.Sprintf("readString: %v", err))
	}
	return object.String(line), nil
}
