package main

import (
	"io"

	"github.com/yahaha-lang/yahaha"
	"github.com/yahaha-lang/yahaha/builtin"
	"github.com/yahaha-lang/yahaha/object"
)

// execute parses and runs source against a fresh environment with the
// standard builtins registered, printing the result or error to out. It
// reports whether the run succeeded, so callers can choose an exit code
// (file mode) or just keep looping (REPL mode).
func execute(out io.Writer, in io.Reader, source string) bool {
	return executeEnv(out, in, source, yahaha.NewEnv())
}

// executeEnv is like execute but reuses env across calls, which is what
// the REPL does so declarations from one line are visible to the next.
func executeEnv(out io.Writer, in io.Reader, source string, env *yahaha.Env) bool {
	prog, errs := yahaha.Parse(source)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(out, "[PARSE ERROR] %s\n", e)
		}
		return false
	}

	if _, ok := env.Lookup("print"); !ok {
		builtin.Register(env, builtin.NewRuntime(out, in))
	}

	v, err := yahaha.Exec(env, prog)
	if err != nil {
		redColor.Fprintf(out, "[RUNTIME ERROR] %v\n", err)
		return false
	}
	if _, isEmpty := v.(object.Empty); v != nil && !isEmpty {
		yellowColor.Fprintf(out, "%s\n", v.String())
	}
	return true
}
