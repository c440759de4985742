package object

import "fmt"

// ErrorKind enumerates the runtime error taxonomy of spec.md §7. Parse
// errors are a separate type (parser.ParseError) since they arise before
// any Value exists; both satisfy the standard error interface so a host
// can handle them uniformly if it chooses to.
type ErrorKind int

const (
	UnboundVar ErrorKind = iota
	TypeMismatch
	NumArgs
	NotFunction
	AttributeError
	NullAccess
	Default
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundVar:
		return "UnboundVar"
	case TypeMismatch:
		return "TypeMismatch"
	case NumArgs:
		return "NumArgs"
	case NotFunction:
		return "NotFunction"
	case AttributeError:
		return "AttributeError"
	case NullAccess:
		return "NullAccess"
	case Default:
		return "Default"
	}
	return "Unknown"
}

// EvalError is the single fallible-result error type produced by both
// pure operations (arithmetic, type tests) and effectful ones
// (environment access), per spec.md §7's "error unification" design.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewUnboundVar builds an UnboundVar error: lookup or assignment to an
// undeclared name. action is a short description such as "Setting an
// unbound variable" or "Getting an unbound variable".
func NewUnboundVar(action, name string) *EvalError {
	return &EvalError{Kind: UnboundVar, Message: fmt.Sprintf("%s: %s", action, name)}
}

// NewTypeMismatch builds a TypeMismatch error: an operator or construct
// received the wrong kind of value.
func NewTypeMismatch(expected string, found fmt.Stringer) *EvalError {
	return &EvalError{Kind: TypeMismatch, Message: fmt.Sprintf("expected %s, found %s", expected, found)}
}

// NewTypeMismatchf builds a TypeMismatch error from a preformatted detail
// string, for call sites that don't have a single found-type to report.
func NewTypeMismatchf(format string, a ...interface{}) *EvalError {
	return &EvalError{Kind: TypeMismatch, Message: fmt.Sprintf(format, a...)}
}

// NewNumArgs builds a NumArgs error: call arity mismatch.
func NewNumArgs(expected, got int) *EvalError {
	return &EvalError{Kind: NumArgs, Message: fmt.Sprintf("expected %d argument(s), got %d", expected, got)}
}

// NewNotFunction builds a NotFunction error: call target is not callable.
func NewNotFunction(repr string) *EvalError {
	return &EvalError{Kind: NotFunction, Message: fmt.Sprintf("not a function: %s", repr)}
}

// NewAttributeError builds an AttributeError: missing tuple member or
// out-of-bounds array/string index.
func NewAttributeError(container Value, keyRepr string) *EvalError {
	return &EvalError{Kind: AttributeError, Message: fmt.Sprintf("%s has no attribute %s", container.Type(), keyRepr)}
}

// NewNullAccess builds a NullAccess error: an operation required a value
// but received Empty (the source's "Yahaha").
func NewNullAccess() *EvalError {
	return &EvalError{Kind: NullAccess, Message: "Yahaha: attempted to use Empty as a value"}
}

// NewDefault wraps a free-form message: host builtins use it (e.g. a
// failed assert()), and the evaluator uses it for integer division by
// zero and for unhandled node or operator kinds.
func NewDefault(message string) *EvalError {
	return &EvalError{Kind: Default, Message: message}
}
