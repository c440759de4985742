// Package object defines the runtime value universe of D ("yahaha"),
// lexically-scoped environments of shared mutable cells, and the
// structured error taxonomy threaded through evaluation.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yahaha-lang/yahaha/ast"
)

// Value is implemented by every runtime value. It is a strict superset of
// the expression literal shapes in package ast (spec.md §3).
type Value interface {
	Type() ast.TypeIndicator
	String() string
}

// Int is a 64-bit signed integer value (spec.md §3 prefers arbitrary
// precision; this implementation uses int64 — see the "Int
// representation" note in DESIGN.md for why).
type Int int64

func (Int) Type() ast.TypeIndicator { return ast.TInt }
func (i Int) String() string        { return strconv.FormatInt(int64(i), 10) }

// Real is an IEEE-754 double.
type Real float64

func (Real) Type() ast.TypeIndicator { return ast.TReal }
func (r Real) String() string        { return strconv.FormatFloat(float64(r), 'g', -1, 64) }

// Bool is a boolean value.
type Bool bool

func (Bool) Type() ast.TypeIndicator { return ast.TBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// String is a byte-sequence string value.
type String string

func (String) Type() ast.TypeIndicator { return ast.TString }
func (s String) String() string        { return string(s) }

// Array is an ordered, homogeneous-or-not sequence of values.
type Array struct {
	Elements []Value
}

func (*Array) Type() ast.TypeIndicator { return ast.TArray }
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TupleField is one named-or-anonymous slot of a Tuple value.
type TupleField struct {
	Name  string
	Value Value
}

// Tuple is an ordered record; duplicate names are permitted (lookup
// returns the first match) and names may be empty (unnamed slots).
type Tuple struct {
	Fields []TupleField
}

func (*Tuple) Type() ast.TypeIndicator { return ast.TTuple }
func (t *Tuple) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		if f.Name != "" {
			parts[i] = f.Name + " := " + f.Value.String()
		} else {
			parts[i] = f.Value.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Lookup returns the value of the first field named name, if any.
func (t *Tuple) Lookup(name string) (Value, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// At returns the i'th field's value (0-indexed) if in bounds.
func (t *Tuple) At(i int64) (Value, bool) {
	if i < 0 || i >= int64(len(t.Fields)) {
		return nil, false
	}
	return t.Fields[i].Value, true
}

// Closure is a function value: parameter names, a body, and the
// environment captured at the point of definition (by reference, so
// later mutation of variables in that environment is observable from
// inside the closure — spec.md §3/§9).
type Closure struct {
	Params []string
	Body   []ast.Stmt
	Env    *Environment
}

func (*Closure) Type() ast.TypeIndicator { return ast.TFunc }
func (c *Closure) String() string {
	return fmt.Sprintf("func(%s)", strings.Join(c.Params, ", "))
}

// Empty is the null sentinel value. It is first-class: accepted by
// `is empty`, but rejected by arithmetic/logical/relational/indexing
// operators (spec.md §9 OQ-4).
type Empty struct{}

func (Empty) Type() ast.TypeIndicator { return ast.TEmpty }
func (Empty) String() string          { return "Empty" }
