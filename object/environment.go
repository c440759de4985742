package object

// Cell is a mutable box holding a Value. Closures share Cells by
// reference with the scope that defined them, so later writes in the
// outer scope are observed by the closure (spec.md §3 invariant I2, §9).
type Cell struct {
	Value Value
}

// Environment is a mutable mapping from names to Cells, plus a link to
// the lexically enclosing environment. Lookup walks outward from the
// innermost environment; the first hit wins (spec.md §3/§4.4).
type Environment struct {
	cells  map[string]*Cell
	parent *Environment
}

// NewEnvironment creates an empty environment with the given parent
// (nil for a top-level/global environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{cells: make(map[string]*Cell), parent: parent}
}

// Define binds name to v in env's own mapping. If name already has an
// entry in this environment (not an outer one), its cell is overwritten
// in place rather than replaced, per spec.md §4.4's `define` contract —
// this matters only if some other value still holds a reference to the
// old Cell, which does not happen for Decl in this implementation, but
// keeping the overwrite-in-place behavior documents the intended
// semantics precisely.
func (e *Environment) Define(name string, v Value) {
	if cell, ok := e.cells[name]; ok {
		cell.Value = v
		return
	}
	e.cells[name] = &Cell{Value: v}
}

// Lookup searches name starting at e and walking outward through parent
// links, returning the first match.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.cells[name]; ok {
			return cell.Value, true
		}
	}
	return nil, false
}

// Assign writes v into the Cell of the nearest environment (walking
// outward from e) that already binds name, so every closure sharing that
// Cell observes the new value. It reports whether such a binding existed.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.cells[name]; ok {
			cell.Value = v
			return true
		}
	}
	return false
}

// NewCallEnvironment produces the environment a function call body runs
// in: a fresh environment whose parent is captured (the closure's
// defining environment), with params bound to args in its own mapping.
// Because captured is linked as the parent rather than copied, Cells
// already shared by other closures over captured remain shared (spec.md
// §4.4 `bindVars`).
func NewCallEnvironment(captured *Environment, params []string, args []Value) *Environment {
	env := NewEnvironment(captured)
	for i, p := range params {
		env.Define(p, args[i])
	}
	return env
}
