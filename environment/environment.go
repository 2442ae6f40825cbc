/*
File    : gomix/environment/environment.go

Package environment implements the nested name-to-value bindings used
by the tree-walking evaluator, with lexical enclosing for closures.
*/
package environment

import "github.com/gomixlang/gomix/object"

// Environment is a single lexical frame: a map of bindings plus an
// optional pointer to the enclosing frame. Lookups walk outward.
//
// A function value captures a pointer to the Environment active at its
// definition site. Because Go passes *Environment by reference, two
// closures that captured the same frame observe each other's mutations
// -- this is what lets a counter closure's state persist across calls
// (the captured frame is shared, not deep-copied, even though each
// capture is logically an independent snapshot of "what was visible
// then").
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a fresh global environment with no enclosing frame.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// Enclose creates a new frame whose outer pointer is e, implementing
// spec.md's enclose(outer) operation. It returns the object.Environment
// interface (rather than *Environment) so that *Environment satisfies
// that interface for object.Function.Env without object importing this
// package back -- that would form a cycle, since this package already
// imports object for the Object type.
func (e *Environment) Enclose() object.Environment {
	return &Environment{store: make(map[string]object.Object), outer: e}
}

// NewEnclosed is the concrete-typed counterpart of Enclose, used
// internally by eval where a *Environment (not the narrow interface)
// is required, e.g. to call Assign.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), outer: outer}
}

// compile-time assertion that *Environment satisfies object.Environment,
// the narrow interface object.Function needs without importing this
// package back (which would form an import cycle).
var _ object.Environment = (*Environment)(nil)

// Get returns the nearest binding walking outward, or false if not found.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name in the current frame, used by Let and by parameter
// binding at call time.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}

// Assign updates the nearest binding of name (walking outward), and
// reports whether an existing binding was found. Used by the Assign
// statement, which falls back to Set in the current frame when no
// existing binding exists -- see spec.md section 9's open-question
// decision, restated in SPEC_FULL.md.
func (e *Environment) Assign(name string, val object.Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}

// Names returns the names bound directly in this frame (not walking
// outward), in no particular order. Used by the module loader to
// project a frame's top-level bindings into a Hash.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	return names
}
