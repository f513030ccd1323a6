// Package environment implements the lexical scope chain Lox variables
// live in: a linked list of frames, walked by resolver-computed depth
// (GetAt/AssignAt/Ancestor) or by name search for the global frame.
//
// Frames chain through a parent pointer with a get/assign/ancestor
// trio, the same shape a scope-chain implementation takes in any
// closure-supporting tree-walker.
package environment

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/akashmaji946/plox/value"
)

// varStore abstracts the single frame's binding table so the global
// frame can use a different backing structure than an ordinary block
// or call frame.
type varStore interface {
	get(name string) (value.Value, bool)
	set(name string, v value.Value)
	has(name string) bool
}

// mapStore is a plain Go map, used for every non-global frame: block,
// function-call, and method-call scopes are small and short-lived, so
// a plain map's simplicity beats any bucketed map's constant-factor
// advantage there.
type mapStore struct {
	m map[string]value.Value
}

func newMapStore() *mapStore {
	return &mapStore{m: make(map[string]value.Value)}
}

func (s *mapStore) get(name string) (value.Value, bool) {
	v, ok := s.m[name]
	return v, ok
}

func (s *mapStore) set(name string, v value.Value) {
	s.m[name] = v
}

func (s *mapStore) has(name string) bool {
	_, ok := s.m[name]
	return ok
}

// swissStore backs the global frame, which accumulates every built-in
// plus every top-level declaration for the lifetime of the process —
// exactly the many-entries, long-lived profile dolthub/swiss's
// open-addressing table is built for.
type swissStore struct {
	m *swiss.Map[string, value.Value]
}

func newSwissStore() *swissStore {
	return &swissStore{m: swiss.NewMap[string, value.Value](64)}
}

func (s *swissStore) get(name string) (value.Value, bool) {
	return s.m.Get(name)
}

func (s *swissStore) set(name string, v value.Value) {
	s.m.Put(name, v)
}

func (s *swissStore) has(name string) bool {
	return s.m.Has(name)
}

// Environment is one frame of the lexical scope chain.
type Environment struct {
	enclosing *Environment
	store     varStore
}

// NewGlobal creates the root frame of a Lox program's environment
// chain, backed by a swiss map since it will hold every built-in and
// every top-level binding.
func NewGlobal() *Environment {
	return &Environment{store: newSwissStore()}
}

// NewEnclosed creates a child frame nested inside enclosing, backed by
// a plain map.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, store: newMapStore()}
}

// Define binds name to v in this frame, shadowing any binding of the
// same name in an enclosing frame. Redefinition within the same frame
// overwrites the earlier binding; Lox allows this at top level, and the
// resolver rejects a duplicate declaration in a local scope before it
// reaches the interpreter.
func (e *Environment) Define(name string, v value.Value) {
	e.store.set(name, v)
}

// Get looks up name starting at this frame and walking outward,
// reporting whether it is bound anywhere in the chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.store.get(name); ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign updates the nearest frame in which name is already bound,
// reporting whether such a frame was found. It never creates a new
// binding — that is Define's job.
func (e *Environment) Assign(name string, v value.Value) bool {
	if e.store.has(name) {
		e.store.set(name, v)
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return false
}

// Ancestor walks distance frames outward from e. A resolver-computed
// distance is always within range for well-formed resolver output; an
// out-of-range distance indicates a resolver/interpreter mismatch and
// panics rather than silently misresolving a variable.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.enclosing == nil {
			panic(fmt.Sprintf("environment: ancestor distance %d exceeds chain depth", distance))
		}
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the frame distance hops outward from e, per
// the resolver's computed scope depth.
func (e *Environment) GetAt(distance int, name string) (value.Value, bool) {
	return e.Ancestor(distance).store.get(name)
}

// AssignAt writes v to name in the frame distance hops outward from e,
// per the resolver's computed scope depth.
func (e *Environment) AssignAt(distance int, name string, v value.Value) {
	e.Ancestor(distance).store.set(name, v)
}
