// Package stdlib registers the built-in callables a Lox program's
// global environment starts with: the required clock(), plus a small
// set of supplemental host helpers.
//
// The registry shape — a Builtin struct with a Name and a callback,
// appended to a package-level slice from each file's own init() —
// lets each concern self-register without a central list to maintain.
package stdlib

import "github.com/akashmaji946/plox/value"

// Fn is a built-in's implementation: a plain Go function over already-
// evaluated arguments. Built-ins have no closure and no AST, so unlike
// interp.Function they need nothing beyond the arguments themselves.
type Fn func(args []value.Value) (value.Value, error)

// Builtin is a native callable value, installed into the global
// environment by Register.
type Builtin struct {
	Name   string
	NArgs  int
	Fn     Fn
}

func (*Builtin) Type() value.Type { return value.FunctionType }
func (b *Builtin) String() string { return "<native fn " + b.Name + ">" }

// Arity satisfies value.Callable.
func (b *Builtin) Arity() int { return b.NArgs }

// builtins accumulates every registered Builtin; each file in this
// package appends to it from its own init().
var builtins []*Builtin

// register is called by each concern's init() to add its builtins to
// the shared registry.
func register(bs ...*Builtin) {
	builtins = append(builtins, bs...)
}

// Register binds every built-in into env under its name.
func Register(env interface{ Define(string, value.Value) }) {
	for _, b := range builtins {
		env.Define(b.Name, b)
	}
}
