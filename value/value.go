// Package value defines the Lox runtime value model: the sum type of
// values a Lox expression can evaluate to, plus the stringification and
// truthiness/equality rules the interpreter applies to them.
//
// Callables (user functions, classes, built-ins) and instances are
// deliberately not defined here. User functions, classes and instances
// need the environment chain and the AST to carry closures and
// methods, so they live in package interp; built-ins live in package
// stdlib. Keeping only the primitive, closure-free values here avoids
// an import cycle between this package and the ones that model
// closures and class instances.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type names a Value's runtime type for diagnostics and type checks.
type Type string

const (
	NumberType   Type = "number"
	StringType   Type = "string"
	BoolType     Type = "bool"
	NilType      Type = "nil"
	FunctionType Type = "function"
	ClassType    Type = "class"
	InstanceType Type = "instance"
)

// Value is implemented by every Lox runtime value.
type Value interface {
	// Type reports the value's runtime type.
	Type() Type
	// String renders the value the way Lox's print statement and
	// string concatenation do.
	String() string
}

// Callable is implemented by any Value that can appear on the left of
// a call expression: user functions, classes (as constructors), and
// built-ins. Dispatch on the concrete type happens in package interp;
// this interface exists only so call-site arity checks don't need a
// type switch of their own.
type Callable interface {
	Value
	Arity() int
}

// Nil is Lox's absence-of-value. The zero value is the only value of
// this type; Lox has no way to construct a distinguishable nil.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Bool is a Lox boolean.
type Bool bool

func (b Bool) Type() Type { return BoolType }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is Lox's only numeric type: a double-precision float.
type Number float64

func (n Number) Type() Type { return NumberType }

// String strips a spurious trailing ".0" so integral numbers print
// without a decimal point.
func (n Number) String() string {
	text := strconv.FormatFloat(float64(n), 'f', -1, 64)
	if strings.HasSuffix(text, ".0") {
		return strings.TrimSuffix(text, ".0")
	}
	return text
}

// String is a Lox string value.
type String string

func (s String) Type() Type     { return StringType }
func (s String) String() string { return string(s) }

// Truthy implements Lox's truthiness rule: nil and false are falsey,
// everything else — including 0 and the empty string — is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements Lox's equality rule: nil equals only nil, and
// otherwise values of the same concrete type compare by IEEE-754
// equality (numbers), content (strings, bools), or identity
// (everything else, via Go's == on the underlying pointer/interface).
func Equal(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || bNil {
		return aNil && bNil
	}
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// ErrUnsupportedExtract is returned by Extract for values that have no
// native Go representation (callables, instances).
var ErrUnsupportedExtract = fmt.Errorf("value has no native Go representation")

// Extract pulls the native Go value out of a primitive Value, for
// built-ins that need to hand a value.Value to a stdlib Go API (e.g.
// strings.ToUpper).
func Extract(v Value) (interface{}, error) {
	switch vv := v.(type) {
	case Number:
		return float64(vv), nil
	case String:
		return string(vv), nil
	case Bool:
		return bool(vv), nil
	case Nil:
		return nil, nil
	default:
		return nil, ErrUnsupportedExtract
	}
}
