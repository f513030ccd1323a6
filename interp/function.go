package interp

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/stdlib"
	"github.com/akashmaji946/plox/value"
)

// Function is a user-defined Lox function or method: its declaration
// plus the environment it closed over at definition time.
type Function struct {
	declaration   *parser.FunctionStmt
	closure       *environment.Environment
	isInitializer bool
}

// NewFunction wraps declaration with the environment it was declared
// in. isInitializer marks a class's `init` method, which always
// returns `this` regardless of its own return statements.
func NewFunction(declaration *parser.FunctionStmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (*Function) Type() value.Type { return value.FunctionType }
func (f *Function) Arity() int     { return len(f.declaration.Params) }
func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }
func (f *Function) Name() string   { return f.declaration.Name.Lexeme }

// Bind returns a copy of f whose closure has `this` bound to
// instance — used when a method is looked up off an instance, so the
// returned callable remembers its receiver.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// call dispatches to the concrete Callable kind: a user-defined
// Function, a Class used as a constructor, or a stdlib.Builtin. This
// type switch is where Callable's lack of a Call method is made up
// for — keeping dispatch here instead of on the interface avoids an
// import cycle between value (which Callable lives in) and the
// closure/class/instance types that need environment and parser.
func (i *Interpreter) call(callable value.Callable, args []value.Value) (value.Value, error) {
	switch fn := callable.(type) {
	case *Function:
		return i.callFunction(fn, args)
	case *Class:
		return i.instantiate(fn, args)
	case *stdlib.Builtin:
		return fn.Fn(args)
	default:
		return nil, fmt.Errorf("value is not callable")
	}
}

func (i *Interpreter) callFunction(fn *Function, args []value.Value) (value.Value, error) {
	if i.maxCallDepth > 0 && i.callDepth >= i.maxCallDepth {
		return nil, diag.NewRuntimeError(fn.declaration.Name, "Stack overflow")
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	env := environment.NewEnclosed(fn.closure)
	for idx, param := range fn.declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(fn.declaration.Body, env)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			if fn.isInitializer {
				v, _ := fn.closure.GetAt(0, "this")
				return v, nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if fn.isInitializer {
		v, _ := fn.closure.GetAt(0, "this")
		return v, nil
	}
	return value.Nil{}, nil
}
