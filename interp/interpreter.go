// Package interp walks a resolved Lox AST against an environment
// chain, producing side effects (print, field mutation) and a final
// value per expression.
//
// The Interpreter struct's Writer field and its evaluate/execute split
// keep output and traversal state threaded through one struct for the
// whole walk, rather than passed around as loose parameters.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/stdlib"
	"github.com/akashmaji946/plox/token"
	"github.com/akashmaji946/plox/value"
)

// Interpreter executes a resolved program. Globals persists across
// calls to Interpret within the same REPL session, so top-level
// declarations from one line remain visible to the next.
type Interpreter struct {
	Globals      *environment.Environment
	env          *environment.Environment
	locals       map[parser.Expr]int
	Writer       io.Writer
	maxCallDepth int
	callDepth    int
}

// New creates an Interpreter with every stdlib builtin installed into
// a fresh global environment. Call-depth limiting is disabled until
// SetMaxCallDepth is called.
func New() *Interpreter {
	globals := environment.NewGlobal()
	stdlib.Register(globals)
	return &Interpreter{
		Globals: globals,
		env:     globals,
		locals:  make(map[parser.Expr]int),
		Writer:  os.Stdout,
	}
}

// SetWriter redirects print output, e.g. for capturing it in tests.
func (i *Interpreter) SetWriter(w io.Writer) {
	i.Writer = w
}

// SetMaxCallDepth bounds how many nested Lox function calls may be in
// flight at once; a call beyond that depth fails with a runtime error
// instead of growing the host call stack without limit. max <= 0
// disables the check.
func (i *Interpreter) SetMaxCallDepth(max int) {
	i.maxCallDepth = max
}

// Resolve installs the resolver's Locals side table so variable,
// `this`, and `super` lookups use resolved scope depths instead of
// falling through to a global-only search.
func (i *Interpreter) Resolve(locals map[parser.Expr]int) {
	i.locals = locals
}

// Interpret executes program's top-level statements in sequence,
// returning the first error encountered (if any) — a *diag.RuntimeError
// for a Lox runtime error, or a built-in's own error as returned — and
// one uncaught error halts the program.
func (i *Interpreter) Interpret(program []parser.Stmt) error {
	for _, stmt := range program {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err

	case *parser.PrintStmt:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Writer, v.String())
		return nil

	case *parser.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return nil

	case *parser.BlockStmt:
		return i.executeBlock(s.Statements, environment.NewEnclosed(i.env))

	case *parser.IfStmt:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return i.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil

	case *parser.WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *parser.FunctionStmt:
		fn := NewFunction(s, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *parser.ReturnStmt:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			var err error
			v, err = i.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	case *parser.ClassStmt:
		return i.executeClass(s)

	default:
		return fmt.Errorf("interp: unhandled statement %T", stmt)
	}
}

func (i *Interpreter) executeClass(s *parser.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		sv, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.(*Class)
		if !ok {
			return diag.NewRuntimeError(s.Superclass.Name, "Superclass must be a class")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, value.Nil{})

	classEnv := i.env
	if superclass != nil {
		classEnv = environment.NewEnclosed(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	i.env.Assign(s.Name.Lexeme, class)
	return nil
}

// executeBlock runs stmts against env, always restoring the
// interpreter's previous environment afterward — including when a
// return unwind or runtime error propagates out, matching the
// original's try/finally around environment swaps.
func (i *Interpreter) executeBlock(stmts []parser.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluate(expr parser.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(e.Value), nil

	case *parser.GroupingExpr:
		return i.evaluate(e.Expression)

	case *parser.UnaryExpr:
		return i.evalUnary(e)

	case *parser.BinaryExpr:
		return i.evalBinary(e)

	case *parser.LogicalExpr:
		return i.evalLogical(e)

	case *parser.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *parser.AssignExpr:
		return i.evalAssign(e)

	case *parser.CallExpr:
		return i.evalCall(e)

	case *parser.GetExpr:
		return i.evalGet(e)

	case *parser.SetExpr:
		return i.evalSet(e)

	case *parser.ThisExpr:
		return i.lookUpVariable(e.Keyword, e)

	case *parser.SuperExpr:
		return i.evalSuper(e)

	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", expr)
	}
}

func literalValue(v interface{}) value.Value {
	switch lv := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(lv)
	case float64:
		return value.Number(lv)
	case string:
		return value.String(lv)
	default:
		return value.Nil{}
	}
}

func (i *Interpreter) evalUnary(e *parser.UnaryExpr) (value.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.Not:
		return value.Bool(!value.Truthy(right)), nil
	}
	return nil, diag.NewRuntimeError(e.Operator, "Unknown unary operator.")
}

func (i *Interpreter) evalLogical(e *parser.LogicalExpr) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *parser.BinaryExpr) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, diag.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.Minus, token.Star, token.Slash,
		token.Greater, token.GreaterEq, token.Less, token.LessEqual:
		ln, ok1 := left.(value.Number)
		rn, ok2 := right.(value.Number)
		if !ok1 || !ok2 {
			return nil, diag.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.Minus:
			return ln - rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Slash:
			return ln / rn, nil
		case token.Greater:
			return value.Bool(ln > rn), nil
		case token.GreaterEq:
			return value.Bool(ln >= rn), nil
		case token.Less:
			return value.Bool(ln < rn), nil
		case token.LessEqual:
			return value.Bool(ln <= rn), nil
		}

	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.NotEqual:
		return value.Bool(!value.Equal(left, right)), nil
	}

	return nil, diag.NewRuntimeError(e.Operator, "Unknown binary operator.")
}

func (i *Interpreter) evalAssign(e *parser.AssignExpr) (value.Value, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := i.locals[e]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, v)
		return v, nil
	}
	if !i.Globals.Assign(e.Name.Lexeme, v) {
		return nil, diag.NewRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

// lookUpVariable reads name using the resolver's computed distance
// for expr when one was recorded, falling back to a name search
// starting at the global environment — unresolved names are exactly
// those the resolver left unbound because they belong to the global
// scope (built-ins, or late-bound top-level declarations).
func (i *Interpreter) lookUpVariable(name token.Token, expr parser.Expr) (value.Value, error) {
	if distance, ok := i.locals[expr]; ok {
		if v, ok := i.env.GetAt(distance, name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := i.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, diag.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (i *Interpreter) evalCall(e *parser.CallExpr) (value.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		v, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, diag.NewRuntimeError(e.Paren, "Can only call functions and classes")
	}
	if len(args) != callable.Arity() {
		return nil, diag.NewRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d", callable.Arity(), len(args)))
	}
	return i.call(callable, args)
}

func (i *Interpreter) evalGet(e *parser.GetExpr) (value.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Undefined property '"+e.Name.Lexeme+"'")
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *parser.SetExpr) (value.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

func (i *Interpreter) evalSuper(e *parser.SuperExpr) (value.Value, error) {
	distance := i.locals[e]
	superVal, _ := i.env.GetAt(distance, "super")
	superclass := superVal.(*Class)

	objVal, _ := i.env.GetAt(distance-1, "this")
	instance := objVal.(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, diag.NewRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'")
	}
	return method.Bind(instance), nil
}
