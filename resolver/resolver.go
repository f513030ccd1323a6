// Package resolver performs the static pass between parsing and
// interpretation: it walks the AST once to bind every variable, `this`,
// and `super` reference to a lexical scope depth, and to catch the
// static errors that would otherwise only surface at runtime or never
// at all (e.g. returning from top-level code).
//
// The scope-stack shape (a stack of name->bool maps) and the
// declare/define/resolveLocal split are the standard shape a static
// scope resolver takes in a tree-walking interpreter.
package resolver

import (
	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program and populates Locals, a side table
// from an expression's identity (a Go pointer, since every AST node is
// allocated as a struct pointer) to the number of environment hops
// between the expression's use site and its declaring scope.
type Resolver struct {
	diags  *diag.Diagnostics
	scopes []map[string]bool
	Locals map[parser.Expr]int

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports static errors to diags.
func New(diags *diag.Diagnostics) *Resolver {
	return &Resolver{diags: diags, Locals: make(map[parser.Expr]int)}
}

// Resolve walks every top-level statement in program.
func (r *Resolver) Resolve(program []parser.Stmt) {
	r.resolveStmts(program)
}

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *parser.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *parser.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *parser.ClassStmt:
		r.resolveClass(s)

	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *parser.PrintStmt:
		r.resolveExpr(s.Expression)

	case *parser.ReturnStmt:
		if r.currentFunction == functionNone {
			r.diags.ReportAt(s.Keyword, "Can't return from top-level code")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.diags.ReportAt(s.Keyword, "Can't return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}

	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveClass(s *parser.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.diags.ReportAt(s.Superclass.Name, "A class can't inherit from itself")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declType := functionMethod
		if method.Name.Lexeme == "init" {
			declType = functionInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *parser.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.diags.ReportAt(e.Name, "Can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name)

	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *parser.GetExpr:
		r.resolveExpr(e.Object)

	case *parser.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *parser.ThisExpr:
		if r.currentClass == classNone {
			r.diags.ReportAt(e.Keyword, "Can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *parser.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.diags.ReportAt(e.Keyword, "Can't use 'super' outside of a class")
		case classClass:
			r.diags.ReportAt(e.Keyword, "Can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e, e.Keyword)

	case *parser.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)

	case *parser.LiteralExpr:
		// nothing to resolve
	}
}

func (r *Resolver) resolveLocal(expr parser.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Unresolved names fall through to the global environment at
	// runtime; no entry is recorded in Locals for them.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.diags.ReportAt(name, "Already a variable with this name in this scope")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
