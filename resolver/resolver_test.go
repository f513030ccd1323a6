package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
)

func resolveSrc(t *testing.T, src string) (*Resolver, []parser.Stmt, *diag.Diagnostics) {
	t.Helper()
	d := diag.New()
	toks := lexer.New(src, d).ScanTokens()
	require.False(t, d.HasErrors())
	stmts := parser.New(toks, d).Parse()
	require.False(t, d.HasErrors())
	r := New(d)
	r.Resolve(stmts)
	return r, stmts, d
}

func TestResolve_SimpleLocalVariable(t *testing.T) {
	r, stmts, d := resolveSrc(t, `{ var a = 1; print a; }`)
	require.False(t, d.HasErrors())
	block := stmts[0].(*parser.BlockStmt)
	printStmt := block.Statements[1].(*parser.PrintStmt)
	dist, ok := r.Locals[printStmt.Expression]
	require.True(t, ok)
	assert.Equal(t, 0, dist)
}

func TestResolve_ClosureCapturesOuterScope(t *testing.T) {
	r, stmts, d := resolveSrc(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
	`)
	assert.False(t, d.HasErrors())
	outer := stmts[0].(*parser.FunctionStmt)
	inner := outer.Body[1].(*parser.FunctionStmt)
	assign := inner.Body[0].(*parser.ExpressionStmt).Expression
	dist, ok := r.Locals[assign]
	require.True(t, ok)
	assert.Equal(t, 1, dist)
}

func TestResolve_SelfReferenceInInitializerIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `{ var a = a; }`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "own initializer")
}

func TestResolve_DuplicateLocalIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "Already a variable")
}

func TestResolve_ReturnAtTopLevelIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `return 1;`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "top-level")
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `class A { init() { return 1; } }`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "initializer")
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `print this;`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "'this' outside")
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `fun f() { super.x(); }`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "'super' outside")
}

func TestResolve_SuperWithNoSuperclassIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `class A { greet() { super.greet(); } }`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "no superclass")
}

func TestResolve_SelfInheritanceIsError(t *testing.T) {
	_, _, d := resolveSrc(t, `class A < A {}`)
	assert.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "inherit from itself")
}

func TestResolve_ValidSubclassUsingSuper(t *testing.T) {
	_, _, d := resolveSrc(t, `
		class A { greet() { return "a"; } }
		class B < A { greet() { return super.greet(); } }
	`)
	assert.False(t, d.HasErrors())
}
