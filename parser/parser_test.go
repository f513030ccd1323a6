package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/lexer"
)

func parse(t *testing.T, src string) ([]Stmt, *diag.Diagnostics) {
	t.Helper()
	d := diag.New()
	toks := lexer.New(src, d).ScanTokens()
	require.False(t, d.HasErrors(), "unexpected scan errors: %v", d.Messages())
	stmts := New(toks, d).Parse()
	return stmts, d
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts, d := parse(t, `var x = 1 + 2;`)
	require.False(t, d.HasErrors())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	_, ok = v.Initializer.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParse_IfElse(t *testing.T) {
	stmts, d := parse(t, `if (true) print 1; else print 2;`)
	require.False(t, d.HasErrors())
	require.Len(t, stmts, 1)
	ifs, ok := stmts[0].(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifs.ThenBranch)
	assert.NotNil(t, ifs.ElseBranch)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, d := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, d.HasErrors())
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*VarStmt)
	assert.True(t, ok)
	_, ok = block.Statements[1].(*WhileStmt)
	assert.True(t, ok)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, d := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, d.HasErrors())
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, d := parse(t, `class B {} class A < B { init() { this.x = 1; } greet() { return super.greet(); } }`)
	require.False(t, d.HasErrors())
	require.Len(t, stmts, 2)
	cls, ok := stmts[1].(*ClassStmt)
	require.True(t, ok)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "B", cls.Superclass.Name.Lexeme)
	assert.Len(t, cls.Methods, 2)
}

func TestParse_CallAndPropertyChaining(t *testing.T) {
	stmts, d := parse(t, `a.b(1, 2).c;`)
	require.False(t, d.HasErrors())
	require.Len(t, stmts, 1)
	expr, ok := stmts[0].(*ExpressionStmt)
	require.True(t, ok)
	get, ok := expr.Expression.(*GetExpr)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
	_, ok = get.Object.(*CallExpr)
	assert.True(t, ok)
}

func TestParse_AssignmentToGetBecomesSet(t *testing.T) {
	stmts, d := parse(t, `a.b = 1;`)
	require.False(t, d.HasErrors())
	expr := stmts[0].(*ExpressionStmt).Expression
	_, ok := expr.(*SetExpr)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTargetReportsError(t *testing.T) {
	_, d := parse(t, `1 = 2;`)
	assert.True(t, d.HasErrors())
}

func TestParse_MissingSemicolonReportsErrorAndSynchronizes(t *testing.T) {
	_, d := parse(t, `var x = 1 var y = 2;`)
	assert.True(t, d.HasErrors())
	assert.Len(t, d.Messages(), 1)
}

func TestParse_TooManyArgumentsReportsError(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	_, d := parse(t, src)
	assert.True(t, d.HasErrors())
	assert.Equal(t, "[line 1] Error at '1': Can't have more than 255 arguments.", d.Messages()[0])
}
