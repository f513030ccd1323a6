package parser

import (
	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/token"
)

// maxArgs is the call-argument and function-parameter cap (it fits in
// the single byte a bytecode VM would use to encode an arg count, a
// constraint this tree-walker has no technical need for but keeps for
// familiarity with every other Lox implementation's limit).
const maxArgs = 255

// parseError unwinds the recursive-descent parser back to
// synchronize() after a malformed construct has been reported. It is
// recovered at the declaration() boundary — the one place panic/
// recover crosses a function call in this package, the same role
// go/parser's internal bailout plays in the standard library's own
// recursive-descent parser.
type parseError struct{}

// Parser builds a Lox AST from a token stream via recursive descent.
type Parser struct {
	tokens  []token.Token
	current int
	diags   *diag.Diagnostics
}

// New creates a Parser over tokens that reports syntax errors to diags.
func New(tokens []token.Token, diags *diag.Diagnostics) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// Parse parses the entire token stream into a program: a list of top-
// level statements. Malformed declarations are skipped after
// synchronizing so that a single syntax error can still surface
// siblings' errors in the same pass.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.matchAny(token.Class):
		return p.classDeclaration()
	case p.matchAny(token.Fun):
		return p.function("function")
	case p.matchAny(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() Stmt {
	name := p.consume(token.Identifier, "Expect class name")

	var superclass *VariableExpr
	if p.matchAny(token.Less) {
		superName := p.consume(token.Identifier, "Expect superclass name")
		superclass = &VariableExpr{Name: superName}
	}

	p.consume(token.LeftBrace, "Expect '{' before class body")
	var methods []*FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RightBrace, "Expect '}' after class body")

	return &ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *FunctionStmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name"))
			if !p.matchAny(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters")
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(token.Identifier, "Expect variable name")
	var initializer Expr
	if p.matchAny(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.matchAny(token.For):
		return p.forStatement()
	case p.matchAny(token.If):
		return p.ifStatement()
	case p.matchAny(token.Print):
		return p.printStatement()
	case p.matchAny(token.Return):
		return p.returnStatement()
	case p.matchAny(token.While):
		return p.whileStatement()
	case p.matchAny(token.LeftBrace):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for` into a `while` wrapped in a block: no
// ForStmt node exists in the AST.
func (p *Parser) forStatement() Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'")

	var initializer Stmt
	switch {
	case p.matchAny(token.Semicolon):
		initializer = nil
	case p.matchAny(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition")

	var increment Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.matchAny(token.Else) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value")
	return &PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block")
	return stmts
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression")
	return &ExpressionStmt{Expression: expr}
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment validates its target after the fact: it parses the left
// side as a normal expression, then checks whether
// that expression shape is a valid assignment target once it sees the
// '='. This handles `a.b = c` (a Get becomes a Set) without a
// separate assignment-target grammar.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.matchAny(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target")
	}
	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.matchAny(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.matchAny(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.matchAny(token.NotEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.matchAny(token.Greater, token.GreaterEq, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.matchAny(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.matchAny(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.matchAny(token.Not, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		switch {
		case p.matchAny(token.LeftParen):
			expr = p.finishCall(expr)
		case p.matchAny(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'")
			expr = &GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.matchAny(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.matchAny(token.False):
		return &LiteralExpr{Value: false}
	case p.matchAny(token.True):
		return &LiteralExpr{Value: true}
	case p.matchAny(token.Nil):
		return &LiteralExpr{Value: nil}
	case p.matchAny(token.Number, token.String):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.matchAny(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'")
		method := p.consume(token.Identifier, "Expect superclass method name")
		return &SuperExpr{Keyword: keyword, Method: method}
	case p.matchAny(token.This):
		return &ThisExpr{Keyword: p.previous()}
	case p.matchAny(token.Identifier):
		return &VariableExpr{Name: p.previous()}
	case p.matchAny(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression")
		return &GroupingExpr{Expression: expr}
	}
	panic(p.errorAt(p.peek(), "Expect expression"))
}

// --- token cursor helpers ---

func (p *Parser) matchAny(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a syntax error and returns a parseError for the
// caller to panic with, so every error-reporting call site reads the
// same whether or not it unwinds immediately.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	p.diags.ReportAt(tok, message)
	return parseError{}
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error doesn't cascade into spurious ones for
// the rest of the file.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
