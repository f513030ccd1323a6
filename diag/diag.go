// Package diag implements the uniform error reporting contract shared
// by the scanner, parser, resolver, and interpreter: an explicit
// collaborator passed to each pipeline stage, rather than a sticky
// package-level error flag a stage would have to remember to check.
package diag

import (
	"fmt"

	"github.com/akashmaji946/plox/token"
)

// Diagnostics accumulates syntactic and static errors reported by the
// scanner, parser, and resolver during one run of the pipeline.
type Diagnostics struct {
	messages []string
}

// New returns an empty Diagnostics collector.
func New() *Diagnostics {
	return &Diagnostics{}
}

// Report records a scanner-level error: "[line L] <msg>".
func (d *Diagnostics) Report(line int, msg string) {
	d.messages = append(d.messages, fmt.Sprintf("[line %d] %s", line, msg))
}

// ReportAt records a parser/resolver-level error at a token, using the
// "Error at '<lexeme>'" / "Error at end" format.
func (d *Diagnostics) ReportAt(tok token.Token, msg string) {
	if tok.Type == token.EOF {
		d.messages = append(d.messages, fmt.Sprintf("[line %d] Error at end: %s.", tok.Line, msg))
	} else {
		d.messages = append(d.messages, fmt.Sprintf("[line %d] Error at '%s': %s.", tok.Line, tok.Lexeme, msg))
	}
}

// HasErrors reports whether any error has been recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.messages) > 0
}

// Messages returns the recorded error strings in report order.
func (d *Diagnostics) Messages() []string {
	return d.messages
}

// RuntimeError is a fatal error raised while interpreting the AST. It
// is returned from Interpreter.Interpret and reported once by the
// caller, as two lines: "<message>" then "[line L]".
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError builds a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Report renders a RuntimeError as the message followed by the
// offending line, on two lines.
func (e *RuntimeError) Report() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}
