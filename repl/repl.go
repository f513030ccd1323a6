// Package repl implements the interactive Read-Eval-Print Loop for
// Lox: a persistent Interpreter (so variables and functions survive
// across lines) driven one line at a time through the scanner,
// parser, and resolver.
//
// The Repl struct's banner fields and the overall Start/evalLine shape
// follow a readline-and-colored-error REPL design, carried over here
// from a Go scripting-language host to Lox's own grammar.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/plox/config"
	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/interp"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgCyan)
)

// Repl is an interactive Lox session.
type Repl struct {
	cfg config.Config
}

// New creates a Repl configured by cfg. If cfg.Color is false, banner
// and diagnostic output is printed uncolored.
func New(cfg config.Config) *Repl {
	for _, c := range []*color.Color{blueColor, yellowColor, redColor, greenColor} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Repl{cfg: cfg}
}

// PrintBanner writes the startup banner and usage hints to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	line := strings.Repeat("-", 40)
	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintf(writer, "%s\n", r.cfg.Banner)
	blueColor.Fprintf(writer, "%s\n", line)
	yellowColor.Fprintln(writer, "Version: "+r.cfg.Version)
	blueColor.Fprintf(writer, "%s\n", line)
	yellowColor.Fprintln(writer, "Type Lox statements and press enter. Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", line)
}

// Start runs the REPL main loop against writer until the user exits
// or input is exhausted (EOF). The same *interp.Interpreter persists
// across every line, so a variable or function declared on one line
// is visible on the next — the same single long-lived global
// environment a whole program runs against, extended across an
// interactive session.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.cfg.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(writer)
	it.SetMaxCallDepth(r.cfg.MaxCallDepth)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, it)
	}
}

// evalLine runs one line of input through the full pipeline, printing
// any scan/parse/resolve/runtime error instead of propagating it —
// a REPL keeps going after a bad line, unlike file-mode execution.
func (r *Repl) evalLine(writer io.Writer, line string, it *interp.Interpreter) {
	d := diag.New()
	toks := lexer.New(line, d).ScanTokens()
	if d.HasErrors() {
		r.printDiagnostics(writer, d)
		return
	}

	stmts := parser.New(toks, d).Parse()
	if d.HasErrors() {
		r.printDiagnostics(writer, d)
		return
	}

	res := resolver.New(d)
	res.Resolve(stmts)
	if d.HasErrors() {
		r.printDiagnostics(writer, d)
		return
	}
	it.Resolve(res.Locals)

	if err := it.Interpret(stmts); err != nil {
		var rerr *diag.RuntimeError
		if ok := asRuntimeError(err, &rerr); ok {
			redColor.Fprintf(writer, "%s\n", rerr.Report())
			return
		}
		redColor.Fprintf(writer, "%v\n", err)
	}
}

func (r *Repl) printDiagnostics(writer io.Writer, d *diag.Diagnostics) {
	for _, msg := range d.Messages() {
		redColor.Fprintf(writer, "%s\n", msg)
	}
}

func asRuntimeError(err error, target **diag.RuntimeError) bool {
	rerr, ok := err.(*diag.RuntimeError)
	if ok {
		*target = rerr
	}
	return ok
}
