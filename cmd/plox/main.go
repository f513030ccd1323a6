// Command plox is the Lox interpreter's host binary: an interactive
// REPL with no arguments, or a one-shot script runner given a single
// file argument.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/plox/config"
	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/interp"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/repl"
	"github.com/akashmaji946/plox/resolver"
)

// Exit codes follow the conventions sysexits.h popularized: 64 for
// CLI misuse, 70 for an uncaught runtime error, 0 otherwise.
const (
	exitUsage   = 64
	exitRuntime = 70
)

func main() {
	cfg, err := config.Load(os.Getenv("PLOX_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	switch len(os.Args) {
	case 1:
		repl.New(cfg).Start(os.Stdout)
	case 2:
		os.Exit(runFile(os.Args[1], cfg))
	default:
		fmt.Fprintln(os.Stderr, "Usage: plox [script]")
		os.Exit(exitUsage)
	}
}

// runFile reads path, runs it through scan -> parse -> resolve ->
// interpret, and returns the process exit code. A scan, parse, or
// resolve error halts the run with every accumulated diagnostic
// printed, but leaves the exit code at 0 — 64 is reserved for CLI
// misuse (a bad argument count, or a script path that cannot be read),
// not for errors in the script itself.
// A runtime error exits 70 with a single two-line report instead.
func runFile(path string, cfg config.Config) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	d := diag.New()
	toks := lexer.New(string(source), d).ScanTokens()
	stmts := parser.New(toks, d).Parse()
	if d.HasErrors() {
		for _, msg := range d.Messages() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 0
	}

	res := resolver.New(d)
	res.Resolve(stmts)
	if d.HasErrors() {
		for _, msg := range d.Messages() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 0
	}

	it := interp.New()
	it.SetMaxCallDepth(cfg.MaxCallDepth)
	it.Resolve(res.Locals)
	if err := it.Interpret(stmts); err != nil {
		if rerr, ok := err.(*diag.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, rerr.Report())
			return exitRuntime
		}
		fmt.Fprintln(os.Stderr, err)
		return exitRuntime
	}
	return 0
}
