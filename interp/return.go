package interp

import "github.com/akashmaji946/plox/value"

// returnSignal unwinds a `return` statement out to the call boundary
// that started executing the current function body. It is carried
// through the ordinary (value.Value, error) execute/evaluate return
// path and unwrapped with errors.As in callFunction, rather than modeled as a
// package-level flag (the original's boolean-style escape) or an
// unconfined panic — a typed error value keeps the unwind visible in
// every signature it passes through, and confines it to exactly the
// frames between a `return` statement and its enclosing call.
type returnSignal struct {
	Value value.Value
}

func (*returnSignal) Error() string {
	return "return outside of a function call"
}
