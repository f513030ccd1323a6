package stdlib

import (
	"time"

	"github.com/akashmaji946/plox/value"
)

func init() {
	register(&Builtin{Name: "clock", NArgs: 0, Fn: clock})
}

// clock returns the number of seconds since the Unix epoch as a Lox
// number, as plain wall-clock seconds with a fractional part (not
// divided by 1000, which would turn the result into thousands of
// seconds instead of a seconds count).
func clock(args []value.Value) (value.Value, error) {
	return value.Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
}
