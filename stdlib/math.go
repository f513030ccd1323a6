// Supplemental numeric helpers beyond the four arithmetic operators
// the language itself provides. Additive host tooling, same as the
// string helpers: a program that never calls these never observes
// them.
package stdlib

import (
	"fmt"
	"math"

	"github.com/akashmaji946/plox/value"
)

func init() {
	register(
		&Builtin{Name: "sqrt", NArgs: 1, Fn: mathSqrt},
		&Builtin{Name: "pow", NArgs: 2, Fn: mathPow},
		&Builtin{Name: "abs", NArgs: 1, Fn: mathAbs},
		&Builtin{Name: "floor", NArgs: 1, Fn: mathFloor},
		&Builtin{Name: "ceil", NArgs: 1, Fn: mathCeil},
	)
}

func requireNumber(args []value.Value, idx int, who string) (float64, error) {
	n, ok := args[idx].(value.Number)
	if !ok {
		return 0, fmt.Errorf("%s expects a number argument", who)
	}
	return float64(n), nil
}

func mathSqrt(args []value.Value) (value.Value, error) {
	n, err := requireNumber(args, 0, "sqrt")
	if err != nil {
		return nil, err
	}
	return value.Number(math.Sqrt(n)), nil
}

func mathPow(args []value.Value) (value.Value, error) {
	base, err := requireNumber(args, 0, "pow")
	if err != nil {
		return nil, err
	}
	exp, err := requireNumber(args, 1, "pow")
	if err != nil {
		return nil, err
	}
	return value.Number(math.Pow(base, exp)), nil
}

func mathAbs(args []value.Value) (value.Value, error) {
	n, err := requireNumber(args, 0, "abs")
	if err != nil {
		return nil, err
	}
	return value.Number(math.Abs(n)), nil
}

func mathFloor(args []value.Value) (value.Value, error) {
	n, err := requireNumber(args, 0, "floor")
	if err != nil {
		return nil, err
	}
	return value.Number(math.Floor(n)), nil
}

func mathCeil(args []value.Value) (value.Value, error) {
	n, err := requireNumber(args, 0, "ceil")
	if err != nil {
		return nil, err
	}
	return value.Number(math.Ceil(n)), nil
}
