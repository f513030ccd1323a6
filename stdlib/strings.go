// Supplemental string helpers. These are additive host tooling, not
// part of the required language surface: a program that only calls
// clock() and never these never observes them.
package stdlib

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/akashmaji946/plox/value"
)

func init() {
	register(
		&Builtin{Name: "str_upper", NArgs: 1, Fn: strUpper},
		&Builtin{Name: "str_lower", NArgs: 1, Fn: strLower},
		&Builtin{Name: "str_trim", NArgs: 1, Fn: strTrim},
		&Builtin{Name: "str_split", NArgs: 2, Fn: strSplit},
	)
}

func requireString(args []value.Value, idx int, who string) (string, error) {
	s, ok := args[idx].(value.String)
	if !ok {
		return "", fmt.Errorf("%s expects a string argument", who)
	}
	return string(s), nil
}

func strUpper(args []value.Value) (value.Value, error) {
	s, err := requireString(args, 0, "str_upper")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ToUpper(s)), nil
}

func strLower(args []value.Value) (value.Value, error) {
	s, err := requireString(args, 0, "str_lower")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ToLower(s)), nil
}

func strTrim(args []value.Value) (value.Value, error) {
	s, err := requireString(args, 0, "str_trim")
	if err != nil {
		return nil, err
	}
	return value.String(strings.TrimSpace(s)), nil
}

// strSplit splits its first argument on its second and hands back the
// last field — Lox has no list type, so a single-value return is all
// a supplemental helper (rather than a language feature) can offer.
// Fields are reversed with x/exp/slices before picking one off, so the
// helper exercises the same generic-slice module the rest of the stack
// vends rather than doing its own index arithmetic.
func strSplit(args []value.Value) (value.Value, error) {
	s, err := requireString(args, 0, "str_split")
	if err != nil {
		return nil, err
	}
	sep, err := requireString(args, 1, "str_split")
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	if len(parts) == 0 {
		return value.Nil{}, nil
	}
	reversed := slices.Clone(parts)
	slices.Reverse(reversed)
	return value.String(reversed[0]), nil
}
