// Supplemental file I/O. Lox has no file handle type, so these work
// at the level the language can actually represent: a path in, a
// whole string out, rather than a stateful handle with its own
// open/seek/close lifecycle.
package stdlib

import (
	"fmt"
	"os"

	"github.com/akashmaji946/plox/value"
)

func init() {
	register(
		&Builtin{Name: "read_file", NArgs: 1, Fn: readFile},
		&Builtin{Name: "write_file", NArgs: 2, Fn: writeFile},
	)
}

func readFile(args []value.Value) (value.Value, error) {
	path, err := requireString(args, 0, "read_file")
	if err != nil {
		return nil, err
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read_file: %w", err)
	}
	return value.String(contents), nil
}

func writeFile(args []value.Value) (value.Value, error) {
	path, err := requireString(args, 0, "write_file")
	if err != nil {
		return nil, err
	}
	contents, err := requireString(args, 1, "write_file")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return nil, fmt.Errorf("write_file: %w", err)
	}
	return value.Nil{}, nil
}
