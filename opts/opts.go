// Package opts models the command-line option tables handed to external
// executables.
//
// Some option values are only known once the tool's input file is: its
// output files are conventionally derived from the input's base filename.
// Rather than sniffing for callables at run time, an option value is
// explicitly either a Literal or a Basename function, and resolution
// happens exactly once, when the command is built. The parsers downstream
// never see these values.
package opts

import (
	"sort"

	"github.com/BurntSushi/cmd"
)

// A Value is one option value in a Table: either a Literal or a Basename.
type Value interface {
	resolve(root string) string
}

// Literal is a fixed option value. The empty literal marks a bare flag
// option with no argument.
type Literal string

func (v Literal) resolve(string) string { return string(v) }

// Basename is an option value computed from the base filename of the
// tool's input when the command is built.
type Basename func(root string) string

func (v Basename) resolve(root string) string { return v(root) }

// A Table maps option names (without the leading dash) to their values.
type Table map[string]Value

// Resolve binds every value in the table against the given base filename.
func (t Table) Resolve(root string) map[string]string {
	resolved := make(map[string]string, len(t))
	for name, value := range t {
		resolved[name] = value.resolve(root)
	}
	return resolved
}

// Args flattens resolved options into argv form: "-name value" pairs, or
// just "-name" for empty values. Options are emitted in sorted name order
// so a command is identical from run to run.
func Args(resolved map[string]string) []string {
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]string, 0, 2*len(names))
	for _, name := range names {
		args = append(args, "-"+name)
		if value := resolved[name]; len(value) > 0 {
			args = append(args, value)
		}
	}
	return args
}

// Command builds a runnable command from an executable path, positional
// arguments and resolved options.
func Command(exec string, args []string, resolved map[string]string) *cmd.Command {
	argv := make([]string, 0, len(args)+2*len(resolved))
	argv = append(argv, args...)
	argv = append(argv, Args(resolved)...)
	return cmd.New(exec, argv...)
}
