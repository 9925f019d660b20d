/*
Package loader reads grammar descriptions and creates ll.Grammar objects.

A grammar description is line oriented:

	# expressions
	E -> T X
	X -> + E
	   | EPSILON
	T -> id

Each line starts with a head, followed by `->` and one or more alternatives,
separated by `|`. A line starting with `|` adds further alternatives to the
head of the previous line. Symbols are separated by white space. A symbol name
with an initial upper case letter denotes a non-terminal, all other names
denote terminals. EPSILON denotes the empty production and must be the only
symbol of its alternative. Text from `#` to the end of a line is a comment.

The first head becomes the start symbol of the grammar. Symbol codes are
assigned in order of first appearance.
*/
package loader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
