/*
Package predictive provides a table driven LL(1) parser.

Clients have to use the tools of package ll to prepare the parsing table. The
predictive parser uses the table to create a leftmost derivation for a given
input, provided as a sequence of tokens.

Usage

Clients load a grammar, usually from a grammar file, and build the table:

	g, err := loader.Load("expr.txt")
	ga, err := ll.Analysis(g)
	table, err := ll.BuildTable(ga)

Tokens are produced by package scanner and mapped to terminals of the grammar:
a token whose lexeme is the name of a terminal (keywords, punctuation) is
mapped to this terminal. Otherwise its token kind selects a category terminal,
e.g. identifiers are mapped to terminal "id".

	p, err := predictive.NewParser(g, table)
	tokens, err := scanner.NewScanner().TokenizeNext("x + y")
	derivation, err := p.Parse(scanner.Filter(tokens).Generic())

The derivation lists the rules applied, in order. It encodes the parse tree
of the input; Derivation.Walk reports each rule together with its depth in this
tree.

The parser does not attempt error recovery: the first syntax error ends the
parse.
*/
package predictive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
