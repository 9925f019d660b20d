/*
Llparse parses source files with an LL(1) grammar and prints the derivation.

Usage:

	llparse -g GRAMMAR [flags]

The flags are:

	-g/--grammar FILE
		The grammar description to load (see package loader).

	-s/--source FILE
		The source file to parse. Lines containing lexical errors are
		reported and skipped.

	-c/--config FILE
		A TOML configuration file. Command line flags take precedence.

	--strict
		Fail if the grammar is not LL(1), instead of letting the rule
		registered last win.

	--tokens
		Print the tokens of the source file.

	--sets
		Print the FIRST- and FOLLOW-sets of the grammar.

	--html FILE
		Export the parsing table as HTML.

	-t/--trace LEVEL
		Trace level [Debug|Info|Error].

	-i/--interactive
		Read source lines from the terminal and parse each of them.

A configuration file may contain

	grammar = "decl.txt"
	strict  = true
	trace   = "Error"
	tokens  = false

	[categories]
	Identifier  = "id"
	IntConstant = "num"

where table categories maps token kinds to category terminals of the grammar.

Exit codes are 0 for success, 1 for usage or configuration errors, 2 for
grammar errors and 3 for lexical or syntax errors.
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// cliTrace is the trace of the command line tool, set up in main.
var cliTrace tracing.Trace

// tracer traces with key 'predict.cli', unless main installed a go-log trace.
func tracer() tracing.Trace {
	if cliTrace != nil {
		return cliTrace
	}
	return tracing.Select("predict.cli")
}
