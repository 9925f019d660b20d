/*
Package scanner splits source lines into tokens for predictive parsers.

The scanner is not a longest-match scanner. At every position within a line it
tries the token kinds in a fixed order of priority and takes the first kind
whose regular expression matches at that position. Keywords are anchored at
word boundaries, so "while1" is an identifier, not the keyword "while"
followed by a number.

	sc := scanner.NewScanner()
	tokens, err := sc.TokenizeNext("int x = 5;")
	if err != nil {
		// handle *scanner.LexicalError
	}
	for _, t := range scanner.Filter(tokens) {
		fmt.Println(t)          // Int 'int' [1;0] …
	}

Comments, white space, tabs and newlines are auxiliary token kinds. They are
kept in the raw token stream, but Filter removes them before tokens are handed
to a parser.

For reading whole inputs, package scanner provides a Tokenizer interface
together with a line oriented implementation, which reports lexical errors to
an error handler and continues with the next line. Sub-package lexmach adapts
lexmachine to the same interface.
*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}
