package predictive

import (
	"fmt"

	"github.com/agrmv/predict"
	"github.com/agrmv/predict/ll"
	"github.com/agrmv/predict/scanner"
)

// SyntaxError is returned if the input is not a sentence of the grammar.
// There are two forms: either a terminal on top of the parse stack does not
// match the lookahead (Expected is set), or the parsing table has no entry for
// a non-terminal and the lookahead (NonTerminal is set). Fields which are not
// set hold the zero Symbol, which is not valid.
type SyntaxError struct {
	Expected    ll.Symbol
	NonTerminal ll.Symbol
	Found       ll.Symbol
	Token       predict.Token // nil at end of input
	Index       int           // index of the offending input terminal
}

// MissingEntry is true if no rule has been found to expand a non-terminal.
func (e *SyntaxError) MissingEntry() bool {
	return e.NonTerminal.IsValid()
}

func (e *SyntaxError) Error() string {
	if e.MissingEntry() {
		return fmt.Sprintf("syntax error at %s: unexpected %s while parsing %s",
			predict.Position(e.Token), e.Found, e.NonTerminal)
	}
	return fmt.Sprintf("syntax error at %s: expected %s, found %s",
		predict.Position(e.Token), e.Expected, e.Found)
}

// IncompleteParseError is returned if input remains after the parse stack has
// been emptied.
type IncompleteParseError struct {
	Remaining int // number of unconsumed input terminals
	Index     int // index of the first unconsumed input terminal
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("incomplete parse: %d input symbols left at index %d", e.Remaining, e.Index)
}

// InternalConfigurationError is returned if a token cannot be mapped to a
// terminal of the grammar. This hints at a scanner and a grammar which
// disagree on token categories; it is not an error of the input.
type InternalConfigurationError struct {
	Kind     predict.TokType
	Lexeme   string
	Category string // category terminal name, if any
}

func (e *InternalConfigurationError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("internal configuration error: grammar has no terminal %q for token %s %q",
			e.Category, scanner.KindName(e.Kind), e.Lexeme)
	}
	return fmt.Sprintf("internal configuration error: no terminal for token kind %s (%q)",
		scanner.KindName(e.Kind), e.Lexeme)
}
