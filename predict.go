package predict

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Token represents an input token. Tokens are produced by a scanner, one source
// line at a time, and are mapped to grammar terminals before parsing.
//
// An example would be a token for a floating point number:
//
//    TokType = DoubleConstant  // identifier for this kind of tokens
//    Lexeme  = "3.1416"        // lexeme as it appeared in the input line
//    Line    = 7               // 1-based line number
//    Span    = 12…18           // occurred from column 12 of that line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Line() int
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the columns a token covers within its
// line. A span denotes a start column and the column just behind the end.
// Columns count characters, not bytes.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Position is a helper for error messages: it renders a token's place in the
// input as "line:column" (column 0-based, as the scanner counts).
func Position(t Token) string {
	if t == nil {
		return "end of input"
	}
	return fmt.Sprintf("%d:%d", t.Line(), t.Span().From())
}
