package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agrmv/predict"
)

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by scanners of this package. Tokens are
// values and never change after they have been scanned.
type Token struct {
	kind   predict.TokType
	lexeme string
	line   int // 1-based
	column int // 0-based, in characters
}

var _ predict.Token = Token{}

// MakeToken creates a token, e.g. for tests or for tokenizers of other packages.
func MakeToken(kind predict.TokType, lexeme string, line, column int) Token {
	return Token{kind: kind, lexeme: lexeme, line: line, column: column}
}

// TokType is part of interface predict.Token.
func (t Token) TokType() predict.TokType { return t.kind }

// Lexeme is part of interface predict.Token.
func (t Token) Lexeme() string { return t.lexeme }

// Line is part of interface predict.Token.
func (t Token) Line() int { return t.line }

// Column returns the 0-based column a token starts at, counted in characters.
func (t Token) Column() int { return t.column }

// Span is part of interface predict.Token.
func (t Token) Span() predict.Span {
	n := utf8.RuneCountInString(t.lexeme)
	return predict.Span{uint64(t.column), uint64(t.column + n)}
}

// String renders a token as
//
//    Identifier 'x' [1;4]
//
// Auxiliary tokens omit their lexeme.
func (t Token) String() string {
	if IsAuxiliary(t.kind) || t.kind == EOF {
		return fmt.Sprintf("%s [%d;%d]", KindName(t.kind), t.line, t.column)
	}
	return fmt.Sprintf("%s '%s' [%d;%d]", KindName(t.kind), t.lexeme, t.line, t.column)
}

// TokenList is a sequence of tokens in input order.
type TokenList []Token

// Generic returns the tokens of l as predict.Tokens, as expected by parsers.
func (l TokenList) Generic() []predict.Token {
	tokens := make([]predict.Token, len(l))
	for i, t := range l {
		tokens[i] = t
	}
	return tokens
}

// Filter returns the tokens of l which are not auxiliary. Filter does not
// change l; filtering an already filtered list yields an equal list.
func Filter(l TokenList) TokenList {
	filtered := make(TokenList, 0, len(l))
	for _, t := range l {
		if !IsAuxiliary(t.kind) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// --- Errors ----------------------------------------------------------------

// LexicalError is returned if no token kind matches at a position of a line.
type LexicalError struct {
	Line   int
	Column int    // 0-based, in characters
	Text   string // remainder of the line, starting at Column
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d, cannot classify %q", e.Line, e.Column, e.Text)
}

// --- Scanner ---------------------------------------------------------------

// Scanner tokenizes source text one line at a time. It keeps a running line
// counter and accumulates the tokens of all lines successfully scanned.
// A Scanner must not be used concurrently.
type Scanner struct {
	lineNo int
	tokens TokenList
}

// NewScanner creates a scanner positioned before line 1.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Line returns the number of the line scanned last.
func (s *Scanner) Line() int {
	return s.lineNo
}

// TokenizeNext tokenizes the line following the one scanned last.
func (s *Scanner) TokenizeNext(line string) (TokenList, error) {
	return s.Tokenize(line, s.lineNo+1)
}

// Tokenize splits a line into tokens covering the entire line. lineNo is the
// 1-based number of the line and becomes the scanner's current line number.
//
// If no token kind matches at some position, Tokenize returns a
// *LexicalError for this position and none of the line's tokens are
// accumulated.
func (s *Scanner) Tokenize(line string, lineNo int) (TokenList, error) {
	s.lineNo = lineNo
	var tokens TokenList
	column := 0
	for cursor := 0; cursor < len(line); {
		t, ok := match(line[cursor:], lineNo, column)
		if !ok {
			err := &LexicalError{Line: lineNo, Column: column, Text: strings.TrimRight(line[cursor:], "\r\n")}
			tracer().Errorf("%v", err)
			return nil, err
		}
		tracer().Debugf("%v", t)
		tokens = append(tokens, t)
		cursor += len(t.lexeme)
		column = int(t.Span().To())
	}
	s.tokens = append(s.tokens, tokens...)
	return tokens, nil
}

// match tries all token kinds in order of priority on the text at the cursor.
func match(rest string, lineNo, column int) (Token, bool) {
	for k, re := range patterns {
		if loc := re.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return Token{
				kind:   predict.TokType(k),
				lexeme: rest[:loc[1]],
				line:   lineNo,
				column: column,
			}, true
		}
	}
	return Token{}, false
}

// Tokens returns all the tokens scanned so far, including auxiliary tokens.
func (s *Scanner) Tokens() TokenList {
	return append(TokenList(nil), s.tokens...)
}

// FilteredTokens returns the tokens scanned so far, without auxiliary tokens.
func (s *Scanner) FilteredTokens() TokenList {
	return Filter(s.tokens)
}

// Reset clears the accumulated tokens and the line counter. Interactive
// clients call it between inputs which are parsed on their own.
func (s *Scanner) Reset() {
	s.lineNo = 0
	s.tokens = nil
}
