package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/agrmv/predict"
)

// Tokenizer is a scanner interface for streams of tokens. NextToken returns a
// token of type EOF at the end of input.
type Tokenizer interface {
	NextToken() predict.Token
	SetErrorHandler(func(error))
}

// LineTokenizer is a Tokenizer reading its input line by line, backed by a
// Scanner. Create one with NewLineTokenizer.
//
// Lines containing a lexical error are reported to the error handler and
// skipped as a whole; tokenizing continues with the next line.
type LineTokenizer struct {
	reader  *bufio.Reader
	scanner *Scanner
	pending TokenList
	eof     bool
	skipAux bool
	Error   func(error) // error handler
}

var _ Tokenizer = (*LineTokenizer)(nil)

// Default error reporting function for tokenizers
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Option configures a line tokenizer.
type Option func(t *LineTokenizer)

// SkipAuxiliary sets or clears option SkipAuxiliary: do not pass comments,
// white space, tabs and newlines.
func SkipAuxiliary(b bool) Option {
	return func(t *LineTokenizer) {
		t.skipAux = b
	}
}

// NewLineTokenizer creates a tokenizer for an input stream.
func NewLineTokenizer(input io.Reader, opts ...Option) *LineTokenizer {
	t := &LineTokenizer{
		reader:  bufio.NewReader(input),
		scanner: NewScanner(),
		Error:   logError,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the tokenizer.
func (t *LineTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *LineTokenizer) NextToken() predict.Token {
	for len(t.pending) == 0 {
		if t.eof {
			return Token{kind: EOF, line: t.scanner.Line() + 1}
		}
		t.readLine()
	}
	token := t.pending[0]
	t.pending = t.pending[1:]
	return token
}

// Scanner returns the scanner backing t, holding all tokens read so far.
func (t *LineTokenizer) Scanner() *Scanner {
	return t.scanner
}

func (t *LineTokenizer) readLine() {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		t.eof = true
		if !errors.Is(err, io.EOF) {
			t.Error(err)
			return
		}
		if line == "" {
			tracer().Debugf("LineTokenizer reached end of input")
			return
		}
	}
	if strings.HasSuffix(line, "\r\n") {
		line = line[:len(line)-2] + "\n"
	}
	tokens, err := t.scanner.TokenizeNext(line)
	if err != nil {
		t.Error(err)
		return
	}
	if t.skipAux {
		tokens = Filter(tokens)
	}
	t.pending = tokens
}

// ReadAll drains a tokenizer and returns all tokens up to, but not including,
// EOF.
func ReadAll(t Tokenizer) []predict.Token {
	var tokens []predict.Token
	for {
		token := t.NextToken()
		if token.TokType() == EOF {
			return tokens
		}
		tokens = append(tokens, token)
	}
}
