package loader

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/agrmv/predict"
	"github.com/agrmv/predict/ll"
	"github.com/agrmv/predict/scanner"
	"github.com/agrmv/predict/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// GrammarFileError is returned if a grammar description cannot be read or is
// malformed.
type GrammarFileError struct {
	Path   string
	Line   int // 0 if the error does not relate to a specific line
	Reason string
	Err    error // underlying error, if any
}

func (e *GrammarFileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *GrammarFileError) Unwrap() error {
	return e.Err
}

// Load reads a grammar description from a file.
func Load(path string) (*ll.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &GrammarFileError{Path: path, Reason: "cannot open grammar file", Err: err}
	}
	defer f.Close()
	return Parse(path, f)
}

// ParseString reads a grammar description from a string.
func ParseString(name, text string) (*ll.Grammar, error) {
	return Parse(name, strings.NewReader(text))
}

// Parse reads a grammar description. name is used as the grammar's name and
// for error messages.
func Parse(name string, r io.Reader) (*ll.Grammar, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, &GrammarFileError{Path: name, Reason: "cannot read grammar", Err: err}
	}
	lines, err := tokenize(name, string(text))
	if err != nil {
		return nil, err
	}
	gp := &grammarParser{path: name, b: ll.NewGrammarBuilder(name)}
	for _, line := range lines {
		if err := gp.line(line); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	g, err := gp.b.Grammar()
	if err != nil {
		return nil, &GrammarFileError{Path: name, Reason: "invalid grammar", Err: err}
	}
	tracer().Infof("loaded grammar %s with %d rules", name, g.Size())
	return g, nil
}

// --- Tokenizing grammar text -----------------------------------------------

const (
	tokName predict.TokType = iota + 1
	tokArrow
	tokBar
)

var (
	lmOnce    sync.Once
	lmAdapter *lexmach.LMAdapter
	lmErr     error
)

func adapter() (*lexmach.LMAdapter, error) {
	lmOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`#[^\n]*`), lexmach.Skip)
			lexer.Add([]byte(`( |\t|\r|\n)+`), lexmach.Skip)
			lexer.Add([]byte(`->`), lexmach.MakeToken("->", int(tokArrow)))
			lexer.Add([]byte(`[^ \t\r\n|#]+`), lexmach.MakeToken("NAME", int(tokName)))
		}
		tokenIds := map[string]int{"|": int(tokBar)}
		lmAdapter, lmErr = lexmach.NewLMAdapter(init, []string{"|"}, nil, tokenIds)
	})
	return lmAdapter, lmErr
}

// tokenize splits grammar text into non-empty lines of tokens.
func tokenize(path, text string) ([][]predict.Token, error) {
	lm, err := adapter()
	if err != nil {
		return nil, &GrammarFileError{Path: path, Reason: "cannot create grammar scanner", Err: err}
	}
	sc, err := lm.Scanner(text)
	if err != nil {
		return nil, &GrammarFileError{Path: path, Reason: "cannot scan grammar", Err: err}
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var lines [][]predict.Token
	lineNo := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		if token.Line() != lineNo {
			lines = append(lines, nil)
			lineNo = token.Line()
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], token)
	}
	if scanErr != nil {
		return nil, &GrammarFileError{Path: path, Reason: "cannot scan grammar", Err: scanErr}
	}
	return lines, nil
}

// --- Parsing grammar lines -------------------------------------------------

type grammarParser struct {
	path string
	b    *ll.GrammarBuilder
	head string // head of the previous line
}

func (gp *grammarParser) errorf(lineNo int, format string, args ...interface{}) error {
	return &GrammarFileError{Path: gp.path, Line: lineNo, Reason: fmt.Sprintf(format, args...)}
}

// line handles the tokens of a single line, which is never empty.
func (gp *grammarParser) line(tokens []predict.Token) error {
	lineNo := tokens[0].Line()
	var body []predict.Token
	switch tokens[0].TokType() {
	case tokBar:
		if gp.head == "" {
			return gp.errorf(lineNo, "alternatives without a head")
		}
		body = tokens // leading bar opens an alternative
	case tokArrow:
		return gp.errorf(lineNo, "missing head before '->'")
	case tokName:
		head := tokens[0].Lexeme()
		if err := gp.checkName(lineNo, head); err != nil {
			return err
		}
		if !isNonTerminal(head) {
			return gp.errorf(lineNo, "head %q must start with an upper case letter", head)
		}
		if len(tokens) < 2 || tokens[1].TokType() != tokArrow {
			return gp.errorf(lineNo, "missing '->' after head %q", head)
		}
		gp.head = head
		body = append([]predict.Token{scanner.MakeToken(tokBar, "|", lineNo, 0)}, tokens[2:]...)
	}
	alts, err := gp.alternatives(lineNo, body)
	if err != nil {
		return err
	}
	for _, alt := range alts {
		gp.rule(alt)
	}
	return nil
}

// alternatives splits a sequence `| a b | c …` into its alternatives.
func (gp *grammarParser) alternatives(lineNo int, body []predict.Token) ([][]string, error) {
	var alts [][]string
	for _, token := range body {
		switch token.TokType() {
		case tokArrow:
			return nil, gp.errorf(lineNo, "unexpected '->' at column %d", token.Span().From())
		case tokBar:
			if len(alts) > 0 && len(alts[len(alts)-1]) == 0 {
				return nil, gp.errorf(lineNo, "empty alternative for %s", gp.head)
			}
			alts = append(alts, []string{})
		default:
			if err := gp.checkName(lineNo, token.Lexeme()); err != nil {
				return nil, err
			}
			alts[len(alts)-1] = append(alts[len(alts)-1], token.Lexeme())
		}
	}
	if len(alts[len(alts)-1]) == 0 {
		return nil, gp.errorf(lineNo, "empty alternative for %s", gp.head)
	}
	for _, alt := range alts {
		if len(alt) > 1 {
			for _, name := range alt {
				if name == ll.Epsilon.Name() {
					return nil, gp.errorf(lineNo, "%s must be the only symbol of an alternative", name)
				}
			}
		}
	}
	return alts, nil
}

func (gp *grammarParser) checkName(lineNo int, name string) error {
	if name == ll.EndOfProgram.Name() {
		return gp.errorf(lineNo, "%s is a reserved name", name)
	}
	return nil
}

func (gp *grammarParser) rule(alt []string) {
	rb := gp.b.LHS(gp.head)
	if len(alt) == 1 && alt[0] == ll.Epsilon.Name() {
		rb.Epsilon()
		return
	}
	for _, name := range alt {
		if isNonTerminal(name) {
			rb.N(name)
		} else {
			rb.T(name)
		}
	}
	rb.End()
}

// isNonTerminal checks the initial letter of a symbol name. EPSILON is a
// terminal.
func isNonTerminal(name string) bool {
	if name == ll.Epsilon.Name() {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
