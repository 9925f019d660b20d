package scanner

import (
	"fmt"
	"regexp"

	"github.com/agrmv/predict"
)

// EOF marks the end of input for tokenizers. It is identical to
// text/scanner.EOF and never produced by a Scanner.
const EOF predict.TokType = -1

// Token kinds, in order of matching priority.
const (
	BlockComment predict.TokType = iota
	LineComment
	WhiteSpace
	Tab
	NewLine
	RightParen
	LeftParen
	LeftBrace
	RightBrace
	DoubleConstant
	IntConstant
	Plus
	Minus
	Multiply
	Divide
	Point
	EqualEqual
	Equal
	ExclameEqual
	Greater
	Less
	Int
	Double
	Void
	False
	True
	Null
	Return
	Function
	Class
	If
	While
	Else
	Semicolon
	Comma
	Identifier
	kindCount // not a token kind
)

type kindDef struct {
	name    string
	pattern string
}

var kindDefs = [kindCount]kindDef{
	BlockComment:   {"BlockComment", `/\*.*?\*/`},
	LineComment:    {"LineComment", `//.*`},
	WhiteSpace:     {"WhiteSpace", ` `},
	Tab:            {"Tab", `\t`},
	NewLine:        {"NewLine", `\n`},
	RightParen:     {"RightParen", `\)`},
	LeftParen:      {"LeftParen", `\(`},
	LeftBrace:      {"LeftBrace", `\{`},
	RightBrace:     {"RightBrace", `\}`},
	DoubleConstant: {"DoubleConstant", `\b\d{1,9}\.\d{1,32}\b`},
	IntConstant:    {"IntConstant", `\b\d{1,9}\b`},
	Plus:           {"Plus", `\+`},
	Minus:          {"Minus", `-`},
	Multiply:       {"Multiply", `\*`},
	Divide:         {"Divide", `/`},
	Point:          {"Point", `\.`},
	EqualEqual:     {"EqualEqual", `==`},
	Equal:          {"Equal", `=`},
	ExclameEqual:   {"ExclameEqual", `!=`},
	Greater:        {"Greater", `>`},
	Less:           {"Less", `<`},
	Int:            {"Int", `\bint\b`},
	Double:         {"Double", `\bdouble\b`},
	Void:           {"Void", `\bvoid\b`},
	False:          {"False", `\bfalse\b`},
	True:           {"True", `\btrue\b`},
	Null:           {"Null", `\bnull\b`},
	Return:         {"Return", `\breturn\b`},
	Function:       {"Function", `\bfun\b`},
	Class:          {"Class", `\bclass\b`},
	If:             {"If", `\bif\b`},
	While:          {"While", `\bwhile\b`},
	Else:           {"Else", `\belse\b`},
	Semicolon:      {"Semicolon", `;`},
	Comma:          {"Comma", `,`},
	Identifier:     {"Identifier", `\b[a-zA-Z][0-9a-zA-Z_]{0,31}\b`},
}

// patterns holds the compiled expressions, anchored at the start of the input.
var patterns [kindCount]*regexp.Regexp

func init() {
	for k, def := range kindDefs {
		patterns[k] = regexp.MustCompile(`^(?:` + def.pattern + `)`)
	}
}

// KindName returns the name of a token kind. It is a predict.TokTypeStringer.
func KindName(k predict.TokType) string {
	if k == EOF {
		return "EOF"
	}
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("TokType(%d)", int(k))
	}
	return kindDefs[k].name
}

var _ predict.TokTypeStringer = KindName

// KindByName finds a token kind given its name, e.g. "Identifier".
func KindByName(name string) (predict.TokType, bool) {
	for k, def := range kindDefs {
		if def.name == name {
			return predict.TokType(k), true
		}
	}
	return EOF, false
}

// IsAuxiliary is true for token kinds without grammatical meaning: comments,
// white space, tabs and newlines.
func IsAuxiliary(k predict.TokType) bool {
	switch k {
	case BlockComment, LineComment, WhiteSpace, Tab, NewLine:
		return true
	}
	return false
}

// Categories returns the default mapping from token kinds to category
// terminals. Tokens of any other kind are mapped to a terminal by their
// lexeme.
func Categories() map[predict.TokType]string {
	return map[predict.TokType]string{
		Identifier:     "id",
		IntConstant:    "intConst",
		DoubleConstant: "doubleConst",
	}
}
