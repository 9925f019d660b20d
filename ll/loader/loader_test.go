package loader

import (
	"errors"
	"os"
	"testing"

	"github.com/agrmv/predict/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := ParseString("G", "E -> T | T + E\nT -> id\n")
	if !assert.NoError(t, err) {
		return
	}
	g.Dump()
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, "E", g.StartSymbol().Name())
	assert.Equal(t, "E -> T", g.Rule(0).String())
	assert.Equal(t, "E -> T + E", g.Rule(1).String())
	assert.Equal(t, "T -> id", g.Rule(2).String())
	for name, code := range map[string]int{"E": 1, "T": 2, "+": 3, "id": 4} {
		A, ok := g.SymbolByName(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, code, A.Code(), name)
		}
	}
	T, _ := g.SymbolByName("T")
	assert.True(t, T.IsNonTerminal())
	plus, _ := g.SymbolByName("+")
	assert.True(t, plus.IsTerminal())
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := Load("testdata/expr.txt")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 5, g.Size())
	assert.True(t, g.Rule(2).IsEpsilon())
	assert.Equal(t, "X -> EPSILON", g.Rule(2).String())
	assert.Equal(t, "T -> ( E )", g.Rule(4).String())
	ga, err := ll.Analysis(g)
	if !assert.NoError(t, err) {
		return
	}
	_, err = ll.BuildTable(ga, ll.WithConflictPolicy(ll.FailOnConflict))
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.txt")
	var gerr *GrammarFileError
	if assert.True(t, errors.As(err, &gerr)) {
		assert.Equal(t, "testdata/does-not-exist.txt", gerr.Path)
	}
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCommentsAndBlankLines(t *testing.T) {
	text := `
# leading comment

S -> a B   # trailing comment
B -> b
  | EPSILON
`
	g, err := ParseString("C", text)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, "S", g.StartSymbol().Name())
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	testCases := []struct {
		name string
		text string
		line int
	}{
		{"missing arrow", "S -> a\nA b c", 2},
		{"missing head", "-> a b", 1},
		{"lower case head", "s -> a", 1},
		{"repeated arrow", "S -> a -> b", 1},
		{"empty alternative", "S -> a | | b", 1},
		{"trailing bar", "S -> a |", 1},
		{"empty right hand side", "S ->", 1},
		{"epsilon mixed", "S -> a EPSILON", 1},
		{"continuation without head", "| a\nS -> b", 1},
		{"reserved name", "S -> a\n\nA -> END_OF_PROGRAM", 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseString("bad", tc.text)
			assert.Nil(t, g)
			var gerr *GrammarFileError
			if assert.True(t, errors.As(err, &gerr), "expected GrammarFileError, got %v", err) {
				assert.Equal(t, tc.line, gerr.Line)
				assert.Equal(t, "bad", gerr.Path)
			}
		})
	}
}

func TestEmptyGrammar(t *testing.T) {
	_, err := ParseString("empty", "# nothing here\n")
	var gerr *GrammarFileError
	assert.True(t, errors.As(err, &gerr))
}
