package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agrmv/predict/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	conf, err := loadConfig("testdata/llparse.toml")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "testdata/decl.txt", conf.Grammar)
	assert.True(t, conf.Strict)
	assert.Equal(t, "Error", conf.Trace)
	assert.Equal(t, map[string]string{"Identifier": "id"}, conf.Categories)
	//
	_, err = loadConfig("testdata/bad.toml")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "colour")
	}
	_, err = loadConfig("testdata/none.toml")
	assert.Error(t, err)
}

func TestCategoryMap(t *testing.T) {
	conf := defaultConfig()
	conf.Categories = map[string]string{
		"IntConstant":    "num",
		"DoubleConstant": "",
	}
	categories, err := conf.categoryMap()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "num", categories[scanner.IntConstant])
	assert.Equal(t, "id", categories[scanner.Identifier])
	_, ok := categories[scanner.DoubleConstant]
	assert.False(t, ok)
	//
	conf.Categories = map[string]string{"Float": "f"}
	_, err = conf.categoryMap()
	assert.Error(t, err)
}

func TestRunExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	testCases := []struct {
		name string
		args []string
		code int
	}{
		{"no grammar", []string{}, ExitUsage},
		{"unknown flag", []string{"--colour"}, ExitUsage},
		{"stray argument", []string{"-g", "testdata/decl.txt", "extra"}, ExitUsage},
		{"missing grammar", []string{"-g", "testdata/none.txt"}, ExitGrammar},
		{"left recursion", []string{"-g", "testdata/leftrec.txt"}, ExitGrammar},
		{"conflict, last wins", []string{"-g", "testdata/notll1.txt"}, ExitSuccess},
		{"conflict, strict", []string{"-g", "testdata/notll1.txt", "--strict"}, ExitGrammar},
		{"grammar only", []string{"-g", "testdata/decl.txt", "--sets"}, ExitSuccess},
		{"source", []string{"-g", "testdata/decl.txt", "-s", "testdata/ok.src", "--tokens"}, ExitSuccess},
		{"missing source", []string{"-g", "testdata/decl.txt", "-s", "testdata/none.src"}, ExitUsage},
		{"lexical error", []string{"-g", "testdata/decl.txt", "-s", "testdata/lexerr.src"}, ExitInput},
		{"syntax error", []string{"-g", "testdata/decl.txt", "-s", "testdata/syntaxerr.src"}, ExitInput},
		{"config", []string{"-c", "testdata/llparse.toml", "-s", "testdata/ok.src"}, ExitSuccess},
		{"bad config", []string{"-c", "testdata/bad.toml"}, ExitUsage},
		{"flag overrides config", []string{"-c", "testdata/llparse.toml", "-g", "testdata/none.txt"}, ExitGrammar},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, run(tc.args))
		})
	}
}

func TestExportHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.html")
	code := run([]string{"-g", "testdata/decl.txt", "--html", out})
	assert.Equal(t, ExitSuccess, code)
	html, err := os.ReadFile(out)
	if assert.NoError(t, err) {
		assert.Contains(t, string(html), "LL(1) table for testdata/decl.txt")
	}
}

func TestParseLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	conf := defaultConfig()
	conf.Grammar = "testdata/decl.txt"
	categories, err := conf.categoryMap()
	if !assert.NoError(t, err) {
		return
	}
	p, code := prepareParser(conf, categories)
	if !assert.Equal(t, ExitSuccess, code) {
		return
	}
	sc := scanner.NewScanner()
	for i := 0; i < 2; i++ {
		assert.NoError(t, parseLine(p, sc, "int x = 5;"))
		assert.Equal(t, 1, sc.Line())
		assert.Len(t, sc.Tokens(), 8)
	}
	err = parseLine(p, sc, "  x = 5xyz;")
	var lexerr *scanner.LexicalError
	if assert.True(t, errors.As(err, &lexerr)) {
		assert.Equal(t, 1, lexerr.Line)
		assert.Equal(t, 6, lexerr.Column)
	}
}
