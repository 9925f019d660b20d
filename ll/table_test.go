package ll

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func analyse(t *testing.T, b *GrammarBuilder) *LLAnalysis {
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	return ga
}

// E -> T X ; X -> + E | EPSILON ; T -> id
func makeExprGrammar() *GrammarBuilder {
	b := NewGrammarBuilder("Expr")
	b.LHS("E").N("T").N("X").End()
	b.LHS("X").T("+").N("E").End()
	b.LHS("X").Epsilon()
	b.LHS("T").T("id").End()
	return b
}

func TestTableLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ga := analyse(t, makeExprGrammar())
	table, err := BuildTable(ga, WithConflictPolicy(FailOnConflict))
	if !assert.NoError(t, err) {
		return
	}
	g := ga.Grammar()
	assert.False(t, table.HasConflicts())
	assert.Equal(t, 4, table.Size())
	assert.Equal(t, g.Fingerprint(), table.Fingerprint())
	expected := []struct {
		A, a string
		rule int
	}{
		{"E", "id", 0},
		{"X", "+", 1},
		{"T", "id", 3},
	}
	for _, x := range expected {
		r, ok := table.Lookup(sym(t, g, x.A), sym(t, g, x.a))
		if assert.True(t, ok, "M[%s,%s]", x.A, x.a) {
			assert.Equal(t, x.rule, r.Serial)
		}
	}
	r, ok := table.Lookup(sym(t, g, "X"), EndOfProgram)
	if assert.True(t, ok) {
		assert.True(t, r.IsEpsilon())
	}
	_, ok = table.Lookup(sym(t, g, "T"), sym(t, g, "+"))
	assert.False(t, ok)
	_, ok = table.Lookup(sym(t, g, "E"), Epsilon)
	assert.False(t, ok)
}

// E -> T | T + E is not LL(1), as both alternatives start with id.
func makeAmbiguousGrammar() *GrammarBuilder {
	b := NewGrammarBuilder("NotLL1")
	b.LHS("E").N("T").End()
	b.LHS("E").N("T").T("+").N("E").End()
	b.LHS("T").T("id").End()
	return b
}

func TestTableLastWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ga := analyse(t, makeAmbiguousGrammar())
	table, err := BuildTable(ga)
	if !assert.NoError(t, err) {
		return
	}
	g := ga.Grammar()
	assert.True(t, table.HasConflicts())
	conflicts := table.Conflicts()
	if assert.Len(t, conflicts, 1) {
		assert.Equal(t, "E", conflicts[0].NonTerminal.Name())
		assert.Equal(t, "id", conflicts[0].Lookahead.Name())
		assert.Equal(t, 0, conflicts[0].Shadowed.Serial)
		assert.Equal(t, 1, conflicts[0].Winner.Serial)
	}
	r, ok := table.Lookup(sym(t, g, "E"), sym(t, g, "id"))
	if assert.True(t, ok) {
		assert.Equal(t, "E -> T + E", r.String())
	}
}

func TestTableFailOnConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ga := analyse(t, makeAmbiguousGrammar())
	table, err := BuildTable(ga, WithConflictPolicy(FailOnConflict))
	assert.Nil(t, table)
	var cerr *ConflictError
	if assert.True(t, errors.As(err, &cerr)) {
		assert.Equal(t, "id", cerr.Conflict.Lookahead.Name())
		assert.Contains(t, cerr.Error(), "not LL(1)")
	}
}

// A -> a | a c : the first alternative is overwritten for every lookahead and
// must not be reachable from any table entry.
func TestTableShadowedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Shadow")
	b.LHS("S").N("A").T("b").End()
	shadowed := b.LHS("A").T("a").End()
	b.LHS("A").T("a").T("c").End()
	b.LHS("U").T("u").End() // unreachable from S
	ga := analyse(t, b)
	table, err := BuildTable(ga)
	if !assert.NoError(t, err) {
		return
	}
	table.Each(func(A, a Symbol, r *Rule) {
		assert.NotEqual(t, shadowed.Serial, r.Serial, "M[%s,%s]", A, a)
	})
	assert.Len(t, table.Conflicts(), 1)
}

func TestTableEachAndHTML(t *testing.T) {
	ga := analyse(t, makeExprGrammar())
	table, err := BuildTable(ga)
	if !assert.NoError(t, err) {
		return
	}
	var entries []string
	table.Each(func(A, a Symbol, r *Rule) {
		entries = append(entries, A.Name()+","+a.Name())
	})
	assert.Equal(t, []string{"E,id", "T,id", "X,END_OF_PROGRAM", "X,+"}, entries)
	var buf bytes.Buffer
	table.AsHTML(&buf)
	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<html>"))
	assert.Contains(t, html, "<td>END_OF_PROGRAM</td>")
}
