package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSymbolEquality(t *testing.T) {
	a := Terminal(3, "a")
	A := NonTerminal(3, "a")
	assert.False(t, a.Equals(A), "symbols of different variants must differ")
	assert.True(t, a.Equals(Terminal(3, "other-name")))
	assert.True(t, Epsilon.IsTerminal())
	assert.True(t, EndOfProgram.IsEndOfProgram())
	assert.Equal(t, -1, EndOfProgram.Code())
	assert.Equal(t, 0, Epsilon.Code())
}

func TestBuilderCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("E").N("T").T("+").N("E").End() // E -> T + E
	b.LHS("E").N("T").End()               // E -> T
	b.LHS("T").T("id").End()              // T -> id
	g, err := b.Grammar()
	if !assert.NoError(t, err) {
		return
	}
	g.Dump()
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, "E", g.StartSymbol().Name())
	expected := map[string]int{"E": 1, "T": 2, "+": 3, "id": 4}
	for name, code := range expected {
		A, ok := g.SymbolByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, code, A.Code(), name)
	}
	E, _ := g.SymbolByName("E")
	assert.Len(t, g.RulesFor(E), 2)
	assert.Equal(t, "E -> T + E", g.Rule(0).String())
	assert.Nil(t, g.Rule(3))
	var names []string
	g.EachNonTerminal(func(A Symbol) { names = append(names, A.Name()) })
	assert.Equal(t, []string{"E", "T"}, names)
}

func TestBuilderEpsilon(t *testing.T) {
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	r := b.LHS("A").Epsilon()
	g, err := b.Grammar()
	assert.NoError(t, err)
	assert.True(t, r.IsEpsilon())
	assert.Equal(t, 1, g.Rule(1).Len())
	EPS, ok := g.SymbolByName("EPSILON")
	assert.True(t, ok)
	assert.True(t, EPS.IsEpsilon())
}

func TestBuilderMisuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	testCases := []struct {
		name  string
		build func(b *GrammarBuilder)
	}{
		{"no rules", func(b *GrammarBuilder) {}},
		{"variant clash", func(b *GrammarBuilder) {
			b.LHS("S").T("S").End()
		}},
		{"empty right hand side", func(b *GrammarBuilder) {
			b.LHS("S").End()
		}},
		{"reserved epsilon", func(b *GrammarBuilder) {
			b.LHS("S").T("EPSILON").End()
		}},
		{"reserved end of program", func(b *GrammarBuilder) {
			b.LHS("S").T("END_OF_PROGRAM").End()
		}},
		{"epsilon after symbols", func(b *GrammarBuilder) {
			b.LHS("S").T("a").Epsilon()
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewGrammarBuilder("G")
			tc.build(b)
			g, err := b.Grammar()
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}
}

func TestFingerprint(t *testing.T) {
	build := func(term string) *Grammar {
		b := NewGrammarBuilder("G")
		b.LHS("S").T(term).End()
		g, err := b.Grammar()
		assert.NoError(t, err)
		return g
	}
	g1, g2, g3 := build("a"), build("a"), build("b")
	assert.NotEmpty(t, g1.Fingerprint())
	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint())
	assert.NotEqual(t, g1.Fingerprint(), g3.Fingerprint())
}

func TestZeroSymbol(t *testing.T) {
	var zero Symbol
	assert.False(t, zero.IsValid())
	assert.False(t, zero.IsTerminal())
	assert.False(t, zero.IsNonTerminal())
	assert.False(t, zero.IsEpsilon())
	assert.False(t, zero.Equals(Epsilon))
	assert.True(t, Epsilon.IsValid())
	assert.True(t, EndOfProgram.IsValid())
	assert.True(t, NonTerminal(1, "S").IsValid())
}
