/*
Package ll implements prerequisites for LL(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Every symbol
receives a numeric code in order of its first appearance; codes of terminals
and non-terminals are drawn from a shared counter. Grammars may contain
epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->  EPSILON
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->  EPSILON
    g, err := b.Grammar()

The first rule's left hand side is the start symbol. Once Grammar() has been
called, the grammar is frozen and may be shared by all subsequent phases.
Most clients will not use the builder directly, but rather load a grammar
from its textual form with package loader.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to Analysis(), which computes FIRST and FOLLOW sets
by fixpoint iteration. Analysis rejects left-recursive grammars, which
cannot be parsed predictively.

    ga, err := ll.Analysis(g)
    g.EachNonTerminal(func(N ll.Symbol) {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
    })

    // Output:
    FIRST(S) = {a, b, d}
    FIRST(A) = {EPSILON, b, d}
    FIRST(B) = {EPSILON, b}
    FIRST(D) = {EPSILON, d}

Parser Construction

Using grammar analysis as input, an LL(1) parsing table is constructed.
For every rule A -> α and every terminal a in FIRST(α), the table maps (A,a)
to the rule; if α may derive the empty string, the same holds for every b in
FOLLOW(A). Grammars which are not LL(1) produce conflicting entries. By default
the later rule wins silently (but observably, see Conflicts()); clients may
opt in to failing instead.

    gen := ll.NewTableGenerator(ga, ll.WithConflictPolicy(ll.FailOnConflict))
    table, err := gen.CreateTable()
*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
