package ll

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// --- Symbols ---------------------------------------------------------------

// SymbolKind discriminates the two variants of grammar symbols.
type SymbolKind int8

// The variants of grammar symbols. The zero SymbolKind is reserved for the
// zero Symbol, which is neither a terminal nor a non-terminal.
const (
	TerminalKind SymbolKind = iota + 1
	NonTerminalKind
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	}
	return fmt.Sprintf("SymbolKind(%d)", int8(k))
}

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are small immutable values. Two symbols are equal if they are of the
// same variant and carry the same code; use Equals for comparison.
type Symbol struct {
	kind SymbolKind
	code int
	name string
}

// Pre-registered terminal symbols.
var (
	// Epsilon marks an empty production.
	Epsilon = Symbol{kind: TerminalKind, code: 0, name: "EPSILON"}
	// EndOfProgram marks the end of input.
	EndOfProgram = Symbol{kind: TerminalKind, code: -1, name: "END_OF_PROGRAM"}
)

// Terminal creates a terminal symbol. Clients usually do not create symbols
// directly, but let a GrammarBuilder do it.
func Terminal(code int, name string) Symbol {
	return Symbol{kind: TerminalKind, code: code, name: name}
}

// NonTerminal creates a non-terminal symbol.
func NonTerminal(code int, name string) Symbol {
	return Symbol{kind: NonTerminalKind, code: code, name: name}
}

// Kind returns the variant of a symbol.
func (A Symbol) Kind() SymbolKind { return A.kind }

// Code returns the numeric code of a symbol.
func (A Symbol) Code() int { return A.code }

// Name returns the display name of a symbol.
func (A Symbol) Name() string { return A.name }

// IsValid is false for the zero Symbol. All symbols created by a grammar
// builder, EPSILON and END_OF_PROGRAM are valid.
func (A Symbol) IsValid() bool { return A.kind != 0 }

// IsTerminal is true for terminals, including EPSILON and END_OF_PROGRAM.
func (A Symbol) IsTerminal() bool { return A.kind == TerminalKind }

// IsNonTerminal is true for non-terminals.
func (A Symbol) IsNonTerminal() bool { return A.kind == NonTerminalKind }

// IsEpsilon is true for the pre-registered EPSILON terminal.
func (A Symbol) IsEpsilon() bool { return A.Equals(Epsilon) }

// IsEndOfProgram is true for the pre-registered END_OF_PROGRAM terminal.
func (A Symbol) IsEndOfProgram() bool { return A.Equals(EndOfProgram) }

// Equals compares symbols by variant and code.
func (A Symbol) Equals(B Symbol) bool {
	return A.kind == B.kind && A.code == B.code
}

func (A Symbol) String() string {
	return A.name
}

// symkey is used for maps keyed by symbols.
type symkey struct {
	kind SymbolKind
	code int
}

func (A Symbol) key() symkey {
	return symkey{kind: A.kind, code: A.code}
}

// symbolComparator orders symbols by variant, then by code.
// We need this for sets of symbols.
func symbolComparator(s1, s2 interface{}) int {
	A, B := s1.(Symbol), s2.(Symbol)
	if A.kind != B.kind {
		return int(A.kind) - int(B.kind)
	}
	switch {
	case A.code < B.code:
		return -1
	case A.code > B.code:
		return 1
	}
	return 0
}

// --- Rules -----------------------------------------------------------------

// Rule is a grammar production. Rules are numbered in order of creation,
// starting at 0. The right hand side is never empty: an empty production has
// the single symbol EPSILON as its right hand side.
type Rule struct {
	Serial int    // ordinal number of this rule within its grammar
	LHS    Symbol // always a non-terminal
	rhs    []Symbol
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// Symbol returns the i-th symbol of the right hand side.
func (r *Rule) Symbol(i int) Symbol {
	return r.rhs[i]
}

// IsEpsilon is true for a rule A -> EPSILON.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.name)
	b.WriteString(" ->")
	for _, A := range r.rhs {
		b.WriteByte(' ')
		b.WriteString(A.name)
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context free grammar. A grammar is created with a
// GrammarBuilder and is immutable afterwards.
type Grammar struct {
	Name    string
	rules   []*Rule
	symbols []Symbol          // alphabet in order of first appearance
	byName  map[string]Symbol // alphabet keyed by name
	start   Symbol
}

func newGrammar(name string) *Grammar {
	g := &Grammar{
		Name:   name,
		rules:  make([]*Rule, 0, 16),
		byName: make(map[string]Symbol),
	}
	g.symbols = append(g.symbols, Epsilon)
	g.byName[Epsilon.name] = Epsilon
	return g
}

// StartSymbol returns the left hand side of the first rule.
func (g *Grammar) StartSymbol() Symbol {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules in order of creation.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RulesFor returns all rules with left hand side A.
func (g *Grammar) RulesFor(A Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS.Equals(A) {
			rules = append(rules, r)
		}
	}
	return rules
}

// SymbolByName looks up a symbol of the alphabet. EPSILON is part of the
// alphabet, END_OF_PROGRAM is not.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	A, ok := g.byName[name]
	return A, ok
}

// EachSymbol iterates over all symbols of the alphabet in order of their codes.
func (g *Grammar) EachSymbol(mapper func(A Symbol)) {
	for _, A := range g.symbols {
		mapper(A)
	}
}

// EachTerminal iterates over all terminals of the alphabet in order of their codes.
func (g *Grammar) EachTerminal(mapper func(A Symbol)) {
	for _, A := range g.symbols {
		if A.IsTerminal() {
			mapper(A)
		}
	}
}

// EachNonTerminal iterates over all non-terminals in order of their codes.
func (g *Grammar) EachNonTerminal(mapper func(A Symbol)) {
	for _, A := range g.symbols {
		if A.IsNonTerminal() {
			mapper(A)
		}
	}
}

// maxCode returns the highest symbol code in use.
func (g *Grammar) maxCode() int {
	max := 0
	for _, A := range g.symbols {
		if A.code > max {
			max = A.code
		}
	}
	return max
}

// Dump is a debugging helper, tracing all the rules of a grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%3d: %s\n", r.Serial, r))
	}
	return b.String()
}

// grammarDigest is hashed to fingerprint a grammar.
type grammarDigest struct {
	Name    string
	Symbols []string
	Rules   []string
}

// Fingerprint returns a hash over the alphabet and the rules of a grammar.
// Parsing tables remember the fingerprint of the grammar they have been built
// for.
func (g *Grammar) Fingerprint() string {
	d := grammarDigest{Name: g.Name}
	for _, A := range g.symbols {
		d.Symbols = append(d.Symbols, fmt.Sprintf("%s/%d/%s", A.kind, A.code, A.name))
	}
	for _, r := range g.rules {
		d.Rules = append(d.Rules, r.String())
	}
	hash, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint grammar %s: %v", g.Name, err)
		return ""
	}
	return hash
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is used to construct a Grammar.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("E").End()    // S ->  E
//    b.LHS("E").T("x").End()    // E ->  x
//    b.LHS("E").Epsilon()       // E ->  EPSILON
//    g, err := b.Grammar()
//
// Symbol codes are assigned in order of first appearance, starting with 1.
type GrammarBuilder struct {
	g      *Grammar
	code   int     // next symbol code
	errs   []error // collected misuse
	frozen bool
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		g:    newGrammar(gname),
		code: 1,
	}
}

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	b   *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	rb := &RuleBuilder{b: b}
	rb.lhs = b.symbol(name, NonTerminalKind)
	return rb
}

// symbol resolves a symbol by name, creating it if it is not yet part of the
// alphabet.
func (b *GrammarBuilder) symbol(name string, kind SymbolKind) Symbol {
	if b.frozen {
		b.errorf("grammar %s already built, cannot add symbol %q", b.g.Name, name)
	}
	switch {
	case name == "":
		b.errorf("empty symbol name")
	case name == Epsilon.name:
		b.errorf("%s is reserved, use Epsilon()", name)
		return Epsilon
	case name == EndOfProgram.name:
		b.errorf("%s is reserved", name)
		return EndOfProgram
	}
	if A, ok := b.g.byName[name]; ok {
		if A.kind != kind {
			b.errorf("symbol %q used as %s, but already defined as %s", name, kind, A.kind)
		}
		return A
	}
	A := Symbol{kind: kind, code: b.code, name: name}
	b.code++
	b.g.byName[name] = A
	b.g.symbols = append(b.g.symbols, A)
	tracer().Debugf("new %s %q with code %d", kind, name, A.code)
	return A
}

func (b *GrammarBuilder) errorf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	tracer().Errorf("grammar builder: %v", err)
	b.errs = append(b.errs, err)
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.b.symbol(name, NonTerminalKind))
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.b.symbol(name, TerminalKind))
	return rb
}

// Epsilon sets EPSILON as the right hand side of a rule and ends it.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.b.errorf("EPSILON must be the only symbol of a production for %s", rb.lhs)
	}
	rb.rhs = []Symbol{Epsilon}
	return rb.End()
}

// End ends a rule.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rhs) == 0 {
		rb.b.errorf("empty right hand side for %s; use Epsilon() for empty productions", rb.lhs)
		rb.rhs = []Symbol{Epsilon}
	}
	r := &Rule{
		Serial: len(rb.b.g.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	rb.b.g.rules = append(rb.b.g.rules, r)
	return r
}

// Grammar returns the (completed) grammar, or an error if the builder has
// been misused. The grammar must not be extended afterwards.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(b.g.rules) == 0 {
		b.errorf("grammar %s has no rules", b.g.Name)
	}
	b.frozen = true
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	b.g.start = b.g.rules[0].LHS
	b.g.EachNonTerminal(func(A Symbol) {
		if len(b.g.RulesFor(A)) == 0 {
			tracer().Infof("non-terminal %s has no productions", A)
		}
	})
	return b.g, nil
}
