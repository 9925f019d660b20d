package ll

import (
	"fmt"
	"io"

	"github.com/agrmv/predict/ll/sparse"
)

// ConflictPolicy selects what happens if two productions compete for the same
// entry of a parsing table, i.e., if the grammar is not LL(1).
type ConflictPolicy int

const (
	// LastWins keeps the production registered last. Conflicts are recorded
	// and may be inspected with ParsingTable.Conflicts().
	LastWins ConflictPolicy = iota
	// FailOnConflict aborts table construction with a *ConflictError.
	FailOnConflict
)

func (p ConflictPolicy) String() string {
	if p == FailOnConflict {
		return "fail-on-conflict"
	}
	return "last-wins"
}

// Conflict documents a table entry which has been assigned two different rules.
type Conflict struct {
	NonTerminal Symbol
	Lookahead   Symbol
	Shadowed    *Rule // rule registered first, no longer reachable for this key
	Winner      *Rule // rule now stored in the table
}

func (c Conflict) String() string {
	return fmt.Sprintf("M[%s,%s]: %q overwrites %q", c.NonTerminal, c.Lookahead, c.Winner, c.Shadowed)
}

// ConflictError is returned by table construction with policy FailOnConflict.
type ConflictError struct {
	Conflict Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar is not LL(1): %s", e.Conflict)
}

// TableOption configures a table generator.
type TableOption func(gen *TableGenerator)

// WithConflictPolicy selects the strategy for conflicting table entries.
func WithConflictPolicy(p ConflictPolicy) TableOption {
	return func(gen *TableGenerator) {
		gen.policy = p
	}
}

// TableGenerator is a generator object to construct LL(1) parsing tables.
// Clients usually create a Grammar G, then an LLAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTable() constructs
// the parsing table for a predictive parser recognizing grammar G.
type TableGenerator struct {
	g      *Grammar
	ga     *LLAnalysis
	policy ConflictPolicy
	table  *ParsingTable
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis, opts ...TableOption) *TableGenerator {
	gen := &TableGenerator{
		g:  ga.Grammar(),
		ga: ga,
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// BuildTable is a shortcut for NewTableGenerator(ga, opts...).CreateTable().
func BuildTable(ga *LLAnalysis, opts ...TableOption) (*ParsingTable, error) {
	return NewTableGenerator(ga, opts...).CreateTable()
}

// CreateTable builds the LL(1) parsing table:
//
//   for every rule A -> α
//      for every terminal a in FIRST(α):            M[A,a] = α
//      if EPSILON in FIRST(α), for every b in FOLLOW(A):  M[A,b] = α
//
// Rules are processed in order of their serial numbers. Depending on the
// conflict policy, a later rule either overwrites an earlier entry for the
// same key or table construction fails.
func (gen *TableGenerator) CreateTable() (*ParsingTable, error) {
	tracer().Debugf("=== build LL(1) table ===========================================")
	rows := gen.g.maxCode() + 1
	cols := rows + 1 // column 0 is END_OF_PROGRAM
	tracer().Infof("LL(1) table of size %d x %d, policy %s", rows, cols, gen.policy)
	table := &ParsingTable{
		g:           gen.g,
		matrix:      sparse.NewIntMatrix(rows, cols, sparse.DefaultNullValue),
		mincol:      EndOfProgram.code,
		fingerprint: gen.g.Fingerprint(),
	}
	for _, r := range gen.g.rules {
		F := gen.ga.FirstOfChain(r.rhs)
		for _, a := range F.Values() {
			if a.IsEpsilon() {
				continue
			}
			if err := gen.enter(table, r.LHS, a, r); err != nil {
				return nil, err
			}
		}
		if F.Contains(Epsilon) {
			for _, b := range gen.ga.Follow(r.LHS).Values() {
				if err := gen.enter(table, r.LHS, b, r); err != nil {
					return nil, err
				}
			}
		}
	}
	gen.table = table
	tracer().Infof("LL(1) table has %d entries and %d conflicts", table.Size(), len(table.conflicts))
	return table, nil
}

func (gen *TableGenerator) enter(table *ParsingTable, A, a Symbol, r *Rule) error {
	tracer().Debugf("M[%s,%s] = %s", A, a, r)
	prev := table.matrix.Value(A.code, table.column(a))
	if prev != table.matrix.NullValue() && int(prev) != r.Serial {
		c := Conflict{
			NonTerminal: A,
			Lookahead:   a,
			Shadowed:    gen.g.Rule(int(prev)),
			Winner:      r,
		}
		if gen.policy == FailOnConflict {
			return &ConflictError{Conflict: c}
		}
		tracer().Infof("conflict %s", c)
		table.conflicts = append(table.conflicts, c)
	}
	table.matrix.Set(A.code, table.column(a), int32(r.Serial))
	return nil
}

// --- Parsing Table ---------------------------------------------------------

// ParsingTable maps pairs (non-terminal, terminal) to grammar rules.
// Tables are created by a TableGenerator and are read-only.
type ParsingTable struct {
	g           *Grammar
	matrix      *sparse.IntMatrix
	mincol      int // lowest terminal code => offset for column access
	conflicts   []Conflict
	fingerprint string
}

func (t *ParsingTable) column(a Symbol) int {
	return a.code - t.mincol
}

// Grammar returns the grammar the table has been built for.
func (t *ParsingTable) Grammar() *Grammar {
	return t.g
}

// Fingerprint returns the fingerprint of the grammar at the time the table has
// been built.
func (t *ParsingTable) Fingerprint() string {
	return t.fingerprint
}

// Lookup returns the rule to expand non-terminal A with, given lookahead a.
func (t *ParsingTable) Lookup(A, a Symbol) (*Rule, bool) {
	if !A.IsNonTerminal() || !a.IsTerminal() || a.IsEpsilon() {
		return nil, false
	}
	if A.code < 0 || A.code >= t.matrix.M() || t.column(a) < 0 || t.column(a) >= t.matrix.N() {
		return nil, false
	}
	v := t.matrix.Value(A.code, t.column(a))
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(v)), true
}

// Size returns the number of table entries.
func (t *ParsingTable) Size() int {
	return t.matrix.ValueCount()
}

// Conflicts returns all the conflicts resolved during table construction.
func (t *ParsingTable) Conflicts() []Conflict {
	return append([]Conflict(nil), t.conflicts...)
}

// HasConflicts is true if the grammar is not LL(1).
func (t *ParsingTable) HasConflicts() bool {
	return len(t.conflicts) > 0
}

// Each iterates over all table entries, ordered by non-terminal code and then
// by terminal code.
func (t *ParsingTable) Each(f func(A, a Symbol, r *Rule)) {
	terminals := make(map[int]Symbol)
	terminals[EndOfProgram.code] = EndOfProgram
	t.g.EachTerminal(func(a Symbol) {
		terminals[a.code] = a
	})
	nonterminals := make(map[int]Symbol)
	t.g.EachNonTerminal(func(A Symbol) {
		nonterminals[A.code] = A
	})
	t.matrix.Each(func(i, j int, v int32) {
		f(nonterminals[i], terminals[j+t.mincol], t.g.Rule(int(v)))
	})
}

// AsHTML exports a parsing table in HTML-format.
func (t *ParsingTable) AsHTML(w io.Writer) {
	var terminals []Symbol
	t.g.EachTerminal(func(a Symbol) {
		if !a.IsEpsilon() {
			terminals = append(terminals, a)
		}
	})
	terminals = append(terminals, EndOfProgram)
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table for %s, size = %d<p>", t.g.Name, t.Size()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range terminals {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", a))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	t.g.EachNonTerminal(func(A Symbol) {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", A))
		for _, a := range terminals {
			if r, ok := t.Lookup(A, a); ok {
				td = fmt.Sprintf("%d", r.Serial)
			} else {
				td = "&nbsp;"
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	})
	io.WriteString(w, "</table></body></html>\n")
}
