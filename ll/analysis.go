package ll

import (
	"fmt"
	"strings"
)

// LLAnalysis is an object for grammar analysis (compute FIRST- and FOLLOW-sets).
// Create one with Analysis(g). An analysis is computed once and is read-only
// afterwards.
type LLAnalysis struct {
	g      *Grammar
	first  map[symkey]*SymbolSet
	follow map[symkey]*SymbolSet
}

// Analysis creates an analyser for a grammar. The analyser immediately computes
// the FIRST- and FOLLOW-sets for the grammar's symbols.
//
// Left-recursive grammars cannot be parsed predictively. Analysis will return
// a *LeftRecursionError for them.
func Analysis(g *Grammar) (*LLAnalysis, error) {
	if g == nil || len(g.rules) == 0 {
		return nil, fmt.Errorf("cannot analyse empty grammar")
	}
	ga := &LLAnalysis{
		g:      g,
		first:  make(map[symkey]*SymbolSet),
		follow: make(map[symkey]*SymbolSet),
	}
	ga.computeFirst()
	if cycle := ga.leftRecursion(); cycle != nil {
		err := &LeftRecursionError{Cycle: cycle}
		tracer().Errorf("%v", err)
		return nil, err
	}
	ga.computeFollow()
	return ga, nil
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns the FIRST-set of a symbol. It contains EPSILON if A may derive
// the empty string.
func (ga *LLAnalysis) First(A Symbol) *SymbolSet {
	if S, ok := ga.first[A.key()]; ok {
		return S.Copy()
	}
	if A.IsTerminal() {
		return newSymbolSet(A)
	}
	return newSymbolSet()
}

// Follow returns the FOLLOW-set of a non-terminal. The FOLLOW-set of the start
// symbol always contains END_OF_PROGRAM.
func (ga *LLAnalysis) Follow(A Symbol) *SymbolSet {
	if S, ok := ga.follow[A.key()]; ok {
		return S.Copy()
	}
	return newSymbolSet()
}

// DerivesEpsilon is true if A may derive the empty string.
func (ga *LLAnalysis) DerivesEpsilon(A Symbol) bool {
	return ga.first[A.key()].Contains(Epsilon)
}

// FirstOfChain returns the FIRST-set of a sequence of symbols.
// The FIRST-set of the empty sequence is {EPSILON}.
func (ga *LLAnalysis) FirstOfChain(chain []Symbol) *SymbolSet {
	return ga.firstOfChain(chain)
}

// Dump is a debugging helper, tracing FIRST- and FOLLOW-sets.
func (ga *LLAnalysis) Dump() {
	ga.g.EachNonTerminal(func(A Symbol) {
		tracer().Debugf("FIRST(%s)  = %v", A, ga.first[A.key()])
		tracer().Debugf("FOLLOW(%s) = %v", A, ga.follow[A.key()])
	})
}

// --- FIRST -----------------------------------------------------------------

// For every rule X -> Y1 … Yk, FIRST(X) receives FIRST(Y1) without EPSILON,
// then FIRST(Y2) without EPSILON if Y1 may derive the empty string, and so
// on. EPSILON itself is added only if every Yi may derive the empty string.
// We repeat until no set changes, which terminates for every grammar, as sets
// only grow and are bounded by the alphabet.
func (ga *LLAnalysis) computeFirst() {
	ga.g.EachSymbol(func(A Symbol) {
		if A.IsTerminal() {
			ga.first[A.key()] = newSymbolSet(A)
		} else {
			ga.first[A.key()] = newSymbolSet()
		}
	})
	ga.first[EndOfProgram.key()] = newSymbolSet(EndOfProgram)
	for iteration := 1; ; iteration++ {
		changed := false
		for _, r := range ga.g.rules {
			F := ga.firstOfChain(r.rhs)
			if ga.first[r.LHS.key()].Union(F) {
				tracer().Debugf("FIRST(%s) += %v  by rule %d", r.LHS, F, r.Serial)
				changed = true
			}
		}
		if !changed {
			tracer().Infof("FIRST-sets stable after %d iterations", iteration)
			return
		}
	}
}

func (ga *LLAnalysis) firstOfChain(chain []Symbol) *SymbolSet {
	F := newSymbolSet()
	for _, Y := range chain {
		FY := ga.first[Y.key()]
		F.UnionWithoutEpsilon(FY)
		if !FY.Contains(Epsilon) {
			return F
		}
	}
	F.Add(Epsilon) // every symbol of the chain may vanish
	return F
}

// --- Left recursion --------------------------------------------------------

// leftRecursion checks if a non-terminal A may derive a sentential form A β
// without consuming input. It returns such a cycle (starting and ending with A),
// or nil.
func (ga *LLAnalysis) leftRecursion() []Symbol {
	edges := make(map[symkey][]Symbol) // A -> leftmost non-terminals
	for _, r := range ga.g.rules {
		for _, Y := range r.rhs {
			if Y.IsNonTerminal() {
				edges[r.LHS.key()] = append(edges[r.LHS.key()], Y)
			}
			if !ga.first[Y.key()].Contains(Epsilon) {
				break
			}
		}
	}
	const (
		white = iota
		grey
		black
	)
	color := make(map[symkey]int)
	var path []Symbol
	var cycle []Symbol
	var visit func(A Symbol) bool
	visit = func(A Symbol) bool {
		color[A.key()] = grey
		path = append(path, A)
		for _, B := range edges[A.key()] {
			switch color[B.key()] {
			case grey:
				for i, C := range path {
					if C.Equals(B) {
						cycle = append(append([]Symbol(nil), path[i:]...), B)
						return true
					}
				}
			case white:
				if visit(B) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		color[A.key()] = black
		return false
	}
	for _, A := range ga.g.symbols {
		if A.IsNonTerminal() && color[A.key()] == white {
			if visit(A) {
				return cycle
			}
		}
	}
	return nil
}

// LeftRecursionError is returned for grammars where a non-terminal may derive
// itself as its leftmost symbol.
type LeftRecursionError struct {
	Cycle []Symbol // A … A
}

func (e *LeftRecursionError) Error() string {
	names := make([]string, len(e.Cycle))
	for i, A := range e.Cycle {
		names[i] = A.name
	}
	return fmt.Sprintf("grammar is left-recursive: %s", strings.Join(names, " => "))
}

// --- FOLLOW ----------------------------------------------------------------

// For every occurrence of a non-terminal B in a rule A -> α B β, FOLLOW(B)
// receives FIRST(β) without EPSILON. If β is empty or may derive the empty
// string, FOLLOW(B) receives FOLLOW(A) as well. Mutually dependent
// FOLLOW-sets are handled by iterating until no set changes.
func (ga *LLAnalysis) computeFollow() {
	ga.g.EachNonTerminal(func(A Symbol) {
		ga.follow[A.key()] = newSymbolSet()
	})
	ga.follow[ga.g.start.key()].Add(EndOfProgram)
	for iteration := 1; ; iteration++ {
		changed := false
		for _, r := range ga.g.rules {
			for i, B := range r.rhs {
				if !B.IsNonTerminal() {
					continue
				}
				FB := ga.follow[B.key()]
				rest := r.rhs[i+1:]
				F := ga.firstOfChain(rest)
				if FB.UnionWithoutEpsilon(F) {
					changed = true
				}
				if F.Contains(Epsilon) && FB.Union(ga.follow[r.LHS.key()]) {
					tracer().Debugf("FOLLOW(%s) += FOLLOW(%s)  by rule %d", B, r.LHS, r.Serial)
					changed = true
				}
			}
		}
		if !changed {
			tracer().Infof("FOLLOW-sets stable after %d iterations", iteration)
			return
		}
	}
}
