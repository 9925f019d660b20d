package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolSet is a set of grammar symbols, ordered by variant and code.
// FIRST- and FOLLOW-sets are SymbolSets.
type SymbolSet struct {
	set *treeset.Set
}

func newSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts a symbol. Returns true if the set did not yet contain it.
func (S *SymbolSet) Add(A Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// Union adds all symbols of other to S. Returns true if S has grown.
func (S *SymbolSet) Union(other *SymbolSet) bool {
	return S.union(other, true)
}

// UnionWithoutEpsilon adds all symbols of other, except EPSILON, to S.
// Returns true if S has grown.
func (S *SymbolSet) UnionWithoutEpsilon(other *SymbolSet) bool {
	return S.union(other, false)
}

func (S *SymbolSet) union(other *SymbolSet, withEpsilon bool) bool {
	if other == nil {
		return false
	}
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		A := it.Value().(Symbol)
		if !withEpsilon && A.IsEpsilon() {
			continue
		}
		if S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Contains checks if A is a member of S.
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(A)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for sets without members.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Copy returns a shallow copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	C := newSymbolSet()
	C.Union(S)
	return C
}

// Values returns the members of S in order.
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	for _, x := range S.set.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Names returns the names of the members of S in order.
func (S *SymbolSet) Names() []string {
	var names []string
	for _, A := range S.Values() {
		names = append(names, A.name)
	}
	return names
}

func (S *SymbolSet) String() string {
	return "{" + strings.Join(S.Names(), ", ") + "}"
}
