package predictive

import (
	"strings"

	"github.com/agrmv/predict/ll"
)

// step is a single step of a leftmost derivation: the rule applied and the
// depth of its left hand side within the parse tree.
type step struct {
	Rule  *ll.Rule
	Level int
}

// Derivation is the result of a successful parse: the rules applied, in the
// order of a leftmost derivation.
type Derivation struct {
	steps []step
}

// Record describes a derivation step by names.
type Record struct {
	Index int    // serial number of the rule
	LHS   string // name of the left hand side
	RHS   []string
}

// Len returns the number of derivation steps.
func (d *Derivation) Len() int {
	return len(d.steps)
}

// Rules returns the rules applied, in order.
func (d *Derivation) Rules() []*ll.Rule {
	rules := make([]*ll.Rule, len(d.steps))
	for i, s := range d.steps {
		rules[i] = s.Rule
	}
	return rules
}

// Records returns the derivation steps described by names.
func (d *Derivation) Records() []Record {
	records := make([]Record, len(d.steps))
	for i, s := range d.steps {
		rec := Record{Index: s.Rule.Serial, LHS: s.Rule.LHS.Name()}
		for _, A := range s.Rule.RHS() {
			rec.RHS = append(rec.RHS, A.Name())
		}
		records[i] = rec
	}
	return records
}

// Walk calls f for every step of the derivation, in order. level is the depth
// of the rule's left hand side within the parse tree, with the start symbol
// at level 0.
func (d *Derivation) Walk(f func(level int, r *ll.Rule)) {
	for _, s := range d.steps {
		f(s.Level, s.Rule)
	}
}

// String lists the rules applied, one per line.
func (d *Derivation) String() string {
	var b strings.Builder
	for _, s := range d.steps {
		b.WriteString(s.Rule.String())
		b.WriteByte('\n')
	}
	return b.String()
}
