package fol

import (
	"fmt"
	"strings"
)

// A Formula is a first-order formula. The node kinds form a closed set:
// Pred, Not, And, Or, Implies, Iff, Forall and Exists.
//
// Formula values are immutable by convention. Every rewrite in this package
// returns a newly built tree and never modifies its argument.
type Formula interface {
	fmt.Stringer
	// Equal reports whether both formulas have the same structure.
	Equal(other Formula) bool
	formula()
}

// A Pred is an atomic predicate applied to zero or more terms, e.g. P(x,y).
type Pred struct {
	Name string
	Args []Term
}

func (p Pred) formula() {}

func (p Pred) String() string {
	strs := make([]string, len(p.Args))
	for i, a := range p.Args {
		strs[i] = a.String()
	}
	return p.Name + "(" + strings.Join(strs, ",") + ")"
}

func (p Pred) Equal(other Formula) bool {
	o, ok := other.(Pred)
	if !ok || p.Name != o.Name || len(p.Args) != len(o.Args) {
		return false
	}
	for i, a := range p.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// A Not negates its subformula.
type Not struct {
	X Formula
}

func (n Not) formula()       {}
func (n Not) String() string { return "¬" + n.X.String() }

func (n Not) Equal(other Formula) bool {
	o, ok := other.(Not)
	return ok && n.X.Equal(o.X)
}

// An And is the conjunction of two subformulas.
type And struct {
	L, R Formula
}

func (a And) formula()       {}
func (a And) String() string { return "(" + a.L.String() + " ∧ " + a.R.String() + ")" }

func (a And) Equal(other Formula) bool {
	o, ok := other.(And)
	return ok && a.L.Equal(o.L) && a.R.Equal(o.R)
}

// An Or is the disjunction of two subformulas.
type Or struct {
	L, R Formula
}

func (o Or) formula()       {}
func (o Or) String() string { return "(" + o.L.String() + " ∨ " + o.R.String() + ")" }

func (o Or) Equal(other Formula) bool {
	o2, ok := other.(Or)
	return ok && o.L.Equal(o2.L) && o.R.Equal(o2.R)
}

// An Implies states that L implies R. It only appears in input formulas:
// EliminateImplications rewrites it away before the later stages run.
type Implies struct {
	L, R Formula
}

func (i Implies) formula()       {}
func (i Implies) String() string { return "(" + i.L.String() + " → " + i.R.String() + ")" }

func (i Implies) Equal(other Formula) bool {
	o, ok := other.(Implies)
	return ok && i.L.Equal(o.L) && i.R.Equal(o.R)
}

// An Iff states that L and R are equivalent. Like Implies, it is rewritten
// away by EliminateImplications.
type Iff struct {
	L, R Formula
}

func (i Iff) formula()       {}
func (i Iff) String() string { return "(" + i.L.String() + " ↔ " + i.R.String() + ")" }

func (i Iff) Equal(other Formula) bool {
	o, ok := other.(Iff)
	return ok && i.L.Equal(o.L) && i.R.Equal(o.R)
}

// A Forall universally quantifies V over Body.
type Forall struct {
	V    Var
	Body Formula
}

func (f Forall) formula()       {}
func (f Forall) String() string { return "∀" + f.V.Name + " " + f.Body.String() }

func (f Forall) Equal(other Formula) bool {
	o, ok := other.(Forall)
	return ok && f.V == o.V && f.Body.Equal(o.Body)
}

// An Exists existentially quantifies V over Body.
type Exists struct {
	V    Var
	Body Formula
}

func (e Exists) formula()       {}
func (e Exists) String() string { return "∃" + e.V.Name + " " + e.Body.String() }

func (e Exists) Equal(other Formula) bool {
	o, ok := other.(Exists)
	return ok && e.V == o.V && e.Body.Equal(o.Body)
}
