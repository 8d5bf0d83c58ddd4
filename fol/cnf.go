package fol

import (
	"fmt"
	"io"
)

// defaultGen backs the package-level CNF function. One process-wide counter
// keeps Skolem names unique across independent calls.
var defaultGen = NewGen()

// CNF converts f to conjunctive normal form using the shared symbol generator.
// It is equivalent to running a Transformer without a trace; see
// Transformer.CNF for the stage sequence and the preconditions on f.
func CNF(f Formula) Formula {
	return (&Transformer{Gen: defaultGen}).CNF(f)
}

// A Transformer runs the CNF pipeline with an explicit symbol generator and,
// optionally, a stage-by-stage diagnostic trace.
type Transformer struct {
	// Gen supplies the Skolem symbols introduced during Skolemization.
	// Distinct generators isolate runs from one another; when nil, the
	// shared package generator is used.
	Gen *Gen

	// Trace, when non-nil, receives one stage-labeled line per pipeline
	// stage: the input formula followed by the result of each rewrite.
	Trace io.Writer
}

// NewTransformer returns a Transformer with its own symbol generator and no
// trace.
func NewTransformer() *Transformer {
	return &Transformer{Gen: NewGen()}
}

// Stage labels, in pipeline order.
var stageNames = [...]string{"original", "implications", "nnf", "skolemized", "matrix", "cnf"}

// CNF runs the five rewrite stages in their fixed order: implication
// elimination, negation normal form, Skolemization, universal-quantifier drop
// and distribution of ∨ over ∧. The result is a conjunction of disjunctions
// of possibly negated predicates, still represented as a nested And/Or tree.
//
// f must be closed, must not reuse a variable name in nested quantifiers, and
// must keep its quantifiers in prenex position. None of this is checked.
func (t *Transformer) CNF(f Formula) Formula {
	gen := t.Gen
	if gen == nil {
		gen = defaultGen
	}
	t.trace(0, f)
	f = EliminateImplications(f)
	t.trace(1, f)
	f = NNF(f)
	t.trace(2, f)
	f = Skolemize(f, gen)
	t.trace(3, f)
	f = DropForall(f)
	t.trace(4, f)
	f = Distribute(f)
	t.trace(5, f)
	return f
}

func (t *Transformer) trace(stage int, f Formula) {
	if t.Trace == nil {
		return
	}
	fmt.Fprintf(t.Trace, "%s: %s\n", stageNames[stage], f)
}

// EliminateImplications rewrites every Implies(P,Q) to (¬P ∨ Q) and every
// Iff(P,Q) to ((¬P ∨ Q) ∧ (¬Q ∨ P)). All other nodes are rebuilt unchanged in
// shape. The result contains no Implies or Iff node.
func EliminateImplications(f Formula) Formula {
	switch f := f.(type) {
	case Pred:
		return f
	case Not:
		return Not{X: EliminateImplications(f.X)}
	case And:
		return And{L: EliminateImplications(f.L), R: EliminateImplications(f.R)}
	case Or:
		return Or{L: EliminateImplications(f.L), R: EliminateImplications(f.R)}
	case Implies:
		l := EliminateImplications(f.L)
		r := EliminateImplications(f.R)
		return Or{L: Not{X: l}, R: r}
	case Iff:
		l := EliminateImplications(f.L)
		r := EliminateImplications(f.R)
		return And{
			L: Or{L: Not{X: l}, R: r},
			R: Or{L: Not{X: r}, R: l},
		}
	case Forall:
		return Forall{V: f.V, Body: EliminateImplications(f.Body)}
	case Exists:
		return Exists{V: f.V, Body: EliminateImplications(f.Body)}
	default:
		panic("unknown formula node")
	}
}

// NNF pushes negation down to atoms using the De Morgan and quantifier
// duality laws, collapsing double negations along the way. In the result, Not
// only ever wraps a Pred.
//
// The input must already be implication free (run EliminateImplications
// first).
func NNF(f Formula) Formula {
	switch f := f.(type) {
	case Pred:
		return f
	case Not:
		switch x := f.X.(type) {
		case Not:
			return NNF(x.X)
		case And:
			return Or{L: NNF(Not{X: x.L}), R: NNF(Not{X: x.R})}
		case Or:
			return And{L: NNF(Not{X: x.L}), R: NNF(Not{X: x.R})}
		case Forall:
			return Exists{V: x.V, Body: NNF(Not{X: x.Body})}
		case Exists:
			return Forall{V: x.V, Body: NNF(Not{X: x.Body})}
		default:
			// Negated atom: the NNF base case.
			return Not{X: NNF(f.X)}
		}
	case And:
		return And{L: NNF(f.L), R: NNF(f.R)}
	case Or:
		return Or{L: NNF(f.L), R: NNF(f.R)}
	case Forall:
		return Forall{V: f.V, Body: NNF(f.Body)}
	case Exists:
		return Exists{V: f.V, Body: NNF(f.Body)}
	default:
		panic("unknown formula node")
	}
}

// Skolemize eliminates every existential quantifier in f, drawing fresh
// symbols from gen. An existential under no universal quantifier names a
// single witness and becomes a fresh constant; an existential under the
// universals v1..vn denotes a value that may depend on each of them and
// becomes a fresh function applied to v1..vn, outermost first. Universal
// quantifiers are kept (DropForall erases them later).
//
// The input must be in negation normal form, so that quantifier polarity is
// already correct.
func Skolemize(f Formula, gen *Gen) Formula {
	return skolemize(f, gen, nil)
}

// universals is the ordered list of universal variables in scope, outermost
// first.
func skolemize(f Formula, gen *Gen, universals []Var) Formula {
	switch f := f.(type) {
	case Pred:
		return f
	case Not:
		return Not{X: skolemize(f.X, gen, universals)}
	case And:
		return And{L: skolemize(f.L, gen, universals), R: skolemize(f.R, gen, universals)}
	case Or:
		return Or{L: skolemize(f.L, gen, universals), R: skolemize(f.R, gen, universals)}
	case Forall:
		return Forall{V: f.V, Body: skolemize(f.Body, gen, append(universals, f.V))}
	case Exists:
		var sk Term
		if len(universals) > 0 {
			args := make([]Term, len(universals))
			for i, u := range universals {
				args[i] = u
			}
			sk = gen.Fn(args)
		} else {
			sk = gen.Const()
		}
		return skolemize(Substitute(f.Body, f.V, sk), gen, universals)
	default:
		panic("unknown formula node")
	}
}

// DropForall strips the leading chain of universal quantifiers and returns
// the quantifier-free matrix. It does not look for quantifiers below And/Or:
// the input's quantifiers must be prenex-positioned and existential free
// (postcondition of Skolemize).
func DropForall(f Formula) Formula {
	for {
		fa, ok := f.(Forall)
		if !ok {
			return f
		}
		f = fa.Body
	}
}

// Distribute rewrites a quantifier-free formula into CNF shape by
// distributing ∨ over ∧, checking the left disjunct first:
//
//	(A ∧ B) ∨ C  ⇒  (A ∨ C) ∧ (B ∨ C)
//	A ∨ (B ∧ C)  ⇒  (A ∨ B) ∧ (A ∨ C)
//
// This is the classical distributive transform; its output is worst-case
// exponential in the number of disjuncts nested under conjunctions, which is
// inherent to the algorithm.
func Distribute(f Formula) Formula {
	switch f := f.(type) {
	case And:
		return And{L: Distribute(f.L), R: Distribute(f.R)}
	case Or:
		l := Distribute(f.L)
		r := Distribute(f.R)
		if la, ok := l.(And); ok {
			return And{
				L: Distribute(Or{L: la.L, R: r}),
				R: Distribute(Or{L: la.R, R: r}),
			}
		}
		if ra, ok := r.(And); ok {
			return And{
				L: Distribute(Or{L: l, R: ra.L}),
				R: Distribute(Or{L: l, R: ra.R}),
			}
		}
		return Or{L: l, R: r}
	default:
		return f
	}
}
