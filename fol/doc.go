// Package fol normalizes first-order logic formulas into conjunctive normal form.
//
// Resolution provers and SAT-style solvers expect their input in clause form:
// a conjunction of disjunctions of possibly negated atoms. Putting an arbitrary
// first-order formula into that shape by hand is tedious and error-prone.
// This package provides term and formula constructors together with a fixed
// five-stage rewrite pipeline that does it mechanically:
//
//  1. eliminate implications and biconditionals,
//  2. push negations down to atoms (negation normal form),
//  3. Skolemize existential quantifiers,
//  4. drop the remaining universal quantifiers,
//  5. distribute disjunction over conjunction.
//
// For example, the formula
//
//	∀x (P(x) → ∃y (Q(y) ∧ R(x,y)))
//
// is built with
//
//	f := Forall{V: Var{"x"}, Body: Implies{
//		L: Pred{Name: "P", Args: []Term{Var{"x"}}},
//		R: Exists{V: Var{"y"}, Body: And{
//			L: Pred{Name: "Q", Args: []Term{Var{"y"}}},
//			R: Pred{Name: "R", Args: []Term{Var{"x"}, Var{"y"}}},
//		}},
//	}}
//
// and CNF(f) rewrites it to
//
//	((¬P(x) ∨ Q(f0(x))) ∧ (¬P(x) ∨ R(x,f0(x))))
//
// where f0 is a fresh Skolem function of the enclosing universal variable.
// The result is still a Formula tree; extracting an explicit clause list, as
// well as parsing formulas from text, is left to the caller.
//
// Every rewrite stage is a pure function from formula to formula: inputs are
// never mutated and each stage returns a newly built tree. The stages are
// exported individually for callers that want to observe or reuse intermediate
// forms; Transformer runs them in the correct order and can emit a rendering
// of each intermediate formula for diagnostics.
//
// Inputs must be closed (no free variables), must not reuse a variable name in
// nested quantifiers, and must keep their quantifiers in prenex position.
// These preconditions are the caller's responsibility and are not checked.
package fol
