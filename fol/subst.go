package fol

// Substitute returns a copy of f in which every occurrence of v, in predicate
// argument lists and inside nested function arguments, is replaced by t.
//
// No capture avoidance is performed: a nested quantifier that rebinds the same
// variable name is descended into like any other node. Inputs must therefore
// not reuse a variable name in nested quantifiers.
func Substitute(f Formula, v Var, t Term) Formula {
	switch f := f.(type) {
	case Pred:
		return Pred{Name: f.Name, Args: substTerms(f.Args, v, t)}
	case Not:
		return Not{X: Substitute(f.X, v, t)}
	case And:
		return And{L: Substitute(f.L, v, t), R: Substitute(f.R, v, t)}
	case Or:
		return Or{L: Substitute(f.L, v, t), R: Substitute(f.R, v, t)}
	case Implies:
		return Implies{L: Substitute(f.L, v, t), R: Substitute(f.R, v, t)}
	case Iff:
		return Iff{L: Substitute(f.L, v, t), R: Substitute(f.R, v, t)}
	case Forall:
		return Forall{V: f.V, Body: Substitute(f.Body, v, t)}
	case Exists:
		return Exists{V: f.V, Body: Substitute(f.Body, v, t)}
	default:
		panic("unknown formula node")
	}
}

func substTerms(args []Term, v Var, t Term) []Term {
	res := make([]Term, len(args))
	for i, a := range args {
		res[i] = substTerm(a, v, t)
	}
	return res
}

func substTerm(a Term, v Var, t Term) Term {
	switch a := a.(type) {
	case Var:
		if a == v {
			return t
		}
		return a
	case Const:
		return a
	case Fn:
		return Fn{Name: a.Name, Args: substTerms(a.Args, v, t)}
	default:
		panic("unknown term node")
	}
}
