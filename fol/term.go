package fol

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// A Term is a value appearing in an argument list: a quantified variable, an
// individual constant, or a function application.
type Term interface {
	fmt.Stringer
	// Equal reports whether both terms have the same structure.
	Equal(other Term) bool
	term()
}

// A Var is a logical variable, bound by an enclosing quantifier.
type Var struct {
	Name string
}

func (v Var) term()          {}
func (v Var) String() string { return v.Name }

func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && v == o
}

// A Const is an individual constant: either a name supplied by the caller or a
// Skolem constant produced by a Gen.
type Const struct {
	Name string
}

func (c Const) term()          {}
func (c Const) String() string { return c.Name }

func (c Const) Equal(other Term) bool {
	o, ok := other.(Const)
	return ok && c == o
}

// A Fn is a function application. Argument order is significant and is
// preserved through every rewrite and through substitution.
type Fn struct {
	Name string
	Args []Term
}

func (f Fn) term() {}

func (f Fn) String() string {
	strs := make([]string, len(f.Args))
	for i, a := range f.Args {
		strs[i] = a.String()
	}
	return f.Name + "(" + strings.Join(strs, ",") + ")"
}

func (f Fn) Equal(other Term) bool {
	o, ok := other.(Fn)
	if !ok || f.Name != o.Name || len(f.Args) != len(o.Args) {
		return false
	}
	for i, a := range f.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// A Gen produces fresh Skolem symbols. A given generator never returns the
// same name twice: constants and functions draw from one shared counter,
// incremented atomically so a single generator may be used from concurrent
// runs. Generated names live in the c<N>/f<N> namespace, which callers must
// keep out of their own vocabulary.
//
// The zero value is ready to use.
type Gen struct {
	counter uint64
}

// NewGen returns a generator whose counter starts at zero.
func NewGen() *Gen { return &Gen{} }

// Const returns a fresh Skolem constant.
func (g *Gen) Const() Const {
	return Const{Name: fmt.Sprintf("c%d", g.next())}
}

// Fn returns a fresh Skolem function applied to args, in the given order.
func (g *Gen) Fn(args []Term) Fn {
	return Fn{Name: fmt.Sprintf("f%d", g.next()), Args: args}
}

func (g *Gen) next() uint64 {
	return atomic.AddUint64(&g.counter, 1) - 1
}
