// Package term implements the untyped lambda calculus under normal-order
// reduction: terms, capture-avoiding substitution, a single-step reducer,
// the evaluation driver and the cosmetic renaming pass applied to normal forms.
package term

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Term is a lambda term. Terms are immutable values; every operation in this
// package returns a new Term that shares unchanged subterms with its input.
type Term interface {
	isTerm()
	String() string
}

// Var is a variable occurrence, identified by name only.
type Var string

// Abs binds Param within Body.
type Abs struct {
	Param string
	Body  Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func (v Var) String() string { return Format(v, Style{Unicode: true}) }
func (a Abs) String() string { return Format(a, Style{Unicode: true}) }
func (a App) String() string { return Format(a, Style{Unicode: true}) }

// Apply builds the left-associated application fn args[0] args[1] ...
func Apply(fn Term, args ...Term) Term {
	for _, a := range args {
		fn = App{fn, a}
	}
	return fn
}

// Lambda builds nested abstractions; the last parameter binds innermost.
func Lambda(params []string, body Term) Term {
	for i := len(params) - 1; i >= 0; i-- {
		body = Abs{params[i], body}
	}
	return body
}

// IsFreeIn reports whether name occurs free in t.
func IsFreeIn(name string, t Term) bool {
	switch t := t.(type) {
	case Var:
		return string(t) == name
	case Abs:
		return t.Param != name && IsFreeIn(name, t.Body)
	case App:
		return IsFreeIn(name, t.Fn) || IsFreeIn(name, t.Arg)
	}
	panic("unreachable")
}

func collectFree(t Term, bound []string, set map[string]struct{}) {
	switch t := t.(type) {
	case Var:
		if !slices.Contains(bound, string(t)) {
			set[string(t)] = struct{}{}
		}
	case Abs:
		collectFree(t.Body, prepend(t.Param, bound), set)
	case App:
		collectFree(t.Fn, bound, set)
		collectFree(t.Arg, bound, set)
	}
}

func collectBound(t Term) []string {
	switch t := t.(type) {
	case Abs:
		return prepend(t.Param, collectBound(t.Body))
	case App:
		return append(collectBound(t.Fn), collectBound(t.Arg)...)
	}
	return nil
}

// FreeVars returns the sorted set of names free in t.
func FreeVars(t Term) []string {
	set := make(map[string]struct{})
	collectFree(t, nil, set)
	vars := lo.Keys(set)
	slices.Sort(vars)
	return vars
}

// BoundVars returns the sorted set of every binder name in t, including
// binders that are shadowed or never referenced.
func BoundVars(t Term) []string {
	vars := lo.Uniq(collectBound(t))
	slices.Sort(vars)
	return vars
}

// IsRedex reports whether t is an application of an abstraction.
func IsRedex(t Term) bool {
	app, ok := t.(App)
	if !ok {
		return false
	}
	_, ok = app.Fn.(Abs)
	return ok
}

// IsNormalForm reports whether t contains no redex.
func IsNormalForm(t Term) bool {
	switch t := t.(type) {
	case Var:
		return true
	case Abs:
		return IsNormalForm(t.Body)
	case App:
		return !IsRedex(t) && IsNormalForm(t.Fn) && IsNormalForm(t.Arg)
	}
	panic("unreachable")
}

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}
