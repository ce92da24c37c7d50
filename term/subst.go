package term

import (
	"strconv"

	"github.com/samber/lo"
)

// FreshName returns hint, or the first of hint_1, hint_2, ... that is not
// free in any of avoid.
func FreshName(hint string, avoid ...Term) string {
	taken := func(name string) bool {
		return lo.SomeBy(avoid, func(t Term) bool { return IsFreeIn(name, t) })
	}
	name := hint
	for i := 1; taken(name); i++ {
		name = hint + "_" + strconv.Itoa(i)
	}
	return name
}

// Substitute replaces every free occurrence of name in t with s. Binders
// that would capture a free variable of s are renamed first; each renaming
// is reported as an Alpha step, in the order performed. Subterms in which
// name is not free are returned as is.
func Substitute(t Term, name string, s Term) (Term, []Step) {
	if !IsFreeIn(name, t) {
		return t, nil
	}
	switch t := t.(type) {
	case Var:
		return s, nil
	case Abs:
		// t.Param != name, otherwise name would not be free in t.
		if !IsFreeIn(t.Param, s) {
			body, steps := Substitute(t.Body, name, s)
			return Abs{t.Param, body}, steps
		}
		fresh := FreshName(t.Param, t.Body, s)
		renamed, inner := Substitute(t.Body, t.Param, Var(fresh))
		body, rest := Substitute(renamed, name, s)
		steps := append([]Step{AlphaStep(t.Param, fresh)}, inner...)
		return Abs{fresh, body}, append(steps, rest...)
	case App:
		fn, s1 := Substitute(t.Fn, name, s)
		arg, s2 := Substitute(t.Arg, name, s)
		return App{fn, arg}, append(s1, s2...)
	}
	panic("unreachable")
}
