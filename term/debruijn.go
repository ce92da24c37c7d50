package term

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// DeBruijn renders t with bound variables replaced by their de Bruijn index
// and free variables left by name.
func DeBruijn(t Term) string {
	return deBruijn(t, nil)
}

func deBruijn(t Term, ctx []string) string {
	switch t := t.(type) {
	case Var:
		if i := slices.Index(ctx, string(t)); i >= 0 {
			return strconv.Itoa(i)
		}
		return string(t)
	case Abs:
		return "(λ." + deBruijn(t.Body, prepend(t.Param, ctx)) + ")"
	case App:
		return "(" + deBruijn(t.Fn, ctx) + " " + deBruijn(t.Arg, ctx) + ")"
	}
	panic("unreachable")
}

// AlphaEquivalent reports whether a and b differ only in the names of bound
// variables.
func AlphaEquivalent(a, b Term) bool {
	return alphaEq(a, b, nil, nil)
}

func alphaEq(a, b Term, ca, cb []string) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		if !ok {
			return false
		}
		i, j := slices.Index(ca, string(a)), slices.Index(cb, string(b))
		if i < 0 && j < 0 {
			return a == b
		}
		return i == j
	case Abs:
		b, ok := b.(Abs)
		return ok && alphaEq(a.Body, b.Body, prepend(a.Param, ca), prepend(b.Param, cb))
	case App:
		b, ok := b.(App)
		return ok && alphaEq(a.Fn, b.Fn, ca, cb) && alphaEq(a.Arg, b.Arg, ca, cb)
	}
	panic("unreachable")
}
