package term

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Canonicalize strips the numeric suffixes that alpha conversion leaves on
// names (x_1 becomes x) wherever that introduces no capture. Every rename is
// reported as an Alpha step, left to right.
func Canonicalize(t Term) (Term, []Step) {
	return canonicalize(t, t, nil)
}

// splitNumbered splits name into a base and its trailing decimal suffix.
func splitNumbered(name string) (string, int, bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return "", 0, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return "", 0, false
	}
	return name[:i], n, true
}

func canonicalize(t, root Term, ctx []string) (Term, []Step) {
	switch t := t.(type) {
	case Var:
		name := string(t)
		if slices.Contains(ctx, name) {
			// bound occurrences follow their binder
			return t, nil
		}
		base, n, ok := splitNumbered(name)
		if !ok {
			return t, nil
		}
		if n == 1 {
			base = strings.TrimRight(base, "_")
			if base == "" || IsFreeIn(base, root) || slices.Contains(ctx, base) {
				return t, nil
			}
			return Var(base), []Step{AlphaStep(name, base)}
		}
		// The lower-numbered name is looked up in the occurrence itself, so
		// two distinct free names are never merged.
		lower := base + strconv.Itoa(n-1)
		if IsFreeIn(lower, t) {
			return Var(lower), []Step{AlphaStep(name, lower)}
		}
		return t, nil
	case Abs:
		param, body := t.Param, t.Body
		var steps []Step
		if base, n, ok := splitNumbered(param); ok && n == 1 {
			base = strings.TrimRight(base, "_")
			if base != "" && !IsFreeIn(base, body) && !capturedUnder(body, param, base) {
				body, _ = Substitute(body, param, Var(base))
				steps = append(steps, AlphaStep(param, base))
				param = base
			}
		}
		body, inner := canonicalize(body, root, prepend(param, ctx))
		if len(steps) == 0 && len(inner) == 0 {
			return t, nil
		}
		return Abs{param, body}, append(steps, inner...)
	case App:
		fn, s1 := canonicalize(t.Fn, root, ctx)
		arg, s2 := canonicalize(t.Arg, root, ctx)
		if len(s1) == 0 && len(s2) == 0 {
			return t, nil
		}
		return App{fn, arg}, append(s1, s2...)
	}
	panic("unreachable")
}

// capturedUnder reports whether a free occurrence of from in t sits under a
// binder named to.
func capturedUnder(t Term, from, to string) bool {
	switch t := t.(type) {
	case Abs:
		if t.Param == from {
			return false
		}
		if t.Param == to {
			return IsFreeIn(from, t.Body)
		}
		return capturedUnder(t.Body, from, to)
	case App:
		return capturedUnder(t.Fn, from, to) || capturedUnder(t.Arg, from, to)
	}
	return false
}
