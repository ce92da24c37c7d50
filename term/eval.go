package term

// Eval1 performs one normal-order (leftmost-outermost) reduction step. A
// redex is contracted before its argument is looked at; otherwise the
// function position is reduced before the argument, and abstractions are
// reduced under their binder. If t is in normal form, Eval1 returns t and a
// NoReduction step.
func Eval1(t Term) (Term, Step) {
	switch t := t.(type) {
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			body, renames := Substitute(abs.Body, abs.Param, t.Arg)
			return body, BetaStep(abs.Param).withRenames(renames)
		}
		if fn, step := Eval1(t.Fn); step.Kind != NoReduction {
			return App{fn, t.Arg}, ContextualStep(Left).withRenames(step.Renames)
		}
		if arg, step := Eval1(t.Arg); step.Kind != NoReduction {
			return App{t.Fn, arg}, ContextualStep(Right).withRenames(step.Renames)
		}
	case Abs:
		if body, step := Eval1(t.Body); step.Kind != NoReduction {
			return Abs{t.Param, body}, step
		}
	}
	return t, Step{}
}

// Eval reduces t to normal form and canonicalizes the result. The returned
// trace holds every reduction event followed by the canonicalization
// renames. Eval does not return for terms without a normal form.
func Eval(t Term) (Term, []Step) {
	var trace []Step
	for !IsNormalForm(t) {
		next, step := Eval1(t)
		if step.Kind == NoReduction {
			break
		}
		t = next
		trace = append(trace, step.Events()...)
	}
	t, renames := Canonicalize(t)
	return t, append(trace, renames...)
}
