package term

// Kind classifies a rewrite event.
type Kind uint8

const (
	NoReduction Kind = iota
	Beta
	Alpha
	Contextual
)

func (k Kind) String() string {
	switch k {
	case NoReduction:
		return "no reduction"
	case Beta:
		return "beta"
	case Alpha:
		return "alpha"
	case Contextual:
		return "contextual"
	}
	panic("unreachable")
}

// Side is the branch of an application a contextual step reduced.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Step records one rewrite event.
//
//	Beta:       Name is the parameter of the contracted abstraction.
//	Alpha:      From was renamed To.
//	Contextual: the reduction happened inside the Side branch of an application.
//
// Renames holds the alpha conversions performed while producing a Beta or
// Contextual step, in the order they happened.
type Step struct {
	Kind     Kind
	Name     string
	From, To string
	Side     Side
	Renames  []Step
}

func BetaStep(name string) Step { return Step{Kind: Beta, Name: name} }

func AlphaStep(from, to string) Step { return Step{Kind: Alpha, From: from, To: to} }

func ContextualStep(side Side) Step { return Step{Kind: Contextual, Side: side} }

func (s Step) String() string { return FormatStep(s, Style{Unicode: true}) }

func (s Step) withRenames(r []Step) Step {
	s.Renames = r
	return s
}

// Events flattens s into the trace entries it stands for: its renames
// followed by the step itself.
func (s Step) Events() []Step {
	if s.Kind == NoReduction {
		return nil
	}
	return append(append([]Step(nil), s.Renames...), s.withRenames(nil))
}
