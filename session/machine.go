// Package session drives the evaluator on behalf of the front ends: it keeps
// the loaded expression and the user's definitions, bounds runaway
// reductions, and interprets command lines into a printable history.
package session

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/untyped/syntax"
	"github.com/smasher164/untyped/term"
)

var (
	ErrNoExpression = errors.New("no expression loaded")
	ErrStepLimit    = errors.New("step limit reached")
)

// Event is a trace entry paired with the term it produced.
type Event struct {
	Step term.Step
	Term term.Term
}

type Machine struct {
	// Limit bounds the reduction steps of one Eval; 0 means no bound.
	Limit int

	expr  term.Term
	defs  map[string]term.Term
	names []string
}

func NewMachine(limit int) *Machine {
	return &Machine{Limit: limit, defs: make(map[string]term.Term)}
}

// Load parses src, replaces the names defined so far with their bodies and
// makes the result the current expression.
func (m *Machine) Load(src string) error {
	t, err := syntax.Parse(src)
	if err != nil {
		return err
	}
	m.expr = m.expand(t, nil)
	return nil
}

// Expr returns the current expression.
func (m *Machine) Expr() (term.Term, bool) {
	return m.expr, m.expr != nil
}

// Define binds name to src. Definitions are expanded when an expression is
// loaded, so a body may refer to names defined after it.
func (m *Machine) Define(name, src string) error {
	v, err := syntax.Parse(name)
	if err != nil {
		return fmt.Errorf("definition name: %w", err)
	}
	id, ok := v.(term.Var)
	if !ok || string(id) != name {
		return fmt.Errorf("definition name %q is not an identifier", name)
	}
	body, err := syntax.Parse(src)
	if err != nil {
		return err
	}
	if _, ok := m.defs[name]; !ok {
		m.names = append(m.names, name)
	}
	m.defs[name] = body
	return nil
}

// Definitions lists the definitions in the order they were first made.
func (m *Machine) Definitions() []string {
	return lo.Map(m.names, func(name string, _ int) string {
		return name + " := " + m.defs[name].String()
	})
}

func (m *Machine) Definition(name string) (term.Term, bool) {
	t, ok := m.defs[name]
	return t, ok
}

// expand replaces the free defined names of t with their expanded bodies.
// A name is not expanded inside its own expansion.
func (m *Machine) expand(t term.Term, seen []string) term.Term {
	for _, name := range term.FreeVars(t) {
		def, ok := m.defs[name]
		if !ok || slices.Contains(seen, name) {
			continue
		}
		t, _ = term.Substitute(t, name, m.expand(def, append(seen, name)))
	}
	return t
}

// Eval reduces the current expression to normal form, canonicalizes it and
// makes the result the current expression. If Limit steps are taken first,
// the partially reduced term becomes current and the error wraps
// ErrStepLimit; the returned events are valid either way.
func (m *Machine) Eval() ([]Event, error) {
	if m.expr == nil {
		return nil, ErrNoExpression
	}
	var events []Event
	t := m.expr
	for n := 0; !term.IsNormalForm(t); n++ {
		if m.Limit > 0 && n >= m.Limit {
			m.expr = t
			return events, fmt.Errorf("%w after %d steps", ErrStepLimit, n)
		}
		next, step := term.Eval1(t)
		if step.Kind == term.NoReduction {
			break
		}
		t = next
		events = append(events, lo.Map(step.Events(), func(s term.Step, _ int) Event {
			return Event{s, t}
		})...)
	}
	t, renames := term.Canonicalize(t)
	for _, r := range renames {
		events = append(events, Event{r, t})
	}
	m.expr = t
	return events, nil
}
