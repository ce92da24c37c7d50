package term

import "strings"

// Style controls rendering only; it has no effect on reduction.
type Style struct {
	Unicode bool // λ α β instead of \ A B
	Color   bool // ANSI colors
	Merge   bool // λx,y.e instead of λx.λy.e
}

const (
	ansiReset = "\x1b[0m"
	ansiKind  = "\x1b[1m\x1b[38;5;3m"
	ansiGray  = "\x1b[0m\x1b[38;5;240m"
)

func (st Style) paint(code, s string) string {
	if !st.Color {
		return s
	}
	return code + s + ansiReset
}

func (st Style) symbol(unicode, ascii string) string {
	if st.Unicode {
		return unicode
	}
	return ascii
}

// Format renders t. An application's argument is parenthesized only when it
// is itself an application or an abstraction; its function only when it is
// an abstraction.
func Format(t Term, st Style) string {
	var b strings.Builder
	st.write(&b, t)
	return b.String()
}

func (st Style) write(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		b.WriteString(string(t))
	case Abs:
		b.WriteString(st.paint(ansiKind, st.symbol("λ", `\`)))
		b.WriteString(t.Param)
		body := t.Body
		for st.Merge {
			inner, ok := body.(Abs)
			if !ok {
				break
			}
			b.WriteString(st.paint(ansiGray, ","))
			b.WriteString(inner.Param)
			body = inner.Body
		}
		b.WriteString(st.paint(ansiGray, "."))
		st.write(b, body)
	case App:
		if _, ok := t.Fn.(Abs); ok {
			st.writeParen(b, t.Fn)
		} else {
			st.write(b, t.Fn)
		}
		b.WriteByte(' ')
		switch t.Arg.(type) {
		case App, Abs:
			st.writeParen(b, t.Arg)
		default:
			st.write(b, t.Arg)
		}
	}
}

func (st Style) writeParen(b *strings.Builder, t Term) {
	b.WriteString(st.paint(ansiGray, "("))
	st.write(b, t)
	b.WriteString(st.paint(ansiGray, ")"))
}

// FormatStep renders s as kind(detail): β(x), α(x -> x_1), C(left).
func FormatStep(s Step, st Style) string {
	var kind, detail string
	switch s.Kind {
	case Beta:
		kind, detail = st.symbol("β", "B"), s.Name
	case Alpha:
		kind, detail = st.symbol("α", "A"), s.From+st.paint(ansiGray, " -> ")+s.To
	case Contextual:
		kind, detail = "C", s.Side.String()
	default:
		return "No reduction"
	}
	return st.paint(ansiKind, kind) + st.paint(ansiGray, "(") + detail + st.paint(ansiGray, ")")
}
