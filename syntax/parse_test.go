package syntax

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"golang.org/x/exp/slices"

	"github.com/smasher164/untyped/term"
)

func TestScan(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"x", []string{"x"}},
		{"(λx.x)y", []string{"(", "λ", "x", ".", "x", ")", "y"}},
		{`\f,x. f (f x)`, []string{`\`, "f", ",", "x", ".", "f", "(", "f", "x", ")"}},
		{"  x_1   y2 ", []string{"x_1", "y2"}},
		{"λ", []string{"λ"}},
	}
	for _, tt := range tests {
		got, err := scan(tt.in)
		if err != nil {
			t.Errorf("scan(%q): %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("scan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	x, y, z, f := term.Var("x"), term.Var("y"), term.Var("z"), term.Var("f")
	tests := []struct {
		in   string
		want term.Term
	}{
		{"x", x},
		{"(x)", x},
		{"x y z", term.App{term.App{x, y}, z}},
		{"x (y z)", term.App{x, term.App{y, z}}},
		{"λx.x", term.Abs{"x", x}},
		{`\x.x`, term.Abs{"x", x}},
		{"λx.x y", term.Abs{"x", term.App{x, y}}},
		{"(λx.x) y", term.App{term.Abs{"x", x}, y}},
		{"λx,y.x", term.Abs{"x", term.Abs{"y", x}}},
		{"λf,x,y.f", term.Abs{"f", term.Abs{"x", term.Abs{"y", f}}}},
		{"f λx.x y", term.App{f, term.Abs{"x", term.App{x, y}}}},
		{"(λf,x.f x) (λy.y) z", term.App{
			term.App{term.Lambda([]string{"f", "x"}, term.App{f, x}), term.Abs{"y", y}},
			z,
		}},
		{"((x))", x},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): %v", tt.in, pretty.Diff(got, tt.want))
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"(",
		"(x",
		"x)",
		"λ",
		"λx",
		"λx y.x",
		"λ.x",
		"λx,.x",
		"x . y",
		"x + y",
		", x",
	} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, in := range []string{
		"x",
		"λx.x",
		"(λx.x) y",
		"f (g x) (λy.y)",
		"λf,x.f (f x)",
		"(λx.x x) (λx.x x)",
		"x (λy.y) z",
		"(λx.λy.y) (a b) c",
	} {
		want := MustParse(in)
		for _, st := range []term.Style{{Unicode: true}, {Merge: true}, {}} {
			s := term.Format(want, st)
			got, err := Parse(s)
			if err != nil {
				t.Errorf("Parse(Format(%q)) = %q: %v", in, s, err)
				continue
			}
			if got != want {
				t.Errorf("round trip of %q via %q: %v", in, s, pretty.Diff(got, want))
			}
		}
	}
}
