package term_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	. "github.com/smasher164/untyped/term"
)

func TestFreshName(t *testing.T) {
	tests := []struct {
		hint  string
		avoid []Term
		want  string
	}{
		{"x", nil, "x"},
		{"x", []Term{Var("y")}, "x"},
		{"x", []Term{Var("x")}, "x_1"},
		{"x", []Term{parse("x x_1")}, "x_2"},
		{"x", []Term{Var("x"), Var("x_1"), parse("λx_2.x_2")}, "x_2"},
		{"y_1", []Term{parse("y_1")}, "y_1_1"},
	}
	for _, tt := range tests {
		if got := FreshName(tt.hint, tt.avoid...); got != tt.want {
			t.Errorf("FreshName(%s, %v) = %s, want %s", tt.hint, tt.avoid, got, tt.want)
		}
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		in, name, with string
		want           string
		steps          []Step
	}{
		{"x", "x", "y", "y", nil},
		{"z", "x", "y", "z", nil},
		{"x x", "x", "λz.z", "(λz.z) (λz.z)", nil},
		{"λx.x", "x", "y", "λx.x", nil},
		{"λy.x y", "x", "z", "λy.z y", nil},
		{"λy.x y", "x", "y", "λy_1.y y_1", []Step{AlphaStep("y", "y_1")}},
		{"λy.x y y_1", "x", "y", "λy_2.y y_2 y_1", []Step{AlphaStep("y", "y_2")}},
		{"λy.λy_1.x y y_1", "x", "y", "λy_1.λy_1_1.y y_1 y_1_1", []Step{
			AlphaStep("y", "y_1"),
			AlphaStep("y_1", "y_1_1"),
		}},
		{"λy.λz.x", "x", "y z", "λy_1.λz_1.y z", []Step{
			AlphaStep("y", "y_1"),
			AlphaStep("z", "z_1"),
		}},
		// a binder whose parameter is unused is renamed all the same
		{"λy.λy.x y", "x", "y", "λy_1.λy_1.y y_1", []Step{
			AlphaStep("y", "y_1"),
			AlphaStep("y", "y_1"),
		}},
	}
	for _, tt := range tests {
		got, steps := Substitute(parse(tt.in), tt.name, parse(tt.with))
		if want := parse(tt.want); got != want {
			t.Errorf("[%s := %s](%s) = %v, want %v", tt.name, tt.with, tt.in, got, want)
		}
		if diff := pretty.Diff(steps, tt.steps); len(diff) > 0 {
			t.Errorf("[%s := %s](%s) steps: %v", tt.name, tt.with, tt.in, diff)
		}
	}
}

func TestSubstituteNeverCaptures(t *testing.T) {
	bodies := []string{
		"λy.x y",
		"λy.λw.x w y",
		"λy.λz.x z y",
		"λz.λy.y (x z)",
		"(λy.x) (λx.x y)",
		"λy_1.λy.x y y_1",
	}
	replacements := []string{"y", "y z", "λw.y", "y_1 y", "x"}
	for _, b := range bodies {
		for _, r := range replacements {
			body, repl := parse(b), parse(r)
			got, _ := Substitute(body, "x", repl)
			// free(body[x:=r]) = free(body) \ {x} ∪ free(r), as x occurs free in every body
			want := lo.Uniq(append(lo.Without(FreeVars(body), "x"), FreeVars(repl)...))
			slices.Sort(want)
			if free := FreeVars(got); !slices.Equal(free, want) {
				t.Errorf("[x := %s](%s) = %v has free %q, want %q", r, b, got, free, want)
			}
		}
	}
}

func TestSubstituteShadowed(t *testing.T) {
	abs := parse("λy.λx.y x")
	got, steps := Substitute(abs, "y", parse("y"))
	if got != parse("λy.λx.y x") || steps != nil {
		t.Errorf("substitution under a shadowing binder changed %v into %v, %v", abs, got, steps)
	}
}
