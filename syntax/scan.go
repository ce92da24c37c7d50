// Package syntax turns source text into lambda terms.
//
//	term   := single { single }
//	single := ident | "(" term ")" | lambda ident { "," ident } "." term
//	lambda := "λ" | "\"
//
// Application is left associative; an abstraction extends as far right as
// possible, and λx,y.e is read as λx.λy.e.
package syntax

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var punctuation = []string{"(", ")", ".", ",", "λ", `\`}

func isIdent(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}) < 0
}

func isPunct(s string) bool {
	return lo.Contains(punctuation, s)
}

func scan(s string) (res []string, err error) {
	res = strings.Fields(s)
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			if isPunct(s) {
				return []string{s}
			}
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	for _, c := range punctuation {
		res = sep(c)
	}
	for _, s := range res {
		if !isPunct(s) && !isIdent(s) {
			return nil, fmt.Errorf("%w: unexpected token %q", ErrParse, s)
		}
	}
	return res, nil
}
