package syntax

import (
	"errors"
	"fmt"

	"github.com/smasher164/untyped/term"
)

// ErrParse is wrapped by every error Parse returns.
var ErrParse = errors.New("parse error")

func unexpected(s string) error {
	return fmt.Errorf("%w: unexpected token %q", ErrParse, s)
}

func expect(tok string, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: expected token %q, got \"EOF\"", ErrParse, tok)
	}
	hd, tl := tokens[0], tokens[1:]
	if hd != tok {
		return nil, fmt.Errorf("%w: expected token %q, got %q", ErrParse, tok, hd)
	}
	return tl, nil
}

func parseLambda(tokens []string) (term.Term, []string, error) {
	var params []string
	for {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("%w: expected identifier, got \"EOF\"", ErrParse)
		}
		tok := tokens[0]
		if !isIdent(tok) {
			return nil, nil, fmt.Errorf("%w: expected identifier, got %q", ErrParse, tok)
		}
		params = append(params, tok)
		tokens = tokens[1:]
		if len(tokens) > 0 && tokens[0] == "," {
			tokens = tokens[1:]
			continue
		}
		var err error
		if tokens, err = expect(".", tokens); err != nil {
			return nil, nil, err
		}
		break
	}
	body, tokens, err := parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	return term.Lambda(params, body), tokens, nil
}

func parseParenExpr(tokens []string) (term.Term, []string, error) {
	t, tokens, err := parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	tokens, err = expect(")", tokens)
	return t, tokens, err
}

func parseSingle(tokens []string) (term.Term, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, unexpected("EOF")
	}
	tok, tokens := tokens[0], tokens[1:]
	switch tok {
	case ")", ".", ",":
		return nil, nil, unexpected(tok)
	case "(":
		return parseParenExpr(tokens)
	case "λ", `\`:
		return parseLambda(tokens)
	}
	return term.Var(tok), tokens, nil
}

func parse(tokens []string) (term.Term, []string, error) {
	t, tokens, err := parseSingle(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(tokens) > 0 && tokens[0] != ")" {
		var arg term.Term
		if arg, tokens, err = parseSingle(tokens); err != nil {
			return nil, nil, err
		}
		t = term.App{Fn: t, Arg: arg}
	}
	return t, tokens, nil
}

// Parse parses src as a single term.
func Parse(src string) (term.Term, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	t, tokens, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 0 {
		return nil, fmt.Errorf("%w: expected token \"EOF\", got %q", ErrParse, tokens[0])
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) term.Term {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}
