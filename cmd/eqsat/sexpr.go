package main

import (
	"fmt"
	"strconv"
	"strings"

	"eqsat/boolalg"
	"eqsat/egraph"
	"eqsat/ids"
)

// sexpr is a parsed but not yet interpreted term: either an atom (a bare
// word) or a list of sub-terms. The grammar is deliberately tiny —
// (var NAME), (bool true|false), (not X), (and X Y), (or X Y),
// (implies X Y) — just enough to drive the boolalg language from text.
type sexpr struct {
	atom string
	list []sexpr
}

func parseSexprs(src string) ([]sexpr, error) {
	toks := tokenizeSexpr(src)
	var out []sexpr
	for len(toks) > 0 {
		var term sexpr
		var err error
		term, toks, err = parseOneSexpr(toks)
		if err != nil {
			return nil, err
		}
		out = append(out, term)
	}
	return out, nil
}

func tokenizeSexpr(src string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

func parseOneSexpr(toks []string) (sexpr, []string, error) {
	if len(toks) == 0 {
		return sexpr{}, nil, fmt.Errorf("unexpected end of input")
	}
	head, rest := toks[0], toks[1:]
	if head == ")" {
		return sexpr{}, nil, fmt.Errorf("unexpected %q", ")")
	}
	if head != "(" {
		return sexpr{atom: head}, rest, nil
	}

	var items []sexpr
	for {
		if len(rest) == 0 {
			return sexpr{}, nil, fmt.Errorf("unclosed %q", "(")
		}
		if rest[0] == ")" {
			return sexpr{list: items}, rest[1:], nil
		}
		var item sexpr
		var err error
		item, rest, err = parseOneSexpr(rest)
		if err != nil {
			return sexpr{}, nil, err
		}
		items = append(items, item)
	}
}

// buildBoolalg interprets a parsed term as a boolalg node, adding whatever
// sub-terms it needs to g and returning the id of the term's class.
func buildBoolalg(g *egraph.EGraph[boolalg.Data], term sexpr) (ids.Id, error) {
	if term.atom != "" || len(term.list) == 0 {
		return 0, fmt.Errorf("expected a form, got atom %q", term.atom)
	}
	head := term.list[0]
	if head.atom == "" {
		return 0, fmt.Errorf("expected a form head")
	}
	args := term.list[1:]

	switch head.atom {
	case "var":
		if len(args) != 1 || args[0].atom == "" {
			return 0, fmt.Errorf("(var NAME) takes one atom argument")
		}
		return g.Add(boolalg.NewVar(args[0].atom)), nil
	case "bool":
		if len(args) != 1 || args[0].atom == "" {
			return 0, fmt.Errorf("(bool true|false) takes one atom argument")
		}
		value, err := strconv.ParseBool(args[0].atom)
		if err != nil {
			return 0, fmt.Errorf("(bool %s): %w", args[0].atom, err)
		}
		return g.Add(boolalg.NewBool(value)), nil
	case "not":
		if len(args) != 1 {
			return 0, fmt.Errorf("(not X) takes one argument")
		}
		x, err := buildBoolalg(g, args[0])
		if err != nil {
			return 0, err
		}
		return g.Add(boolalg.NewNot(x)), nil
	case "and", "or", "implies":
		if len(args) != 2 {
			return 0, fmt.Errorf("(%s X Y) takes two arguments", head.atom)
		}
		left, err := buildBoolalg(g, args[0])
		if err != nil {
			return 0, err
		}
		right, err := buildBoolalg(g, args[1])
		if err != nil {
			return 0, err
		}
		switch head.atom {
		case "and":
			return g.Add(boolalg.NewAnd(left, right)), nil
		case "or":
			return g.Add(boolalg.NewOr(left, right)), nil
		default:
			return g.Add(boolalg.NewImplies(left, right)), nil
		}
	default:
		return 0, fmt.Errorf("unknown form %q", head.atom)
	}
}
