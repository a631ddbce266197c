package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/ngdoctags/internal/typeexpr"
)

// TypeCmd implements the 'type' command.
type TypeCmd struct {
	Expr string `arg:"" help:"Type expression, with or without surrounding braces (e.g. 'string|Foo' or '{$q<Bar>}')"`
	Tree bool   `help:"Also print the parsed term of every union member"`
}

func (t *TypeCmd) Run(g *Global) error {
	expr := t.Expr
	if inner, ok := typeexpr.Extract(expr); ok {
		expr = inner
	}

	union := typeexpr.ParseUnion(expr)
	_, _ = fmt.Fprintf(g.Out, "definition: %s\n", union.Definition())
	_, _ = fmt.Fprintf(g.Out, "url:        %s\n", union.DefinitionURL())

	if t.Tree {
		for _, term := range strings.Split(expr, "|") {
			printNode(g, typeexpr.ParseTerm(term), "  ")
		}
	}
	return nil
}

func printNode(g *Global, n *typeexpr.Node, indent string) {
	switch n.Kind {
	case typeexpr.KindPromise:
		_, _ = fmt.Fprintf(g.Out, "%s%s %q\n", indent, n.Kind, n.Raw)
		printNode(g, n.Elem, indent+"  ")
	case typeexpr.KindKeyed:
		_, _ = fmt.Fprintf(g.Out, "%s%s %q\n", indent, n.Kind, n.Raw)
		printNode(g, n.Key, indent+"  ")
		printNode(g, n.Value, indent+"  ")
	default:
		_, _ = fmt.Fprintf(g.Out, "%s%s %q builtin=%t array=%t\n", indent, n.Kind, n.Base, typeexpr.IsBuiltin(n.Base), n.Array)
	}
}
