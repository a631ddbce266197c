package typeexpr

import (
	"regexp"
	"strings"
)

// Separator joins rendered union members.
const Separator = " | "

var typeDocPattern = regexp.MustCompile(`\{(.*?)\}`)

// Extract returns the text between the first `{` and the next `}` in text.
// Braces are not balanced: `{Object<string,{a:b}>}` yields `Object<string,{a:b`.
func Extract(text string) (string, bool) {
	m := typeDocPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Union is a parsed type expression: its members in source order.
type Union struct {
	Expr    string     `json:"expr" yaml:"expr"`
	Members []Rendered `json:"members" yaml:"members"`
}

// ParseUnion splits expr on `|` and parses every member. The split is not aware
// of nesting, so a `|` inside a wrapper's type arguments splits the wrapper too.
// Whitespace around members is kept as written.
func ParseUnion(expr string) Union {
	parts := strings.Split(expr, "|")
	members := make([]Rendered, 0, len(parts))
	for _, p := range parts {
		members = append(members, Render(ParseTerm(p)))
	}
	return Union{Expr: expr, Members: members}
}

// Definition joins the human readable member names.
func (u Union) Definition() string {
	names := make([]string, len(u.Members))
	for i, m := range u.Members {
		names[i] = m.Name
	}
	return strings.Join(names, Separator)
}

// DefinitionURL joins the link forms of the members.
func (u Union) DefinitionURL() string {
	urls := make([]string, len(u.Members))
	for i, m := range u.Members {
		urls[i] = m.URL
	}
	return strings.Join(urls, Separator)
}
