// Package typeexpr parses the type expressions found between curly braces in
// documentation tags (for example `{string|Foo[]}` or `{Object.<string, Foo>}`)
// and renders them both as plain text and as link-annotated HTML fragments.
//
// A term is classified into one of a small closed set of shapes:
//   - KindPromise: `$q<T>`, `$q.<T>` or `$q&lt;T>`
//   - KindKeyed:   `Object<K,V>`, `Object.<K,V>` or `Object&lt;K,V>`
//   - KindPlain:   `Name` or `Name[]`
//
// Type arguments of the wrapper shapes are parsed recursively.
package typeexpr

import (
	"regexp"
)

// Kind identifies the shape a type term was classified as.
type Kind int

const (
	// KindUnknown is a term that matched no pattern. It renders as an empty leaf.
	KindUnknown Kind = iota
	KindPlain
	KindPromise
	KindKeyed
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindPromise:
		return "promise"
	case KindKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

var (
	promisePattern = regexp.MustCompile(`^\$q\.?(?:<|&lt;?)(.+)>$`)
	keyedPattern   = regexp.MustCompile(`^Object\.?(?:<|&lt;?)(.+)(?:\s*),(?:\s*)(.+)>$`)
	plainPattern   = regexp.MustCompile(`(.*?)(\[\])?$`)
)

// Node is one parsed type term. Which fields are set depends on Kind:
// Base and Array for KindPlain, Elem for KindPromise, Key and Value for KindKeyed.
// Raw always holds the text the node was parsed from.
type Node struct {
	Kind  Kind
	Raw   string
	Base  string
	Array bool
	Elem  *Node
	Key   *Node
	Value *Node
}

// ParseTerm classifies a single union member and parses it, recursing into
// type arguments. Patterns are tried in order: promise, keyed, plain.
func ParseTerm(s string) *Node {
	if m := promisePattern.FindStringSubmatch(s); m != nil {
		return parsePromise(m)
	}
	if m := keyedPattern.FindStringSubmatch(s); m != nil {
		return parseKeyed(m)
	}
	if m := plainPattern.FindStringSubmatch(s); m != nil {
		return parsePlain(m)
	}
	return &Node{Kind: KindUnknown, Raw: s}
}

func parsePromise(m []string) *Node {
	return &Node{
		Kind: KindPromise,
		Raw:  m[0],
		Elem: ParseTerm(m[1]),
	}
}

func parseKeyed(m []string) *Node {
	return &Node{
		Kind:  KindKeyed,
		Raw:   m[0],
		Key:   ParseTerm(m[1]),
		Value: ParseTerm(m[2]),
	}
}

func parsePlain(m []string) *Node {
	return &Node{
		Kind:  KindPlain,
		Raw:   m[0],
		Base:  m[1],
		Array: m[2] != "",
	}
}

// Rendered is the display form of a node: Name is human readable, URL carries
// anchors for every non built-in type name.
type Rendered struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Render produces the display form of n. A nil node renders like KindUnknown.
func Render(n *Node) Rendered {
	if n == nil {
		return Rendered{}
	}
	switch n.Kind {
	case KindPromise:
		return renderPromise(n)
	case KindKeyed:
		return renderKeyed(n)
	case KindPlain:
		return renderPlain(n)
	default:
		return Rendered{}
	}
}

func renderPromise(n *Node) Rendered {
	elem := Render(n.Elem)
	return Rendered{
		Name: n.Raw,
		URL:  "$q&lt;" + elem.URL + ">",
	}
}

func renderKeyed(n *Node) Rendered {
	key := Render(n.Key)
	value := Render(n.Value)
	return Rendered{
		Name: n.Raw,
		URL:  "Object&lt;" + key.URL + ", " + value.URL + ">",
	}
}

func renderPlain(n *Node) Rendered {
	name := n.Base
	if n.Array {
		name += "[]"
	}
	if IsBuiltin(n.Base) {
		return Rendered{Name: name, URL: name}
	}
	return Rendered{
		Name: name,
		URL:  `<a href="` + n.Base + `.html">` + name + `</a>`,
	}
}
