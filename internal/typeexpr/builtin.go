package typeexpr

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// builtinNames lists the primitive and standard type names that never get a link.
var builtinNames = []string{
	"boolean", "string", "expression", "*", "mixed", "number", "null",
	"undefined", "function", "object", "array", "void", "$q",
}

var builtins = func() map[string]struct{} {
	set := make(map[string]struct{}, len(builtinNames))
	for _, n := range builtinNames {
		set[n] = struct{}{}
	}
	return set
}()

// IsBuiltin reports whether name is a built-in type, ignoring case. Names are
// lowercased with the root locale, not case folded: `ſtring` is not `string`.
func IsBuiltin(name string) bool {
	// A Caser is not safe for concurrent use.
	_, ok := builtins[cases.Lower(language.Und).String(name)]
	return ok
}

// Builtins returns a copy of the built-in type names in declaration order.
func Builtins() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}
