package ngdoc

// restrictions maps directive restrict codes to their names.
var restrictions = map[rune]string{
	'A': "Attribute",
	'E': "Element",
	'C': "Class",
}

// Restrictions expands a restrict value such as "AE" into one name per code.
// Unrecognized codes keep their position as an empty string.
func Restrictions(value string) []string {
	out := make([]string, 0, len(value))
	for _, code := range value {
		out = append(out, restrictions[code])
	}
	return out
}

// Directive scope labels.
const (
	ScopeIsolated = "Isolated Scope"
	ScopeChild    = "Child Scope"
	ScopeShared   = "Shared Scope"
	ScopeNew      = "New Scope"
)

var scopeTypes = map[string]string{
	"object": ScopeIsolated,
	"{}":     ScopeIsolated,
	"true":   ScopeChild,
	"false":  ScopeShared,
}

// DirectiveScope maps a scope tag value to its label. Values outside the
// known set map to ScopeNew.
func DirectiveScope(value string) string {
	if label, ok := scopeTypes[value]; ok {
		return label
	}
	return ScopeNew
}
