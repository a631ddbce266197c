package ngdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestrictions(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"AE", []string{"Attribute", "Element"}},
		{"C", []string{"Class"}},
		{"EAC", []string{"Element", "Attribute", "Class"}},
		{"AX", []string{"Attribute", ""}},
		{"ae", []string{"", ""}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Restrictions(tt.in))
		})
	}
}

func TestDirectiveScope(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"true", ScopeChild},
		{"{}", ScopeIsolated},
		{"object", ScopeIsolated},
		{"false", ScopeShared},
		{"banana", ScopeNew},
		{"", ScopeNew},
		{"True", ScopeNew},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectiveScope(tt.in))
		})
	}
}
