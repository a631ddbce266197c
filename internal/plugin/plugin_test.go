package plugin

import (
	"testing"
)

// TestPluginMetadataValidation tests plugin metadata validation.
func TestPluginMetadataValidation(t *testing.T) {
	tests := []struct {
		name      string
		metadata  PluginMetadata
		expectErr bool
	}{
		{
			name: "valid metadata",
			metadata: PluginMetadata{
				Name:        "test-plugin",
				Version:     "v1.0.0",
				Type:        PluginTypeTags,
				Description: "Test plugin",
			},
			expectErr: false,
		},
		{
			name:      "missing name",
			metadata:  PluginMetadata{Version: "v1.0.0", Type: PluginTypeTags},
			expectErr: true,
		},
		{
			name:      "missing version",
			metadata:  PluginMetadata{Name: "test-plugin", Type: PluginTypeTags},
			expectErr: true,
		},
		{
			name:      "invalid type",
			metadata:  PluginMetadata{Name: "test-plugin", Version: "v1.0.0", Type: PluginType("theme")},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metadata.Validate()
			if tt.expectErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestPluginTypeValidation tests plugin type validation.
func TestPluginTypeValidation(t *testing.T) {
	tests := []struct {
		name       string
		pluginType PluginType
		expected   bool
	}{
		{"tags is valid", PluginTypeTags, true},
		{"invalid type", PluginType("transform"), false},
		{"empty type", PluginType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pluginType.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestPluginMetadataString tests the string representation.
func TestPluginMetadataString(t *testing.T) {
	m := PluginMetadata{Name: "ngdoc", Version: "v1.0.0", Type: PluginTypeTags}
	if got := m.String(); got != "ngdoc@v1.0.0 (tags)" {
		t.Errorf("String() = %q", got)
	}
}

// TestBasePluginDefaults tests the embedded default Validate.
func TestBasePluginDefaults(t *testing.T) {
	var b BasePlugin
	if err := b.Validate(nil); err != nil {
		t.Errorf("Validate() should accept any config, got %v", err)
	}
}
