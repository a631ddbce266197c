// Package plugin provides the plugin system ngdoctags loads tag plugins through.
// A plugin contributes tag definitions to a dictionary; the host then runs
// those definitions against every doc comment it processes.
package plugin

import (
	"fmt"

	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
)

// Plugin represents a tag plugin with metadata and a registration hook.
type Plugin interface {
	// Metadata returns the plugin's metadata (name, version, type, capabilities).
	Metadata() PluginMetadata

	// Validate checks if the plugin can run with the given configuration.
	Validate(config map[string]any) error

	// DefineTags registers the plugin's tag definitions with dict.
	DefineTags(dict dictionary.Dictionary) error
}

// PluginMetadata describes a plugin's identity and capabilities.
type PluginMetadata struct {
	// Name is the unique plugin identifier (e.g., "ngdoc").
	Name string

	// Version is the semantic version (e.g., "v1.0.0").
	Version string

	Type        PluginType
	Description string

	// Capabilities lists the tag titles the plugin defines.
	Capabilities []string
}

// String returns a human-readable representation of the plugin metadata.
func (m PluginMetadata) String() string {
	return fmt.Sprintf("%s@%s (%s)", m.Name, m.Version, m.Type)
}

// Validate checks if the plugin metadata is valid.
func (m PluginMetadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("invalid plugin type: %s", m.Type)
	}
	return nil
}

// BasePlugin provides a default Validate. Plugins can embed it.
type BasePlugin struct{}

// Validate is a no-op default implementation that accepts any configuration.
func (b *BasePlugin) Validate(map[string]any) error {
	return nil
}
