package plugin

// PluginType identifies the category of plugin.
type PluginType string

const (
	// PluginTypeTags contributes comment tag definitions.
	PluginTypeTags PluginType = "tags"
)

// IsValid returns true if the plugin type is recognized.
func (t PluginType) IsValid() bool {
	return t == PluginTypeTags
}

// String returns the string representation of the plugin type.
func (t PluginType) String() string {
	return string(t)
}
