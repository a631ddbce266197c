package plugin

import (
	"log/slog"
	"sort"
	"sync"

	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
)

// Registry manages plugin registration and discovery.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]map[string]Plugin // map[name]map[version]Plugin
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
// Returns an error if a plugin with the same name and version already exists.
func (r *Registry) Register(plugin Plugin) error {
	if plugin == nil {
		return errors.PluginError("cannot register nil plugin").Build()
	}

	metadata := plugin.Metadata()
	if err := metadata.Validate(); err != nil {
		return errors.WrapError(err, errors.CategoryPlugin, "invalid plugin metadata").Build()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.plugins[metadata.Name] == nil {
		r.plugins[metadata.Name] = make(map[string]Plugin)
	}
	if _, exists := r.plugins[metadata.Name][metadata.Version]; exists {
		return errors.PluginError("plugin already registered").
			WithContext(logfields.KeyPlugin, metadata.String()).
			Build()
	}

	r.plugins[metadata.Name][metadata.Version] = plugin
	return nil
}

// List returns all registered plugins ordered by name, then version.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Plugin
	for _, versions := range r.plugins {
		for _, plugin := range versions {
			result = append(result, plugin)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Metadata(), result[j].Metadata()
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Version < b.Version
	})
	return result
}

// InstallAll validates every registered plugin against its entry in configs
// (keyed by plugin name) and lets it define its tags on dict, in List order.
// Plugins listed later override tag definitions of earlier ones.
func (r *Registry) InstallAll(dict dictionary.Dictionary, configs map[string]map[string]any) error {
	for _, p := range r.List() {
		meta := p.Metadata()
		if err := p.Validate(configs[meta.Name]); err != nil {
			return errors.WrapError(err, errors.CategoryPlugin, "invalid plugin configuration").
				Fatal().
				WithContext(logfields.KeyPlugin, meta.Name).
				Build()
		}
		if err := p.DefineTags(dict); err != nil {
			return errors.WrapError(err, errors.CategoryPlugin, "failed to define plugin tags").
				Fatal().
				WithContext(logfields.KeyPlugin, meta.Name).
				Build()
		}
		slog.Debug("Plugin installed", logfields.Plugin(meta.String()))
	}
	return nil
}
