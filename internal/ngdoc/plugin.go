// Package ngdoc defines the AngularJS-style documentation tags (ngdoc, param,
// attribute, property, returns, restrict, scope, ...) and renders the type
// expressions of parameter-like tags into plain and link-annotated forms.
package ngdoc

import (
	"log/slog"

	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
	"git.home.luguber.info/inful/ngdoctags/internal/metrics"
	"git.home.luguber.info/inful/ngdoctags/internal/plugin"
	"git.home.luguber.info/inful/ngdoctags/internal/typeexpr"
)

const (
	PluginName    = "ngdoc"
	PluginVersion = "v1.0.0"
)

// Plugin is the ngdoc tag plugin.
type Plugin struct {
	plugin.BasePlugin

	cache    *typeexpr.Cache
	recorder metrics.Recorder
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithCache memoizes type expression parsing across tags.
func WithCache(c *typeexpr.Cache) Option {
	return func(p *Plugin) { p.cache = c }
}

// WithRecorder reports dropped untyped tags to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Plugin) {
		if r != nil {
			p.recorder = r
		}
	}
}

// New creates the plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Metadata implements plugin.Plugin.
func (p *Plugin) Metadata() plugin.PluginMetadata {
	caps := make([]string, len(Titles))
	copy(caps, Titles)
	return plugin.PluginMetadata{
		Name:         PluginName,
		Version:      PluginVersion,
		Type:         plugin.PluginTypeTags,
		Description:  "AngularJS documentation tags and type expression links",
		Capabilities: caps,
	}
}

// DefineTags implements plugin.Plugin.
func (p *Plugin) DefineTags(dict dictionary.Dictionary) error {
	defineTags(dict, paramParser{cache: p.cache, dropped: p.untyped})
	return nil
}

func (p *Plugin) untyped(title string, rec doclet.ParsedParameter) {
	p.recorder.IncUntypedParam(title)
	slog.Debug("Dropped tag without type expression",
		logfields.Tag(title),
		slog.String("name", rec.Name),
		slog.String("type", rec.TypeDefinition))
}
