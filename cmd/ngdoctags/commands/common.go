package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ngdoctags/internal/config"
	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/metrics"
	"git.home.luguber.info/inful/ngdoctags/internal/ngdoc"
	"git.home.luguber.info/inful/ngdoctags/internal/plugin"
	"git.home.luguber.info/inful/ngdoctags/internal/typeexpr"
)

// Global carries state prepared once in AfterApply and shared by every command.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer

	cfg    *config.Config
	cfgErr error
}

// Config returns the loaded configuration, or the error loading it produced.
func (g *Global) Config() (*config.Config, error) {
	if g.cfgErr != nil {
		return nil, g.cfgErr
	}
	if g.cfg == nil {
		return config.Default(), nil
	}
	return g.cfg, nil
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (YAML or TOML)" default:"ngdoctags.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Process ProcessCmd `cmd:"" help:"Process documented entities and emit doclets"`
	Type    TypeCmd    `cmd:"" help:"Render a type expression"`
	Tags    TagsCmd    `cmd:"" help:"List the registered tags and their synonyms"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing: it loads the configuration and sets up
// logging once. A broken configuration is only reported by commands that need it.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	if g.Out == nil {
		g.Out = os.Stdout
	}
	g.cfg, g.cfgErr = config.LoadOrDefault(c.Config)

	level := slog.LevelInfo
	format := config.LogFormatText
	if g.cfg != nil {
		level = g.cfg.Logging.Level.SlogLevel()
		format = g.cfg.Logging.Format
	}
	if c.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)
	return nil
}

// setup wires the tag dictionary the way every processing command needs it.
func setup(cfg *config.Config, rec metrics.Recorder) (*dictionary.Registry, error) {
	var cache *typeexpr.Cache
	if !cfg.Cache.Disabled {
		c, err := typeexpr.NewCache(cfg.Cache.Size)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "invalid cache size").
				WithContext("size", cfg.Cache.Size).
				Build()
		}
		cache = c
	}

	reg := plugin.NewRegistry()
	if err := reg.Register(ngdoc.New(ngdoc.WithCache(cache), ngdoc.WithRecorder(rec))); err != nil {
		return nil, errors.WrapError(err, errors.CategoryPlugin, "failed to register plugin").Fatal().Build()
	}

	dict := dictionary.New()
	if err := reg.InstallAll(dict, cfg.Plugins); err != nil {
		return nil, err
	}
	return dict, nil
}
