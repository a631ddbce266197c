package config

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/normalization"
)

// LogLevel is the minimum slog level emitted.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// OutputFormat selects the encoding of processed doclets.
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

const (
	DefaultCacheSize     = 256
	DefaultWatchDebounce = 300 * time.Millisecond
)

var (
	levelNormalizer = normalization.NewNormalizer("log level", map[string]LogLevel{
		"debug":   LogLevelDebug,
		"info":    LogLevelInfo,
		"warn":    LogLevelWarn,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
	}, LogLevelInfo)

	logFormatNormalizer = normalization.NewNormalizer("log format", map[string]LogFormat{
		"text": LogFormatText,
		"json": LogFormatJSON,
	}, LogFormatText)

	outputFormatNormalizer = normalization.NewNormalizer("output format", map[string]OutputFormat{
		"json": OutputFormatJSON,
		"yaml": OutputFormatYAML,
		"yml":  OutputFormatYAML,
	}, OutputFormatJSON)
)

// ParseOutputFormat normalizes a user supplied output format.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	f, err := outputFormatNormalizer.NormalizeWithError(raw)
	if err != nil {
		return "", errors.ValidationError(err.Error()).WithCause(err).Build()
	}
	return f, nil
}

// SlogLevel maps the configured level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputFormatJSON
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = DefaultCacheSize
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultWatchDebounce.String()
	}
	if cfg.Plugins == nil {
		cfg.Plugins = map[string]map[string]any{}
	}
}

// Validate normalizes enum fields in place and checks the remaining values.
func (c *Config) Validate() error {
	level, err := levelNormalizer.NormalizeWithError(string(c.Logging.Level))
	if err != nil {
		return errors.ConfigError(err.Error()).WithContext("field", "logging.level").Build()
	}
	c.Logging.Level = level

	format, err := logFormatNormalizer.NormalizeWithError(string(c.Logging.Format))
	if err != nil {
		return errors.ConfigError(err.Error()).WithContext("field", "logging.format").Build()
	}
	c.Logging.Format = format

	out, err := outputFormatNormalizer.NormalizeWithError(string(c.Output.Format))
	if err != nil {
		return errors.ConfigError(err.Error()).WithContext("field", "output.format").Build()
	}
	c.Output.Format = out

	if c.Cache.Size < 0 {
		return errors.ConfigError("cache size must not be negative").
			WithContext("field", "cache.size").
			WithContext("value", c.Cache.Size).
			Build()
	}

	if _, err := c.DebounceDuration(); err != nil {
		return errors.ConfigError("invalid watch debounce").
			WithCause(err).
			WithContext("field", "watch.debounce").
			WithContext("value", c.Watch.Debounce).
			Build()
	}
	return nil
}

// DebounceDuration parses Watch.Debounce, falling back to the default when unset.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return DefaultWatchDebounce, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.ValidationError("debounce must not be negative").Build()
	}
	return d, nil
}
