package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "ngdoctags.yaml"

// Config represents the application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Cache   CacheConfig   `yaml:"cache" toml:"cache"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
	Watch   WatchConfig   `yaml:"watch" toml:"watch"`

	// Plugins holds per-plugin settings keyed by plugin name.
	Plugins map[string]map[string]any `yaml:"plugins,omitempty" toml:"plugins,omitempty"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" toml:"level"`
	Format LogFormat `yaml:"format" toml:"format"`
}

// OutputConfig controls how processed doclets are written.
type OutputConfig struct {
	Format OutputFormat `yaml:"format" toml:"format"`
	// Path is the output file; empty writes to stdout.
	Path string `yaml:"path,omitempty" toml:"path,omitempty"`
}

// CacheConfig sizes the type expression cache.
type CacheConfig struct {
	Disabled bool `yaml:"disabled" toml:"disabled"`
	Size     int  `yaml:"size" toml:"size"`
}

// MetricsConfig names the node-exporter textfile metrics are written to; empty disables metrics.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty" toml:"textfile,omitempty"`
}

// WatchConfig tunes `process --watch`.
type WatchConfig struct {
	Debounce string `yaml:"debounce" toml:"debounce"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file. Files ending in .toml are
// decoded as TOML, everything else as YAML. Environment variables are expanded
// in the raw file after .env files have been loaded.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.NewError(errors.CategoryNotFound, "configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := decode(configPath, []byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configPath when it exists and falls back to Default otherwise.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if errors.HasCategory(err, errors.CategoryNotFound) {
		slog.Debug("No configuration file, using defaults", "path", configPath)
		return Default(), nil
	}
	return cfg, err
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func decode(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadEnvFile loads the first readable of .env and .env.local. Existing process
// environment variables are not overwritten.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load environment file", "path", envPath, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", envPath)
		return
	}
}
