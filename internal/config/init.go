package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
)

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Output:  OutputConfig{Format: OutputFormatJSON},
		Cache:   CacheConfig{Size: DefaultCacheSize},
		Metrics: MetricsConfig{Textfile: "${NGDOCTAGS_METRICS_FILE}"},
		Watch:   WatchConfig{Debounce: DefaultWatchDebounce.String()},
		Plugins: map[string]map[string]any{
			"ngdoc": {},
		},
	}
}

// Init writes an example configuration to configPath. An existing file is only
// replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := marshal(configPath, Example())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(cfg)
}
