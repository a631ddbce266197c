package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, OutputFormatJSON, cfg.Output.Format)
	assert.Equal(t, DefaultCacheSize, cfg.Cache.Size)
	assert.NotNil(t, cfg.Plugins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv("NGDOCTAGS_TEST_OUT", "/tmp/out.yaml")
	path := writeFile(t, "ngdoctags.yaml", `
logging:
  level: WARNING
  format: json
output:
  format: yml
  path: ${NGDOCTAGS_TEST_OUT}
cache:
  size: 16
watch:
  debounce: 1s
plugins:
  ngdoc:
    strict: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, OutputFormatYAML, cfg.Output.Format)
	assert.Equal(t, "/tmp/out.yaml", cfg.Output.Path)
	assert.Equal(t, 16, cfg.Cache.Size)
	assert.Equal(t, true, cfg.Plugins["ngdoc"]["strict"])

	d, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "ngdoctags.toml", `
[logging]
level = "debug"

[output]
format = "yaml"

[cache]
disabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, OutputFormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Cache.Disabled)
	assert.Equal(t, DefaultCacheSize, cfg.Cache.Size)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		category errors.ErrorCategory
	}{
		{"unknown field", "a.yaml", "bogus: 1\n", errors.CategoryConfig},
		{"malformed toml", "a.toml", "[logging\n", errors.CategoryConfig},
		{"bad level", "a.yaml", "logging:\n  level: loud\n", errors.CategoryConfig},
		{"bad output format", "a.yaml", "output:\n  format: xml\n", errors.CategoryConfig},
		{"negative cache", "a.yaml", "cache:\n  size: -1\n", errors.CategoryConfig},
		{"bad debounce", "a.yaml", "watch:\n  debounce: soon\n", errors.CategoryConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.category, errors.GetCategory(err))
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(missing)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	cfg, err := LoadOrDefault(missing)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatYAML, f)

	f, err = ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatJSON, f)

	_, err = ParseOutputFormat("csv")
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestInit(t *testing.T) {
	for _, name := range []string{"ngdoctags.yaml", "ngdoctags.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Init(path, false))

			err := Init(path, false)
			assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
			require.NoError(t, Init(path, true))

			t.Setenv("NGDOCTAGS_METRICS_FILE", "/tmp/ngdoctags.prom")
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "/tmp/ngdoctags.prom", cfg.Metrics.Textfile)
			assert.Contains(t, cfg.Plugins, "ngdoc")
		})
	}
}
