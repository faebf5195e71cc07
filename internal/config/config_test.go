package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apimap.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("apimap:\n  prefix: /v2\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/v2", cfg.Prefix)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
apimap:
  source: app/Http/Controllers
  output: out/routes.txt
  format: json
  exclude_methods: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app/Http/Controllers", cfg.Source)
	assert.Equal(t, "out/routes.txt", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "/api", cfg.Prefix)
	assert.Equal(t, ".php", cfg.Extension)
	assert.Equal(t, "Controller", cfg.Suffix)
	assert.Empty(t, cfg.ExcludeMethods)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "apimap: [unclosed"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"upper case format", func(c *Config) { c.Format = "YAML" }, false},
		{"unknown format", func(c *Config) { c.Format = "xml" }, true},
		{"prefix without slash", func(c *Config) { c.Prefix = "api" }, true},
		{"empty source", func(c *Config) { c.Source = "" }, true},
		{"extension without dot", func(c *Config) { c.Extension = "php" }, true},
		{"empty exclude pattern", func(c *Config) { c.ExcludeMethods = []string{""} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
