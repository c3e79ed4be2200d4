package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "generated_receipts", cfg.Receipt.OutputDir)
	assert.False(t, cfg.Locations.RemoteEnabled)
	assert.Equal(t, 10*time.Second, cfg.Locations.Timeout)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  mode: debug
receipt:
  output_dir: /tmp/recibos
  footer: Guichê Web
locations:
  remote_enabled: true
  timeout: 3s
logger:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "/tmp/recibos", cfg.Receipt.OutputDir)
	assert.Equal(t, "Guichê Web", cfg.Receipt.Footer)
	assert.True(t, cfg.Locations.RemoteEnabled)
	assert.Equal(t, 3*time.Second, cfg.Locations.Timeout)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	t.Run("prefixed variable", func(t *testing.T) {
		t.Setenv("RECIBO_SERVER_PORT", "7070")
		t.Setenv("RECIBO_RECEIPT_OUTPUT_DIR", "/srv/out")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "/srv/out", cfg.Receipt.OutputDir)
	})

	t.Run("short variable", func(t *testing.T) {
		t.Setenv("PORT", "6060")
		t.Setenv("RECIBO_IBGE_ENABLED", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 6060, cfg.Server.Port)
		assert.True(t, cfg.Locations.RemoteEnabled)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "mode", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: "server.mode"},
		{name: "output dir", mutate: func(c *Config) { c.Receipt.OutputDir = " " }, wantErr: "receipt.output_dir"},
		{name: "base url", mutate: func(c *Config) {
			c.Locations.RemoteEnabled = true
			c.Locations.BaseURL = ""
		}, wantErr: "locations.base_url"},
		{name: "timeout", mutate: func(c *Config) { c.Locations.Timeout = -time.Second }, wantErr: "locations.timeout"},
		{name: "logger format", mutate: func(c *Config) { c.Logger.Format = "xml" }, wantErr: "logger.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ToContainerConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Receipt.TemplatePath = "templates/recibo.xlsx"
	cfg.Receipt.IssuerName = "Guichê Web"

	cc := cfg.ToContainerConfig()

	assert.Equal(t, cfg.Receipt.OutputDir, cc.Storage.OutputDir)
	assert.Equal(t, "templates/recibo.xlsx", cc.Storage.TemplatePath)
	assert.Equal(t, "Guichê Web", cc.Receipt.IssuerName)
	assert.Equal(t, cfg.Locations.BaseURL, cc.Locations.BaseURL)
	assert.Equal(t, cfg.Server.Port, cc.Server.Port)
	assert.NoError(t, cc.Validate())
}
