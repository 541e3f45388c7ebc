package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pmx-registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, "127.0.0.1:50001", cfg.Addr())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
port: "6000"
persistence:
  inputs_path: /var/lib/pmx/inputs.json
  coalesce_window: 250ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "6000", cfg.Port)
	require.Equal(t, "127.0.0.1", cfg.ListenAddress, "unset keys keep their defaults")
	require.Equal(t, "/var/lib/pmx/inputs.json", cfg.Persistence.InputsPath)
	require.Equal(t, "pmx_registry_outputs.json", cfg.Persistence.OutputsPath)
	require.Equal(t, 250*time.Millisecond, cfg.Persistence.CoalesceWindow)
	require.Equal(t, BackendFile, cfg.Persistence.Backend)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "port: [unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"negative concurrency", func(c *Config) { c.MaxConcurrentRequests = -1 }},
		{"unknown backend", func(c *Config) { c.Persistence.Backend = "s3" }},
		{"redis without address", func(c *Config) {
			c.Persistence.Backend = BackendRedis
			c.Persistence.Redis.Address = ""
		}},
		{"empty inputs path", func(c *Config) { c.Persistence.InputsPath = "" }},
		{"same paths", func(c *Config) { c.Persistence.OutputsPath = c.Persistence.InputsPath }},
		{"negative window", func(c *Config) { c.Persistence.CoalesceWindow = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, Defaults().Validate())
}

func TestDefaultSeeds(t *testing.T) {
	inputs := DefaultInputs()
	require.Len(t, inputs, 9)
	require.Equal(t, "DSMPL", inputs[0].Name)
	require.Equal(t, "Cobalt 8m", inputs[8].Name)

	outputs := DefaultOutputs()
	require.Len(t, outputs, 3)

	// Each call returns a fresh slice.
	inputs[0].Name = "changed"
	require.Equal(t, "DSMPL", DefaultInputs()[0].Name)
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "pmx-registry.example.yaml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "pmx:registry:", cfg.Persistence.Redis.KeyPrefix)
	require.Zero(t, cfg.Persistence.CoalesceWindow)
}
