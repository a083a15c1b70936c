package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gstoney/airmash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), false, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, airmash.DefaultMaxPacketLen, cfg.MaxPacketLen)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), true, "")
	assert.Error(t, err)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, "airmash.toml", `
addr = "127.0.0.1:9000"
ws_path = "/ws"
max_packet_len = 4096
room = "test-room"

[log]
level = "debug"
format = "json"
`)

	cfg, err := loadConfig(path, true, "")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/ws", cfg.WSPath)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	assert.Equal(t, 4096, cfg.MaxPacketLen)
	assert.Equal(t, "test-room", cfg.Room)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeFile(t, "airmash.toml", `adr = ":1"`)
	_, err := loadConfig(path, true, "")
	assert.ErrorContains(t, err, "adr")
}

func TestLoadConfig_Env(t *testing.T) {
	env := writeFile(t, ".env", "AIRMASH_CAPTURE_DIR=/tmp/captures\nAIRMASH_ADDR=:1111\n")
	t.Setenv("AIRMASH_ADDR", ":2222")
	t.Setenv("AIRMASH_LOG_LEVEL", "warn")

	cfg, err := loadConfig("", false, env)
	require.NoError(t, err)

	// The process environment wins over the .env file.
	assert.Equal(t, ":2222", cfg.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/captures", cfg.CaptureDir)
}

func TestLoadConfig_EnvInvalid(t *testing.T) {
	t.Setenv("AIRMASH_MAX_PACKET_LEN", "lots")
	_, err := loadConfig("", false, "")
	assert.ErrorContains(t, err, "AIRMASH_MAX_PACKET_LEN")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		desc   string
		mutate func(*Config)
	}{
		{"zero max packet len", func(c *Config) { c.MaxPacketLen = 0 }},
		{"negative max packet len", func(c *Config) { c.MaxPacketLen = -1 }},
		{"relative ws path", func(c *Config) { c.WSPath = "ws" }},
		{"relative metrics path", func(c *Config) { c.MetricsPath = "metrics" }},
		{"same paths", func(c *Config) { c.WSPath, c.MetricsPath = "/x", "/x" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.validate())
		})
	}

	assert.NoError(t, DefaultConfig().validate())
}
