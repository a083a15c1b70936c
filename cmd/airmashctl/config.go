package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gstoney/airmash"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr         string    `toml:"addr"`
	WSPath       string    `toml:"ws_path"`
	MetricsPath  string    `toml:"metrics_path"`
	MaxPacketLen int       `toml:"max_packet_len"`
	CaptureDir   string    `toml:"capture_dir"`
	Room         string    `toml:"room"`
	Log          LogConfig `toml:"log"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func DefaultConfig() Config {
	return Config{
		Addr:         ":3501",
		WSPath:       "/",
		MetricsPath:  "/metrics",
		MaxPacketLen: airmash.DefaultMaxPacketLen,
		Room:         "inspector",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// loadConfig reads the TOML file at path over the defaults, then applies
// environment overrides. Variables from envFile are used when the process
// environment does not set them. A missing file is only an error when
// required is set; a missing envFile is never one.
func loadConfig(path string, required bool, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !required:
		case err != nil:
			return Config{}, fmt.Errorf("load config: %w", err)
		default:
			if keys := meta.Undecoded(); len(keys) > 0 {
				return Config{}, fmt.Errorf("load config: unknown key %q", keys[0].String())
			}
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
		if m != nil {
			dotenv = m
		}
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return Config{}, err
	}

	return cfg, cfg.validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("AIRMASH_ADDR"); ok {
		c.Addr = strings.TrimSpace(v)
	}
	if v, ok := lookup("AIRMASH_LOG_LEVEL"); ok {
		c.Log.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup("AIRMASH_CAPTURE_DIR"); ok {
		c.CaptureDir = strings.TrimSpace(v)
	}
	if v, ok := lookup("AIRMASH_MAX_PACKET_LEN"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse AIRMASH_MAX_PACKET_LEN: %w", err)
		}
		c.MaxPacketLen = n
	}
	return nil
}

func (c Config) validate() error {
	if c.MaxPacketLen <= 0 {
		return fmt.Errorf("max_packet_len must be positive, got %d", c.MaxPacketLen)
	}
	if !strings.HasPrefix(c.WSPath, "/") {
		return fmt.Errorf("ws_path must start with /, got %q", c.WSPath)
	}
	if c.MetricsPath != "" && !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("metrics_path must start with /, got %q", c.MetricsPath)
	}
	if c.MetricsPath == c.WSPath {
		return fmt.Errorf("metrics_path and ws_path are both %q", c.WSPath)
	}
	if len(c.Room) > 255 {
		return errors.New("room name longer than 255 bytes")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
