// Package config loads MindLab server configuration from a TOML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all MindLab configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Addr         string `toml:"addr"`
	DatabasePath string `toml:"database_path"`
	JWTSecret    string `toml:"jwt_secret"`
	SessionHours int    `toml:"session_hours"`
}

type LogConfig struct {
	Mode string `toml:"mode"` // "dev" or "prod"
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			DatabasePath: "mindlab.db",
			SessionHours: 24,
		},
		Log: LogConfig{
			Mode: "prod",
		},
	}
}

// Load reads config from path (or the standard locations when path is
// empty), applies MINDLAB_* environment overrides and returns it.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	if path != "" {
		paths = []string{path}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "mindlab", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "mindlab", "config.toml"))
	}

	return paths
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MINDLAB_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MINDLAB_DB"); v != "" {
		cfg.Server.DatabasePath = v
	}
	if v := os.Getenv("MINDLAB_JWT_SECRET"); v != "" {
		cfg.Server.JWTSecret = v
	}
	if v := os.Getenv("MINDLAB_SESSION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.SessionHours = n
		}
	}
	if v := os.Getenv("MINDLAB_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
}
