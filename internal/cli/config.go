package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backends selectable in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the on-disk configuration, read from
// $XDG_CONFIG_HOME/signet/config.toml (or ~/.config/signet/config.toml).
// Flags override config values, config overrides built-in defaults.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // "file" (default) or "redis"
	Dir           string `toml:"dir"`     // file backend directory override
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// RenderConfig holds default render preferences.
type RenderConfig struct {
	Style  string `toml:"style"`  // default plot style (C, N, or P)
	Format string `toml:"format"` // default artifact format
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
		},
		Render: RenderConfig{
			Style:  "P",
			Format: "svg",
		},
	}
}

// LoadConfig reads the config file, returning defaults when the file is
// absent or unreadable. A malformed file is ignored rather than fatal -
// the CLI must stay usable without configuration.
func LoadConfig() Config {
	cfg := DefaultConfig()
	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// configPath returns the config file path using XDG conventions.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
