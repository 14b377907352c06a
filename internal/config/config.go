// Package config loads client configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config captures everything the client needs at startup. Every field has a
// working default so a fresh install runs with no config file at all.
type Config struct {
	// Home is the directory holding the session file and staged updates.
	// Empty means ~/.selfcare.
	Home string `yaml:"home" env:"SELFCARE_HOME"`

	LogLevel string `yaml:"log_level" env:"SELFCARE_LOG_LEVEL" env-default:"info"`

	// AllowlistURL is the fixed, non-tenant-scoped service that validates
	// tenant domains.
	AllowlistURL string `yaml:"allowlist_url" env:"SELFCARE_ALLOWLIST_URL" env-default:"https://landlord.mikrotiktech.co.ke"`

	// HTTPTimeout bounds every portal call; there is no retry layer on
	// top of it.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"SELFCARE_HTTP_TIMEOUT" env-default:"30s"`

	Update UpdateConfig `yaml:"update"`
}

// UpdateConfig configures the optional self-update channel. An empty
// manifest URL disables the update check entirely.
type UpdateConfig struct {
	ManifestURL string `yaml:"manifest_url" env:"SELFCARE_UPDATE_MANIFEST"`
}

// Load reads configuration from path when given, otherwise from the
// environment alone.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".selfcare")
	}
	return cfg, nil
}
