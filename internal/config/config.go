// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. The --config flag of the serve command
//
// Every value can also be overridden by its own environment variable.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// DatasetPath is a file path or http(s) URL of the dinosaur JSON.
	DatasetPath string `yaml:"dataset_path" env:"DATASET_PATH" env-required:"true"`

	// StoragePath is the SQLite catalog file. Empty keeps the catalog
	// in memory.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH"`

	// ImagesDir is served at /images/.
	ImagesDir string `yaml:"images_dir" env:"IMAGES_DIR" env-default:"static/images"`

	// Seed makes shuffles and fact choices reproducible when non-zero.
	Seed int64 `yaml:"seed" env:"RANDOM_SEED" env-default:"0"`

	// SessionTTL is how long an idle page session is kept. Zero means
	// the 30m default; values under a minute are raised to one minute.
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"30m"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// ErrNoPath is returned when neither CONFIG_PATH nor a flag names a file.
var ErrNoPath = errors.New("config path is not set: use --config flag or CONFIG_PATH env var")

// Path picks the config file: CONFIG_PATH wins over the flag value.
func Path(flagValue string) string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return flagValue
}

// Load reads, validates, and returns the application config.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	// Verify the file exists before trying to read it so the message is
	// clear rather than a cryptic "open: no such file" later.
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file, applies env overrides and
	// defaults, and checks env-required constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}
