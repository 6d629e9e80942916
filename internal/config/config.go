// Package config resolves punchclock settings from three layers:
// defaults, an optional TOML file, then environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the sqlite file backing the entry store.
	DBPath string `toml:"db_path"`
	// Track enables the event log collector on stderr.
	Track bool `toml:"track"`
}

// Default returns the configuration used when nothing else is set. The
// database lives under dir (normally ~/.punchclock).
func Default(dir string) Config {
	return Config{
		DBPath: filepath.Join(dir, "punchclock.db"),
		Track:  false,
	}
}

// Load resolves the effective configuration: Default(dir), overlaid with
// the TOML file at path when it exists, overlaid with environment
// variables. A missing or unreadable file is ignored; a malformed file is
// an error.
func Load(dir, path string) (Config, error) {
	cfg := Default(dir)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	if v := os.Getenv("PUNCHCLOCK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PUNCHCLOCK_TRACK"); v != "" {
		cfg.Track, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}
