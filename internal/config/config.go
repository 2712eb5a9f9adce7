// Package config loads engine configuration from a TOML file (spec §10's
// ambient configuration layer).
package config

import "github.com/BurntSushi/toml"

// Config holds the tunables a user may want to change without
// recompiling: transposition table size, default search depth, and
// where (if anywhere) to persist the table between runs.
type Config struct {
	TranspositionTableMB int    `toml:"transposition_table_mb"`
	DefaultDepth         int    `toml:"default_depth"`
	PersistPath          string `toml:"persist_path"`
}

// Default returns the configuration used when no file is found or
// supplied.
func Default() Config {
	return Config{
		TranspositionTableMB: 64,
		DefaultDepth:         6,
		PersistPath:          "",
	}
}

// Load reads a TOML file at path, applying its values on top of
// Default() for any field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
