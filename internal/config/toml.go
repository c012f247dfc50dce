// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Words  WordsConfig  `toml:"words"`
	Server ServerConfig `toml:"server"`
	Game   GameConfig   `toml:"game"`
}

// WordsConfig maps word list settings.
type WordsConfig struct {
	Path *string `toml:"path"`
}

// ServerConfig maps host transport settings.
type ServerConfig struct {
	Addr *string `toml:"addr"`
}

// GameConfig maps terminal game settings.
type GameConfig struct {
	LogFile *string `toml:"log-file"`
	DBPath  *string `toml:"db-path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
