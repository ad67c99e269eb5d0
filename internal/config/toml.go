package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps gameplay-related settings. Pointers distinguish "unset"
// from explicit zero values.
type GameConfig struct {
	DBPath        *string `toml:"db-path"`
	Save          *string `toml:"save"`
	Seed          *int64  `toml:"seed"`
	OfferPool     *int    `toml:"offer-pool"`
	CandidatePool *int    `toml:"candidate-pool"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an
// error.
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
