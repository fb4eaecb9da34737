package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file at the repository root
const LocalConfigFileName = ".git-x.toml"

// LocalConfig holds per-repo configuration overrides from .git-x.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Sync LocalSync `toml:"sync"`
}

// LocalSync holds local sync overrides
type LocalSync struct {
	Strategy string   `toml:"strategy"`
	Fetch    *bool    `toml:"fetch"`
	Confirm  *bool    `toml:"confirm"`
	Exclude  []string `toml:"exclude"` // appended to global
}

// LoadLocal reads a per-repo .git-x.toml config from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := validateEnum(local.Sync.Strategy, "sync.strategy", ValidStrategies); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateExcludePatterns(local.Sync.Exclude, configFile); err != nil {
		return nil, err
	}

	return &local, nil
}
