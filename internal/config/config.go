package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// SyncConfig holds branch synchronization settings
type SyncConfig struct {
	Strategy string   `toml:"strategy"` // "rebase" or "merge"
	Fetch    bool     `toml:"fetch"`    // fetch remotes before comparing
	Confirm  bool     `toml:"confirm"`  // ask before sync-all changes branches
	Exclude  []string `toml:"exclude"`  // glob patterns skipped by sync-all
}

// UIConfig holds display settings
type UIConfig struct {
	Theme    string `toml:"theme"`    // preset name: "default", "dracula", "nord", "gruvbox", "catppuccin", "none"
	Mode     string `toml:"mode"`     // "auto", "light", or "dark"
	Nerdfont bool   `toml:"nerdfont"` // use nerd font glyphs for status symbols
}

// Config holds the git-x configuration
type Config struct {
	Sync SyncConfig `toml:"sync"`
	UI   UIConfig   `toml:"ui"`
}

// DefaultStrategy is the reconciliation strategy when none is configured
const DefaultStrategy = "rebase"

// Default returns the default configuration
func Default() Config {
	return Config{
		Sync: SyncConfig{
			Strategy: DefaultStrategy,
			Fetch:    true,
		},
	}
}

// UseMerge reports whether the configured strategy is merge.
func (c Config) UseMerge() bool {
	return c.Sync.Strategy == "merge"
}

// Path returns the path to the global config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-x", "config.toml"), nil
}

// Load reads config from ~/.config/git-x/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path, filling unset fields with defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateEnum(cfg.Sync.Strategy, "sync.strategy", ValidStrategies); err != nil {
		return Default(), err
	}
	if err := validateExcludePatterns(cfg.Sync.Exclude, ""); err != nil {
		return Default(), err
	}
	if err := validateEnum(cfg.UI.Theme, "ui.theme", ValidThemeNames); err != nil {
		return Default(), err
	}
	if err := validateEnum(cfg.UI.Mode, "ui.mode", ValidThemeModes); err != nil {
		return Default(), err
	}

	if cfg.Sync.Strategy == "" {
		cfg.Sync.Strategy = DefaultStrategy
	}

	return cfg, nil
}

// String renders cfg as TOML.
func (c Config) String() string {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("# failed to encode config: %v\n", err)
	}
	return buf.String()
}

const defaultConfig = `# git-x configuration

[sync]
# How branches behind their upstream are reconciled: "rebase" or "merge".
# GIT_X_SYNC_STRATEGY and --merge override this per invocation.
strategy = "rebase"

# Fetch the remotes of tracked upstreams before comparing (--no-fetch skips).
# Dry runs never fetch.
fetch = true

# Ask for confirmation before "upstream sync-all" changes branches.
# Pass --yes to skip the prompt (required when not on a terminal).
confirm = false

# Branches matching these glob patterns are left out of "upstream sync-all".
# "*" does not match "/", so use "wip/*" for branches under wip/.
# exclude = ["wip/*", "archive/*"]

[ui]
# Color theme: "default", "dracula", "nord", "gruvbox", "catppuccin", or "none"
# theme = "default"

# Light or dark variant of the theme: "auto" detects the terminal background
# mode = "auto"

# Use nerd font glyphs for status symbols
nerdfont = false
`

// Init creates a default config file at ~/.config/git-x/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, InitFile(path, force)
}

// InitFile writes the default config to path.
func InitFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
