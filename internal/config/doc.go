// Package config handles loading and validation of git-x configuration.
//
// Configuration is read from ~/.config/git-x/config.toml and merged with an
// optional per-repo .git-x.toml at the repository root.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--merge, --no-fetch, --yes)
//   - GIT_X_SYNC_STRATEGY env var (strategy only, applied by the CLI)
//   - Per-repo .git-x.toml
//   - Global config file
//   - Default values
//
// # Key Settings
//
//	[sync]
//	strategy = "rebase"          # or "merge"
//	fetch = true                 # fetch remotes before comparing
//	confirm = false              # prompt before sync-all changes branches
//	exclude = ["wip/*"]          # path.Match globs skipped by sync-all
//
//	[ui]
//	theme = "nord"               # color preset
//	mode = "auto"                # auto, light, or dark
//	nerdfont = false
//
// Local scalar settings replace global ones; local exclude patterns are
// appended to the global list.
package config
