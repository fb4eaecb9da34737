package config

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// UI settings are global-only and carried over by the copy.
	merged := *global

	if local.Sync.Strategy != "" {
		merged.Sync.Strategy = local.Sync.Strategy
	}
	if local.Sync.Fetch != nil {
		merged.Sync.Fetch = *local.Sync.Fetch
	}
	if local.Sync.Confirm != nil {
		merged.Sync.Confirm = *local.Sync.Confirm
	}

	// Exclude patterns append with dedup
	if len(local.Sync.Exclude) > 0 {
		merged.Sync.Exclude = appendUnique(global.Sync.Exclude, local.Sync.Exclude)
	}

	return &merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
