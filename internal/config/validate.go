package config

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidStrategies = []string{"rebase", "merge"}
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// ValidateStrategy validates a strategy value against ValidStrategies.
// Exported for validating GIT_X_SYNC_STRATEGY.
func ValidateStrategy(strategy string) error {
	return validateEnum(strategy, "strategy", ValidStrategies)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateExcludePatterns checks that all patterns are valid path.Match syntax.
func validateExcludePatterns(patterns []string, contextInfo string) error {
	for i, pat := range patterns {
		if _, err := path.Match(pat, ""); err != nil {
			if contextInfo != "" {
				return fmt.Errorf("invalid sync.exclude[%d] %q in %s: %w", i, pat, contextInfo, err)
			}
			return fmt.Errorf("invalid sync.exclude[%d] %q: %w", i, pat, err)
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
