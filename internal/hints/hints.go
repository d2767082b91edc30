// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when it was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-autop") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInvalidShortcode returns hints for a rejected shortcode name.
// Names copied with their brackets get a targeted suggestion.
func ForInvalidShortcode(name string) string {
	hints := []string{"names cannot be empty or contain spaces, brackets or slashes"}

	if trimmed := strings.Trim(name, "[]/"); trimmed != name && trimmed != "" {
		hints = append(hints, "use "+strconv.Quote(trimmed)+" without brackets")
	}

	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForWorkers returns a hint for an out-of-range --workers value.
func ForWorkers(maxWorkers int) string {
	return format("use a value between 0 (auto) and " + strconv.Itoa(maxWorkers))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
