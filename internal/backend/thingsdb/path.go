package thingsdb

import (
	"os"
	"path/filepath"
)

// groupContainer is the Things 3 group container under ~/Library.
const groupContainer = "Library/Group Containers/JLMPQHK86H.com.culturedcode.ThingsMac"

// DefaultDatabasePath locates the Things database in its group container.
// Newer Things versions keep it under a per-account ThingsData-* directory,
// older ones directly in the container. Returns "" if nothing matches.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	patterns := []string{
		filepath.Join(home, groupContainer, "ThingsData-*", "Things Database.thingsdatabase", "main.sqlite"),
		filepath.Join(home, groupContainer, "Things Database.thingsdatabase", "main.sqlite"),
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err == nil && len(matches) > 0 {
			return matches[0]
		}
	}
	return ""
}
