// Package paths resolves where sglint's own files live: project config,
// user config, baseline. Input discovery lives in pkg/sources.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigFileCandidates returns the config locations in precedence
// order: project dotfile, project file, user XDG config
func ConfigFileCandidates(root string) []string {
	return []string{
		filepath.Join(root, ".sglint.toml"),
		filepath.Join(root, "sglint.toml"),
		filepath.Join(xdg.ConfigHome, "sglint", "sglint.toml"),
	}
}

// FindConfigFile returns the first existing config file for a project
// root, or false when none exists (defaults-only run)
func FindConfigFile(root string) (string, bool) {
	for _, candidate := range ConfigFileCandidates(root) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// BaselineFile resolves a baseline path against the project root unless
// it is already absolute
func BaselineFile(root, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}
