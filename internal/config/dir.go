// Package config provides configuration-directory resolution and the
// per-platform output layout for portage.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the portage configuration directory.
//
// Resolution:
//   - $PORTAGE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/portage if set (respects XDG on any platform)
//   - %AppData%/portage on Windows
//   - ~/.config/portage on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("PORTAGE_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "portage")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "portage")
		}
	}

	// macOS and Linux: ~/.config/portage
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "portage")
}
