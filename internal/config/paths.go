package config

import (
	"fmt"
	"path/filepath"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// PlatformDir returns the directory, relative to a project root, where a
// platform expects converted workflow files.
func PlatformDir(p catalog.Platform, root string) (string, error) {
	switch p {
	case catalog.PlatformClaudeCode:
		return filepath.Join(root, ".claude", "commands"), nil
	case catalog.PlatformWindsurf:
		return filepath.Join(root, ".windsurf", "rules"), nil
	case catalog.PlatformGitHubCopilot:
		return filepath.Join(root, ".github", "instructions"), nil
	}
	return "", fmt.Errorf("no directory layout for platform %q", p)
}

// OutputPath returns the full output path for a converted template.
// GitHub Copilot uses the ".instructions.md" suffix its loader expects;
// the other platforms use plain markdown.
func OutputPath(p catalog.Platform, root, name string) (string, error) {
	dir, err := PlatformDir(p, root)
	if err != nil {
		return "", err
	}
	if p == catalog.PlatformGitHubCopilot {
		return filepath.Join(dir, name+".instructions.md"), nil
	}
	return filepath.Join(dir, name+".md"), nil
}

// SettingsPath returns the settings file that installation merges into for
// a platform, or "" when the platform has no merge-target settings file.
func SettingsPath(p catalog.Platform, root string) string {
	if p == catalog.PlatformClaudeCode {
		return filepath.Join(root, ".claude", "settings.json")
	}
	return ""
}
