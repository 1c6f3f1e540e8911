package setup

import (
	"os"
	"path/filepath"

	"github.com/jofu-tofu/portage/internal/catalog"
	"github.com/jofu-tofu/portage/internal/config"
	"github.com/jofu-tofu/portage/internal/output"
)

// Install writes content to the platform's workflow directory under root,
// creating the directory tree as needed. Returns the path written.
func Install(root string, p catalog.Platform, name, content string) (string, error) {
	path, err := config.OutputPath(p, root, name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", output.NewEnvErrorWithCause("failed to create platform directory", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", output.NewEnvErrorWithCause("failed to write workflow file", err)
	}
	return path, nil
}

// Uninstall removes the named workflow file from the platform's directory
// under root. Removing a file that does not exist is not an error.
func Uninstall(root string, p catalog.Platform, name string) (string, error) {
	path, err := config.OutputPath(p, root, name)
	if err != nil {
		return "", err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", output.NewEnvErrorWithCause("failed to remove workflow file", err)
	}
	return path, nil
}
