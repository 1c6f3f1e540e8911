package setup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jofu-tofu/portage/internal/output"
)

const (
	// GitignoreMarkerBegin marks the start of portage-managed ignore rules.
	GitignoreMarkerBegin = "# BEGIN portage"
	// GitignoreMarkerEnd marks the end of portage-managed ignore rules.
	GitignoreMarkerEnd = "# END portage"
)

// GitignoreContent is the managed ignore section for converted workflow
// output that should stay out of version control.
var GitignoreContent = GitignoreMarkerBegin + `
.portage-cache/
*.portage.bak
` + GitignoreMarkerEnd

// IsGitignoreSectionInstalled checks if the portage section exists in a
// gitignore file.
func IsGitignoreSectionInstalled(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), GitignoreMarkerBegin)
}

// InstallGitignoreSection adds or updates the portage section in the
// .gitignore under root, creating the file when absent.
func InstallGitignoreSection(root string) error {
	path := filepath.Join(root, ".gitignore")

	var content string
	existing, err := os.ReadFile(path)
	if err == nil {
		content = RemoveGitignoreSectionFromContent(string(existing))
	} else if !os.IsNotExist(err) {
		return output.NewEnvErrorWithCause("failed to read .gitignore", err)
	}

	content = strings.TrimRight(content, "\n")
	if content != "" {
		content += "\n\n"
	}
	content += GitignoreContent + "\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return output.NewEnvErrorWithCause("failed to write .gitignore", err)
	}
	return nil
}

// RemoveGitignoreSection removes the portage section from the .gitignore
// under root. A missing file is not an error.
func RemoveGitignoreSection(root string) error {
	path := filepath.Join(root, ".gitignore")

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return output.NewEnvErrorWithCause("failed to read .gitignore", err)
	}

	newContent := RemoveGitignoreSectionFromContent(string(content))
	if strings.TrimSpace(newContent) == "" {
		if err := os.Remove(path); err != nil {
			return output.NewEnvErrorWithCause("failed to remove .gitignore", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(newContent), 0o644); err != nil {
		return output.NewEnvErrorWithCause("failed to write .gitignore", err)
	}
	return nil
}

// RemoveGitignoreSectionFromContent strips the portage-managed section from
// a content string, preserving everything else.
func RemoveGitignoreSectionFromContent(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inSection := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), GitignoreMarkerBegin) {
			inSection = true
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), GitignoreMarkerEnd) {
			inSection = false
			continue
		}
		if !inSection {
			result = append(result, line)
		}
	}

	finalContent := strings.Join(result, "\n")
	for strings.Contains(finalContent, "\n\n\n") {
		finalContent = strings.ReplaceAll(finalContent, "\n\n\n", "\n\n")
	}

	return strings.TrimRight(finalContent, "\n") + "\n"
}
