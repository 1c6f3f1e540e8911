// Package main provides the entry point for the portage CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/catalog"
	"github.com/jofu-tofu/portage/internal/config"
	"github.com/jofu-tofu/portage/internal/output"
	"github.com/jofu-tofu/portage/internal/recognize"
	"github.com/jofu-tofu/portage/internal/setup"
	"github.com/jofu-tofu/portage/internal/template"
	"github.com/jofu-tofu/portage/internal/transform"
)

// installResult is one platform's install outcome for structured output.
type installResult struct {
	Platform string              `json:"platform"`
	Path     string              `json:"path"`
	Settings string              `json:"settings,omitempty"`
	Warnings []transform.Warning `json:"warnings"`
}

// newInstallCmd creates the install command.
func newInstallCmd() *cobra.Command {
	var toFlag string
	var rootFlag string
	var global bool
	var gitignore bool

	cmd := &cobra.Command{
		Use:   "install <template>",
		Short: "Convert and install a template into platform directories",
		Long: `Install converts a template and writes the result into each target
platform's directory layout. For platforms with a merge-target settings file
(claude-code), the installed command is registered by folding new keys into
the existing settings without dropping anything already there.

By default files install under the current directory; --global installs
under your home directory instead.

Examples:
  portage install review.md --to claude-code
  portage install review.md --global
  portage install review.md --gitignore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], toFlag, rootFlag, global, gitignore)
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "", "Comma-separated target platforms (default: all)")
	cmd.Flags().StringVar(&rootFlag, "root", "", "Install under this directory instead of the current directory")
	cmd.Flags().BoolVar(&global, "global", false, "Install under the home directory instead of the current directory")
	cmd.Flags().BoolVar(&gitignore, "gitignore", false, "Add the managed portage section to .gitignore")

	return cmd
}

// runInstall executes the install command.
func runInstall(cmd *cobra.Command, path, toFlag, rootFlag string, global, gitignore bool) error {
	printer := newPrinter(cmd)

	platforms, err := parsePlatformList(toFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	root, err := resolveInstallRoot(rootFlag, global)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := template.Load(path)
	if err != nil {
		envErr := output.NewEnvErrorWithCause("failed to read template "+path, err)
		printer.Error(envErr)
		return envErr
	}

	analysis := recognize.Analyze(tmpl.Raw)
	registry := transform.DefaultRegistry()

	results := make([]installResult, 0, len(platforms))
	for _, p := range platforms {
		tr, err := registry.Get(p)
		if err != nil {
			usageErr := output.NewUsageError(err.Error())
			printer.Error(usageErr)
			return usageErr
		}
		res := tr.Transform(analysis, tmpl.Raw)

		written, err := setup.Install(root, p, tmpl.Name(), res.Content)
		if err != nil {
			printer.Error(err)
			return err
		}

		r := installResult{Platform: string(p), Path: written, Warnings: res.Warnings}
		if settingsPath := config.SettingsPath(p, root); settingsPath != "" {
			if err := setup.MergeSettingsFile(settingsPath, commandSettings(p, tmpl.Name())); err != nil {
				printer.Error(err)
				return err
			}
			r.Settings = settingsPath
		}
		results = append(results, r)
	}

	if gitignore {
		if err := setup.InstallGitignoreSection(root); err != nil {
			printer.Error(err)
			return err
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"template": tmpl.Name(),
			"root":     root,
			"results":  results,
		})
	}

	for _, r := range results {
		printer.Section(r.Platform)
		printer.KeyValue("installed", r.Path)
		if r.Settings != "" {
			printer.KeyValue("settings", r.Settings)
		}
		outputWarnings(printer, r.Warnings)
	}
	printer.Println()
	return nil
}

// commandSettings returns the settings keys an installed command registers
// for a merge-target platform.
func commandSettings(p catalog.Platform, name string) map[string]any {
	if p != catalog.PlatformClaudeCode {
		return nil
	}
	return map[string]any{
		"permissions": map[string]any{
			"allow": []any{fmt.Sprintf("SlashCommand:/%s", name)},
		},
	}
}

// resolveInstallRoot determines the install root based on scope. An
// explicit --root wins over --global.
func resolveInstallRoot(rootFlag string, global bool) (string, error) {
	if rootFlag != "" {
		return rootFlag, nil
	}
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", output.NewEnvErrorWithCause("failed to get home directory", err)
		}
		return home, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", output.NewEnvErrorWithCause("failed to get working directory", err)
	}
	return cwd, nil
}
