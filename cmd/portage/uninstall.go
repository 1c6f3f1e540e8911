// Package main provides the entry point for the portage CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/setup"
)

// newUninstallCmd creates the uninstall command.
func newUninstallCmd() *cobra.Command {
	var toFlag string
	var rootFlag string
	var global bool
	var gitignore bool

	cmd := &cobra.Command{
		Use:   "uninstall <name>",
		Short: "Remove an installed workflow from platform directories",
		Long: `Uninstall removes a previously installed workflow file from each target
platform's directory. Settings keys merged at install time are left in place;
removal never deletes data portage did not write.

Examples:
  portage uninstall review --to claude-code
  portage uninstall review --gitignore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd, args[0], toFlag, rootFlag, global, gitignore)
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "", "Comma-separated target platforms (default: all)")
	cmd.Flags().StringVar(&rootFlag, "root", "", "Uninstall from this directory instead of the current directory")
	cmd.Flags().BoolVar(&global, "global", false, "Uninstall from the home directory instead of the current directory")
	cmd.Flags().BoolVar(&gitignore, "gitignore", false, "Also remove the managed portage section from .gitignore")

	return cmd
}

// runUninstall executes the uninstall command.
func runUninstall(cmd *cobra.Command, name, toFlag, rootFlag string, global, gitignore bool) error {
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

	removed := make([]string, 0, len(platforms))
	for _, p := range platforms {
		path, err := setup.Uninstall(root, p, name)
		if err != nil {
			printer.Error(err)
			return err
		}
		removed = append(removed, path)
	}

	if gitignore {
		if err := setup.RemoveGitignoreSection(root); err != nil {
			printer.Error(err)
			return err
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"name":    name,
			"root":    root,
			"removed": removed,
		})
	}

	for _, path := range removed {
		printer.KeyValue("removed", path)
	}
	return nil
}
