// Package main provides the entry point for the portage CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/config"
	"github.com/jofu-tofu/portage/internal/envfile"
	"github.com/jofu-tofu/portage/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// Commands stay independently testable without shared mutable state.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// newPrinter builds a printer for the command's stdout, honoring the
// --json and --color persistent flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(w))
	return output.NewPrinter(w, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the portage CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portage",
		Short: "Convert AI-assistant workflow templates between platforms",
		Long: `Portage converts platform-neutral AI-assistant workflow templates into
platform-specific dialects.

Portage reads a markdown template, recognizes the semantic constructs it
contains (tool calls, sub-agent spawns, glob activation patterns, workspace
commands, and more), and rewrites each one the way the target platform
expects:
  - claude-code      .claude/commands slash commands
  - windsurf         .windsurf/rules rule files
  - github-copilot   .github/instructions instruction files

Constructs a platform cannot express are emulated or dropped, and every
approximation is reported as a conversion warning.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUsageError("no command specified. Run 'portage --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for per-project defaults such as
	// PORTAGE_PLATFORMS. Environment variables always take precedence
	// over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	// Define command groups and add commands
	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. ~/.config/portage/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "convert", Title: "Conversion Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "setup", Title: "Setup Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Conversion commands: convert, analyze, platforms
	addGroupedCommand(cmd, newConvertCmd(), "convert")
	addGroupedCommand(cmd, newAnalyzeCmd(), "convert")
	addGroupedCommand(cmd, newPlatformsCmd(), "convert")

	// Setup commands: install, uninstall
	addGroupedCommand(cmd, newInstallCmd(), "setup")
	addGroupedCommand(cmd, newUninstallCmd(), "setup")

	// Agent commands: mcp, skill
	addGroupedCommand(cmd, newMCPCmd(), "agent")
	addGroupedCommand(cmd, newSkillCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
