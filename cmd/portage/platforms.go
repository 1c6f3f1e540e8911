// Package main provides the entry point for the portage CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/config"
	"github.com/jofu-tofu/portage/internal/transform"
)

// platformInfo describes one target platform for structured output.
type platformInfo struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
	Notes     string `json:"notes,omitempty"`
}

// platformNotes summarizes each platform's capability level.
var platformNotes = map[string]string{
	"claude-code":    "native slash commands, sub-agents, and tool calls",
	"windsurf":       "rule files; sub-agent isolation and tool calls emulated",
	"github-copilot": "instruction files; separate-session emulation, 10-item working set",
}

// newPlatformsCmd creates the platforms command.
func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported target platforms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlatforms(cmd)
		},
	}
}

// runPlatforms executes the platforms command.
func runPlatforms(cmd *cobra.Command) error {
	printer := newPrinter(cmd)
	registry := transform.DefaultRegistry()

	infos := make([]platformInfo, 0, len(registry.Platforms()))
	for _, p := range registry.Platforms() {
		dir, err := config.PlatformDir(p, ".")
		if err != nil {
			dir = ""
		}
		infos = append(infos, platformInfo{
			Name:      string(p),
			Directory: dir,
			Notes:     platformNotes[string(p)],
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"platforms": infos})
	}

	printer.Section("Supported Platforms")
	for _, info := range infos {
		printer.KeyValue(info.Name, info.Directory)
		if info.Notes != "" {
			printer.Print("  %s\n", info.Notes)
		}
	}
	return nil
}
