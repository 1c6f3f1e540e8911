// Package main provides the entry point for the portage CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/output"
)

// skillResult holds the structured skill documentation.
type skillResult struct {
	Concepts skillConcepts  `json:"concepts"`
	Workflow skillWorkflow  `json:"workflow"`
	Commands []skillCommand `json:"commands"`
	Contract skillContract  `json:"contract"`
}

// skillConcepts describes core portage concepts.
type skillConcepts struct {
	Definition string   `json:"definition"`
	Template   string   `json:"template"`
	Construct  string   `json:"construct"`
	Warning    string   `json:"warning"`
	KeyPoints  []string `json:"key_points"`
}

// skillWorkflow describes the typical workflow.
type skillWorkflow struct {
	Description string      `json:"description"`
	Phases      []workPhase `json:"phases"`
}

// workPhase describes a workflow phase.
type workPhase struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// skillCommand documents a single command.
type skillCommand struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Flags       []commandFlag `json:"flags,omitempty"`
}

// commandFlag documents a command flag.
type commandFlag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     string `json:"default,omitempty"`
}

// skillContract documents the output contract.
type skillContract struct {
	ExitCodes   []exitCode `json:"exit_codes"`
	ErrorFormat string     `json:"error_format"`
	JSONSupport string     `json:"json_support"`
}

// exitCode documents an exit code.
type exitCode struct {
	Code        int    `json:"code"`
	Meaning     string `json:"meaning"`
	Description string `json:"description"`
}

// newSkillCmd creates the skill command.
func newSkillCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Output skill documentation for building agent skills",
		Long: `Skill outputs documentation for building AI agent skills around portage.

This command provides:
  - Core concepts: templates, constructs, conversion warnings
  - Workflow patterns: how to use portage in a session
  - Command reference: all commands with flags
  - Contract: exit codes, error format, JSON support

Examples:
  portage skill                 # Output as markdown
  portage skill --format json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSkill(cmd, formatFlag)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "md", "Output format: md or json")

	return cmd
}

// runSkill executes the skill command.
func runSkill(cmd *cobra.Command, formatFlag string) error {
	printer := newPrinter(cmd)

	if formatFlag != "md" && formatFlag != "json" {
		err := output.NewUsageError("--format must be 'md' or 'json'")
		printer.Error(err)
		return err
	}

	result := buildSkillData()

	if printer.IsJSON() || formatFlag == "json" {
		return printer.WriteJSON(result)
	}

	outputSkillMarkdown(printer, result)
	return nil
}

// buildSkillData constructs the skill documentation data.
func buildSkillData() *skillResult {
	return &skillResult{
		Concepts: skillConcepts{
			Definition: "Portage converts platform-neutral AI-assistant workflow templates into platform-specific dialects.",
			Template:   "A template is a markdown workflow file, optionally with YAML frontmatter (name, description, globs, trigger).",
			Construct:  "A construct is a recognized semantic directive in a template, such as a tool call, sub-agent spawn, or glob activation pattern.",
			Warning:    "A conversion warning records one approximation: EMULATED, UNSUPPORTED, SECURITY, or LIMIT. Warnings never block output.",
			KeyPoints: []string{
				"Supported platforms: claude-code, windsurf, github-copilot",
				"Constructs a platform cannot express are emulated or dropped, never silently mistranslated",
				"When two constructs overlap, the one earlier in the document wins",
				"All commands support --json for structured output",
			},
		},
		Workflow: skillWorkflow{
			Description: "A typical session follows: analyze -> convert -> install",
			Phases: []workPhase{
				{Name: "Analyze", Command: "portage analyze review.md", Description: "Inspect what constructs a template contains."},
				{Name: "Preview", Command: "portage convert review.md --dry-run", Description: "Preview converted content and warnings."},
				{Name: "Convert", Command: "portage convert review.md --to windsurf", Description: "Write converted files into platform layouts."},
				{Name: "Install", Command: "portage install review.md", Description: "Install into a project, merging settings files."},
			},
		},
		Commands: buildSkillCommands(),
		Contract: skillContract{
			ExitCodes: []exitCode{
				{Code: 0, Meaning: "Success", Description: "Command completed successfully"},
				{Code: 1, Meaning: "Failure", Description: "Conversion failed, or warnings under --strict"},
				{Code: 2, Meaning: "Usage error", Description: "Bad arguments or unknown platform"},
				{Code: 3, Meaning: "Environment error", Description: "Unreadable template, unwritable output"},
			},
			ErrorFormat: `{"error": "message", "code": N}`,
			JSONSupport: "All commands support --json for structured output",
		},
	}
}

// buildSkillCommands returns the command reference.
func buildSkillCommands() []skillCommand {
	return []skillCommand{
		{Name: "convert", Description: "Convert a template to platform dialects",
			Usage: "portage convert <template> [flags]",
			Flags: []commandFlag{
				{Name: "--to", Description: "Comma-separated target platforms", Default: "all"},
				{Name: "--output", Description: "Project root to write under", Default: "."},
				{Name: "--dry-run", Description: "Print content instead of writing"},
				{Name: "--strict", Description: "Exit non-zero on any warning"},
			}},
		{Name: "analyze", Description: "List recognized constructs",
			Usage: "portage analyze <template>"},
		{Name: "platforms", Description: "List supported target platforms",
			Usage: "portage platforms"},
		{Name: "install", Description: "Convert and install into platform directories",
			Usage: "portage install <template> [flags]",
			Flags: []commandFlag{
				{Name: "--to", Description: "Comma-separated target platforms", Default: "all"},
				{Name: "--global", Description: "Install under the home directory"},
				{Name: "--gitignore", Description: "Add managed .gitignore section"},
			}},
		{Name: "uninstall", Description: "Remove an installed workflow",
			Usage: "portage uninstall <name> [flags]"},
		{Name: "mcp", Description: "Run as MCP server over stdio",
			Usage: "portage mcp"},
	}
}

// outputSkillMarkdown writes the skill data as markdown.
func outputSkillMarkdown(printer *output.Printer, result *skillResult) {
	printer.Println("# Portage Skill Documentation")
	printer.Println()

	printer.Println("## Core Concepts")
	printer.Println()
	printer.Print("**Portage**: %s\n\n", result.Concepts.Definition)
	printer.Print("**Template**: %s\n\n", result.Concepts.Template)
	printer.Print("**Construct**: %s\n\n", result.Concepts.Construct)
	printer.Print("**Warning**: %s\n\n", result.Concepts.Warning)
	printer.Println("### Key Points")
	printer.Println()
	for _, point := range result.Concepts.KeyPoints {
		printer.Print("- %s\n", point)
	}
	printer.Println()

	printer.Println("## Workflow Patterns")
	printer.Println()
	printer.Println(result.Workflow.Description)
	printer.Println()
	for _, phase := range result.Workflow.Phases {
		printer.Print("### %s\n**Command**: `%s`\n\n%s\n\n", phase.Name, phase.Command, phase.Description)
	}

	printer.Println("## Command Reference")
	printer.Println()
	for _, c := range result.Commands {
		printer.Print("### %s\n\n%s\n\n**Usage**: `%s`\n\n", c.Name, c.Description, c.Usage)
		if len(c.Flags) > 0 {
			printer.Println("**Flags**:")
			for _, flag := range c.Flags {
				if flag.Default != "" {
					printer.Print("- `%s`: %s (default: %s)\n", flag.Name, flag.Description, flag.Default)
				} else {
					printer.Print("- `%s`: %s\n", flag.Name, flag.Description)
				}
			}
			printer.Println()
		}
	}

	printer.Println("## Contract")
	printer.Println()
	printer.Print("**JSON Support**: %s\n\n", result.Contract.JSONSupport)
	printer.Print("**Error Format**: `%s`\n\n", result.Contract.ErrorFormat)
	printer.Println("### Exit Codes")
	printer.Println()
	printer.Println("| Code | Meaning | Description |")
	printer.Println("|------|---------|-------------|")
	for _, ec := range result.Contract.ExitCodes {
		printer.Print("| %d | %s | %s |\n", ec.Code, ec.Meaning, ec.Description)
	}
}
