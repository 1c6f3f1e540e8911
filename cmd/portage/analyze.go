// Package main provides the entry point for the portage CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/catalog"
	"github.com/jofu-tofu/portage/internal/output"
	"github.com/jofu-tofu/portage/internal/recognize"
	"github.com/jofu-tofu/portage/internal/template"
)

// newAnalyzeCmd creates the analyze command.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <template>",
		Short: "List the semantic constructs recognized in a template",
		Long: `Analyze recognizes the semantic constructs in a workflow template
without converting it. For each construct it reports the type, the character
span in the source, and any extracted attributes.

Examples:
  portage analyze review.md
  portage analyze review.md --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0])
		},
	}
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, path string) error {
	printer := newPrinter(cmd)

	tmpl, err := template.Load(path)
	if err != nil {
		envErr := output.NewEnvErrorWithCause("failed to read template "+path, err)
		printer.Error(envErr)
		return envErr
	}

	analysis := recognize.Analyze(tmpl.Raw)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"template":   tmpl.Name(),
			"count":      len(analysis),
			"constructs": analysis,
		})
	}

	outputAnalysis(printer, tmpl.Name(), analysis)
	return nil
}

// outputAnalysis writes a human-readable construct listing.
func outputAnalysis(printer *output.Printer, name string, analysis catalog.ContentAnalysis) {
	printer.Section(name)
	if len(analysis) == 0 {
		printer.Println("No constructs recognized.")
		return
	}
	for _, c := range analysis {
		printer.Print("%-28s [%d,%d)", c.Type, c.Span.Start, c.Span.End)
		attr := c.Attr()
		switch {
		case attr.ToolName != "":
			printer.Print("  tool=%s", attr.ToolName)
		case attr.Pattern != "":
			printer.Print("  pattern=%s", attr.Pattern)
		case attr.Action != "":
			printer.Print("  action=%s", attr.Action)
		}
		printer.Print("  %s\n", snippet(c.RawText))
	}
	printer.Println()
	printer.Print("%d construct(s)\n", len(analysis))
}

// snippet returns the first line of raw text, truncated for display.
func snippet(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}
	const max = 60
	if len(raw) > max {
		return raw[:max-3] + "..."
	}
	return raw
}
