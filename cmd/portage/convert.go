// Package main provides the entry point for the portage CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jofu-tofu/portage/internal/catalog"
	"github.com/jofu-tofu/portage/internal/output"
	"github.com/jofu-tofu/portage/internal/recognize"
	"github.com/jofu-tofu/portage/internal/setup"
	"github.com/jofu-tofu/portage/internal/template"
	"github.com/jofu-tofu/portage/internal/transform"
)

// convertResult is one platform's conversion outcome for structured output.
type convertResult struct {
	Platform string              `json:"platform"`
	Path     string              `json:"path,omitempty"`
	Content  string              `json:"content,omitempty"`
	Warnings []transform.Warning `json:"warnings"`
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var toFlag string
	var outputFlag string
	var dryRun bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "convert <template>",
		Short: "Convert a template to one or more platform dialects",
		Long: `Convert reads a platform-neutral workflow template, recognizes its
semantic constructs, and writes one rewritten file per target platform into
that platform's directory layout:

  claude-code      <output>/.claude/commands/<name>.md
  windsurf         <output>/.windsurf/rules/<name>.md
  github-copilot   <output>/.github/instructions/<name>.instructions.md

Constructs the target cannot express are emulated or dropped; each
approximation is reported as a warning. Warnings never block output unless
--strict is set.

Examples:
  portage convert review.md --to claude-code
  portage convert review.md --to windsurf,github-copilot --output ./proj
  portage convert review.md --dry-run
  portage convert review.md --strict --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], toFlag, outputFlag, dryRun, strict)
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "", "Comma-separated target platforms (default: all)")
	cmd.Flags().StringVar(&outputFlag, "output", ".", "Project root to write converted files under")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print converted content instead of writing files")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any conversion warning is emitted")

	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, path, toFlag, outputDir string, dryRun, strict bool) error {
	printer := newPrinter(cmd)

	platforms, err := parsePlatformList(toFlag)
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

	results := make([]convertResult, 0, len(platforms))
	warningCount := 0
	for _, p := range platforms {
		tr, err := registry.Get(p)
		if err != nil {
			usageErr := output.NewUsageError(err.Error())
			printer.Error(usageErr)
			return usageErr
		}
		res := tr.Transform(analysis, tmpl.Raw)
		warningCount += len(res.Warnings)

		r := convertResult{Platform: string(p), Warnings: res.Warnings}
		if dryRun {
			r.Content = res.Content
		} else {
			written, err := setup.Install(outputDir, p, tmpl.Name(), res.Content)
			if err != nil {
				printer.Error(err)
				return err
			}
			r.Path = written
		}
		results = append(results, r)
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{
			"template": tmpl.Name(),
			"results":  results,
		}); err != nil {
			return err
		}
	} else {
		outputConvertResults(printer, results, dryRun)
	}

	if strict && warningCount > 0 {
		return output.NewFailureError(fmt.Sprintf("%d conversion warning(s) with --strict", warningCount))
	}
	return nil
}

// parsePlatformList parses the --to flag value into platforms. When the
// flag is empty, $PORTAGE_PLATFORMS supplies the default; failing that,
// every supported platform is targeted.
func parsePlatformList(toFlag string) ([]catalog.Platform, error) {
	if strings.TrimSpace(toFlag) == "" {
		toFlag = os.Getenv("PORTAGE_PLATFORMS")
	}
	if strings.TrimSpace(toFlag) == "" {
		return catalog.AllPlatforms(), nil
	}
	var platforms []catalog.Platform
	for _, name := range strings.Split(toFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, err := catalog.ParsePlatform(name)
		if err != nil {
			return nil, output.NewUsageError(err.Error())
		}
		platforms = append(platforms, p)
	}
	if len(platforms) == 0 {
		return nil, output.NewUsageError("--to must name at least one platform")
	}
	return platforms, nil
}

// outputConvertResults writes human-readable conversion results.
func outputConvertResults(printer *output.Printer, results []convertResult, dryRun bool) {
	for _, r := range results {
		printer.Section(r.Platform)
		if dryRun {
			printer.Println(r.Content)
		} else {
			printer.KeyValue("wrote", r.Path)
		}
		outputWarnings(printer, r.Warnings)
		printer.Println()
	}
}

// outputWarnings writes warnings grouped by category, preserving emission
// order within each group.
func outputWarnings(printer *output.Printer, warnings []transform.Warning) {
	if len(warnings) == 0 {
		return
	}
	for _, category := range transform.AllWarningCategories() {
		for _, w := range warnings {
			if w.Category != category {
				continue
			}
			if w.Field != "" {
				printer.Warn("[%s] %s (%s)", w.Category, w.Message, w.Field)
			} else {
				printer.Warn("[%s] %s", w.Category, w.Message)
			}
			if w.Details != "" {
				printer.Stderr("    %s\n", w.Details)
			}
		}
	}
}
