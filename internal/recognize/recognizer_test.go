package recognize

import (
	"strings"
	"testing"

	"github.com/jofu-tofu/portage/internal/catalog"
)

const sampleTemplate = `---
description: Refactor helper workflow
globs: **/*.go
trigger: model_decision
---
<!-- version: 2 -->

# Refactor Workflow

## Step 0: Gather context
- Read the module layout
- Use Grep tool to find call sites

## Execution Flow

1. Spawn a subagent to handle the analysis
2. Use Glob tool to find test files
3. Run the tests after each change
4. Make a checkpoint commit when green

Never modify files under vendor/.

- [ ] analysis done
- [ ] tests green
- [x] plan approved

> Note: keep diffs small.
`

func findByType(a catalog.ContentAnalysis, typ catalog.ConstructType) []catalog.SemanticConstruct {
	var out []catalog.SemanticConstruct
	for _, c := range a {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

func TestAnalyzeSampleTemplate(t *testing.T) {
	analysis := Analyze(sampleTemplate)

	if err := analysis.Validate(sampleTemplate); err != nil {
		t.Fatalf("analysis invalid: %v", err)
	}

	wantTypes := []catalog.ConstructType{
		catalog.GlobPattern,
		catalog.ModelDecisionTrigger,
		catalog.VersionComment,
		catalog.ContextGatheringProtocol,
		catalog.ToolCall,
		catalog.ExecutionFlowSection,
		catalog.AgentSpawn,
		catalog.TestCommand,
		catalog.CheckpointCommit,
		catalog.PermissionReference,
		catalog.ProgressTracking,
		catalog.AdvisoryWarning,
	}
	for _, typ := range wantTypes {
		if len(findByType(analysis, typ)) == 0 {
			t.Errorf("expected at least one %s construct", typ)
		}
	}
}

func TestAnalyzeDocumentOrder(t *testing.T) {
	analysis := Analyze(sampleTemplate)

	for i := 1; i < len(analysis); i++ {
		if analysis[i].Span.Start < analysis[i-1].Span.Start {
			t.Fatalf("constructs out of document order at %d: %d after %d",
				i, analysis[i].Span.Start, analysis[i-1].Span.Start)
		}
	}
}

func TestAnalyzeAttributes(t *testing.T) {
	analysis := Analyze(sampleTemplate)

	t.Run("glob pattern extracted", func(t *testing.T) {
		globs := findByType(analysis, catalog.GlobPattern)
		if len(globs) != 1 {
			t.Fatalf("want 1 glob construct, got %d", len(globs))
		}
		if got := globs[0].Attr().Pattern; got != "**/*.go" {
			t.Errorf("pattern = %q, want **/*.go", got)
		}
	})

	t.Run("trigger field detected", func(t *testing.T) {
		triggers := findByType(analysis, catalog.ModelDecisionTrigger)
		if len(triggers) != 1 {
			t.Fatalf("want 1 trigger construct, got %d", len(triggers))
		}
		if !triggers[0].Attr().HasTriggerField {
			t.Error("trigger field form should set HasTriggerField")
		}
	})

	t.Run("tool names extracted", func(t *testing.T) {
		tools := findByType(analysis, catalog.ToolCall)
		if len(tools) != 2 {
			t.Fatalf("want 2 tool calls, got %d", len(tools))
		}
		names := []string{tools[0].Attr().ToolName, tools[1].Attr().ToolName}
		if names[0] != "Grep" || names[1] != "Glob" {
			t.Errorf("tool names = %v, want [Grep Glob]", names)
		}
	})

	t.Run("step 0 detected", func(t *testing.T) {
		protos := findByType(analysis, catalog.ContextGatheringProtocol)
		if len(protos) == 0 {
			t.Fatal("want a context-gathering construct")
		}
		if !protos[0].Attr().HasStep0 {
			t.Error("Step 0 heading should set HasStep0")
		}
		if !strings.Contains(protos[0].RawText, "Read the module layout") {
			t.Errorf("step 0 block should span its list items: %q", protos[0].RawText)
		}
	})

	t.Run("checklist spans all items", func(t *testing.T) {
		lists := findByType(analysis, catalog.ProgressTracking)
		if len(lists) != 1 {
			t.Fatalf("want 1 checklist, got %d", len(lists))
		}
		for _, item := range []string{"analysis done", "tests green", "plan approved"} {
			if !strings.Contains(lists[0].RawText, item) {
				t.Errorf("checklist missing item %q: %q", item, lists[0].RawText)
			}
		}
	})
}

func TestAnalyzePermissionAdvisory(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		advisory bool
	}{
		{name: "enforced", line: "Never modify files under secrets/.", advisory: false},
		{name: "advisory keyword", line: "Do not edit vendor files (advisory).", advisory: true},
		{name: "recommended", line: "It is recommended you do not touch generated code.", advisory: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Analyze(tt.line)
			perms := findByType(analysis, catalog.PermissionReference)
			if len(perms) != 1 {
				t.Fatalf("want 1 permission construct, got %d in %q", len(perms), tt.line)
			}
			if got := perms[0].Attr().IsAdvisory; got != tt.advisory {
				t.Errorf("IsAdvisory = %v, want %v", got, tt.advisory)
			}
		})
	}
}

func TestAnalyzeOverlappingConstructsAllowed(t *testing.T) {
	doc := "@workspace search then Use Glob tool to scan"
	analysis := Analyze(doc)

	ws := findByType(analysis, catalog.WorkspaceCommand)
	tc := findByType(analysis, catalog.ToolCall)
	if len(ws) != 1 || len(tc) != 1 {
		t.Fatalf("want one of each, got workspace=%d tool=%d", len(ws), len(tc))
	}
	if !ws[0].Span.Overlaps(tc[0].Span) {
		t.Error("expected overlapping spans for nested constructs")
	}
	if analysis[0].Type != catalog.WorkspaceCommand {
		t.Errorf("enclosing construct must come first, got %s", analysis[0].Type)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	if got := Analyze(""); len(got) != 0 {
		t.Errorf("empty document should yield no constructs, got %d", len(got))
	}
}
