package transform

import (
	"strings"
	"testing"

	"github.com/jofu-tofu/portage/internal/catalog"
)

func TestCopilotContextSwitchDeleted(t *testing.T) {
	raw := "Fork a new context for this work."
	doc := "Before.\n" + raw + "\nAfter."
	analysis := catalog.ContentAnalysis{
		construct(t, doc, catalog.ContextSwitch, raw, nil),
	}

	res := NewCopilotTransformer().Transform(analysis, doc)

	if strings.Contains(res.Content, raw) {
		t.Errorf("context switch should be deleted:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "Before.") || !strings.Contains(res.Content, "After.") {
		t.Errorf("surrounding text must survive deletion:\n%s", res.Content)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("want 1 warning, got %d: %+v", len(res.Warnings), res.Warnings)
	}
	if res.Warnings[0].Category != WarnUnsupported {
		t.Errorf("category = %s, want UNSUPPORTED", res.Warnings[0].Category)
	}
}

func TestCopilotProgressTracking(t *testing.T) {
	buildChecklist := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString("- [ ] item\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	t.Run("long checklist gets batching advisory", func(t *testing.T) {
		raw := buildChecklist(12)
		doc := "# Plan\n\n" + raw + "\n\nDone."
		analysis := catalog.ContentAnalysis{
			construct(t, doc, catalog.ProgressTracking, raw, nil),
		}

		res := NewCopilotTransformer().Transform(analysis, doc)

		if !strings.Contains(res.Content, "batches of 10 or fewer") {
			t.Errorf("batching advisory missing:\n%s", res.Content)
		}
		if len(res.Warnings) != 1 || res.Warnings[0].Category != WarnLimit {
			t.Fatalf("want one LIMIT warning, got %+v", res.Warnings)
		}
		if !strings.Contains(res.Warnings[0].Message, "12") {
			t.Errorf("warning should report the item count: %q", res.Warnings[0].Message)
		}
	})

	t.Run("short checklist passes through", func(t *testing.T) {
		raw := buildChecklist(10)
		doc := "# Plan\n\n" + raw
		analysis := catalog.ContentAnalysis{
			construct(t, doc, catalog.ProgressTracking, raw, nil),
		}

		res := NewCopilotTransformer().Transform(analysis, doc)

		if res.Content != doc {
			t.Errorf("10 items is within the limit:\n%s", res.Content)
		}
		if len(res.Warnings) != 0 {
			t.Errorf("no warnings expected: %+v", res.Warnings)
		}
	})
}

func TestCopilotAgentSpawn(t *testing.T) {
	doc := "Spawn a subagent to handle the database migration"
	analysis := catalog.ContentAnalysis{
		construct(t, doc, catalog.AgentSpawn, doc, nil),
	}

	res := NewCopilotTransformer().Transform(analysis, doc)

	if !strings.Contains(res.Content, "Complete the database migration in a separate chat session") {
		t.Errorf("expected manual hand-off instruction:\n%s", res.Content)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Category != WarnEmulated {
		t.Errorf("want one EMULATED warning, got %+v", res.Warnings)
	}
}

func TestCopilotToolCall(t *testing.T) {
	t.Run("known tool", func(t *testing.T) {
		doc := "Use Grep tool to find call sites"
		analysis := catalog.ContentAnalysis{
			construct(t, doc, catalog.ToolCall, doc, &catalog.Attributes{ToolName: "Grep"}),
		}

		res := NewCopilotTransformer().Transform(analysis, doc)

		if !strings.Contains(res.Content, "Use workspace search to find matching content") {
			t.Errorf("got:\n%s", res.Content)
		}
		if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0].Message, "Grep") {
			t.Errorf("warning should mention the tool: %+v", res.Warnings)
		}
	})

	t.Run("unknown tool falls back", func(t *testing.T) {
		doc := "Use Frobnicate tool now"
		analysis := catalog.ContentAnalysis{
			construct(t, doc, catalog.ToolCall, doc, &catalog.Attributes{ToolName: "Frobnicate"}),
		}

		res := NewCopilotTransformer().Transform(analysis, doc)

		if !strings.Contains(res.Content, "Perform `Frobnicate` operation") {
			t.Errorf("got:\n%s", res.Content)
		}
	})
}

func TestCopilotGlobPatternAnnotated(t *testing.T) {
	raw := "globs: src/**/*.go"
	doc := "---\n" + raw + "\n---\nBody."
	analysis := catalog.ContentAnalysis{
		construct(t, doc, catalog.GlobPattern, raw, &catalog.Attributes{Pattern: "src/**/*.go"}),
	}

	res := NewCopilotTransformer().Transform(analysis, doc)

	if !strings.Contains(res.Content, raw) {
		t.Errorf("glob line must be preserved:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "limited working set") {
		t.Errorf("working-set advisory missing:\n%s", res.Content)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Category != WarnLimit {
		t.Errorf("want one LIMIT warning, got %+v", res.Warnings)
	}
}

func TestCopilotSkillChaining(t *testing.T) {
	t.Run("slash invocation rewritten", func(t *testing.T) {
		doc := "Then run /deploy-checklist before merging."
		raw := "run /deploy-checklist"
		analysis := catalog.ContentAnalysis{
			construct(t, doc, catalog.SkillChaining, raw, nil),
		}

		res := NewCopilotTransformer().Transform(analysis, doc)

		if !strings.Contains(res.Content, "Open and follow the `deploy-checklist` instructions file") {
			t.Errorf("got:\n%s", res.Content)
		}
	})

	t.Run("hash shorthand is native", func(t *testing.T) {
		doc := "Then use #deploy-checklist before merging."
		raw := "use #deploy-checklist"
		analysis := catalog.ContentAnalysis{
			construct(t, doc, catalog.SkillChaining, raw, nil),
		}

		res := NewCopilotTransformer().Transform(analysis, doc)

		if res.Content != doc {
			t.Errorf("hash shorthand must pass through:\n%s", res.Content)
		}
	})
}

func TestCopilotWorkspaceCommandNative(t *testing.T) {
	doc := "@workspace search all feature flags"
	analysis := catalog.ContentAnalysis{
		construct(t, doc, catalog.WorkspaceCommand, doc, &catalog.Attributes{Action: "search"}),
	}

	res := NewCopilotTransformer().Transform(analysis, doc)

	if res.Content != doc {
		t.Errorf("@workspace is native Copilot syntax:\n%s", res.Content)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("no warnings expected: %+v", res.Warnings)
	}
}
