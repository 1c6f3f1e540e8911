package transform

import (
	"fmt"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// copilotMaxChecklistItems is the checklist size above which Copilot output
// quality degrades and a batching advisory is appended.
const copilotMaxChecklistItems = 10

// copilotGlobNote is appended after a glob activation pattern.
const copilotGlobNote = "\n\n> Note: Copilot applies instructions to a limited working set. " +
	"Broad glob patterns may exceed it; narrow the pattern if files are missed."

// copilotTriggerNote is appended after a model-decision activation trigger.
const copilotTriggerNote = "\n\n> Note: Copilot does not activate instructions by model judgment. " +
	"Reference this instructions file explicitly in your prompt."

// copilotPermissionNote is appended after an enforced permission restriction.
const copilotPermissionNote = "\n\n> Note: GitHub Copilot cannot enforce this restriction. " +
	"Treat it as a strict requirement anyway."

// copilotPersonaNote is appended after a persona activation rule.
const copilotPersonaNote = "\n\n> Note: Copilot does not switch personas. " +
	"Apply this role's guidance directly in your responses."

// copilotBatchNote is appended after an oversized checklist.
const copilotBatchNote = "\n\n> Note: Process this checklist in batches of 10 or fewer items " +
	"to stay within Copilot's response limits."

// copilotToolRecommendations maps a named tool to a generic recommendation,
// since Copilot exposes no invocable tools at all.
var copilotToolRecommendations = map[string]string{
	"Glob":     "Use workspace search to locate matching files",
	"Grep":     "Use workspace search to find matching content",
	"Read":     "Open the file in the editor and review it",
	"Write":    "Create the file in the editor",
	"Edit":     "Edit the file in the editor",
	"Bash":     "Run the command in the integrated terminal",
	"Task":     "Work through the task step by step",
	"WebFetch": "Consult the referenced page manually",
}

// copilotTransformer rewrites templates for GitHub Copilot, the most
// constrained target: no sub-agents, no tools, no context isolation, no
// automatic activation, and a bounded working set.
type copilotTransformer struct{}

// NewCopilotTransformer returns the GitHub Copilot transformer.
func NewCopilotTransformer() Transformer {
	return copilotTransformer{}
}

func (copilotTransformer) Platform() catalog.Platform {
	return catalog.PlatformGitHubCopilot
}

func (t copilotTransformer) Transform(analysis catalog.ContentAnalysis, document string) Result {
	return runPass(t, analysis, document)
}

func (t copilotTransformer) rewrite(c *catalog.SemanticConstruct, _ string, led *Ledger) []Warning {
	switch c.Type {
	case catalog.AgentSpawn:
		return t.rewriteAgentSpawn(c, led)
	case catalog.ToolCall:
		return t.rewriteToolCall(c, led)
	case catalog.ContextSwitch:
		if !led.Propose(c.Span.Start, c.Span.End, "") {
			return nil
		}
		return []Warning{{
			Category: WarnUnsupported,
			Message:  "Context isolation directive removed",
			Details:  "GitHub Copilot has no execution-context isolation; the directive has no equivalent.",
			Field:    string(catalog.ContextSwitch),
		}}
	case catalog.PermissionReference:
		return t.rewritePermission(c, led)
	case catalog.GlobPattern:
		led.Propose(c.Span.End, c.Span.End, copilotGlobNote)
		return []Warning{{
			Category: WarnLimit,
			Message:  "Glob activation may exceed Copilot's working-set size",
			Field:    string(catalog.GlobPattern),
		}}
	case catalog.ModelDecisionTrigger:
		led.Propose(c.Span.End, c.Span.End, copilotTriggerNote)
		return []Warning{{
			Category: WarnEmulated,
			Message:  "Model-decision activation annotated with a manual-reference note",
			Field:    string(catalog.ModelDecisionTrigger),
		}}
	case catalog.SkillChaining:
		return t.rewriteSkillChaining(c, led)
	case catalog.ContextGatheringProtocol:
		// Manual context gathering matches how Copilot actually works.
		return nil
	case catalog.ActivationInstruction:
		return nil
	case catalog.WorkspaceCommand:
		// Native: @workspace is Copilot syntax.
		return nil
	case catalog.WorkingSetLimit:
		return nil
	case catalog.PersonaRule:
		led.Propose(c.Span.End, c.Span.End, copilotPersonaNote)
		return []Warning{{
			Category: WarnEmulated,
			Message:  "Persona activation annotated; Copilot cannot switch roles",
			Field:    string(catalog.PersonaRule),
		}}
	case catalog.AdvisoryWarning:
		return nil
	case catalog.VersionComment:
		return nil
	case catalog.TestCommand:
		return nil
	case catalog.ExecutionFlowSection:
		return nil
	case catalog.CheckpointCommit:
		return nil
	case catalog.ProgressTracking:
		return t.rewriteProgressTracking(c, led)
	}
	return nil
}

// rewriteAgentSpawn converts a sub-agent delegation into a manual hand-off
// instruction for the user.
func (copilotTransformer) rewriteAgentSpawn(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	task := extractSpawnTask(c.RawText)
	if task == "" {
		return nil
	}

	text := fmt.Sprintf("Complete %s in a separate chat session, then return here and continue.", task)
	if !led.Propose(c.Span.Start, c.Span.End, text) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "Sub-agent delegation rewritten as a manual hand-off instruction",
		Details:  "Copilot cannot spawn agents; the user must run the delegated work in another session.",
		Field:    string(catalog.AgentSpawn),
	}}
}

// rewriteToolCall converts a named-tool invocation into a generic
// recommendation from the Copilot lookup table.
func (copilotTransformer) rewriteToolCall(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	tool := c.Attr().ToolName
	if tool == "" {
		return nil
	}

	phrase, ok := copilotToolRecommendations[tool]
	if !ok {
		phrase = genericToolPhrase(tool)
	}
	if !led.Propose(c.Span.Start, c.Span.End, phrase) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  fmt.Sprintf("Tool invocation `%s` rewritten as a generic recommendation", tool),
		Field:    string(catalog.ToolCall),
	}}
}

// rewritePermission appends an advisory note unless the restriction is
// already advisory.
func (copilotTransformer) rewritePermission(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	if c.Attr().IsAdvisory {
		return nil
	}
	if !led.Propose(c.Span.End, c.Span.End, copilotPermissionNote) {
		return nil
	}
	return []Warning{{
		Category: WarnSecurity,
		Message:  "Permission restriction degrades to advisory guidance",
		Details:  "Copilot has no permission model; nothing stops the restriction being violated.",
		Field:    string(catalog.PermissionReference),
	}}
}

// rewriteSkillChaining converts a Claude-style "/name" invocation into a
// prose pointer at the equivalent instructions file. Copilot-style "#name"
// shorthands are already native and pass through.
func (copilotTransformer) rewriteSkillChaining(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	if hashSkillRe.MatchString(c.RawText) {
		return nil
	}
	m := slashSkillRe.FindStringSubmatch(c.RawText)
	if m == nil {
		return nil
	}

	text := fmt.Sprintf("Open and follow the `%s` instructions file", m[1])
	if !led.Propose(c.Span.Start, c.Span.End, text) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  fmt.Sprintf("Skill invocation `/%s` rewritten as an instructions-file reference", m[1]),
		Field:    string(catalog.SkillChaining),
	}}
}

// rewriteProgressTracking appends a batching advisory when a checklist
// exceeds what Copilot handles in one response.
func (copilotTransformer) rewriteProgressTracking(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	items := countCheckboxes(c.RawText)
	if items <= copilotMaxChecklistItems {
		return nil
	}
	if !led.Propose(c.Span.End, c.Span.End, copilotBatchNote) {
		return nil
	}
	return []Warning{{
		Category: WarnLimit,
		Message:  fmt.Sprintf("Checklist has %d items; Copilot handles long checklists poorly", items),
		Details:  "A batching advisory was appended after the checklist.",
		Field:    string(catalog.ProgressTracking),
	}}
}
