package transform

import (
	"fmt"
	"strings"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// windsurfSubagentNote is appended after a rewritten agent-spawn directive.
const windsurfSubagentNote = "\n\n> Note: Sub-agent isolation is not available in Windsurf. " +
	"Complete each step in the current session before moving on."

// windsurfContextNote replaces a context-switch directive.
const windsurfContextNote = "> Note: Windsurf runs in a single session. " +
	"Continue in the current context instead of forking a new one."

// windsurfPermissionNote is appended after an enforced permission restriction.
const windsurfPermissionNote = "\n\n> Note: This restriction is advisory in Windsurf and cannot " +
	"be technically enforced. Follow it as written."

// windsurfSkillNote is appended after a skill-invocation shorthand.
const windsurfSkillNote = "\n\n> Note: Windsurf has no skill invocation. Apply the referenced " +
	"workflow's steps inline instead."

// windsurfToolActions maps a named tool to the plain-language action phrase
// Windsurf users perform instead. Unknown tools fall back to a generic phrase.
var windsurfToolActions = map[string]string{
	"Glob":     "Find files using pattern search",
	"Grep":     "Search file contents",
	"Read":     "Open and review the file",
	"Write":    "Create or overwrite the file",
	"Edit":     "Modify the file directly",
	"Bash":     "Run the command in the terminal",
	"Task":     "Work through the task inline",
	"WebFetch": "Fetch and review the page content",
}

// windsurfWorkspaceActions maps a structured @workspace action to Windsurf
// phrasing. The trailing query is always preserved.
var windsurfWorkspaceActions = map[string]string{
	"search":  "Search across the entire codebase for",
	"analyze": "Analyze the structure of the codebase:",
}

// windsurfTransformer rewrites templates for Windsurf. Windsurf understands
// glob- and model-decision-based rule activation natively but has no
// sub-agents, named tools, skills, or enforced permissions.
type windsurfTransformer struct{}

// NewWindsurfTransformer returns the Windsurf transformer.
func NewWindsurfTransformer() Transformer {
	return windsurfTransformer{}
}

func (windsurfTransformer) Platform() catalog.Platform {
	return catalog.PlatformWindsurf
}

func (t windsurfTransformer) Transform(analysis catalog.ContentAnalysis, document string) Result {
	return runPass(t, analysis, document)
}

func (t windsurfTransformer) rewrite(c *catalog.SemanticConstruct, _ string, led *Ledger) []Warning {
	switch c.Type {
	case catalog.AgentSpawn:
		return t.rewriteAgentSpawn(c, led)
	case catalog.ToolCall:
		return t.rewriteToolCall(c, led)
	case catalog.ContextSwitch:
		led.Propose(c.Span.Start, c.Span.End, windsurfContextNote)
		return []Warning{{
			Category: WarnEmulated,
			Message:  "Context isolation replaced with a single-session advisory note",
			Field:    string(catalog.ContextSwitch),
		}}
	case catalog.PermissionReference:
		return t.rewritePermission(c, led)
	case catalog.GlobPattern:
		// Native: Windsurf rules activate on glob patterns.
		return nil
	case catalog.ModelDecisionTrigger:
		// Native: Windsurf supports model-decision activation.
		return nil
	case catalog.SkillChaining:
		led.Propose(c.Span.End, c.Span.End, windsurfSkillNote)
		return []Warning{{
			Category: WarnEmulated,
			Message:  "Skill invocation annotated; Windsurf cannot chain into named skills",
			Field:    string(catalog.SkillChaining),
		}}
	case catalog.ContextGatheringProtocol:
		return t.rewriteContextGathering(c, led)
	case catalog.ActivationInstruction:
		return nil
	case catalog.WorkspaceCommand:
		return t.rewriteWorkspace(c, led)
	case catalog.WorkingSetLimit:
		return nil
	case catalog.PersonaRule:
		// Windsurf rules can describe persona behavior directly.
		return nil
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
		return nil
	}
	return nil
}

// rewriteAgentSpawn converts a sub-agent delegation into sequential inline
// instructions. Without an extractable task the construct passes through.
func (windsurfTransformer) rewriteAgentSpawn(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	task := extractSpawnTask(c.RawText)
	if task == "" {
		return nil
	}

	text := fmt.Sprintf("Execute the following %s steps sequentially:", task) + windsurfSubagentNote
	if !led.Propose(c.Span.Start, c.Span.End, text) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "Sub-agent delegation rewritten as sequential inline instructions",
		Details:  "Windsurf has no isolated sub-agents; the delegated work runs in the main session.",
		Field:    string(catalog.AgentSpawn),
	}}
}

// rewriteToolCall converts a named-tool invocation into a human-readable
// action phrase, preserving any trailing "to <purpose>" clause.
func (windsurfTransformer) rewriteToolCall(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	tool := c.Attr().ToolName
	if tool == "" {
		return nil
	}

	phrase, ok := windsurfToolActions[tool]
	if !ok {
		phrase = genericToolPhrase(tool)
	}
	if purpose := extractToolPurpose(c.RawText); purpose != "" {
		phrase += " " + purpose
	}
	if !led.Propose(c.Span.Start, c.Span.End, phrase) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  fmt.Sprintf("Tool invocation `%s` rewritten as a plain-language action", tool),
		Details:  "Windsurf cannot call named tools; the instruction describes the equivalent action.",
		Field:    string(catalog.ToolCall),
	}}
}

// rewritePermission appends a compliance advisory unless the restriction is
// already advisory. Only enforced restrictions degrade, so only those warn.
func (windsurfTransformer) rewritePermission(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	if c.Attr().IsAdvisory {
		return nil
	}
	if !led.Propose(c.Span.End, c.Span.End, windsurfPermissionNote) {
		return nil
	}
	return []Warning{{
		Category: WarnSecurity,
		Message:  "Permission restriction degrades to advisory guidance",
		Details:  "Windsurf has no permission enforcement; the restriction relies on model compliance.",
		Field:    string(catalog.PermissionReference),
	}}
}

// rewriteContextGathering deletes a manual gather-context-first protocol;
// Windsurf rules activate with context already in scope.
func (windsurfTransformer) rewriteContextGathering(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	if !c.Attr().HasStep0 {
		return nil
	}
	if !led.Propose(c.Span.Start, c.Span.End, "") {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "Manual context-gathering step removed",
		Details:  "Windsurf gathers context automatically on rule activation.",
		Field:    string(catalog.ContextGatheringProtocol),
	}}
}

// rewriteWorkspace converts a Copilot @workspace directive into whole-codebase
// phrasing. The trailing query is preserved whether or not a structured
// action was extracted.
func (windsurfTransformer) rewriteWorkspace(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	action := strings.ToLower(c.Attr().Action)
	extracted, query := extractWorkspaceQuery(c.RawText)
	if action == "" {
		action = strings.ToLower(extracted)
	}

	phrase, ok := windsurfWorkspaceActions[action]
	if !ok {
		phrase = "Search the whole codebase for"
	}
	if query != "" {
		phrase += " " + query
	}
	if !led.Propose(c.Span.Start, c.Span.End, phrase) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "@workspace directive rewritten as a whole-codebase instruction",
		Field:    string(catalog.WorkspaceCommand),
	}}
}
