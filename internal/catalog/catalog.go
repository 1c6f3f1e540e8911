package catalog

import (
	"fmt"
	"sort"
)

// Platform identifies a target AI-assistant dialect.
type Platform string

// Supported target platforms.
const (
	PlatformClaudeCode    Platform = "claude-code"
	PlatformWindsurf      Platform = "windsurf"
	PlatformGitHubCopilot Platform = "github-copilot"
)

// AllPlatforms returns every supported platform in stable order.
func AllPlatforms() []Platform {
	return []Platform{PlatformClaudeCode, PlatformWindsurf, PlatformGitHubCopilot}
}

// ParsePlatform validates a platform identifier from user input.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range AllPlatforms() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q (supported: claude-code, windsurf, github-copilot)", s)
}

// ConstructType identifies one variant of the closed construct taxonomy.
//
// The taxonomy is a contract: every platform transformer must handle every
// variant, even when the handling is an explicit pass-through. Adding a
// variant here is a breaking change that requires a new branch in each
// transformer.
type ConstructType string

// The construct taxonomy.
const (
	AgentSpawn               ConstructType = "agent-spawn"
	ToolCall                 ConstructType = "tool-call"
	ContextSwitch            ConstructType = "context-switch"
	PermissionReference      ConstructType = "permission-reference"
	GlobPattern              ConstructType = "glob-pattern"
	ModelDecisionTrigger     ConstructType = "model-decision-trigger"
	SkillChaining            ConstructType = "skill-chaining"
	ContextGatheringProtocol ConstructType = "context-gathering-protocol"
	ActivationInstruction    ConstructType = "activation-instruction"
	WorkspaceCommand         ConstructType = "workspace-command"
	WorkingSetLimit          ConstructType = "working-set-limit"
	PersonaRule              ConstructType = "persona-rule"
	AdvisoryWarning          ConstructType = "advisory-warning"
	VersionComment           ConstructType = "version-comment"
	TestCommand              ConstructType = "test-command"
	ExecutionFlowSection     ConstructType = "execution-flow-section"
	CheckpointCommit         ConstructType = "checkpoint-commit"
	ProgressTracking         ConstructType = "progress-tracking"
)

// AllConstructTypes returns every taxonomy variant in stable order.
func AllConstructTypes() []ConstructType {
	return []ConstructType{
		AgentSpawn,
		ToolCall,
		ContextSwitch,
		PermissionReference,
		GlobPattern,
		ModelDecisionTrigger,
		SkillChaining,
		ContextGatheringProtocol,
		ActivationInstruction,
		WorkspaceCommand,
		WorkingSetLimit,
		PersonaRule,
		AdvisoryWarning,
		VersionComment,
		TestCommand,
		ExecutionFlowSection,
		CheckpointCommit,
		ProgressTracking,
	}
}

// Span is a half-open [Start, End) character range into the source document.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open spans share any character.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Len returns the number of characters the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Attributes holds the structured payload a recognizer may extract for a
// construct. Which fields are meaningful depends on the construct type;
// extraction is best-effort and any field may be absent.
type Attributes struct {
	ToolName        string `json:"tool_name,omitempty"`
	Pattern         string `json:"pattern,omitempty"`
	Action          string `json:"action,omitempty"`
	IsAdvisory      bool   `json:"is_advisory,omitempty"`
	HasTriggerField bool   `json:"has_trigger_field,omitempty"`
	HasStep0        bool   `json:"has_step0,omitempty"`
	IsManual        bool   `json:"is_manual,omitempty"`
}

// SemanticConstruct is one recognized directive in a template document.
// It is immutable once produced.
type SemanticConstruct struct {
	Type    ConstructType `json:"type"`
	Span    Span          `json:"span"`
	RawText string        `json:"raw_text"`
	Parsed  *Attributes   `json:"parsed,omitempty"`
}

// Attr returns the parsed attributes, or the zero value when none were
// extracted. Callers can read optional fields without nil checks.
func (c *SemanticConstruct) Attr() Attributes {
	if c.Parsed == nil {
		return Attributes{}
	}
	return *c.Parsed
}

// ContentAnalysis is the ordered construct list for one document. Order is
// load-bearing: constructs must appear in document order (ascending Start),
// because the first construct wins when two propose overlapping edits.
type ContentAnalysis []SemanticConstruct

// Validate checks the analysis against the document it was produced from:
// every span must be in bounds, half-open, match its raw text, and the list
// must be in document order.
func (a ContentAnalysis) Validate(document string) error {
	for i := range a {
		c := &a[i]
		if c.Span.Start < 0 || c.Span.Start >= c.Span.End || c.Span.End > len(document) {
			return fmt.Errorf("construct %d (%s): invalid span [%d,%d) for document of length %d",
				i, c.Type, c.Span.Start, c.Span.End, len(document))
		}
		if got := document[c.Span.Start:c.Span.End]; got != c.RawText {
			return fmt.Errorf("construct %d (%s): raw text does not match document slice [%d,%d)",
				i, c.Type, c.Span.Start, c.Span.End)
		}
	}
	if !sort.SliceIsSorted(a, func(i, j int) bool { return a[i].Span.Start < a[j].Span.Start }) {
		return fmt.Errorf("constructs are not in document order")
	}
	return nil
}
