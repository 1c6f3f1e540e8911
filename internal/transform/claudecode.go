package transform

import (
	"fmt"
	"strings"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// claudeWorkspaceActions maps a structured @workspace action to Claude Code
// phrasing. The trailing query is always preserved.
var claudeWorkspaceActions = map[string]string{
	"search":  "Search the entire repository for",
	"analyze": "Analyze the entire repository structure:",
}

// claudeTransformer rewrites templates for Claude Code, the richest target.
// Most constructs pass through untouched; only Windsurf-only activation
// declarations and Copilot-specific shorthands need rewriting.
type claudeTransformer struct{}

// NewClaudeCodeTransformer returns the Claude Code transformer.
func NewClaudeCodeTransformer() Transformer {
	return claudeTransformer{}
}

func (claudeTransformer) Platform() catalog.Platform {
	return catalog.PlatformClaudeCode
}

func (t claudeTransformer) Transform(analysis catalog.ContentAnalysis, document string) Result {
	return runPass(t, analysis, document)
}

func (t claudeTransformer) rewrite(c *catalog.SemanticConstruct, _ string, led *Ledger) []Warning {
	switch c.Type {
	case catalog.AgentSpawn:
		// Native: the Task tool spawns isolated sub-agents.
		return nil
	case catalog.ToolCall:
		return nil
	case catalog.ContextSwitch:
		return nil
	case catalog.PermissionReference:
		// Native: permissions live in settings and are enforced.
		return nil
	case catalog.GlobPattern:
		return t.rewriteGlobPattern(c, led)
	case catalog.ModelDecisionTrigger:
		return t.rewriteModelTrigger(c, led)
	case catalog.SkillChaining:
		return t.rewriteSkillChaining(c, led)
	case catalog.ContextGatheringProtocol:
		return nil
	case catalog.ActivationInstruction:
		return nil
	case catalog.WorkspaceCommand:
		return t.rewriteWorkspace(c, led)
	case catalog.WorkingSetLimit:
		return nil
	case catalog.PersonaRule:
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

// rewriteGlobPattern converts a Windsurf glob activation line into
// description-based activation guidance; Claude Code activates skills by
// description, not by file pattern.
func (claudeTransformer) rewriteGlobPattern(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	pattern := c.Attr().Pattern
	if pattern == "" {
		return nil
	}

	text := fmt.Sprintf("description: Use when working with files matching %s", pattern)
	if !led.Propose(c.Span.Start, c.Span.End, text) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "Glob-based activation converted to description-based guidance",
		Details:  fmt.Sprintf("Claude Code does not activate on file patterns; the pattern %s now only informs the description.", pattern),
		Field:    string(catalog.GlobPattern),
	}}
}

// rewriteModelTrigger converts a Windsurf trigger declaration into
// description-based guidance. Only the explicit trigger-field form is a
// Windsurf-only declaration; prose mentions pass through.
func (claudeTransformer) rewriteModelTrigger(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	if !c.Attr().HasTriggerField {
		return nil
	}

	text := "description: Activate when the request matches this workflow's purpose"
	if !led.Propose(c.Span.Start, c.Span.End, text) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "Model-decision trigger converted to description-based guidance",
		Field:    string(catalog.ModelDecisionTrigger),
	}}
}

// rewriteSkillChaining converts Copilot-style "#name" skill shorthands into
// the native "/name" invocation. Already-native invocations pass through.
func (claudeTransformer) rewriteSkillChaining(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	if !hashSkillRe.MatchString(c.RawText) {
		return nil
	}
	text := hashSkillRe.ReplaceAllString(c.RawText, "/$1")
	led.Propose(c.Span.Start, c.Span.End, text)
	return nil
}

// rewriteWorkspace converts a Copilot @workspace directive into repo-wide
// phrasing. The trailing query is preserved whether or not a structured
// action was extracted.
func (claudeTransformer) rewriteWorkspace(c *catalog.SemanticConstruct, led *Ledger) []Warning {
	action := strings.ToLower(c.Attr().Action)
	extracted, query := extractWorkspaceQuery(c.RawText)
	if action == "" {
		action = strings.ToLower(extracted)
	}

	phrase, ok := claudeWorkspaceActions[action]
	if !ok {
		phrase = "Search the entire repository for"
	}
	if query != "" {
		phrase += " " + query
	}
	if !led.Propose(c.Span.Start, c.Span.End, phrase) {
		return nil
	}
	return []Warning{{
		Category: WarnEmulated,
		Message:  "@workspace directive rewritten as a repository-wide instruction",
		Field:    string(catalog.WorkspaceCommand),
	}}
}
