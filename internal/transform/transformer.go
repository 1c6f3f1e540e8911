package transform

import (
	"fmt"
	"regexp"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// Transformer rewrites a document for one target platform.
//
// Transform is a pure function of its arguments: calling it twice with the
// same analysis and document yields byte-identical content and an identical
// warning list. Implementations never return errors for degraded constructs;
// a construct whose attributes cannot be extracted is left untouched.
type Transformer interface {
	// Platform returns the dialect this transformer targets.
	Platform() catalog.Platform
	// Transform rewrites document according to the recognized constructs.
	Transform(analysis catalog.ContentAnalysis, document string) Result
}

// rewriter is the per-platform policy: given one construct, propose edits on
// the ledger and return any warnings. Implementations must dispatch
// exhaustively over catalog.ConstructType.
type rewriter interface {
	rewrite(c *catalog.SemanticConstruct, document string, led *Ledger) []Warning
}

// runPass drives one transformation: visit constructs in document order,
// skip any whose span overlaps an already-accepted edit (first in document
// order wins, losers stay silent), and apply the accumulated ledger.
func runPass(r rewriter, analysis catalog.ContentAnalysis, document string) Result {
	led := NewLedger()
	warnings := []Warning{}

	for i := range analysis {
		c := &analysis[i]
		if c.Span.Start < 0 || c.Span.End > len(document) || c.Span.Start >= c.Span.End {
			continue
		}
		if led.Overlaps(c.Span.Start, c.Span.End) {
			continue
		}
		warnings = append(warnings, r.rewrite(c, document, led)...)
	}

	return Result{Content: led.Apply(document), Warnings: warnings}
}

// genericToolPhrase is the fallback for tool names missing from a lookup table.
func genericToolPhrase(tool string) string {
	return fmt.Sprintf("Perform `%s` operation", tool)
}

// Shared extraction patterns. All extraction is best-effort: a failed match
// means the construct passes through unmodified.
var (
	// "... tool to <purpose>" trailing clause on a tool-call construct.
	toolPurposeRe = regexp.MustCompile(`(?i)\btool\b\s+(to\s+.+)$`)

	// "... subagent to [handle] <task>" on an agent-spawn construct.
	spawnTaskRe = regexp.MustCompile(`(?i)sub-?agents?\s+to\s+(?:handle\s+)?(.+?)[.!?]?$`)

	// Copilot-style "#name" and Claude-style "/name" skill shorthands.
	hashSkillRe  = regexp.MustCompile(`#([a-z0-9][a-z0-9-]*)`)
	slashSkillRe = regexp.MustCompile(`/([a-z0-9][a-z0-9-]*)`)

	// "@workspace [action] <query>" on a workspace-command construct.
	workspaceQueryRe = regexp.MustCompile(`(?i)^@workspace\s+(?:\x60?(search|analyze)\x60?\s*)?(.*)$`)

	// Checkbox items inside a progress-tracking construct.
	checkboxRe = regexp.MustCompile(`(?m)^[ \t]*[-*] \[[ xX]\]`)
)

// extractToolPurpose returns the trailing "to <purpose>" clause of a
// tool-call, or "" when none is present.
func extractToolPurpose(rawText string) string {
	m := toolPurposeRe.FindStringSubmatch(rawText)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractSpawnTask returns the delegated task of an agent-spawn construct,
// or "" when the phrasing does not match.
func extractSpawnTask(rawText string) string {
	m := spawnTaskRe.FindStringSubmatch(rawText)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractWorkspaceQuery splits a workspace-command into its structured
// action (may be "") and trailing query text (may be "").
func extractWorkspaceQuery(rawText string) (action, query string) {
	m := workspaceQueryRe.FindStringSubmatch(rawText)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

// countCheckboxes counts markdown checkbox items in a construct's raw text.
func countCheckboxes(rawText string) int {
	return len(checkboxRe.FindAllString(rawText, -1))
}
