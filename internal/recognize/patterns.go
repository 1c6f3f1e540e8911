package recognize

import (
	"regexp"
	"strings"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// pattern binds one regular expression to a construct type plus an optional
// attribute extractor. The extractor receives the full document and the
// submatch index slice for one match.
type pattern struct {
	typ   catalog.ConstructType
	re    *regexp.Regexp
	parse func(document string, m []int) *catalog.Attributes
}

// patterns is the fixed recognition table. Order matters only for tie-breaks
// within a type; cross-type overlap is allowed and left to the transformer.
var patterns = []pattern{
	{
		typ: catalog.AgentSpawn,
		re:  regexp.MustCompile(`(?i)\b(?:spawn|launch|delegate to)\s+(?:an?\s+)?(?:new\s+)?sub-?agents?\b[^\n]*`),
	},
	{
		typ: catalog.ToolCall,
		re:  regexp.MustCompile(`(?i)\buse\s+(?:the\s+)?([A-Za-z][A-Za-z]*)\s+tool\b[^\n]*`),
		parse: func(document string, m []int) *catalog.Attributes {
			return &catalog.Attributes{ToolName: group(document, m, 1)}
		},
	},
	{
		typ: catalog.ContextSwitch,
		re: regexp.MustCompile(`(?i)(?:\b(?:fork|isolate|spin up)\s+(?:an?\s+|the\s+)?(?:new\s+|fresh\s+|separate\s+)?(?:execution\s+)?context\b|` +
			`\bin\s+(?:a|an)\s+(?:fresh|separate|isolated)\s+context\b)[^\n]*`),
	},
	{
		typ: catalog.PermissionReference,
		re: regexp.MustCompile(`(?im)^[^\n]*\b(?:requires?\s+(?:explicit\s+)?(?:user\s+)?permission|` +
			`(?:do\s+not|never|must\s+not|should\s+avoid)\s+(?:read|write|edit|modify|touch|access|delete)(?:ing)?)\b[^\n]*$`),
		parse: func(document string, m []int) *catalog.Attributes {
			return &catalog.Attributes{IsAdvisory: containsAdvisoryLanguage(document[m[0]:m[1]])}
		},
	},
	{
		typ: catalog.GlobPattern,
		re:  regexp.MustCompile(`(?m)^globs:[ \t]*(.+)$`),
		parse: func(document string, m []int) *catalog.Attributes {
			return &catalog.Attributes{Pattern: strings.TrimSpace(group(document, m, 1))}
		},
	},
	{
		typ: catalog.ModelDecisionTrigger,
		re:  regexp.MustCompile(`(?m)^trigger:[ \t]*model_decision[ \t]*$`),
		parse: func(string, []int) *catalog.Attributes {
			return &catalog.Attributes{HasTriggerField: true}
		},
	},
	{
		typ: catalog.ModelDecisionTrigger,
		re:  regexp.MustCompile(`(?i)\bactivate\s+(?:this\s+)?(?:rule\s+|workflow\s+)?when\s+the\s+model\s+(?:decides|determines|judges)[^\n]*`),
	},
	{
		typ: catalog.SkillChaining,
		re:  regexp.MustCompile(`(?i)\b(?:use|run|invoke|chain\s+into)\s+(?:the\s+)?[#/][a-z0-9][a-z0-9-]*(?:\s+skill)?`),
	},
	{
		typ: catalog.SkillChaining,
		re:  regexp.MustCompile(`(?i)\b(?:use|run|invoke)\s+the\s+[a-z0-9][a-z0-9-]*\s+skill\b`),
	},
	{
		typ: catalog.ContextGatheringProtocol,
		re:  regexp.MustCompile(`(?mi)^#{0,4}[ \t]*step\s+0[:.][^\n]*(?:\n(?:[-*][ \t][^\n]*|[ \t]+[^\n]+))*`),
		parse: func(string, []int) *catalog.Attributes {
			return &catalog.Attributes{HasStep0: true}
		},
	},
	{
		typ: catalog.ContextGatheringProtocol,
		re:  regexp.MustCompile(`(?i)\bgather\s+context\s+(?:first|before)[^\n]*`),
	},
	{
		typ: catalog.ActivationInstruction,
		re:  regexp.MustCompile(`(?i)\b(?:invoke|activate|trigger)\s+(?:this|the)\s+(?:workflow|rule|skill)\s+manually\b[^\n]*`),
		parse: func(string, []int) *catalog.Attributes {
			return &catalog.Attributes{IsManual: true}
		},
	},
	{
		typ: catalog.WorkspaceCommand,
		re:  regexp.MustCompile("@workspace[ \t]+(?:`?(search|analyze)`?\\b)?[^\n]*"),
		parse: func(document string, m []int) *catalog.Attributes {
			return &catalog.Attributes{Action: strings.ToLower(group(document, m, 1))}
		},
	},
	{
		typ: catalog.WorkingSetLimit,
		re:  regexp.MustCompile(`(?i)\b(?:working\s+set|context\s+budget|file\s+budget)\b[^\n]*`),
	},
	{
		typ: catalog.PersonaRule,
		re:  regexp.MustCompile(`(?i)\b(?:act\s+as|adopt|assume)\s+the\s+[a-z][a-z -]*\s+persona\b[^\n]*`),
	},
	{
		typ: catalog.AdvisoryWarning,
		re:  regexp.MustCompile(`(?m)^>[ \t]*(?:Note|Warning|Caution):[^\n]*$`),
	},
	{
		typ: catalog.VersionComment,
		re:  regexp.MustCompile(`<!--[ \t]*version:[^>]*-->`),
	},
	{
		typ: catalog.TestCommand,
		re:  regexp.MustCompile(`(?i)\brun\s+(?:the\s+)?(?:full\s+)?tests?(?:\s+suite)?\b[^\n]*`),
	},
	{
		typ: catalog.ExecutionFlowSection,
		re:  regexp.MustCompile(`(?m)^#{2,4}[ \t]*(?:Execution\s+Flow|Workflow\s+Steps|Workflow)[ \t]*$`),
	},
	{
		typ: catalog.CheckpointCommit,
		re:  regexp.MustCompile(`(?i)\b(?:checkpoint\s+commit|commit\s+(?:your\s+|the\s+)?progress|create\s+a\s+checkpoint)\b[^\n]*`),
	},
	{
		typ: catalog.ProgressTracking,
		re:  regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]\[[ xX]\][^\n]*(?:\n[ \t]*[-*][ \t]\[[ xX]\][^\n]*)*`),
	},
}
