package transform

// WarningCategory classifies how badly a construct's meaning degrades when
// moved to a target platform.
type WarningCategory string

// Warning categories, from "approximated" to "dropped".
const (
	// WarnEmulated means the behavior was approximated, not reproduced.
	WarnEmulated WarningCategory = "EMULATED"
	// WarnUnsupported means the feature was dropped outright.
	WarnUnsupported WarningCategory = "UNSUPPORTED"
	// WarnSecurity means a safety or permission guarantee degrades to
	// advisory-only text on the target.
	WarnSecurity WarningCategory = "SECURITY"
	// WarnLimit means the target has a resource ceiling the source
	// construct may exceed.
	WarnLimit WarningCategory = "LIMIT"
)

// AllWarningCategories returns every category in severity-neutral display order.
func AllWarningCategories() []WarningCategory {
	return []WarningCategory{WarnEmulated, WarnUnsupported, WarnSecurity, WarnLimit}
}

// Warning is one advisory record about information loss during conversion.
// Warnings never block content generation.
type Warning struct {
	Category WarningCategory `json:"category"`
	Message  string          `json:"message"`
	Details  string          `json:"details,omitempty"`
	Field    string          `json:"field,omitempty"`
}

// Result is the sole output of one transformation pass. Content is always a
// complete standalone document; Warnings preserve emission order.
type Result struct {
	Content  string    `json:"content"`
	Warnings []Warning `json:"warnings"`
}
