// Package recognize scans raw template text for the semantic constructs in
// the catalog taxonomy.
//
// The scanner is pattern-based, not a markdown parser: each construct type
// has one or more fixed regular expressions, and attribute extraction is
// best-effort. Recognized constructs are returned in document order (first
// occurrence first), which downstream transformers rely on to resolve
// overlapping edits.
package recognize

import (
	"sort"
	"strings"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// Analyze scans a document and returns its constructs in document order.
// Constructs of different types may overlap; resolving overlaps is the
// transformer's job, not the recognizer's. Two matches of the same type
// never overlap (the earlier match wins).
func Analyze(document string) catalog.ContentAnalysis {
	var all []catalog.SemanticConstruct

	for _, p := range patterns {
		matches := p.re.FindAllStringSubmatchIndex(document, -1)
		var accepted []catalog.Span
		for _, m := range matches {
			span := catalog.Span{Start: m[0], End: m[1]}
			if span.Len() == 0 {
				continue
			}
			if overlapsAny(span, accepted) {
				continue
			}
			accepted = append(accepted, span)

			c := catalog.SemanticConstruct{
				Type:    p.typ,
				Span:    span,
				RawText: document[span.Start:span.End],
			}
			if p.parse != nil {
				c.Parsed = p.parse(document, m)
			}
			all = append(all, c)
		}
	}

	// Document order; longer match first on a tie so enclosing constructs
	// win over nested ones.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Span.Start != all[j].Span.Start {
			return all[i].Span.Start < all[j].Span.Start
		}
		return all[i].Span.End > all[j].Span.End
	})

	return catalog.ContentAnalysis(all)
}

// overlapsAny reports whether span intersects any accepted same-type span.
func overlapsAny(span catalog.Span, accepted []catalog.Span) bool {
	for _, a := range accepted {
		if span.Overlaps(a) {
			return true
		}
	}
	return false
}

// group returns the text of capture group n from a submatch index slice,
// or "" when the group did not participate.
func group(document string, m []int, n int) string {
	lo, hi := m[2*n], m[2*n+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return document[lo:hi]
}

// containsAdvisoryLanguage reports whether a permission line is phrased as a
// recommendation rather than an enforced rule.
func containsAdvisoryLanguage(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "advisory") ||
		strings.Contains(lower, "recommended") ||
		strings.Contains(lower, "prefer not")
}
