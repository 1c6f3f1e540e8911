package transform

import "sort"

// replacement is one accepted edit: replace document[start:end] with text.
// start == end denotes a pure insertion.
type replacement struct {
	start int
	end   int
	text  string
}

// Ledger accumulates proposed text edits for one transformation pass.
//
// Proposals whose span overlaps an already-accepted span are rejected, which
// gives the engine its core guarantee: no character of the original document
// is ever covered by two edits.
type Ledger struct {
	accepted []replacement
}

// NewLedger returns an empty ledger for one pass.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Propose offers an edit over the half-open span [start, end). It is
// accepted and recorded only when the span does not overlap any previously
// accepted span; rejected proposals leave the ledger unchanged.
func (l *Ledger) Propose(start, end int, text string) bool {
	if start < 0 || end < start {
		return false
	}
	if l.Overlaps(start, end) {
		return false
	}
	l.accepted = append(l.accepted, replacement{start: start, end: end, text: text})
	return true
}

// Overlaps reports whether [start, end) intersects any accepted span.
// Zero-width spans overlap only when strictly inside an accepted span.
func (l *Ledger) Overlaps(start, end int) bool {
	for _, r := range l.accepted {
		if start < r.end && r.start < end {
			return true
		}
	}
	return false
}

// Len returns the number of accepted edits.
func (l *Ledger) Len() int {
	return len(l.accepted)
}

// Apply splices every accepted edit into the document and returns the result.
//
// Edits are applied from the highest start offset down. Each splice only
// shifts text at or after its own span, so the spans of the still-pending
// lower-offset edits remain valid throughout.
func (l *Ledger) Apply(document string) string {
	if len(l.accepted) == 0 {
		return document
	}

	ordered := make([]replacement, len(l.accepted))
	copy(ordered, l.accepted)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start > ordered[j].start })

	for _, r := range ordered {
		if r.end > len(document) {
			continue
		}
		document = document[:r.start] + r.text + document[r.end:]
	}
	return document
}
