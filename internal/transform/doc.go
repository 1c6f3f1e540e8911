// Package transform rewrites workflow templates for specific AI-assistant
// platforms.
//
// Each platform has a Transformer that walks the recognized constructs of a
// document in document order and decides, per construct, whether to pass it
// through, rewrite it, append an advisory note, or delete it. Proposed edits
// accumulate in a Ledger that rejects overlapping spans, so the first
// construct in document order wins and later overlapping constructs are left
// untouched. Applying the ledger from the highest offset down keeps earlier
// offsets valid while splicing.
//
// Transformers are pure: no I/O, no shared state between calls, and no
// errors for degraded constructs. When attribute extraction fails for one
// construct the construct is simply left as-is; only asking the Registry for
// an unknown platform fails hard.
package transform
