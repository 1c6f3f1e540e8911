// Package catalog defines the closed taxonomy of semantic constructs that
// portage recognizes in workflow templates, along with the platforms the
// templates can be rewritten for.
//
// A construct is a directive pattern inside a template document: a tool
// invocation, a sub-agent spawn, a glob activation trigger, and so on. The
// taxonomy is deliberately closed: every platform transformer in
// internal/transform must carry a branch for every ConstructType, so adding
// a variant is a coordinated change across the whole engine.
package catalog
