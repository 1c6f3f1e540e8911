// Package template loads workflow template files and splits their optional
// YAML frontmatter from the markdown body.
//
// The converter itself operates on the full raw document, frontmatter
// included, because activation declarations (globs, triggers) live in the
// frontmatter. The parsed metadata feeds the install layer and display.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata is the recognized frontmatter surface of a workflow template.
// Unknown keys are ignored rather than rejected.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Globs       string `yaml:"globs"`
	Trigger     string `yaml:"trigger"`
}

// Template is one loaded workflow template.
type Template struct {
	// Meta holds the parsed frontmatter; zero value when none was present
	// or it failed to parse.
	Meta Metadata

	// Raw is the complete file content, frontmatter included. This is
	// what the conversion engine operates on.
	Raw string

	// Body is the content after the frontmatter fence, or all of Raw
	// when there is no frontmatter.
	Body string

	// Source is the path the template was loaded from.
	Source string
}

// Name returns the template's declared name, falling back to the source
// file's base name without extension.
func (t *Template) Name() string {
	if t.Meta.Name != "" {
		return t.Meta.Name
	}
	base := filepath.Base(t.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads a template file from disk.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	return Parse(string(data), path), nil
}

// Parse builds a Template from raw content. Malformed frontmatter is not an
// error: the metadata stays zero and the full content is preserved.
func Parse(content, source string) *Template {
	t := &Template{Raw: content, Body: content, Source: source}

	front, body, ok := splitFrontmatter(content)
	if !ok {
		return t
	}
	t.Body = body

	var meta Metadata
	if err := yaml.Unmarshal([]byte(front), &meta); err == nil {
		t.Meta = meta
	}
	return t
}

// splitFrontmatter separates a leading "---" fenced YAML block from the rest
// of the document. Returns ok=false when no complete fence exists.
func splitFrontmatter(content string) (front, body string, ok bool) {
	if !strings.HasPrefix(content, "---\n") && content != "---" {
		return "", "", false
	}

	rest := strings.TrimPrefix(content, "---\n")
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", "", false
	}

	front = rest[:end]
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return front, body, true
}
