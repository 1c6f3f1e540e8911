// Package mcp provides a Model Context Protocol server for portage.
// It exposes template conversion and analysis as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jofu-tofu/portage/internal/transform"
)

// NewServer creates an MCP server with all portage tools registered.
func NewServer(version string, registry *transform.Registry) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "portage",
		Version: version,
	}, nil)
	registerTools(server, registry)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all portage tools to the server.
func registerTools(server *mcp.Server, registry *transform.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a platform-neutral workflow template to one or more platform dialects. Returns the rewritten content and conversion warnings per platform.",
		Annotations: readOnlyAnnotations(),
	}, handleConvert(registry))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Recognize the semantic constructs in a workflow template without converting it. Returns each construct's type, position, and extracted attributes.",
		Annotations: readOnlyAnnotations(),
	}, handleAnalyze(registry))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "platforms",
		Description: "List the platform dialects this server can convert to.",
		Annotations: readOnlyAnnotations(),
	}, handlePlatforms(registry))
}
