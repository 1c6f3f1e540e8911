// Package main provides the entry point for the portage CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	portagemcp "github.com/jofu-tofu/portage/internal/mcp"
	"github.com/jofu-tofu/portage/internal/transform"
)

// newMCPCmd creates the mcp command for running as an MCP server.
func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mcp",
		Aliases: []string{"serve"},
		Short:   "Run as MCP server (stdio transport)",
		Long: `Run portage as a Model Context Protocol (MCP) server over stdio.

This exposes template conversion as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "portage": {
        "command": "portage",
        "args": ["mcp"]
      }
    }
  }

Available tools: convert, analyze, platforms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := portagemcp.NewServer(buildVersion(), transform.DefaultRegistry())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
