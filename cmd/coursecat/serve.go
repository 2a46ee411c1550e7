package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/coursecat/internal/config"
	coursemcp "github.com/gorewood/coursecat/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run coursecat as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "coursecat": {
        "command": "coursecat",
        "args": ["serve"]
      }
    }
  }

Available tools: plan, build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			server := coursemcp.NewServer(buildVersion(), coursemcp.Defaults{
				Label:  cfg.Label,
				Ignore: cfg.Ignore,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
