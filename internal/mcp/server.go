// Package mcp provides a Model Context Protocol server for coursecat.
// It exposes course planning and building as MCP tools.
package mcp

import (
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Defaults applied to build calls that leave fields empty.
type Defaults struct {
	Label  string
	Ignore []string
}

// handlers holds state shared by the tool handlers. Builds write to disk,
// so they run one at a time.
type handlers struct {
	defaults Defaults
	buildMu  sync.Mutex
}

// NewServer creates an MCP server with all coursecat tools registered.
func NewServer(version string, defaults Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "coursecat",
		Version: version,
	}, nil)
	registerTools(server, &handlers{defaults: defaults})
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func registerTools(server *mcp.Server, h *handlers) {
	mcp.AddTool(server, planTool(), h.handlePlan)
	mcp.AddTool(server, buildTool(), h.handleBuild)
}

func planTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "plan",
		Description: "List the lessons of a course directory with their section files, section titles and exercise counts. Reads entry.yml manifests; writes nothing.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}
}

// buildTool is not idempotent: a repeat call without force fails on the
// existing output, and with force it deletes and rewrites it.
func buildTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "build",
		Description: "Concatenate a course directory into one markdown file per lesson, appending rendered exercises. Fails if out_dir exists unless force is true, in which case out_dir is deleted first.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(true),
			OpenWorldHint:   boolPtr(false),
		},
	}
}
