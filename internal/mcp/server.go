// ABOUTME: MCP server initialization and configuration
// ABOUTME: Exposes a live map adapter's region and camera surface to AI agents

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/mapbridge/internal/adapter"
)

// Server wraps an MCP server around a map adapter.
type Server struct {
	mcp     *mcp.Server
	adapter *adapter.Adapter
}

// NewServer creates an MCP server driving the given adapter.
func NewServer(a *adapter.Adapter) (*Server, error) {
	if a == nil {
		return nil, fmt.Errorf("adapter is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mapbridge",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:     mcpServer,
		adapter: a,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
