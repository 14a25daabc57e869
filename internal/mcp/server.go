// ABOUTME: MCP server setup for the lifeos tool catalog.
// ABOUTME: Serves the registry over stdio or streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"net/http"

	"github.com/harperreed/lifeos/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "lifeos"
	Version = "1.0.0"
)

// Server wraps the MCP server with the tool registry.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
}

// NewServer creates a new MCP server exposing every tool in registry.
func NewServer(registry *tools.Registry) (*Server, error) {
	if registry == nil {
		return nil, errors.New("mcp: nil tool registry")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    Name,
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		registry:  registry,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns a streamable HTTP handler sharing this server across
// client sessions.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}
