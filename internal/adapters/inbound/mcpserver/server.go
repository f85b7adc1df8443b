// Package mcpserver implements the Tool Dispatcher (C6) and Stdio Server
// (C7): it registers the prompt-broker's tools on a mark3labs/mcp-go
// server and serves them over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/michaelprinc/mcp-prompt-broker/internal/application/broker"
)

const (
	serverName    = "mcp-prompt-broker"
	serverVersion = "0.1.0"
)

// New builds the MCP server with every prompt-broker tool registered.
func New(b *broker.Broker, log *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, b, newPool(), newDispatcher(log))

	return s
}

// ServeStdio blocks, serving tool calls over stdin/stdout until the
// transport is closed or the process receives a shutdown signal.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
