package mcp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lucad87/mcp-server-tests-migration/internal/logging"
	"github.com/lucad87/mcp-server-tests-migration/internal/report"
	"github.com/lucad87/mcp-server-tests-migration/internal/rewrite"
	"github.com/lucad87/mcp-server-tests-migration/internal/storage"
)

// MCPServer serves migration tools over stdio JSON-RPC
type MCPServer struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	logger  *logging.Logger
	version string
	tools   map[string]ToolHandler

	engine *rewrite.Engine
	report *report.Report

	// history is nil when the history database is disabled
	history *storage.History

	// typedOutput is the default for tool calls that omit the flag
	typedOutput bool
}

// NewMCPServer creates a new MCP server
func NewMCPServer(version string, engine *rewrite.Engine, logger *logging.Logger) *MCPServer {
	server := &MCPServer{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		logger:  logger,
		version: version,
		engine:  engine,
		report:  report.New(),
		tools:   make(map[string]ToolHandler),
	}

	server.RegisterTools()

	return server
}

// SetHistory wires a history store; pass nil to disable persistence
func (s *MCPServer) SetHistory(h *storage.History) {
	s.history = h
}

// SetTypedOutput sets the default for the typed flag on migration tools
func (s *MCPServer) SetTypedOutput(typed bool) {
	s.typedOutput = typed
}

// Start starts the MCP server and begins processing messages
func (s *MCPServer) Start() error {
	s.logger.Info("MCP server starting", map[string]interface{}{
		"version": s.version,
	})

	for {
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("MCP server shutting down (EOF)", nil)
				return nil
			}
			s.logger.Error("Error reading message", map[string]interface{}{
				"error": err.Error(),
			})

			// Try to send error response if we can extract an ID
			if msg != nil && msg.Id != nil {
				_ = s.writeError(msg.Id, ParseError, fmt.Sprintf("Failed to parse message: %v", err))
			}
			continue
		}

		// Notifications don't generate responses
		response := s.handleMessage(msg)
		if response != nil {
			if err := s.writeMessage(response); err != nil {
				s.logger.Error("Error writing response", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// SetStdin sets the input stream (for testing)
func (s *MCPServer) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil // Reset scanner so it will be recreated with new reader
}

// SetStdout sets the output stream (for testing)
func (s *MCPServer) SetStdout(w io.Writer) {
	s.stdout = w
}
