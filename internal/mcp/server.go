// Package mcp implements the Model Context Protocol server, exposing the tag
// store to LLMs over stdio.
package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/scooby/osx-tags/internal/version"
)

// Name is advertised to clients as the server name.
const Name = "finder-tags"

// Serve starts the MCP server over stdio. open builds the store for each
// path a tool touches; logger receives diagnostics on stderr, since stdout
// carries the JSON-RPC stream.
func Serve(open store.Opener, logger zerolog.Logger) error {
	s := NewServer(open, logger)

	logger.Info().Str("version", version.Version).Str("transport", "stdio").Msg("MCP server ready")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("server stopped")
		return nil
	}
	return err
}

// NewServer returns an MCP server with every tag tool registered.
func NewServer(open store.Opener, logger zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version.Version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, &handlers{open: open, log: logger})
	return s
}

// handlers provides MCP request handlers with access to the tag store.
type handlers struct {
	open store.Opener
	log  zerolog.Logger
}

// registerTools exposes tag operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("tags_read",
			mcp.WithDescription("Read the Finder tags of one or more files"),
			mcp.WithArray("paths", mcp.Required(), mcp.WithStringItems(), mcp.Description("File paths")),
		),
		h.read,
	)

	s.AddTool(
		mcp.NewTool("tags_write", mutationArgs("Replace all tags on a file")...),
		h.write,
	)

	s.AddTool(
		mcp.NewTool("tags_add", mutationArgs("Add tags to a file, keeping existing ones")...),
		h.add,
	)

	s.AddTool(
		mcp.NewTool("tags_remove", mutationArgs("Remove tags from a file. Tags match exactly, colour included")...),
		h.remove,
	)

	s.AddTool(
		mcp.NewTool("tags_clear",
			mcp.WithDescription("Remove every tag from a file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
		),
		h.clear,
	)

	s.AddTool(
		mcp.NewTool("tags_guide",
			mcp.WithDescription("Get help content for finder-tags commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'colors', 'read') or empty for index")),
		),
		h.guide,
	)
}

// mutationArgs are the options shared by write, add and remove, led by the
// tool description.
func mutationArgs(desc string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(desc),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
		mcp.WithArray("tags", mcp.Required(), mcp.WithStringItems(),
			mcp.Description("Tag texts. A text may carry its own colour as a trailing newline and digit 0-7")),
		mcp.WithString("color", mcp.Description("Colour applied to every tag: none, gray, green, purple, blue, yellow, red, orange")),
	}
}
