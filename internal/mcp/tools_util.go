// tools_util.go provides helpers for MCP tool parameter extraction.
//
// Optional parameters are extracted permissively: a missing or mistyped
// optional value falls back to its default rather than failing the call.
// Required tag and path lists are returned raw so the caller can reject
// non-string elements explicitly.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if it is missing or
// not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getArray returns the raw elements of an array parameter, or nil when the
// parameter is absent or not an array.
func getArray(req mcp.CallToolRequest, name string) []any {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	return arr
}

// jsonResult serialises v as indented JSON in an MCP text result. Marshal
// failures become tool errors rather than protocol errors.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
