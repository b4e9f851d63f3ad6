// tools_tags.go implements the MCP tag tools.
//
// Tool input arrives as untyped JSON. Tag lists go through validate.Strings
// before any store is opened, so a non-string element fails the call and
// leaves the file untouched.

package mcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/scooby/osx-tags/internal/tag"
	"github.com/scooby/osx-tags/internal/tags"
	"github.com/scooby/osx-tags/internal/validate"
)

// mutation is the signature shared by tags.Set, tags.Add and tags.Remove.
type mutation func(ctx context.Context, w io.Writer, open store.Opener, paths, tokens []string, opts tags.Options) ([]tags.Result, error)

// read handles tags_read tool calls.
func (h *handlers) read(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths, err := validate.Strings(getArray(req, "paths"))
	if err != nil {
		return mcp.NewToolResultError("paths: " + err.Error()), nil
	}

	got, err := tags.Read(ctx, io.Discard, h.open, paths, tags.Options{Source: "mcp:tags_read"})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(got)
}

// write handles tags_write tool calls.
func (h *handlers) write(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate(ctx, req, "mcp:tags_write", tags.Set)
}

// add handles tags_add tool calls.
func (h *handlers) add(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate(ctx, req, "mcp:tags_add", tags.Add)
}

// remove handles tags_remove tool calls.
func (h *handlers) remove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate(ctx, req, "mcp:tags_remove", tags.Remove)
}

// clear handles tags_clear tool calls.
func (h *handlers) clear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	res, err := tags.Clear(ctx, io.Discard, h.open, []string{path}, tags.Options{Source: "mcp:tags_clear"})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res[0])
}

func (h *handlers) mutate(ctx context.Context, req mcp.CallToolRequest, source string, op mutation) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	raw := getArray(req, "tags")
	if raw == nil {
		return mcp.NewToolResultError("tags must be an array of strings"), nil
	}
	tokens, err := validate.Strings(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if name := getString(req, "color", ""); name != "" {
		c, err := tag.ParseColor(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if c != tag.None {
			for i, t := range tokens {
				tokens[i] = tag.Encode(t, c)
			}
		}
	}

	res, err := op(ctx, io.Discard, h.open, []string{path}, tokens, tags.Options{Source: source})
	if err != nil {
		h.log.Debug().Str("tool", source).Str("path", path).Err(err).Msg("tool failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res[0])
}
