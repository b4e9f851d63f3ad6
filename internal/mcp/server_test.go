package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/scooby/osx-tags/internal/format"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/scooby/osx-tags/internal/tags"
	"github.com/scooby/osx-tags/internal/xattr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlers() (*handlers, map[string]*xattr.Memory) {
	files := map[string]*xattr.Memory{}
	open := func(path string) *store.Store {
		mem, ok := files[path]
		if !ok {
			mem = xattr.NewMemory()
			files[path] = mem
		}
		return store.New(mem)
	}
	return &handlers{open: open, log: zerolog.Nop()}, files
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestTools_WriteAddRemoveRead(t *testing.T) {
	ctx := context.Background()
	h, _ := newHandlers()

	res, err := h.write(ctx, call(map[string]any{"path": "f", "tags": []any{"a", "b"}}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	res, err = h.add(ctx, call(map[string]any{"path": "f", "tags": []any{"c"}, "color": "red"}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var r tags.Result
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &r))
	assert.Equal(t, "add", r.Action)
	assert.Contains(t, r.Tags, format.Entry{Tag: "c", Color: "red"})

	res, err = h.remove(ctx, call(map[string]any{"path": "f", "tags": []any{"a"}}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	res, err = h.read(ctx, call(map[string]any{"paths": []any{"f"}}))
	require.NoError(t, err)
	var got []format.PathTags
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []format.Entry{{Tag: "b", Color: "none"}, {Tag: "c", Color: "red"}}, got[0].Tags)
}

func TestTools_NonStringTagNoMutation(t *testing.T) {
	ctx := context.Background()
	h, files := newHandlers()

	_, err := h.write(ctx, call(map[string]any{"path": "f", "tags": []any{"keep"}}))
	require.NoError(t, err)
	writes := files["f"].Writes()

	for name, fn := range map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"write": h.write, "add": h.add, "remove": h.remove,
	} {
		res, err := fn(ctx, call(map[string]any{"path": "f", "tags": []any{"ok", 7.0}}))
		require.NoError(t, err, name)
		assert.True(t, res.IsError, name)
		assert.Contains(t, text(t, res), "tags must be strings", name)
	}
	assert.Equal(t, writes, files["f"].Writes())
}

func TestTools_BadInput(t *testing.T) {
	ctx := context.Background()
	h, _ := newHandlers()

	res, err := h.add(ctx, call(map[string]any{"tags": []any{"x"}}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = h.add(ctx, call(map[string]any{"path": "f", "tags": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = h.add(ctx, call(map[string]any{"path": "f", "tags": []any{"x"}, "color": "magenta"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "unknown color")

	res, err = h.read(ctx, call(map[string]any{"paths": []any{}}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestTools_Clear(t *testing.T) {
	ctx := context.Background()
	h, files := newHandlers()

	_, err := h.write(ctx, call(map[string]any{"path": "f", "tags": []any{"x"}}))
	require.NoError(t, err)

	res, err := h.clear(ctx, call(map[string]any{"path": "f"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Empty(t, files["f"].Names())
}

func TestTools_Guide(t *testing.T) {
	h, _ := newHandlers()

	res, err := h.guide(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "finder-tags")

	res, err = h.guide(context.Background(), call(map[string]any{"topic": "no-such-topic"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "available_topics")
}

func TestNewServer(t *testing.T) {
	h, _ := newHandlers()
	assert.NotNil(t, NewServer(h.open, zerolog.Nop()))
}

func TestNewServer_Tools(t *testing.T) {
	h, _ := newHandlers()
	s := NewServer(h.open, zerolog.Nop())

	tools := s.ListTools()
	for _, name := range []string{"tags_read", "tags_write", "tags_add", "tags_remove", "tags_clear", "tags_guide"} {
		require.Contains(t, tools, name)
		assert.NotEmpty(t, tools[name].Tool.Description, name)
	}

	for _, name := range []string{"tags_write", "tags_add", "tags_remove"} {
		schema := tools[name].Tool.InputSchema
		assert.Contains(t, schema.Properties, "path", name)
		assert.Contains(t, schema.Properties, "tags", name)
		assert.Contains(t, schema.Properties, "color", name)
		assert.ElementsMatch(t, []string{"path", "tags"}, schema.Required, name)
	}
	assert.Equal(t, "Replace all tags on a file", tools["tags_write"].Tool.Description)
}
