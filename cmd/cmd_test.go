package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/scooby/osx-tags/cmd"
	_ "github.com/scooby/osx-tags/extension/all"
	"github.com/scooby/osx-tags/internal/format"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/scooby/osx-tags/internal/tag"
	"github.com/scooby/osx-tags/internal/tags"
	"github.com/scooby/osx-tags/internal/xattr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// env runs commands in-process against in-memory attributes.
type env struct {
	t     *testing.T
	files map[string]*xattr.Memory
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	e := &env{t: t, files: map[string]*xattr.Memory{}}
	cmd.SetOpener(e.open)
	t.Cleanup(func() {
		cmd.SetOpener(nil)
		cmd.SetOut(os.Stdout)
		cmd.ResetFlags()
	})
	return e
}

func (e *env) open(path string) *store.Store {
	mem, ok := e.files[path]
	if !ok {
		mem = xattr.NewMemory()
		e.files[path] = mem
	}
	return store.New(mem)
}

// run executes args and returns captured stdout.
func (e *env) run(args ...string) (string, error) {
	e.t.Helper()
	cmd.ResetFlags()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	err := cmd.Run(context.Background(), args)
	return buf.String(), err
}

func (e *env) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "finder-tags %v", args)
	return out
}

func TestReadEmpty(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, "a.txt\n", e.mustRun("read", "a.txt"))
}

func TestEndToEnd(t *testing.T) {
	e := newEnv(t)

	e.mustRun("set", "-t", "a", "-t", "b", "f")
	assert.Equal(t, "f [a] [b]\n", e.mustRun("read", "f"))

	e.mustRun("add", "-c", "red", "-t", "c", "f")
	assert.Equal(t, []string{"a", "b", "c\n6"}, e.open("f").Read())

	e.mustRun("del", "-t", "a", "f")
	assert.Equal(t, []string{"b", "c\n6"}, e.open("f").Read())

	e.mustRun("clear", "f")
	assert.Empty(t, e.open("f").Read())
	assert.Empty(t, e.files["f"].Names())
}

func TestOrderedPairing(t *testing.T) {
	e := newEnv(t)
	e.mustRun("set", "-t", "plain", "-c", "green", "-t", "go", "--tag", "run", "--color", "none", "-t", "stop", "f")

	assert.Equal(t, []string{"go\n2", "plain", "run\n2", "stop"}, e.open("f").Read())
}

func TestReadJSON(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.open("f").Write(tag.Encode("work", tag.Purple)))

	for _, args := range [][]string{{"read", "-j", "f", "g"}, {"read", "-o", "json", "f", "g"}} {
		out := e.mustRun(args...)
		var got []format.PathTags
		require.NoError(t, json.Unmarshal([]byte(out), &got), out)
		require.Len(t, got, 2)
		assert.Equal(t, "f", got[0].Path)
		assert.Equal(t, []format.Entry{{Tag: "work", Color: "purple"}}, got[0].Tags)
		assert.Empty(t, got[1].Tags)
	}
}

func TestReadRejectsTags(t *testing.T) {
	e := newEnv(t)
	_, err := e.run("read", "-t", "x", "f")
	require.ErrorIs(t, err, tags.ErrReadWithTags)
}

func TestUnknownColour(t *testing.T) {
	e := newEnv(t)
	_, err := e.run("add", "-c", "magenta", "-t", "x", "f")
	require.ErrorIs(t, err, tag.ErrUnknownColor)
	assert.Empty(t, e.open("f").Read())
}

func TestMutationJSON(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun("add", "-o", "json", "-t", "x", "f")

	var res []tags.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	require.Len(t, res, 1)
	assert.Equal(t, "add", res[0].Action)
	assert.Equal(t, []format.Entry{{Tag: "x", Color: "none"}}, res[0].Tags)
}

func TestJSONError(t *testing.T) {
	e := newEnv(t)
	out, err := e.run("add", "-o", "json", "-c", "nope", "-t", "x", "f")
	require.NoError(t, err, "error is reported as JSON")
	assert.JSONEq(t, `{"error":"--color: unknown color \"nope\", must be one of none, gray, green, purple, blue, yellow, red, orange"}`, out)
}

func TestDryRun(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.open("f").Write("old"))

	out := e.mustRun("set", "--dry-run", "-t", "new", "f")
	assert.Contains(t, out, "- old")
	assert.Contains(t, out, "+ new")
	assert.Equal(t, []string{"old"}, e.open("f").Read())
}

func TestDiff(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun("add", "--diff", "-t", "x", "f")
	assert.Contains(t, out, "+ x")
	assert.Equal(t, []string{"x"}, e.open("f").Read())
}

func TestNoPaths(t *testing.T) {
	e := newEnv(t)
	_, err := e.run("add", "-t", "x")
	require.Error(t, err)
}

func TestConfig(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, "color.mode = never (global)\n", e.mustRun("config", "color.mode", "never"))
	assert.Equal(t, "never\n", e.mustRun("config", "color.mode"))

	out := e.mustRun("config")
	assert.Contains(t, out, "color.mode: never")
	assert.Contains(t, out, "log.audit: true")

	_, err := e.run("config", "color.mode", "sometimes")
	require.Error(t, err)
}

func TestConfigOutputFormat(t *testing.T) {
	e := newEnv(t)
	e.mustRun("config", "output.format", "json")

	out := e.mustRun("read", "f")
	assert.JSONEq(t, `[{"path":"f","tags":[]}]`, out)
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	assert.Contains(t, e.mustRun("version"), "Build Tag:")

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(e.mustRun("version", "-o", "json")), &info))
	assert.Contains(t, info, "build_tag")
}

func TestGuide(t *testing.T) {
	e := newEnv(t)
	assert.Contains(t, e.mustRun("guide"), "finder-tags")
	assert.Contains(t, e.mustRun("guide", "colors"), "orange")

	_, err := e.run("guide", "nope")
	require.Error(t, err)
}

func TestLog(t *testing.T) {
	e := newEnv(t)
	out, err := e.run("log", "--limit", "5")
	require.NoError(t, err)
	assert.Empty(t, out, "audit log not open in tests")

	_, err = e.run("log", "--limit", "0")
	require.Error(t, err)

	_, err = e.run("log", "--since", "7d")
	require.NoError(t, err)

	_, err = e.run("log", "--since", "soon")
	require.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	e := newEnv(t)
	_, err := e.run("read", "-o", "yaml", "f")
	require.Error(t, err)
}
