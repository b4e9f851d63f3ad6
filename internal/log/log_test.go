package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempDB points the logger at a fresh database for the duration of the test.
func tempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
	Close()
	require.NoError(t, Open())
	SetProject("/test/project")
}

func TestLogger(t *testing.T) {
	t.Run("open creates database", func(t *testing.T) {
		tempDB(t)
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		tempDB(t)

		Log(Entry{
			Source:  "tags:set",
			Action:  "set",
			Path:    "notes.txt",
			Tags:    []string{"work\n6"},
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, path, tags string
		var success int
		err = db.QueryRow("SELECT source, action, path, tags, success FROM log WHERE id = 1").
			Scan(&source, &action, &path, &tags, &success)
		require.NoError(t, err)
		assert.Equal(t, "tags:set", source)
		assert.Equal(t, "set", action)
		assert.Equal(t, "notes.txt", path)
		assert.JSONEq(t, `["work\n6"]`, tags)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
		got, err := Recent(10, time.Time{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		tempDB(t)
		require.NoError(t, Open())
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, filepath.Join(home, ".finder-tags", "log", "finder-tags-log.db"), DBPath())
}

func TestBuilder(t *testing.T) {
	t.Run("success with detail", func(t *testing.T) {
		tempDB(t)

		Event("mcp:tags_read", "read").
			Path("a.txt").
			Detail("count", 2).
			Write(nil)

		got, err := Recent(1, time.Time{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "mcp:tags_read", got[0].Source)
		assert.Equal(t, "a.txt", got[0].Path)
		assert.True(t, got[0].Success)
		assert.EqualValues(t, 2, got[0].Detail["count"])
		assert.GreaterOrEqual(t, got[0].End, got[0].Start)
	})

	t.Run("error", func(t *testing.T) {
		tempDB(t)

		Event("tags:add", "add").
			Path("b.txt").
			Tags([]string{"x"}).
			Write(errors.New("permission denied"))

		got, err := Recent(1, time.Time{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.False(t, got[0].Success)
		assert.Equal(t, "permission denied", got[0].Error)
		assert.Equal(t, []string{"x"}, got[0].Tags)
	})
}

func TestRecent(t *testing.T) {
	tempDB(t)

	for _, p := range []string{"1", "2", "3"} {
		Event("tags:clear", "clear").Path(p).Write(nil)
	}

	got, err := Recent(2, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].Path, "newest first")
	assert.Equal(t, "2", got[1].Path)

	SetProject("/elsewhere")
	got, err = Recent(10, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, got, "entries are scoped to the project")
}

func TestRecentSince(t *testing.T) {
	tempDB(t)

	old := Event("tags:add", "add").Path("old")
	old.entry.Start = time.Now().Add(-48 * time.Hour).Unix()
	old.Write(nil)
	Event("tags:add", "add").Path("new").Write(nil)

	got, err := Recent(10, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Path)
}
