//go:build darwin || linux

package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scooby/osx-tags/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestStore_OnDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	err := store.Open(p).Write("work\n6", "home")
	if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) || errors.Is(err, unix.EPERM) {
		t.Skipf("filesystem does not support extended attributes: %v", err)
	}
	require.NoError(t, err)

	f, err := os.Open(p)
	require.NoError(t, err)
	defer f.Close()

	s := store.FromFile(f)
	assert.Equal(t, []string{"home", "work\n6"}, s.Read())

	s.Clear()
	assert.Empty(t, store.Open(p).Read())
}

func TestStore_MissingFile(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "absent"))
	assert.Empty(t, s.Read())
	require.Error(t, s.Write("x"))
	s.Clear()
}
