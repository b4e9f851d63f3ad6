package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	got, err := Strings([]any{"a", "b\n2", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b\n2", ""}, got)

	got, err = Strings(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStrings_RejectsNonString(t *testing.T) {
	tests := []struct {
		name string
		vals []any
		want string
	}{
		{"integer", []any{"a", 3}, "tag 1 is int"},
		{"json number", []any{float64(2)}, "tag 0 is float64"},
		{"nil", []any{nil}, "tag 0 is <nil>"},
		{"nested", []any{"ok", []any{"x"}}, "tag 1 is []interface {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strings(tt.vals)
			require.ErrorIs(t, err, ErrNotString)
			assert.Contains(t, err.Error(), tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestPaths(t *testing.T) {
	require.NoError(t, Paths([]string{"a.txt", "/tmp/b"}))
	require.ErrorIs(t, Paths(nil), ErrNoPaths)
	assert.Error(t, Paths([]string{""}))
	assert.Error(t, Paths([]string{"bad\x00path"}))
}
