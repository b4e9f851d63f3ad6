package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	r := Compute("f.txt", []string{"a", "b\n6"}, []string{"a", "b\n2", "c"})

	assert.True(t, r.Changed)
	assert.Contains(t, r.Diff, "  a\n")
	assert.Contains(t, r.Diff, "- b (red)\n")
	assert.Contains(t, r.Diff, "+ b (green)\n")
	assert.Contains(t, r.Diff, "+ c\n")
}

func TestCompute_OrderInsensitive(t *testing.T) {
	r := Compute("f.txt", []string{"b", "a"}, []string{"a", "b"})
	assert.False(t, r.Changed)
	assert.NotContains(t, r.Diff, "+ ")
	assert.NotContains(t, r.Diff, "- ")
}

func TestCompute_FromEmpty(t *testing.T) {
	r := Compute("f.txt", nil, []string{"x"})
	assert.Equal(t, "+ x\n", r.Diff)
}

func TestCompute_CollapsesContext(t *testing.T) {
	same := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	r := Compute("f.txt", same, append(same, "z"))
	assert.Contains(t, r.Diff, "  ...\n")
	assert.NotContains(t, r.Diff, "  d\n")
	assert.Contains(t, r.Diff, "  h\n")
	assert.True(t, strings.HasSuffix(r.Diff, "+ z\n"))
}

func TestFormat(t *testing.T) {
	r := Compute("f.txt", []string{"a"}, nil)
	assert.Equal(t, "--- f.txt\n+++ f.txt\n- a\n", r.Format(false))
	assert.Contains(t, r.Format(true), "\033[31m- a\033[0m")

	same := Compute("f.txt", []string{"a"}, []string{"a"})
	assert.Equal(t, "--- f.txt\n+++ f.txt\n  (no change)\n", same.Format(false))
}
