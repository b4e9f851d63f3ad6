package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "tagging", 5, true)
	for range 5 {
		p.Step()
	}
	out := buf.String()
	assert.Contains(t, out, "\rtagging... 1/5 (20%)")
	assert.Contains(t, out, "\rtagging... 5/5 (100%)")

	buf.Reset()
	p.Done()
	assert.Equal(t, "\r"+strings.Repeat(" ", len("tagging... 5/5 (100%)"))+"\r", buf.String())
}

func TestProgressQuiet(t *testing.T) {
	var buf bytes.Buffer

	small := newProgress(&buf, "tagging", minItems-1, true)
	small.Step()
	small.Done()

	piped := newProgress(&buf, "tagging", 50, false)
	piped.Step()
	piped.Done()

	assert.Empty(t, buf.String())
}
