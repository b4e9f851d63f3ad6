// Package progress reports per-file progress on stderr while a tag command
// walks many paths. Stdout stays clean for piping, and nothing is drawn when
// stderr is not a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the smallest run worth a progress line.
const minItems = 5

// Progress draws "label... n/total (pct%)" in place.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	width   int
	enabled bool
}

// New returns a reporter on stderr for total paths.
func New(label string, total int) *Progress {
	return newProgress(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

func newProgress(w io.Writer, label string, total int, tty bool) *Progress {
	return &Progress{
		w:       w,
		label:   label,
		total:   total,
		enabled: tty && total >= minItems,
	}
}

// Step records one finished path and redraws the line.
func (p *Progress) Step() {
	p.current++
	if !p.enabled {
		return
	}
	line := fmt.Sprintf("%s... %d/%d (%d%%)", p.label, p.current, p.total, p.current*100/p.total)
	p.width = max(p.width, len(line))
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done erases the progress line.
func (p *Progress) Done() {
	if !p.enabled || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}
