// Package diff shows how a tag set changes across an operation. It backs
// the --diff and --dry-run flags.
//
// Tag sets are compared line by line, one Label per line in sorted order, so
// a recoloured tag shows as a removal and an insertion.
package diff

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/scooby/osx-tags/internal/format"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds diff output for one path.
type Result struct {
	Path    string `json:"path"`
	Diff    string `json:"diff"`
	Changed bool   `json:"changed"`
}

// Compute returns the diff between the before and after tag sets of path.
func Compute(path string, before, after []string) Result {
	oldText, newText := lines(before), lines(after)

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(oldText, newText)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, table)

	return Result{
		Path:    path,
		Diff:    render(d),
		Changed: oldText != newText,
	}
}

// lines renders a tag set as sorted, newline-terminated labels.
func lines(tokens []string) string {
	labels := make([]string, len(tokens))
	for i, t := range tokens {
		labels[i] = format.Label(t)
	}
	slices.Sort(labels)
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l + "\n")
	}
	return b.String()
}

// render converts diffs to unified-style text.
func render(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		// Trim trailing newline to avoid artefact empty string from Split
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the diff with a header naming the path.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Path, r.Path)
	if !r.Changed {
		return header + "  (no change)\n"
	}
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}

// Print writes r.Format to w.
func (r Result) Print(w io.Writer, colour bool) {
	fmt.Fprint(w, r.Format(colour))
}
