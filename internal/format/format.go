// Package format renders tag sets for terminal and JSON output.
//
// Plain output is one line per path, each tag in brackets and styled with
// its Finder colour:
//
//	notes.txt [work] [urgent]
//
// JSON output is a list of {path, tags: [{tag, color}]} objects with colours
// given by palette name.
package format

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scooby/osx-tags/internal/tag"
	"golang.org/x/term"
)

// Colour modes accepted by Enabled and the color.mode setting.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Modes lists the valid colour modes.
var Modes = []string{ModeAuto, ModeAlways, ModeNever}

// Entry is one decoded tag.
type Entry struct {
	Tag   string `json:"tag"`
	Color string `json:"color"`
}

// PathTags is the tag set of one path.
type PathTags struct {
	Path string  `json:"path"`
	Tags []Entry `json:"tags"`
}

// palette maps colour index to terminal attributes. The dark and light
// variants of yellow stand in for yellow and orange.
var palette = [...][]color.Attribute{
	tag.None:   nil,
	tag.Gray:   {color.FgBlack, color.Bold},
	tag.Green:  {color.FgGreen},
	tag.Purple: {color.FgMagenta, color.Bold},
	tag.Blue:   {color.FgBlue},
	tag.Yellow: {color.FgYellow, color.Bold},
	tag.Red:    {color.FgRed},
	tag.Orange: {color.FgYellow},
}

// Enabled resolves a colour mode against f. Auto enables styling only when
// f is a terminal; unknown modes behave like auto.
func Enabled(mode string, f *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Entries decodes tokens into display entries, preserving order.
func Entries(tokens []string) []Entry {
	out := make([]Entry, len(tokens))
	for i, t := range tokens {
		text, c := tag.Split(t)
		out[i] = Entry{Tag: text, Color: c.String()}
	}
	return out
}

// Style returns the tag text of token, wrapped in ANSI codes for its colour
// when colour is true.
func Style(token string, colour bool) string {
	text, c := tag.Split(token)
	attrs := palette[c]
	if !colour || len(attrs) == 0 {
		return text
	}
	p := color.New(attrs...)
	p.EnableColor()
	return p.Sprint(text)
}

// Label is a single-line description of token for diffs and logs, e.g.
// "urgent (red)". Newlines in the text are escaped.
func Label(token string) string {
	text, c := tag.Split(token)
	text = strings.ReplaceAll(text, "\n", `\n`)
	if c == tag.None {
		return text
	}
	return text + " (" + c.String() + ")"
}

// Line formats one path and its tags.
func Line(path string, tokens []string, colour bool) string {
	var b strings.Builder
	b.WriteString(path)
	for _, t := range tokens {
		b.WriteString(" [")
		b.WriteString(Style(t, colour))
		b.WriteString("]")
	}
	return b.String()
}
