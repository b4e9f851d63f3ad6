// Package tag encodes and decodes Finder tag tokens.
//
// A token is the string stored per tag in the extended attribute: the
// display text, optionally followed by a newline and a single colour digit
// ("work\n6" is a red "work" tag). All functions are pure and total; a token
// whose suffix does not match the colour grammar simply has no colour.
//
// Canonical form: colour 0 is stored bare ("work"), never as "work\n0".
// The read path accepts both, so Normalize maps either to the bare form.
package tag

import "strings"

// separator joins display text and colour digit.
const separator = "\n"

// cut splits off a trailing colour suffix. ok is false when the segment after
// the last newline is not exactly one digit in '0'..'7'.
func cut(t string) (text string, c Color, ok bool) {
	i := strings.LastIndex(t, separator)
	if i < 0 {
		return t, None, false
	}
	suffix := t[i+len(separator):]
	if len(suffix) != 1 || suffix[0] < '0' || suffix[0] > '7' {
		return t, None, false
	}
	return t[:i], Color(suffix[0] - '0'), true
}

// Split extracts the text and colour of a token.
//
// Only the segment after the last newline is considered, so multi-line text
// is preserved: "two\nlines" has no colour and keeps both lines as text.
func Split(t string) (string, Color) {
	text, c, _ := cut(t)
	return text, c
}

// Strip returns the token without its colour suffix. Tokens without a
// recognisable suffix are returned unchanged.
func Strip(t string) string {
	text, _, _ := cut(t)
	return text
}

// Encode returns the canonical token for t with colour c.
//
// Stale colour suffixes on t are replaced, not appended to. Every trailing
// suffix is removed, which keeps Normalize idempotent for text that itself
// ends in digit lines. None, and colours outside the palette, produce the
// bare text.
func Encode(t string, c Color) string {
	text := t
	for {
		s, _, ok := cut(text)
		if !ok {
			break
		}
		text = s
	}
	if c == None || !c.Valid() {
		return text
	}
	return text + separator + string(rune('0'+int(c)))
}

// Normalize returns the canonical encoding of t. Normalize is idempotent.
func Normalize(t string) string {
	return Encode(Split(t))
}

// NormalizeAll normalises every token, preserving order and duplicates.
func NormalizeAll(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = Normalize(t)
	}
	return out
}
