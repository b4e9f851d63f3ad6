// color.go defines the Finder colour palette.
//
// The palette index is what lands on disk as the trailing digit of a token,
// so the numbering is fixed: do not reorder these constants.

package tag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned by ParseColor for names outside the palette.
var ErrUnknownColor = errors.New("unknown color")

// Color is a Finder palette index. 0 means no colour is assigned.
type Color int

// Palette entries in on-disk order.
const (
	None Color = iota
	Gray
	Green
	Purple
	Blue
	Yellow
	Red
	Orange
)

var names = [...]string{"none", "gray", "green", "purple", "blue", "yellow", "red", "orange"}

// aliases are accepted by ParseColor in addition to the canonical names.
var aliases = map[string]Color{"grey": Gray}

// Valid reports whether c is a palette index.
func (c Color) Valid() bool {
	return c >= None && c <= Orange
}

// String returns the palette name, or "color(n)" for out-of-range values.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return names[c]
}

// Names returns the canonical palette names in index order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// ParseColor resolves a palette name, ignoring case.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(name)
	for i, v := range names {
		if v == n {
			return Color(i), nil
		}
	}
	if c, ok := aliases[n]; ok {
		return c, nil
	}
	return None, fmt.Errorf("%w %q, must be one of %s", ErrUnknownColor, name, strings.Join(names[:], ", "))
}
