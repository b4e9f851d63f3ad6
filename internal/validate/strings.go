package validate

import (
	"fmt"
	"strings"
)

// Strings converts untyped values to tag strings. The first non-string value
// fails the whole conversion with ErrNotString naming its position and type.
func Strings(vals []any) ([]string, error) {
	out := make([]string, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: tag %d is %T", ErrNotString, i, v)
		}
		out[i] = s
	}
	return out, nil
}

// Paths rejects an empty path list and paths containing null bytes, which no
// filesystem accepts and which would otherwise surface as opaque syscall errors.
func Paths(paths []string) error {
	if len(paths) == 0 {
		return ErrNoPaths
	}
	for _, p := range paths {
		if p == "" || strings.ContainsRune(p, 0) {
			return fmt.Errorf("invalid path %q", p)
		}
	}
	return nil
}
