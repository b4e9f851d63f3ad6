// errors.go defines sentinel errors for validation failures.
//
// These errors are used with errors.Is() for type-safe error checking.
// Detailed messages are provided by wrapping them with fmt.Errorf.

package validate

import "errors"

var (
	// ErrNotString is returned when a tag value supplied by a caller is not
	// a string. Mutating operations check for it before touching any file.
	ErrNotString = errors.New("tags must be strings")
	// ErrNoPaths is returned when an operation is given no target files.
	ErrNoPaths = errors.New("no paths given")
)
