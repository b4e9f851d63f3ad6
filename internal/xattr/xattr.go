// Package xattr reads and writes extended attributes.
//
// Attributes is the small surface the tag store needs: get, set and remove a
// named blob. Path and File bind it to the host filesystem through
// golang.org/x/sys/unix; Memory keeps attributes in a map for tests and for
// callers that want to stage changes without touching disk.
//
// Absence is reported as ErrNotExist regardless of platform (ENOATTR on
// darwin, ENODATA on linux), so callers can test with errors.Is.
package xattr

import "errors"

var (
	// ErrNotExist is returned when the named attribute is not set.
	ErrNotExist = errors.New("attribute does not exist")
	// ErrUnsupported is returned on platforms without extended attributes.
	ErrUnsupported = errors.New("extended attributes not supported on this platform")
)

// Attributes is one file's extended-attribute namespace.
type Attributes interface {
	// Get returns the value of name, or an error wrapping ErrNotExist.
	Get(name string) ([]byte, error)
	// Set creates or replaces name with data.
	Set(name string, data []byte) error
	// Remove deletes name. Removing an unset name wraps ErrNotExist.
	Remove(name string) error
}

// Error records a failed attribute operation.
type Error struct {
	Op   string // "get", "set" or "remove"
	Path string // file path, or "fd N" for handle-bound attributes
	Name string // attribute name
	Err  error
}

func (e *Error) Error() string {
	return "xattr " + e.Op + " " + e.Name + " on " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
