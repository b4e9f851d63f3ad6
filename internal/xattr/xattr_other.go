//go:build !darwin && !linux

package xattr

import "os"

// DefaultPrefix is prepended to attribute keys.
const DefaultPrefix = ""

type unsupported struct {
	path string
}

// Path returns Attributes that fail every call with ErrUnsupported.
func Path(p string) Attributes {
	return unsupported{path: p}
}

// File returns Attributes that fail every call with ErrUnsupported.
func File(f *os.File) Attributes {
	return unsupported{path: f.Name()}
}

func (u unsupported) Get(name string) ([]byte, error) {
	return nil, &Error{Op: "get", Path: u.path, Name: name, Err: ErrUnsupported}
}

func (u unsupported) Set(name string, _ []byte) error {
	return &Error{Op: "set", Path: u.path, Name: name, Err: ErrUnsupported}
}

func (u unsupported) Remove(name string) error {
	return &Error{Op: "remove", Path: u.path, Name: name, Err: ErrUnsupported}
}
