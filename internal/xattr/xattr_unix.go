//go:build darwin || linux

// xattr_unix.go binds Attributes to the getxattr family of syscalls.
//
// Both the path-based and descriptor-based calls share one read loop: probe
// the size with an empty buffer, then read. A value that grows between the
// two calls yields ERANGE and the loop retries.

package xattr

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type pathAttrs struct {
	path string
}

// Path returns the attributes of the file at p. Symlinks are followed.
func Path(p string) Attributes {
	return &pathAttrs{path: p}
}

func (a *pathAttrs) Get(name string) ([]byte, error) {
	data, err := read(func(dest []byte) (int, error) {
		return unix.Getxattr(a.path, name, dest)
	})
	return data, wrap("get", a.path, name, err)
}

func (a *pathAttrs) Set(name string, data []byte) error {
	return wrap("set", a.path, name, unix.Setxattr(a.path, name, data, 0))
}

func (a *pathAttrs) Remove(name string) error {
	return wrap("remove", a.path, name, unix.Removexattr(a.path, name))
}

type fileAttrs struct {
	fd   int
	desc string
}

// File returns the attributes of an open file. The caller keeps ownership of
// f and must keep it open while the Attributes are in use.
func File(f *os.File) Attributes {
	return &fileAttrs{fd: int(f.Fd()), desc: f.Name()}
}

func (a *fileAttrs) Get(name string) ([]byte, error) {
	data, err := read(func(dest []byte) (int, error) {
		return unix.Fgetxattr(a.fd, name, dest)
	})
	return data, wrap("get", a.desc, name, err)
}

func (a *fileAttrs) Set(name string, data []byte) error {
	return wrap("set", a.desc, name, unix.Fsetxattr(a.fd, name, data, 0))
}

func (a *fileAttrs) Remove(name string) error {
	return wrap("remove", a.desc, name, unix.Fremovexattr(a.fd, name))
}

// maxRetries bounds the ERANGE loop against a value that keeps growing.
const maxRetries = 8

func read(get func(dest []byte) (int, error)) ([]byte, error) {
	for range maxRetries {
		size, err := get(nil)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return []byte{}, nil
		}
		buf := make([]byte, size)
		n, err := get(buf)
		if errors.Is(err, unix.ERANGE) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return buf[:n], nil
	}
	return nil, fmt.Errorf("value kept changing size: %w", unix.ERANGE)
}

func wrap(op, path, name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errNoAttr) {
		err = ErrNotExist
	}
	return &Error{Op: op, Path: path, Name: name, Err: err}
}
