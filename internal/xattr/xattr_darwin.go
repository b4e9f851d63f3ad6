package xattr

import "golang.org/x/sys/unix"

// DefaultPrefix is prepended to attribute keys. macOS keys live in a flat
// namespace, so Finder's keys are used as-is.
const DefaultPrefix = ""

var errNoAttr = unix.ENOATTR
