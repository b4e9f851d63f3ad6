package xattr

import "golang.org/x/sys/unix"

// DefaultPrefix is prepended to attribute keys. Linux only accepts
// unprivileged keys in the user namespace, which is also where netatalk and
// Samba place Finder metadata copied from macOS.
const DefaultPrefix = "user."

var errNoAttr = unix.ENODATA
