//go:build unix

package syserr

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// FromErrno creates an error for a numeric errno value. Numbers the
// platform does not name, or names without a registry entry, produce a
// KindUnknown error.
//
// A number shared by several codes resolves to the platform's canonical
// name. On Linux EWOULDBLOCK is EAGAIN and EOPNOTSUPP is ENOTSUP, so
// KindOperationWouldBlock and KindOperationNotSupportedOnSocket are only
// reachable through FromCode there.
func FromErrno(errno syscall.Errno) *Error {
	return FromCode(unix.ErrnoName(errno))
}

func errnoCode(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	name := unix.ErrnoName(errno)
	return name, name != ""
}
