//go:build unix

package syserr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"syscall"
	"testing"

	"golang.org/x/sys/unix"
)

func TestErrno_FromErrno(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		kind  Kind
		code  string
	}{
		{syscall.ENOENT, KindNoSuchFileOrDirectory, "ENOENT"},
		{syscall.EACCES, KindNoAccess, "EACCES"},
		{syscall.ECONNRESET, KindNetworkConnectionReset, "ECONNRESET"},
		{syscall.EMFILE, KindTooManyOpenFiles, "EMFILE"},
		{syscall.ENFILE, KindTooManyOpenFiles, "ENFILE"},
		{syscall.ETIMEDOUT, KindConnectionTimeout, "ETIMEDOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := FromErrno(tt.errno)
			if err.Kind() != tt.kind {
				t.Errorf("FromErrno(%d).Kind() = %v, want %v", tt.errno, err.Kind(), tt.kind)
			}
			if err.Code() != tt.code {
				t.Errorf("FromErrno(%d).Code() = %q, want %q", tt.errno, err.Code(), tt.code)
			}
		})
	}
}

func TestErrno_FromErrnoAliasedNumbers(t *testing.T) {
	for _, errno := range []syscall.Errno{syscall.EWOULDBLOCK, syscall.EAGAIN, syscall.EOPNOTSUPP, syscall.ENOTSUP} {
		canonical := unix.ErrnoName(errno)
		err := FromErrno(errno)
		if err.Code() != canonical {
			t.Errorf("FromErrno(%d).Code() = %q, want %q", errno, err.Code(), canonical)
		}
		if want := FromCode(canonical).Kind(); err.Kind() != want {
			t.Errorf("FromErrno(%d).Kind() = %v, want %v", errno, err.Kind(), want)
		}
	}

	if runtime.GOOS != "linux" {
		return
	}
	if got := FromErrno(syscall.EWOULDBLOCK); got.Code() != "EAGAIN" || got.Kind() != KindNoDataTryAgainLater {
		t.Errorf("FromErrno(EWOULDBLOCK) = %s/%s, want EAGAIN/%s", got.Code(), got.Name(), KindNoDataTryAgainLater)
	}
	if got := FromErrno(syscall.EOPNOTSUPP); got.Code() != "ENOTSUP" || got.Kind() != KindOperationNotSupported {
		t.Errorf("FromErrno(EOPNOTSUPP) = %s/%s, want ENOTSUP/%s", got.Code(), got.Name(), KindOperationNotSupported)
	}
}

func TestErrno_FromErrnoUnnamed(t *testing.T) {
	for _, errno := range []syscall.Errno{0, 9999} {
		if got := FromErrno(errno).Kind(); got != KindUnknown {
			t.Errorf("FromErrno(%d).Kind() = %v, want %v", errno, got, KindUnknown)
		}
	}
}

func TestErrno_CodeOf(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/missing", Err: syscall.ENOENT}
	tests := []struct {
		name   string
		err    error
		code   string
		wantOK bool
	}{
		{"errno", syscall.EPIPE, "EPIPE", true},
		{"path error", pathErr, "ENOENT", true},
		{"wrapped path error", fmt.Errorf("load: %w", pathErr), "ENOENT", true},
		{"syscall error", os.NewSyscallError("connect", syscall.ECONNREFUSED), "ECONNREFUSED", true},
		{"system error", FromCode("EBOGUS"), "EBOGUS", true},
		{"direct system error", KindBrokenPipe.New(), "", false},
		{"plain", errors.New("plain"), "", false},
		{"nil", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeOf(tt.err)
			if code != tt.code || ok != tt.wantOK {
				t.Errorf("CodeOf() = (%q, %v), want (%q, %v)", code, ok, tt.code, tt.wantOK)
			}
		})
	}
}

func TestErrno_FromError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if FromError(nil) != nil {
			t.Errorf("FromError(nil) != nil")
		}
	})
	t.Run("path error", func(t *testing.T) {
		err := FromError(&fs.PathError{Op: "open", Path: "/missing", Err: syscall.ENOENT})
		if err.Kind() != KindNoSuchFileOrDirectory {
			t.Errorf("Kind() = %v, want %v", err.Kind(), KindNoSuchFileOrDirectory)
		}
	})
	t.Run("existing system error", func(t *testing.T) {
		orig := FromCode("EROFS")
		if got := FromError(fmt.Errorf("save: %w", orig)); got != orig {
			t.Errorf("FromError() = %p, want the wrapped value %p", got, orig)
		}
	})
	t.Run("plain error", func(t *testing.T) {
		err := FromError(errors.New("plain"))
		if err == nil || err.Kind() != KindUnknown {
			t.Errorf("FromError(plain) = %v, want an unknown error", err)
		}
	})
}
