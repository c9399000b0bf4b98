package syserr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormat_UserString(t *testing.T) {
	t.Run("with system error", func(t *testing.T) {
		if got := UserString(FromCode("ENOSPC")); got != "No space available on the device." {
			t.Errorf("UserString(err) = %q, want %q", got, "No space available on the device.")
		}
	})
	t.Run("with wrapped system error", func(t *testing.T) {
		err := fmt.Errorf("write log: %w", FromCode("ENOSPC"))
		if got := UserString(err); got != "No space available on the device." {
			t.Errorf("UserString(err) = %q, want %q", got, "No space available on the device.")
		}
	})
	t.Run("with nil error", func(t *testing.T) {
		if UserString(nil) != "" {
			t.Errorf("UserString(nil) = %q, want empty string", UserString(nil))
		}
	})
	t.Run("with other error", func(t *testing.T) {
		err := errors.New("standard error")
		if UserString(err) != "standard error" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "standard error")
		}
	})
}

func TestFormat_IsError(t *testing.T) {
	if !IsError(FromCode("EACCES")) {
		t.Errorf("IsError(system error) = false, want true")
	}
	if !IsError(fmt.Errorf("wrap: %w", FromCode("EACCES"))) {
		t.Errorf("IsError(wrapped system error) = false, want true")
	}
	if IsError(errors.New("test")) {
		t.Errorf("IsError(plain error) = true, want false")
	}
	if IsError(nil) {
		t.Errorf("IsError(nil) = true, want false")
	}
}

func TestFormat_DebugString(t *testing.T) {
	t.Run("with lookup error", func(t *testing.T) {
		got := DebugString(FromCode("EACCES"))
		want := "1: *syserr.Error: The operation does not have enough permissions. | kind=ERROR_NO_ACCESS | code=EACCES | message=\"The operation does not have enough permissions.\""
		if got != want {
			t.Errorf("DebugString(err) = %q, want %q", got, want)
		}
	})
	t.Run("with directly constructed error", func(t *testing.T) {
		got := DebugString(KindBrokenPipe.New())
		want := "1: *syserr.Error: Broken pipe. | kind=ERROR_BROKEN_PIPE | message=\"Broken pipe.\""
		if got != want {
			t.Errorf("DebugString(err) = %q, want %q", got, want)
		}
	})
	t.Run("with unknown code", func(t *testing.T) {
		got := DebugString(FromCode("EBOGUS"))
		if !strings.Contains(got, "kind=ERROR_UNKNOWN") || !strings.Contains(got, "code=EBOGUS") {
			t.Errorf("DebugString(err) = %q, want kind=ERROR_UNKNOWN and code=EBOGUS", got)
		}
	})
	t.Run("with wrapped chain", func(t *testing.T) {
		err := fmt.Errorf("open config: %w", FromCode("ENOENT"))
		lines := strings.Split(DebugString(err), "\n")
		if len(lines) != 2 {
			t.Fatalf("DebugString(err) has %d lines, want 2: %q", len(lines), lines)
		}
		if !strings.HasPrefix(lines[0], "1: *fmt.wrapError: open config: No such file or directory.") {
			t.Errorf("line 1 = %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "2: *syserr.Error:") || !strings.Contains(lines[1], "code=ENOENT") {
			t.Errorf("line 2 = %q", lines[1])
		}
	})
	t.Run("with errors.Join", func(t *testing.T) {
		joined := errors.Join(FromCode("EIO"), errors.New("error2"))
		got := DebugString(joined)
		if !strings.Contains(got, "kind=ERROR_UNSPECIFIED_IO_ERROR") {
			t.Errorf("DebugString(joined) should contain the system error, got %q", got)
		}
		if !strings.Contains(got, "error2") {
			t.Errorf("DebugString(joined) should contain error2, got %q", got)
		}
	})
	t.Run("with plain error", func(t *testing.T) {
		err := errors.New("test")
		if DebugString(err) != "1: *errors.errorString: test" {
			t.Errorf("DebugString(err) = %q, want %q", DebugString(err), "1: *errors.errorString: test")
		}
	})
	t.Run("with nil error", func(t *testing.T) {
		if DebugString(nil) != "" {
			t.Errorf("DebugString(nil) = %q, want empty string", DebugString(nil))
		}
	})
}

type selfWrap struct{}

func (selfWrap) Error() string { return "loop" }

func (s selfWrap) Unwrap() error { return s }

func TestFormat_flattenChainIsBounded(t *testing.T) {
	if got := len(flattenChain(selfWrap{})); got != 64 {
		t.Errorf("len(flattenChain(loop)) = %d, want 64", got)
	}
}
