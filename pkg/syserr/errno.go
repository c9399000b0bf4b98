package syserr

import "errors"

// CodeOf extracts a POSIX error code from err's chain. A system error
// contributes the code it was created from; on unix platforms a wrapped
// syscall.Errno contributes its symbolic name.
func CodeOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var e *Error
	if errors.As(err, &e) && e != nil && e.code != "" {
		return e.code, true
	}
	return errnoCode(err)
}

// FromError classifies an arbitrary error. A system error already present
// in the chain is returned as is. Otherwise the code found by CodeOf is
// looked up, falling back to KindUnknown. FromError returns nil for nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	code, _ := errnoCode(err)
	return FromCode(code)
}
