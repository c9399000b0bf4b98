package syserr

import "errors"

// Error is an instantiated system error. It carries the catalog kind and,
// when created through a lookup, the code it was resolved from.
type Error struct {
	kind Kind
	code string
}

// New creates a new Error of the given kind without an originating code.
// Kinds outside the catalog produce a KindUnknown error.
func New(kind Kind) *Error {
	if !kind.Valid() {
		kind = KindUnknown
	}
	return &Error{kind: kind}
}

func newWithCode(kind Kind, code string) *Error {
	err := New(kind)
	err.code = code
	return err
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.kind.Message()
}

// Is reports whether target is an *Error of the same kind.
// This lets errors.Is match independently constructed values.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.kind == e.kind
}

// Kind returns the catalog kind.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindUnknown
	}
	return e.kind
}

// Name returns the kind identifier, e.g. "ERROR_NO_ACCESS".
func (e *Error) Name() string {
	if e == nil {
		return ""
	}
	return e.kind.Name()
}

// Message returns the fixed message of the kind.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.kind.Message()
}

// Code returns the code the error was created from.
// It is empty for errors constructed directly from a Kind.
func (e *Error) Code() string {
	if e == nil {
		return ""
	}
	return e.code
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.kind, true
	}
	return KindUnknown, false
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
