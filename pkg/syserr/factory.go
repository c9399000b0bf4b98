package syserr

// FromCode creates an error for a POSIX error code such as "ENOENT".
// Codes without a registry entry produce a KindUnknown error, so the
// result is never nil. Each call returns a new value.
func FromCode(code string) *Error {
	kind, ok := codeIndex[code]
	if !ok {
		kind = KindUnknown
	}
	return newWithCode(kind, code)
}
