// Package syserr translates POSIX error codes into named, structured errors.
//
// The package holds a closed catalog of error kinds. Each kind has:
//   - A unique identifier (e.g., "ERROR_NO_ACCESS")
//   - A fixed, human-readable message
//   - Zero or more POSIX codes mapped to it (e.g., "EACCES")
//
// Several codes may share a kind: "EMFILE" and "ENFILE" both map to
// KindTooManyOpenFiles. Codes without a mapping resolve to KindUnknown.
//
// The catalog and the code registry are built at package initialization
// and never change afterwards, so every function here is safe for
// concurrent use.
//
// Example usage:
//
//	err := syserr.FromCode("ENOENT")
//	fmt.Println(err.Name())    // ERROR_NO_SUCH_FILE_OR_DIRECTORY
//	fmt.Println(err.Message()) // No such file or directory.
//
//	if errors.Is(err, syserr.KindNoSuchFileOrDirectory.New()) {
//		// Handle specific kind
//	}
//
//	if syserr.IsKind(err, syserr.KindNoSuchFileOrDirectory) {
//		// Same check without a comparison value
//	}
package syserr
