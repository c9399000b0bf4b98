package syserr

import (
	"errors"

	"github.com/go-logr/logr"
)

// LogError logs err with structured fields when it carries a system error:
//   - error.kind: "ERROR_NO_SUCH_FILE_OR_DIRECTORY"
//   - error.code: "ENOENT" (omitted for directly constructed errors)
//   - error.message: "No such file or directory."
//
// Other errors are logged without extra fields. A nil error is ignored.
func LogError(logger logr.Logger, err error, msg string) {
	if err == nil {
		return
	}

	var e *Error
	if !errors.As(err, &e) || e == nil {
		logger.Error(err, msg)
		return
	}

	keysAndValues := []interface{}{
		"error.kind", e.Name(),
		"error.message", e.Message(),
	}
	if e.code != "" {
		keysAndValues = append(keysAndValues, "error.code", e.code)
	}
	logger.Error(err, msg, keysAndValues...)
}
