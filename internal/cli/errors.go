package cli

// This file defines error handling utilities for the CLI, including:
//   - Sentinel errors returned by the subcommands
//   - Structured error logging through the syserr logr hook
//   - Debug mode management for error output

import (
	"errors"
	"sync"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"system-errors/pkg/syserr"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError will output structured error logs to terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// Sentinel errors for CLI operations.
var (
	// Lookup errors.
	ErrUnknownCode  = errors.New("unknown error code")
	ErrInvalidErrno = errors.New("invalid errno value")

	// Output errors.
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrRenderFailed      = errors.New("failed to render output")

	// Config errors.
	ErrReadConfigFailed      = errors.New("failed to read CLI config")
	ErrUnmarshalConfigFailed = errors.New("failed to unmarshal CLI config")
)

// logStructuredError logs an error with structured fields to terminal.
// Only logs when debug mode is enabled (via --debug flag).
//
// System errors found in the chain are logged through syserr.LogError, which
// adds these fields:
// - error.kind: "ERROR_NO_SUCH_FILE_OR_DIRECTORY"
// - error.code: "ENOENT"
// - error.message: "No such file or directory."
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}
	syserr.LogError(zapr.NewLogger(logger), err, msg)
}
