package syserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger captures Error calls made through a logr.Logger.
type testLogger struct {
	errorCalls []errorCall
}

type errorCall struct {
	err           error
	msg           string
	keysAndValues []interface{}
}

func (l *testLogger) Init(info logr.RuntimeInfo) {}

func (l *testLogger) Enabled(level int) bool {
	return true
}

func (l *testLogger) Info(level int, msg string, keysAndValues ...interface{}) {}

func (l *testLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.errorCalls = append(l.errorCalls, errorCall{
		err:           err,
		msg:           msg,
		keysAndValues: keysAndValues,
	})
}

func (l *testLogger) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return l
}

func (l *testLogger) WithName(name string) logr.LogSink {
	return l
}

func TestLog_LogError(t *testing.T) {
	t.Run("with lookup error", func(t *testing.T) {
		sink := &testLogger{}
		err := FromCode("ENOENT")

		LogError(logr.New(sink), err, "open failed")

		require.Len(t, sink.errorCalls, 1, "should log exactly one error")
		call := sink.errorCalls[0]
		assert.Equal(t, err, call.err, "logged error should match")
		assert.Equal(t, "open failed", call.msg, "logged message should match")

		kv := call.keysAndValues
		assert.Equal(t, "ERROR_NO_SUCH_FILE_OR_DIRECTORY", getValue(kv, "error.kind"))
		assert.Equal(t, "No such file or directory.", getValue(kv, "error.message"))
		assert.Equal(t, "ENOENT", getValue(kv, "error.code"))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		sink := &testLogger{}
		err := fmt.Errorf("dial: %w", FromCode("ECONNREFUSED"))

		LogError(logr.New(sink), err, "dial failed")

		require.Len(t, sink.errorCalls, 1)
		assert.Equal(t, "ERROR_NETWORK_CONNECTION_REFUSED", getValue(sink.errorCalls[0].keysAndValues, "error.kind"))
	})

	t.Run("with directly constructed error", func(t *testing.T) {
		sink := &testLogger{}

		LogError(logr.New(sink), KindBrokenPipe.New(), "write failed")

		require.Len(t, sink.errorCalls, 1)
		kv := sink.errorCalls[0].keysAndValues
		assert.Contains(t, kv, "error.kind")
		assert.NotContains(t, kv, "error.code", "should not include error.code without a code")
	})

	t.Run("with plain error", func(t *testing.T) {
		sink := &testLogger{}
		err := errors.New("standard error")

		LogError(logr.New(sink), err, "Standard error occurred")

		require.Len(t, sink.errorCalls, 1)
		assert.Equal(t, err, sink.errorCalls[0].err)
		assert.Empty(t, sink.errorCalls[0].keysAndValues, "should not have structured fields for plain errors")
	})

	t.Run("with nil error", func(t *testing.T) {
		sink := &testLogger{}

		LogError(logr.New(sink), nil, "Should not log")

		assert.Len(t, sink.errorCalls, 0, "should not log when error is nil")
	})
}

// getValue extracts a value from logr key-value pairs.
func getValue(kv []interface{}, key string) interface{} {
	for i := 0; i < len(kv)-1; i += 2 {
		if kv[i] == key {
			return kv[i+1]
		}
	}
	return nil
}
