//go:build unix

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"system-errors/pkg/syserr"
)

func TestCatalogManager_Errno(t *testing.T) {
	mgr := NewCatalogManager(zap.NewNop())
	var out bytes.Buffer

	// ENOENT is 2 on every supported unix.
	require.NoError(t, mgr.Errno(&out, []string{"2", "9999"}, OutputYAML))

	var got []errorRecord
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, errorRecord{Code: "ENOENT", Kind: "ERROR_NO_SUCH_FILE_OR_DIRECTORY", Message: "No such file or directory.", Known: true}, got[0])
	assert.Equal(t, errorRecord{Code: "9999", Kind: "ERROR_UNKNOWN", Message: "Unknown error.", Known: false}, got[1])
}

func TestCatalogManager_ErrnoInvalid(t *testing.T) {
	mgr := NewCatalogManager(zap.NewNop())
	var out bytes.Buffer

	for _, value := range []string{"abc", "-1", "70000"} {
		err := mgr.Errno(&out, []string{value}, OutputYAML)
		assert.True(t, errors.Is(err, ErrInvalidErrno), "Errno(%q) = %v", value, err)
	}
}

func TestPlatformCmds(t *testing.T) {
	cmds := PlatformCmds(zap.NewNop())
	require.Len(t, cmds, 1)
	assert.Equal(t, "errno", cmds[0].Name())
}

func TestResolveSettings_UnreadableConfig(t *testing.T) {
	home := isolateConfig(t)
	// A directory where the file should be makes the read fail with EISDIR.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".system-errors", "config.yaml"), 0o750))

	_, err := resolveSettings("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadConfigFailed), "got %v", err)
	assert.True(t, syserr.IsKind(err, syserr.KindPathIsADirectory), "got %s", syserr.DebugString(err))
}
