//go:build !unix

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// PlatformCmds returns subcommands that only exist on this platform.
func PlatformCmds(*zap.Logger) []*cobra.Command {
	return nil
}
