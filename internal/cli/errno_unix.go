//go:build unix

package cli

import (
	"fmt"
	"io"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"system-errors/pkg/syserr"
)

// PlatformCmds returns subcommands that only exist on this platform.
func PlatformCmds(logger *zap.Logger) []*cobra.Command {
	return []*cobra.Command{NewErrnoCmd(logger)}
}

// NewErrnoCmd builds the errno subcommand.
func NewErrnoCmd(logger *zap.Logger) *cobra.Command {
	return NewCatalogManager(logger).newErrnoCmd()
}

func (m *CatalogManager) newErrnoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "errno NUMBER [NUMBER...]",
		Short: "Resolve numeric errno values",
		Long:  "Resolve numeric errno values of this platform (e.g. 2 for ENOENT on Linux) to their error kind",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(output)
			if err != nil {
				m.printer.Error("Invalid configuration")
				logStructuredError(m.logger, err, "Invalid configuration")
				return err
			}
			ConfigureColor(settings.Color)
			return m.Errno(cmd.OutOrStdout(), args, settings.Output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, yaml or json (default from config, then table)")

	return cmd
}

// Errno resolves decimal errno values and writes the results.
func (m *CatalogManager) Errno(w io.Writer, values []string, format string) error {
	records := make([]errorRecord, 0, len(values))
	for _, value := range values {
		n, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			wrapped := fmt.Errorf("%w: %q", ErrInvalidErrno, value)
			m.printer.Error(fmt.Sprintf("Invalid errno value %q", value))
			logStructuredError(m.logger, wrapped, "Invalid errno value")
			return wrapped
		}
		sysErr := syserr.FromErrno(syscall.Errno(n))
		record := recordFor(sysErr.Code(), sysErr)
		if record.Code == "" {
			record.Code = value
		}
		records = append(records, record)
	}

	if err := render(w, format, records, false); err != nil {
		logStructuredError(m.logger, err, "Failed to render errno results")
		return err
	}
	return nil
}
