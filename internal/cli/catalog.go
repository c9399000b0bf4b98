package cli

// This file implements the "lookup" and "list" commands, which expose the
// system error catalog on the command line.

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"system-errors/pkg/syserr"
)

// CatalogManager handles catalog commands with injected dependencies.
type CatalogManager struct {
	logger  *zap.Logger
	printer *Printer
}

// NewCatalogManager creates a CatalogManager with the given logger.
func NewCatalogManager(logger *zap.Logger) *CatalogManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogManager{logger: logger, printer: DefaultPrinter}
}

// NewLookupCmd builds the lookup subcommand.
func NewLookupCmd(logger *zap.Logger) *cobra.Command {
	return NewCatalogManager(logger).newLookupCmd()
}

// NewListCmd builds the list subcommand.
func NewListCmd(logger *zap.Logger) *cobra.Command {
	return NewCatalogManager(logger).newListCmd()
}

func (m *CatalogManager) newLookupCmd() *cobra.Command {
	var output string
	var strict bool

	cmd := &cobra.Command{
		Use:   "lookup CODE [CODE...]",
		Short: "Resolve POSIX error codes",
		Long: `Resolve one or more POSIX error codes (e.g. ENOENT, ECONNRESET) to their
error kind and message. Unrecognized codes resolve to ERROR_UNKNOWN.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(output)
			if err != nil {
				m.printer.Error("Invalid configuration")
				logStructuredError(m.logger, err, "Invalid configuration")
				return err
			}
			ConfigureColor(settings.Color)
			return m.Lookup(cmd.OutOrStdout(), args, settings.Output, strict)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, yaml or json (default from config, then table)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any code is not recognized")

	return cmd
}

func (m *CatalogManager) newListCmd() *cobra.Command {
	var output string
	var byKind bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the error catalog",
		Long:  "List every registered POSIX error code, or every error kind with --kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(output)
			if err != nil {
				m.printer.Error("Invalid configuration")
				logStructuredError(m.logger, err, "Invalid configuration")
				return err
			}
			ConfigureColor(settings.Color)
			return m.List(cmd.OutOrStdout(), settings.Output, byKind)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, yaml or json (default from config, then table)")
	cmd.Flags().BoolVar(&byKind, "kinds", false, "Group by error kind and show code aliases")

	return cmd
}

// Lookup resolves codes and writes the results. With strict set, it returns
// ErrUnknownCode after writing if any code was not recognized.
func (m *CatalogManager) Lookup(w io.Writer, codes []string, format string, strict bool) error {
	records := make([]errorRecord, 0, len(codes))
	var unknown []string
	for _, code := range codes {
		err := syserr.FromCode(code)
		m.logger.Debug("Resolved error code",
			zap.String("code", code),
			zap.String("kind", err.Name()))
		if err.Kind() == syserr.KindUnknown {
			unknown = append(unknown, code)
		}
		records = append(records, recordFor(code, err))
	}

	if err := render(w, format, records, false); err != nil {
		logStructuredError(m.logger, err, "Failed to render lookup results")
		return err
	}

	if strict && len(unknown) > 0 {
		err := fmt.Errorf("%w: %s (%w)", ErrUnknownCode, strings.Join(unknown, ", "), syserr.FromCode(unknown[0]))
		m.printer.Error(fmt.Sprintf("Unknown error codes: %s", strings.Join(unknown, ", ")))
		logStructuredError(m.logger, err, "Unknown error code")
		return err
	}
	for _, code := range unknown {
		m.printer.Warn(fmt.Sprintf("Unknown error code %q resolved to %s", code, syserr.KindUnknown.Name()))
	}
	return nil
}

// List writes every registered code, or every kind when byKind is set.
func (m *CatalogManager) List(w io.Writer, format string, byKind bool) error {
	var records []errorRecord
	if byKind {
		for _, kind := range syserr.Kinds() {
			records = append(records, kindRecord(kind))
		}
	} else {
		for _, entry := range syserr.CodeRegistry() {
			records = append(records, recordFor(entry.Code, entry.Kind.New()))
		}
	}
	m.logger.Debug("Listing catalog", zap.Int("records", len(records)), zap.Bool("kinds", byKind))

	if format == OutputTable {
		title := "Error codes"
		if byKind {
			title = "Error kinds"
		}
		m.printer.Section(title)
	}
	if err := render(w, format, records, byKind); err != nil {
		logStructuredError(m.logger, err, "Failed to render catalog")
		return err
	}
	if format == OutputTable {
		m.printer.Info(fmt.Sprintf("%d codes, %d kinds", len(syserr.Codes()), len(syserr.Kinds())))
	}
	return nil
}
