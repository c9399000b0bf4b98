package cli

// This file wraps pterm for the CLI's human-facing output: tables, colours
// and status lines. Machine-readable formats live in output.go.

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Printer writes status messages unless Quiet is set.
// Messages go to Out, or to stderr when Out is nil, so they never mix with
// rendered results.
type Printer struct {
	Quiet bool
	Out   io.Writer
}

// DefaultPrinter is shared by the subcommands. The root --quiet flag sets
// its Quiet field.
var DefaultPrinter = &Printer{}

// ConfigureColor enables colour only when requested and stdout is a terminal.
func ConfigureColor(enabled bool) {
	if enabled && isTerminal(os.Stdout) {
		pterm.EnableColor()
		return
	}
	pterm.DisableColor()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (p *Printer) writer() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stderr
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.Quiet {
		return
	}
	pterm.DefaultSection.WithWriter(p.writer()).Println(title)
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	pterm.Info.WithWriter(p.writer()).Println(msg)
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	if p.Quiet {
		return
	}
	pterm.Warning.WithWriter(p.writer()).Println(msg)
}

// Error prints an error line. Errors are printed even in quiet mode.
func (p *Printer) Error(msg string) {
	pterm.Error.WithWriter(p.writer()).Println(msg)
}

// Green returns s styled green.
func Green(s string) string { return pterm.Green(s) }

// Yellow returns s styled yellow.
func Yellow(s string) string { return pterm.Yellow(s) }

// Cyan returns s styled cyan.
func Cyan(s string) string { return pterm.Cyan(s) }

// writeTable renders data with its first row as header.
func writeTable(w io.Writer, data [][]string, boxed bool) error {
	if len(data) == 0 {
		return nil
	}
	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(boxed).
		WithData(pterm.TableData(data)).
		Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
