package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ocr-server/bootlauncher/internal/layout"
	"github.com/ocr-server/bootlauncher/pkg/utils/winargs"
	"github.com/spf13/cobra"
)

var (
	errIncomplete = errors.New("❌ distribution is incomplete")
	errUnquotable = errors.New("❌ launcher command line cannot be quoted")
)

func newCheckCmd() *cobra.Command {
	var debugMode, all bool

	cmd := &cobra.Command{
		Use:   "check DIR",
		Short: "Check that a distribution directory has the launcher layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interpreters := []string{layout.ReleaseInterpreter}
			switch {
			case all:
				interpreters = []string{layout.ReleaseInterpreter, layout.DebugInterpreter}
			case debugMode:
				interpreters = []string{layout.DebugInterpreter}
			}
			return runCheck(cmd.OutOrStdout(), args[0], interpreters)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Expect the console interpreter (python.exe)")
	cmd.Flags().BoolVar(&all, "all", false, "Expect both interpreters")
	return cmd
}

// runCheck prints one line per layout entry and fails when any is missing
// or when the launcher could not pass the paths through plain quoting.
func runCheck(w io.Writer, dir string, interpreters []string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	p, err := layout.FromDir(layout.Native, abs)
	if err != nil {
		return err
	}

	findings := layout.Inspect(p, interpreters...)
	for _, f := range findings {
		switch {
		case f.OK():
			fmt.Fprintf(w, "✅ %-24s %s\n", f.Name, f.Path)
		case f.Problem != "":
			fmt.Fprintf(w, "❌ %-24s %s (%s)\n", f.Name, f.Path, f.Problem)
		default:
			fmt.Fprintf(w, "❌ %-24s %s (missing %s)\n", f.Name, f.Path, f.Kind)
		}
	}

	var quoteErr error
	for _, binary := range interpreters {
		if err := winargs.Check(p.Interpreter(binary), p.BootScript()); err != nil {
			fmt.Fprintf(w, "❌ %-24s %v\n", "command line", err)
			quoteErr = err
		}
	}

	if missing := layout.Missing(findings); len(missing) > 0 {
		return fmt.Errorf("%w: %d of %d entries", errIncomplete, len(missing), len(findings))
	}
	if quoteErr != nil {
		return fmt.Errorf("%w: %w", errUnquotable, quoteErr)
	}
	return nil
}
