// Command bootlauncher-res builds the Windows resources of the launcher and
// checks distribution directories.
//
//	bootlauncher-res syso --out rsrc_windows_amd64.syso --arch amd64
//	bootlauncher-res stamp dist\OCR_Server.exe --version 1.2.0
//	bootlauncher-res describe dist\OCR_Server.exe
//	bootlauncher-res check dist --debug
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/ocr-server/bootlauncher/pkg/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func getBuilderTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "bootlauncher-res %s\n", version)
	fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", getBuilderTimestamp())
}

type rootOptions struct {
	logLevel    string
	versionFlag bool
}

func (o *rootOptions) logger() hclog.Logger {
	level := o.logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	return logging.NewLogger("bootlauncher-res", level, os.Stderr)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "bootlauncher-res",
		Short:         "Build launcher resources and check distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.versionFlag {
				printVersion(cmd)
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&opts.versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newSysoCmd(opts),
		newStampCmd(opts),
		newDescribeCmd(),
		newCheckCmd(),
	)
	return rootCmd
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("bootlauncher-res %s\n", version)
		fmt.Printf("Built: %s\n", getBuilderTimestamp())
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
