package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ocr-server/bootlauncher/pkg/resources"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addResourceFlags binds the resource options to fs, keeping the current
// values of opts as defaults.
func addResourceFlags(fs *pflag.FlagSet, opts *resources.Options) {
	fs.StringVar(&opts.ProductName, "product", opts.ProductName, "Product name")
	fs.StringVar(&opts.Description, "description", opts.Description, "File description")
	fs.StringVar(&opts.CompanyName, "company", opts.CompanyName, "Company name")
	fs.StringVar(&opts.Copyright, "copyright", opts.Copyright, "Legal copyright")
	fs.StringVar(&opts.Version, "version", opts.Version, "File and product version (1.2.3 or 1.2.3.4)")
	fs.StringVar(&opts.OriginalFilename, "original-filename", opts.OriginalFilename, "Original executable name")
	fs.StringVar(&opts.IconPath, "icon", opts.IconPath, "Icon file (.ico, or .png resized)")
	fs.BoolVar(&opts.RequireAdmin, "require-admin", opts.RequireAdmin, "Request elevation in the manifest")
}

func newSysoCmd(root *rootOptions) *cobra.Command {
	opts := resources.DefaultOptions()
	var outPath, arch string

	cmd := &cobra.Command{
		Use:   "syso",
		Short: "Write the resource object linked into the launcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger()

			rs, err := resources.Build(opts, logger)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = fmt.Sprintf("rsrc_windows_%s.syso", arch)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create object file: %w", err)
			}
			if err := resources.WriteObject(rs, f, arch); err != nil {
				f.Close()
				os.Remove(outPath)
				return fmt.Errorf("failed to write object file: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close object file: %w", err)
			}

			logger.Info("✅ Wrote resource object", "path", outPath, "arch", arch)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default rsrc_windows_<arch>.syso)")
	cmd.Flags().StringVar(&arch, "arch", runtime.GOARCH, "Target architecture (386, amd64, arm, arm64)")
	addResourceFlags(cmd.Flags(), &opts)
	return cmd
}

func newStampCmd(root *rootOptions) *cobra.Command {
	opts := resources.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "stamp EXE",
		Short: "Stamp resources into a built launcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger()

			rs, err := resources.Build(opts, logger)
			if err != nil {
				return err
			}
			return resources.Stamp(args[0], rs, logger)
		},
	}

	addResourceFlags(cmd.Flags(), &opts)
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe EXE",
		Short: "Print the resources stamped into an executable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resources.Describe(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Resources:       %d\n", d.Resources)
			fmt.Fprintf(out, "Manifest:        %t\n", d.HasManifest)
			fmt.Fprintf(out, "Icon:            %t\n", d.HasIcon)
			fmt.Fprintf(out, "File version:    %s\n", orNone(d.FileVersion))
			fmt.Fprintf(out, "Product version: %s\n", orNone(d.ProductVersion))
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
