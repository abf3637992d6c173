// Package cli implements the arffpreview command line tool.
//
// It previews local ARFF files with the same parser and projector the HTTP
// service uses, printing a table, JSON, or YAML.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shandysiswandi/arffview/internal/pkg/pkglog"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "arffpreview",
		Short:         "Preview the data section of ARFF files",
		Long:          `arffpreview reads ARFF files from disk and prints the first rows and columns of their @data section.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				slog.SetDefault(pkglog.NewLogger(errOut))
				pkglog.SetDebug(true)
				return
			}
			slog.SetDefault(pkglog.NewLogger(io.Discard))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")

	root.AddCommand(newPreviewCommand(), newVersionCommand())

	return root
}

// Execute is the entry point called by main.main().
func Execute() {
	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "arffpreview %s\n", Version)
		},
	}
}
