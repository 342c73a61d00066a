package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// setVersion is called by main during initialization to set the version,
// commit and build date that --version reports.
func setVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// execute runs the slitherlink CLI and returns an error if any command fails.
func execute() error {
	var verbose, quiet bool

	root := &cobra.Command{
		Use:          "slitherlink",
		Short:        "slitherlink solves Slitherlink loop puzzles",
		Long:         `slitherlink reads a Slitherlink grid and finds one or all solutions using constraint propagation and parallel backtracking search.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			switch {
			case verbose:
				level = charmlog.DebugLevel
			case quiet:
				level = charmlog.ErrorLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("slitherlink %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())

	return root.ExecuteContext(context.Background())
}
