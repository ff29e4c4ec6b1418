// Package main provides the CLI entry point for nbfix-go.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nbfix/nbfix-go/pkg/nbfix"
)

var dryRun bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbfix [notebook.ipynb]",
		Short: "Repair malformed widget metadata in Jupyter notebooks",
		Long: `nbfix-go removes malformed widget metadata from Jupyter notebooks that
causes rendering failures on GitHub and nbviewer, with errors like
"the 'state' key is missing from 'metadata.widgets'".

A timestamped backup of the original file is created before any change
is written.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report removals without writing changes")

	// Every diagnostic goes to standard output, failures included.
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	notebookPath := args[0]

	opts := nbfix.DefaultOptions()
	opts.DryRun = dryRun
	opts.Log = cmd.OutOrStdout()

	_, err := nbfix.Repair(notebookPath, opts)
	return err
}
