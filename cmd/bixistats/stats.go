package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load a trip file and print dataset totals",
		Long: `Load the trip file given by --file (or data.file) and print the number of
trips and distinct stations it contains.

Examples:
  bixistats stats --file trips.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application := opts.app
			path := application.Config.Data.File
			if path == "" {
				return errors.New("no trip file configured, use --file")
			}

			result, err := application.Manager.Load(path)
			if err != nil {
				return err
			}

			application.Manager.PrintStatistics(application.Printer.Out())
			application.Printer.Print("Skipped lines: %d", result.SkippedLines)
			return nil
		},
	}
}
