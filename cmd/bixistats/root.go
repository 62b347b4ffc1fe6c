package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bixistats.concordia.ca/internal/app"
	"bixistats.concordia.ca/internal/appconf"
)

// options holds the persistent flags shared by every command.
type options struct {
	cfgFile   string
	dataFile  string
	timezone  string
	verbose   bool
	noColor   bool
	configSrc string
	app       *app.Application
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bixistats",
		Short: "Interactive reports over Bixi bike-share trips",
		Long: `bixistats loads a Bixi trip export and answers queries over it from an
interactive menu: trips by station, month, duration or start time, the busiest
boroughs and stations, rush hours and month-to-month comparisons.

Example usage:
  bixistats --file trips.csv       # Load trips.csv and open the menu
  bixistats                        # Prompt for the file, then open the menu
  bixistats stats -f trips.csv     # Print dataset totals and exit
  bixistats config                 # Show the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initApplication(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newShell(opts.app, cmd.InOrStdin()).run(opts.app.Config.Data.File)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is .bixistats.yaml)")
	flags.StringVarP(&opts.dataFile, "file", "f", "", "Bixi trip file to load")
	flags.StringVar(&opts.timezone, "timezone", "", "time zone for dates and hours (default Local)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newStatsCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// initApplication loads configuration and wires the application.
func (opts *options) initApplication(cmd *cobra.Command) error {
	cfg, used, err := appconf.Load(opts.cfgFile, appconf.Overrides{
		File:     opts.dataFile,
		Timezone: opts.timezone,
		Verbose:  opts.verbose,
		NoColor:  opts.noColor,
	})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	application, err := app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	application.Logger.Debug("configuration loaded",
		"config_file", used,
		"data_file", cfg.Data.File,
		"timezone", cfg.Data.Timezone,
		"env", cfg.Env,
	)

	opts.configSrc = used
	opts.app = application
	return nil
}
