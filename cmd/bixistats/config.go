package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bixistats.concordia.ca/internal/output"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long: `Display the effective bixistats configuration after merging the config file,
BIXI_* environment variables and flags.

Examples:
  bixistats config                # Show all config as a table
  bixistats config --path         # Show config file path
  bixistats config --yaml         # Output as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts)
		},
	}

	configCmd.Flags().Bool("path", false, "show config file path")
	configCmd.Flags().Bool("yaml", false, "output as YAML")

	return configCmd
}

func runConfig(cmd *cobra.Command, opts *options) error {
	printer := opts.app.Printer
	cfg := opts.app.Config

	showPath, _ := cmd.Flags().GetBool("path")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")

	if showPath {
		if opts.configSrc == "" {
			printer.Info("No config file found (using defaults)")
		} else {
			printer.Info("Config file: %s", opts.configSrc)
		}
		return nil
	}

	if yamlOutput {
		enc := yaml.NewEncoder(printer.Out())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	}

	printer.Header("Current Configuration")

	table := output.NewTable(printer.Out(), []string{"KEY", "VALUE"})
	table.AddRow("env", cfg.Env)
	table.AddRow("data.file", cfg.Data.File)
	table.AddRow("data.timezone", cfg.Data.Timezone)
	table.AddRow("logging.level", cfg.Logging.Level)
	table.AddRow("logging.format", cfg.Logging.Format)
	table.AddRow("output.colors", strconv.FormatBool(cfg.Output.Colors))
	table.AddRow("output.max_rows", strconv.Itoa(cfg.Output.MaxRows))
	return table.Render()
}
