package app

import (
	"fmt"
	"io"
	"log/slog"

	"bixistats.concordia.ca/internal/appconf"
	"bixistats.concordia.ca/internal/bixi"
	"bixistats.concordia.ca/internal/logging"
	"bixistats.concordia.ca/internal/output"
)

// Application holds the dependencies shared by the CLI commands.
type Application struct {
	Config  *appconf.Config
	Logger  *slog.Logger
	Manager *bixi.Manager
	Printer *output.Printer
}

// New wires an Application from configuration. Logs go to logOut, results
// and prompts to out, user-facing errors to errOut.
func New(cfg *appconf.Config, out, errOut, logOut io.Writer) (*Application, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(logOut, cfg.Logging.Format, level)

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolving time zone: %w", err)
	}

	manager := bixi.NewManager(bixi.Config{
		Location: loc,
		Logger:   logger,
	})

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Manager: manager,
		Printer: output.NewPrinterWithWriters(out, errOut, output.ResolveColors(cfg.Output.Colors)),
	}, nil
}
