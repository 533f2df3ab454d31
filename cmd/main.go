package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-mukjjippa/config"
	"github.com/luca-patrignani/mental-mukjjippa/display"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)).Error("could not load the configuration", "error", err)
		os.Exit(1)
	}

	// Level was validated by Load
	level, _ := cfg.PtermLogLevel()
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	banner, err := display.Banner()
	if err == nil {
		pterm.Print(banner)
	}

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("match aborted", "error", err)
		os.Exit(1)
	}
}
