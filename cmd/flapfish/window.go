package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfish/internal/platform/gui"
	"github.com/vovakirdan/flapfish/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open flapfish in a window sized to the play field.

Controls:
  Left click/Space/Up/W  - Flap (and start from the menu)
  Enter                  - Start from the menu
  Esc                    - Abandon the current run
  Q                      - Quit

Examples:
  flapfish window
  flapfish window --fps 120 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := gui.Run(gui.Options{
		Config: cfg,
		TPS:    flagFPS,
		Seed:   flagSeed,
		Player: flagPlayer,
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
