// flapfish is a flappy-fish arcade game for the terminal, a native window,
// and SSH.
//
// Usage:
//
//	flapfish play      - Play in the terminal
//	flapfish window    - Play in a 700x500 window
//	flapfish serve     - Start SSH server for remote play
//	flapfish scores    - Show high scores
//	flapfish config    - Print the effective tuning config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flapfish/scores.db)
//	--config <path>      - Load tuning from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
//
// Every global flag defaults to its FLAPFISH_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfish/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	env, envErr = config.LoadEnv()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapfish",
	Short: "flapfish - flap through the pipes",
	Long: `flapfish is a one-button arcade game: keep the fish in the air and
slip through the gaps between the walls.

Available commands:
  play     - Play in the terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective tuning config

Examples:
  flapfish play
  flapfish window --seed 42
  flapfish serve --ssh :2222
  flapfish scores --limit 20
  flapfish config > ~/.flapfish/configs/flapfish.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if envErr != nil {
			return envErr
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
