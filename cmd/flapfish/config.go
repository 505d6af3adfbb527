package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfish/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning config",
	Long: `Print the tuning config flapfish would play with, as YAML.

The result merges the built-in defaults with ~/.flapfish/configs/flapfish.yaml
or the file named by --config. Redirect it to start a custom config.

Examples:
  flapfish config
  flapfish config --config ./hard.yaml
  flapfish config > ~/.flapfish/configs/flapfish.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
