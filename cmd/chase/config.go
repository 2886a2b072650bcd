package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/games/chase"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use as YAML, after the config
file lookup, the difficulty preset and the difficulty scaling are applied.

With --defaults the embedded default file is printed instead, which makes
a good starting point for a custom config.

Examples:
  chase config
  chase config --difficulty hard
  chase config --defaults > ~/.arcade/configs/chase.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}

	game, err := chase.NewFromOptions(opts)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(game.Config())
	if err != nil {
		fail("%v", err)
	}
	//nolint:errcheck // Nothing to do if stdout is gone
	os.Stdout.Write(data)
}
