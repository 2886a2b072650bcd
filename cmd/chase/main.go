// chase is a maze chase game for the terminal.
//
// Usage:
//
//	chase play              - Play in the terminal
//	chase sim               - Run a headless simulation from a direction script
//	chase list              - List available games
//	chase config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/maze-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Maze Chase - collect every pickup before the pursuers catch you",
	Long: `Maze Chase is a terminal game: steer through the maze, collect every
pickup, and stay away from the pursuers.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless simulation
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  chase play
  chase play --difficulty hard
  chase sim --frames 600 --script "R40,D20,L40" --seed 7
  chase config --defaults > my-chase.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time when playing)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error the way every command reports it and exits with code 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// gameOptions builds registry options from the global flags.
func gameOptions() (registry.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	return registry.Options{ConfigPath: flagConfig, Difficulty: preset}, nil
}
