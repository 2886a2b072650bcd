package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

// exitCaught is the exit status after the avatar was caught.
const exitCaught = 2

var (
	flagLogPath   string
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to maze chase.

Controls:
  Arrows/WASD/HJKL  - Move (directions combine)
  P/Esc             - Pause
  R                 - Restart (after winning)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Fewer pickups, base pursuer speed
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, more pickups
  fixed  - No scaling, use the config values as-is

The process exits with status 2 when you are caught.

Examples:
  chase play
  chase play --difficulty hard
  chase play --seed 42 --log chase.log
  chase play --config ./my-chase.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write the session log to this file")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a direction stays held after a key event")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := chase.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chase list' to see available games.")
		os.Exit(1)
	}

	opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}

	// The alt screen owns the terminal, so the log goes to a file or nowhere
	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		fail("%v", err)
	}
	opts.Logger = logger

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID, opts)
	if err != nil {
		closeLog()
		fail("creating game: %v", err)
	}

	state, runErr := tui.Run(game, tui.Options{
		Runtime:   cfg,
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	})

	// Close the log before a potential exit
	closeLog()

	if runErr != nil {
		fail("running game: %v", runErr)
	}

	switch {
	case state.Lost():
		fmt.Printf("Caught! Collected %d pickups.\n", state.Score)
		os.Exit(exitCaught)
	case state.Won:
		fmt.Printf("You Win! Collected %d pickups.\n", state.Score)
	}
}

// openLog returns a logger writing to path, or a discarding logger when path is empty.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
		Level:           log.DebugLevel,
	})
	return logger, func() {
		//nolint:errcheck // Best-effort close, the session is over
		f.Close()
	}, nil
}
