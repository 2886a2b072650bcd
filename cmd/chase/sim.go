package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase"
)

var (
	flagFrames  int
	flagScript  string
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal for a number of frames, steering the
avatar from a direction script, and print the outcome.

The script is a comma-separated list of segments. Each segment is a set of
held directions (L, R, U, D, or "." for none) followed by an optional frame
count, e.g. "R40,UL10,.5,D". After the script ends the avatar stands still.

The seed is used as given, so runs are reproducible. The process exits with
status 2 when the avatar is caught.

Examples:
  chase sim --frames 600 --script "R40,D20,L40" --seed 7
  chase sim --verbose --frames 100`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Maximum number of frames to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Direction script")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every frame")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagFrames <= 0 {
		fail("--frames must be positive")
	}

	script, err := parseScript(flagScript)
	if err != nil {
		fail("%v", err)
	}

	opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
		Level:           level,
	})
	opts.Logger = logger

	game, err := chase.NewFromOptions(opts)
	if err != nil {
		fail("%v", err)
	}
	if err := game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}); err != nil {
		fail("%v", err)
	}

	world := runScript(game, script, flagFrames, logSink{logger: logger})

	fmt.Printf("outcome=%s frames=%d collected=%d/%d\n",
		world.Terminal(), world.FrameNumber(), world.Collected(), world.Collected()+world.Remaining())

	if world.Terminal() == chase.Lost {
		os.Exit(exitCaught)
	}
}

// runScript steps the game until the session ends or frames run out,
// drawing every frame into sink.
func runScript(game *chase.Game, script []scriptStep, frames int, sink chase.Sink) *chase.World {
	in := core.NewInputFrame()
	for i := 0; i < frames; i++ {
		in.Clear()
		for _, a := range inputAt(script, i) {
			in.Set(a)
		}

		state := game.Step(in).State
		game.World().Render(sink)
		if state.GameOver {
			break
		}
	}
	return game.World()
}

// scriptStep holds a set of directions for a number of frames.
type scriptStep struct {
	actions []core.Action
	frames  int
}

var scriptDirections = map[rune]core.Action{
	'L': core.ActionLeft,
	'R': core.ActionRight,
	'U': core.ActionUp,
	'D': core.ActionDown,
}

func parseScript(s string) ([]scriptStep, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var steps []scriptStep
	for i, seg := range strings.Split(s, ",") {
		seg = strings.ToUpper(strings.TrimSpace(seg))
		dirs := strings.TrimRightFunc(seg, func(r rune) bool { return r >= '0' && r <= '9' })
		if dirs == "" {
			return nil, fmt.Errorf("script segment %d %q: missing directions", i+1, seg)
		}

		step := scriptStep{frames: 1}
		if count := seg[len(dirs):]; count != "" {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script segment %d %q: invalid frame count", i+1, seg)
			}
			step.frames = n
		}

		if dirs != "." {
			for _, r := range dirs {
				a, ok := scriptDirections[r]
				if !ok {
					return nil, fmt.Errorf("script segment %d %q: unknown direction %q", i+1, seg, r)
				}
				step.actions = append(step.actions, a)
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// inputAt returns the directions held on frame i.
func inputAt(script []scriptStep, i int) []core.Action {
	for _, st := range script {
		if i < st.frames {
			return st.actions
		}
		i -= st.frames
	}
	return nil
}

// logSink traces frames through the logger at debug level.
type logSink struct {
	logger *log.Logger
}

func (s logSink) Draw(f chase.Frame) {
	nearest := math.Inf(1)
	for _, p := range f.Pursuers {
		nearest = min(nearest, core.Distance(p.Center, f.Avatar.Center))
	}

	s.logger.Debug("frame",
		"n", f.Number,
		"avatar", fmt.Sprintf("%g,%g", f.Avatar.Center.X, f.Avatar.Center.Y),
		"nearest", fmt.Sprintf("%.1f", nearest),
		"remaining", len(f.Pickups),
		"state", f.Terminal,
	)
}
