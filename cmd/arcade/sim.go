package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
	"github.com/vovakirdan/circuit-arcade/internal/sim"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

var (
	flagSimTicks   int
	flagSimSpeed   float64
	flagSimEvery   int
	flagSimMoves   string
	flagSimTimeout time.Duration
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headlessly with a random bot",
	Long: `Run a seeded game through the tick loop without a terminal UI and
print the final board.

The bot presses one random key from --moves every --every ticks. --speed
scales the clock, so --speed 100 runs blocks at 100 ticks per second.

Examples:
  arcade sim blocks --seed 7 --speed 200
  arcade sim frogger --ticks 5000 --moves up,up,left,right --every 4
  arcade sim blocks --every 0 --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 5000, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().Float64Var(&flagSimSpeed, "speed", 100, "Clock speed-up factor")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 3, "Bot presses a key every N ticks (0 = never)")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "left,right,up,down,drop", "Comma-separated bot key pool")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", 2*time.Minute, "Wall-clock limit")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the final score as player \"bot\"")
}

func parseMoves(s string) ([]core.Action, error) {
	var moves []core.Action
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		a := core.ParseAction(name)
		if a == core.ActionNone || a.IsLifecycle() || a == core.ActionBack || a == core.ActionQuit {
			return nil, fmt.Errorf("--moves: %q is not a game move", name)
		}
		moves = append(moves, a)
	}
	return moves, nil
}

func runSim(cmd *cobra.Command, args []string) error {
	moves, err := parseMoves(flagSimMoves)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := gameOptions()
	opts.Seed = seed

	game, err := registry.Create(args[0], opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagSimTimeout)
	defer cancel()

	res, err := sim.Run(ctx, game, sim.Options{
		MaxTicks:  flagSimTicks,
		Speed:     flagSimSpeed,
		MoveEvery: flagSimEvery,
		Moves:     moves,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	screen := core.NewScreen(80, 24)
	game.Render(screen)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintf(out, "game=%s seed=%d phase=%s ticks=%d inputs=%d rejected=%d score=%d level=%d lives=%d elapsed=%s\n",
		game.ID(), seed, res.State.Phase, res.Ticks, res.Inputs, res.Rejected,
		res.State.Score, res.State.Level, res.State.Lives, res.Elapsed.Round(time.Millisecond))

	if flagSimSave && res.State.Score > 0 {
		store := openStoreOrWarn()
		if store == nil {
			return nil
		}
		defer store.Close()
		run, err := store.SaveRun(storage.Run{GameID: game.ID(), Player: "bot", Score: res.State.Score})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved run %s\n", run.RunID)
	}
	return nil
}
