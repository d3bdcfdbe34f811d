// Package sim runs a game headlessly through engine.Loop with a random bot
// pressing keys, for demos and engine debugging.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/engine"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

// DefaultMoves is the bot's key pool when none is given.
var DefaultMoves = []core.Action{
	core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionDrop,
}

// Options configures a run.
type Options struct {
	MaxTicks  int          // stop after this many ticks; 0 runs to game over
	Speed     float64      // clock speed-up factor; <= 0 means 1
	MoveEvery int          // the bot presses a key every MoveEvery ticks; 0 disables it
	Moves     []core.Action
	Seed      int64
	Clock     engine.Clock // defaults to the real clock
	Logger    *log.Logger
}

// Result summarizes a finished run.
type Result struct {
	Ticks    int
	Inputs   int // bot key presses the game accepted
	Rejected int
	State    core.GameState
	Elapsed  time.Duration
}

// ErrNotStarted is returned when the game refuses to start.
var ErrNotStarted = errors.New("sim: game did not start")

// Run starts game, drives it until MaxTicks, game over or ctx cancellation,
// and reports the final state. The game must be idle.
func Run(ctx context.Context, game registry.Game, opts Options) (Result, error) {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	if len(opts.Moves) == 0 {
		opts.Moves = DefaultMoves
	}
	if opts.Clock == nil {
		opts.Clock = engine.RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("game", game.ID())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		res     Result
		started bool
		loop    *engine.Loop
		bot     = rand.New(rand.NewSource(opts.Seed))
	)
	hook := func(e engine.Event) {
		switch e.Kind {
		case engine.EventInput:
			if e.Action == core.ActionStart {
				started = e.Accepted
				if !started {
					cancel()
				}
			} else if e.Accepted {
				res.Inputs++
			} else {
				res.Rejected++
			}
		case engine.EventTick:
			res.Ticks++
			if opts.MaxTicks > 0 && res.Ticks >= opts.MaxTicks {
				cancel()
				return
			}
			if opts.MoveEvery > 0 && res.Ticks%opts.MoveEvery == 0 {
				loop.TrySend(opts.Moves[bot.Intn(len(opts.Moves))])
			}
		}
		if !game.Running() {
			cancel()
		}
	}

	game.OnTransition(func(from, to core.Phase) {
		logger.Debug("phase", "from", from, "to", to)
	})
	loop = engine.NewLoop(game,
		engine.WithClock(engine.ScaledClock{Base: opts.Clock, Factor: opts.Speed}),
		engine.WithStepHook(hook),
	)
	if !loop.TrySend(core.ActionStart) {
		return res, fmt.Errorf("sim: queue start: %w", ErrNotStarted)
	}

	start := time.Now()
	err := loop.Run(ctx)
	res.Elapsed = time.Since(start)
	res.State = game.State()

	if !started {
		return res, ErrNotStarted
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return res, err
	}
	logger.Info("simulation finished",
		"ticks", res.Ticks, "inputs", res.Inputs, "score", res.State.Score, "phase", res.State.Phase)
	return res, nil
}
