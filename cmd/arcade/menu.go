package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/platform/tui"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a difficulty and
Enter to play. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Select game
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	current := preset
	if current == "" {
		current = config.DifficultyNormal
	}
	player := localPlayer()

	for {
		res, err := tui.RunMenu(cfg, current)
		if err != nil {
			return err
		}
		cfg = res.Config
		current = res.Preset

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			var source tui.ScoreSource
			if store != nil {
				source = store
			}
			back, err := tui.RunScoreboard(source, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			continue
		}

		opts := gameOptions()
		opts.Preset = current
		opts.Seed = time.Now().UnixNano()
		game, err := registry.Create(res.GameID, opts)
		if err != nil {
			log.Error("could not create game", "game", res.GameID, "error", err)
			continue
		}

		cfg.Seed = opts.Seed
		if err := tui.Run(game, store, cfg, player); err != nil {
			log.Error("game exited with error", "game", res.GameID, "error", err)
		}
	}
}
