package main

import (
	"errors"
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/platform/tui"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter        - Start
  Arrows/WASD  - Move (Up rotates in blocks)
  Space        - Hard drop (blocks)
  P            - Pause/resume (blocks)
  R            - Restart
  Esc/B        - Leave (blocks must be paused first)
  Q/Ctrl+C     - Quit
  ?            - Show all keys

Difficulty options:
  easy   - blocks from level 1, frogger with 5 lives
  normal - default progression
  hard   - blocks from level 5, frogger with 2 lives and faster lanes
  fixed  - no progression

Examples:
  arcade play blocks
  arcade play frogger --difficulty easy
  arcade play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID, gameOptions())
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	if err != nil {
		return err
	}

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), localPlayer()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// localPlayer names scores from local play after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
