package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/registry"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores blocks
  arcade scores frogger --limit 25
  arcade scores frogger --all
  arcade scores blocks --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score, ignoring --limit")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q (run 'arcade list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	title := registry.Title(gameID)

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", title)
		return nil
	}

	return printScores(out, store, gameID, flagScoresLimit, flagScoresAll)
}

// scoreLister is the part of the store the scores table reads.
type scoreLister interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	AllScores(gameID string) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// printScores writes the ranked score table for gameID. all lists every run
// instead of the top limit.
func printScores(out io.Writer, store scoreLister, gameID string, limit int, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %s\n", i+1, e.Score, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
