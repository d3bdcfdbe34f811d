// arcade is a terminal arcade hosting grid games on a shared tick engine.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show high scores for a game
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Serve the scores JSON API
//	arcade sim <game>        - Run a headless bot game and print the result
//	arcade config <game>     - Print the default YAML config for a game
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game config YAML overriding the search path
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	_ "github.com/vovakirdan/circuit-arcade/internal/games/blocks"
	_ "github.com/vovakirdan/circuit-arcade/internal/games/frogger"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	preset config.DifficultyPreset
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Circuit Arcade - grid games in your terminal",
	Long: `Circuit Arcade hosts falling-block and lane-crossing games on one
tick engine, playable locally, over SSH, or headless.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Serve the scores JSON API
  sim      - Run a bot game headlessly
  config   - Print a game's default config

Examples:
  arcade list
  arcade play blocks
  arcade play frogger --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores blocks
  arcade sim blocks --speed 50 --seed 7`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", envOr("ARCADE_DB", "~/.arcade/scores.db"), "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogLevel, "log-level", envOr("ARCADE_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return fmt.Errorf("--difficulty: %w", err)
		}
		preset = p
	}
	return nil
}

// envOr reads key from the environment (and .env), falling back to def.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
