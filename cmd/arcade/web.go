package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/platform/web"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the read-only scores JSON API",
	Long: `Serve high scores and statistics over HTTP.

Routes:
  GET /api/games
  GET /api/scores/:game?limit=N
  GET /api/stats
  GET /api/stats/:game
  GET /api/runs/:id
  GET /api/players/:player/scores?limit=N

The address defaults to ARCADE_WEB_ADDR, which may be set in .env.

Examples:
  arcade web
  arcade web --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", envOr("ARCADE_WEB_ADDR", ":8080"), "HTTP listen address")
}

func runWeb(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if log.GetLevel() > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return web.Serve(ctx, flagWebAddr, store, log.Default().WithPrefix("arcade-web"))
}
