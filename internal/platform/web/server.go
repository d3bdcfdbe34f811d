// Package web serves a read-only JSON API over the score store.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/circuit-arcade/internal/registry"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreReader is the part of the store the API reads from.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	PlayerScores(player string, limit int) ([]storage.ScoreEntry, error)
	RunByID(runID string) (storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	GetAllGamesStats() (map[string]*storage.GameStats, error)
}

// GameSummary is one entry of GET /api/games.
type GameSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	HighScore int    `json:"high_score"`
	Games     int    `json:"games_played"`
}

type handler struct {
	scores ScoreReader
	logger *log.Logger
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(scores ScoreReader, logger *log.Logger) *gin.Engine {
	if logger == nil {
		logger = log.Default()
	}
	h := &handler{scores: scores, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/games", h.games)
	api.GET("/scores/:game", h.topScores)
	api.GET("/stats", h.allStats)
	api.GET("/stats/:game", h.gameStats)
	api.GET("/runs/:id", h.run)
	api.GET("/players/:player/scores", h.playerScores)

	return r
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client", c.ClientIP(),
		)
	}
}

func (h *handler) fail(c *gin.Context, err error) {
	h.logger.Error("score query failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// limit parses ?limit=, clamping it to maxLimit.
func limit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid limit %q", raw)})
		return 0, false
	}
	return min(n, maxLimit), true
}

// knownGame rejects ids the registry does not know.
func knownGame(c *gin.Context) (string, bool) {
	id := c.Param("game")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown game %q", id)})
		return "", false
	}
	return id, true
}

func (h *handler) games(c *gin.Context) {
	stats, err := h.scores.GetAllGamesStats()
	if err != nil {
		h.fail(c, err)
		return
	}

	games := registry.List()
	out := make([]GameSummary, 0, len(games))
	for _, g := range games {
		s := GameSummary{ID: g.ID, Title: g.Title}
		if gs, ok := stats[g.ID]; ok {
			s.HighScore = gs.HighScore
			s.Games = gs.GamesCount
		}
		out = append(out, s)
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) topScores(c *gin.Context) {
	id, ok := knownGame(c)
	if !ok {
		return
	}
	n, ok := limit(c)
	if !ok {
		return
	}

	scores, err := h.scores.TopScores(id, n)
	if err != nil {
		h.fail(c, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"game": id, "scores": scores})
}

func (h *handler) allStats(c *gin.Context) {
	stats, err := h.scores.GetAllGamesStats()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) gameStats(c *gin.Context) {
	id, ok := knownGame(c)
	if !ok {
		return
	}
	stats, err := h.scores.GetGameStats(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) run(c *gin.Context) {
	entry, err := h.scores.RunByID(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *handler) playerScores(c *gin.Context) {
	n, ok := limit(c)
	if !ok {
		return
	}
	player := c.Param("player")
	scores, err := h.scores.PlayerScores(player, n)
	if err != nil {
		h.fail(c, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"player": player, "scores": scores})
}

// Serve runs the API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, scores ScoreReader, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(scores, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web API", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down web API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
