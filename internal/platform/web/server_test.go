package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/circuit-arcade/internal/games/blocks"
	_ "github.com/vovakirdan/circuit-arcade/internal/games/frogger"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewRouter(store, log.New(io.Discard)), store
}

func get(t *testing.T, r http.Handler, path string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestGames(t *testing.T) {
	r, store := newTestRouter(t)
	store.SaveRun(storage.Run{GameID: "blocks", Score: 400})
	store.SaveRun(storage.Run{GameID: "blocks", Score: 100})

	var games []GameSummary
	require.Equal(t, http.StatusOK, get(t, r, "/api/games", &games))
	require.Len(t, games, 2)

	assert.Equal(t, GameSummary{ID: "blocks", Title: "Blocks", HighScore: 400, Games: 2}, games[0])
	assert.Equal(t, GameSummary{ID: "frogger", Title: "Frogger"}, games[1])
}

func TestTopScores(t *testing.T) {
	r, store := newTestRouter(t)
	for _, s := range []int{10, 30, 20} {
		store.SaveRun(storage.Run{GameID: "frogger", Player: "ann", Score: s})
	}

	var body struct {
		Game   string               `json:"game"`
		Scores []storage.ScoreEntry `json:"scores"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/api/scores/frogger?limit=2", &body))
	assert.Equal(t, "frogger", body.Game)
	require.Len(t, body.Scores, 2)
	assert.Equal(t, 30, body.Scores[0].Score)
	assert.Equal(t, "ann", body.Scores[0].Player)
	assert.NotEmpty(t, body.Scores[0].RunID)
}

func TestTopScoresEmptyIsArray(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scores/blocks", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"game":"blocks","scores":[]}`, rec.Body.String())
}

func TestBadRequests(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/scores/pacman", http.StatusNotFound},
		{"/api/scores/blocks?limit=abc", http.StatusBadRequest},
		{"/api/scores/blocks?limit=0", http.StatusBadRequest},
		{"/api/stats/pacman", http.StatusNotFound},
		{"/api/runs/nope", http.StatusNotFound},
		{"/api/scores/blocks?limit=1000", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.code, get(t, r, tt.path, nil))
		})
	}
}

func TestStats(t *testing.T) {
	r, store := newTestRouter(t)
	store.SaveRun(storage.Run{GameID: "blocks", Score: 100})
	store.SaveRun(storage.Run{GameID: "blocks", Score: 300})

	var all map[string]storage.GameStats
	require.Equal(t, http.StatusOK, get(t, r, "/api/stats", &all))
	require.Contains(t, all, "blocks")
	assert.Equal(t, 2, all["blocks"].GamesCount)

	var one storage.GameStats
	require.Equal(t, http.StatusOK, get(t, r, "/api/stats/blocks", &one))
	assert.Equal(t, 300, one.HighScore)
	assert.InDelta(t, 200.0, one.AvgScore, 1e-9)
}

func TestRunAndPlayer(t *testing.T) {
	r, store := newTestRouter(t)
	run, err := store.SaveRun(storage.Run{GameID: "blocks", Player: "kim", Score: 700})
	require.NoError(t, err)

	var got storage.ScoreEntry
	require.Equal(t, http.StatusOK, get(t, r, "/api/runs/"+run.RunID, &got))
	assert.Equal(t, 700, got.Score)
	assert.Equal(t, "kim", got.Player)

	var body struct {
		Player string               `json:"player"`
		Scores []storage.ScoreEntry `json:"scores"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/api/players/kim/scores", &body))
	assert.Equal(t, "kim", body.Player)
	assert.Len(t, body.Scores, 1)
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusOK, get(t, r, "/healthz", nil))
}
