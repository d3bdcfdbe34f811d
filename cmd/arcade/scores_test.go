package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

func TestPrintScoresLimitAndAll(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for i := 1; i <= 12; i++ {
		_, err := store.SaveRun(storage.Run{GameID: "frogger", Player: "ann", Score: i * 10})
		require.NoError(t, err)
	}

	var top bytes.Buffer
	require.NoError(t, printScores(&top, store, "frogger", 3, false))
	assert.Contains(t, top.String(), "High Scores - Frogger")
	assert.Equal(t, 3, strings.Count(top.String(), "ann"))
	assert.Contains(t, top.String(), "Best: 120  Games: 12")

	var all bytes.Buffer
	require.NoError(t, printScores(&all, store, "frogger", 3, true))
	assert.Equal(t, 12, strings.Count(all.String(), "ann"), "--all ignores the limit")

	var empty bytes.Buffer
	require.NoError(t, printScores(&empty, store, "blocks", 10, true))
	assert.Contains(t, empty.String(), "No scores recorded yet.")
}
