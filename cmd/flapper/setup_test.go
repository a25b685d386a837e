package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

func TestWithCollaboratorsClosesBeforeReturningError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	require.NoError(t, err)
	_, err = store.SetHighScore(7)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	oldPath, oldPlayer := flagDBPath, flagPlayer
	t.Cleanup(func() { flagDBPath, flagPlayer = oldPath, oldPlayer })
	flagDBPath, flagPlayer = path, "alice"

	cfg := config.DefaultConfig()
	cfg.Audio.Enabled = false

	var captured game.Collaborators
	boom := errors.New("boom")
	err = withCollaborators(cfg, log.New(io.Discard), func(deps game.Collaborators) error {
		captured = deps
		require.NotNil(t, deps.Scores)
		assert.Equal(t, 7, deps.Scores.Load())
		assert.NotNil(t, deps.Recorder)
		assert.Equal(t, game.NopAudio{}, deps.Audio)
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The store is closed by the time the caller sees the error.
	assert.Zero(t, captured.Scores.Load())
}

func TestWithCollaboratorsFallsBackToMemory(t *testing.T) {
	oldPath := flagDBPath
	t.Cleanup(func() { flagDBPath = oldPath })
	// A regular file where the database directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	flagDBPath = filepath.Join(blocker, "scores.db")

	cfg := config.DefaultConfig()
	cfg.Audio.Enabled = false

	err := withCollaborators(cfg, log.New(io.Discard), func(deps game.Collaborators) error {
		assert.IsType(t, &game.MemoryScores{}, deps.Scores)
		assert.Nil(t, deps.Recorder)
		return nil
	})
	assert.NoError(t, err)
}

func TestPlayHelpDoesNotBindClickToFlap(t *testing.T) {
	assert.NotContains(t, playCmd.Long, "Flap / start")
	assert.Contains(t, playCmd.Long, "Start / play again")
}
