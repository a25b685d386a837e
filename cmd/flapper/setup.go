package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

// dataDir returns ~/.flapper, or .flapper when home is unavailable.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flapper"
	}
	return filepath.Join(home, ".flapper")
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapper",
	})

	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.flapper/flapper.log so the terminal front end
// keeps the screen to itself. It falls back to discarding output.
func fileLogger() (*log.Logger, func()) {
	path := filepath.Join(dataDir(), "flapper.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig resolves the game configuration and applies flag overrides.
// It never fails: unusable files are logged and defaults are used.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("config not usable, using defaults", "err", err)
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}
	return cfg
}

// openScores opens the score database and returns the game collaborators
// bound to player. Without a database the high score lives in memory.
func openScores(player string, logger *log.Logger) (game.Collaborators, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "path", flagDBPath, "err", err)
		return game.Collaborators{Scores: &game.MemoryScores{}}, func() {}
	}

	scores := storage.NewScores(store, player, logger)
	return game.Collaborators{Scores: scores, Recorder: scores}, func() { store.Close() }
}

// withCollaborators opens the score store and the audio player, runs fn
// with them and closes both before returning fn's error.
func withCollaborators(cfg config.Config, logger *log.Logger, fn func(game.Collaborators) error) error {
	deps, closeScores := openScores(flagPlayer, logger)
	defer closeScores()

	sound, closeAudio := audio.New(cfg, logger)
	defer closeAudio()
	deps.Audio = sound

	return fn(deps)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
